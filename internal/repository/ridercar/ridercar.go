package ridercar

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/repository"
	"github.com/yodsaphonh/api-test-delivery/internal/service/ridercar"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, id int64, riderCarModifyEntity entities.RiderCarModify) (*entities.RiderCar, error) {
	query := `
		INSERT INTO rider_cars (id, user_id, plate_number, car_type, image_car)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''))
		RETURNING id, user_id, plate_number, car_type, image_car, created_at
	`

	var carModel RiderCarDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		riderCarModifyEntity.UserID,
		riderCarModifyEntity.PlateNumber,
		riderCarModifyEntity.CarType,
		riderCarModifyEntity.ImageCar,
	).Scan(
		&carModel.ID,
		&carModel.UserID,
		&carModel.PlateNumber,
		&carModel.CarType,
		&carModel.ImageCar,
		&carModel.CreatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, ridercar.ErrCarAlreadyExists
		}
		return nil, fmt.Errorf("unexpected rider car repository create error: %w", err)
	}

	return ToDomain(&carModel), nil
}

func (r *Repository) GetByUser(ctx context.Context, userID int64) (*entities.RiderCar, error) {
	query := `
		SELECT id, user_id, plate_number, car_type, image_car, created_at
		FROM rider_cars
		WHERE user_id = $1
	`

	var carModel RiderCarDB
	err := r.querier.QueryRow(ctx, query, userID).Scan(
		&carModel.ID,
		&carModel.UserID,
		&carModel.PlateNumber,
		&carModel.CarType,
		&carModel.ImageCar,
		&carModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ridercar.ErrRiderCarNotFound
		}
		return nil, fmt.Errorf("unexpected rider car repository get error: %w", err)
	}

	return ToDomain(&carModel), nil
}
