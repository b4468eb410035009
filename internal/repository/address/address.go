package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/address"
)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, id int64, addressModifyEntity entities.AddressModify) (*entities.Address, error) {
	query := `
		INSERT INTO addresses (id, user_id, address, lat, lng)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id, user_id, address, lat, lng, created_at
	`

	var addressModel AddressDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		addressModifyEntity.UserID,
		addressModifyEntity.Address,
		addressModifyEntity.Lat,
		addressModifyEntity.Lng,
	).Scan(
		&addressModel.ID,
		&addressModel.UserID,
		&addressModel.Address,
		&addressModel.Lat,
		&addressModel.Lng,
		&addressModel.CreatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository create error: %w", err)
	}

	return ToDomain(&addressModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Address, error) {
	query := `
		SELECT id, user_id, address, lat, lng, created_at
		FROM addresses
		WHERE id = $1
	`

	var addressModel AddressDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&addressModel.ID,
		&addressModel.UserID,
		&addressModel.Address,
		&addressModel.Lat,
		&addressModel.Lng,
		&addressModel.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, address.ErrAddressNotFound
		}
		return nil, fmt.Errorf("unexpected address repository get error: %w", err)
	}

	return ToDomain(&addressModel), nil
}

func (r *Repository) ListByUser(ctx context.Context, userID int64) ([]entities.Address, error) {
	query := `
		SELECT id, user_id, address, lat, lng, created_at
		FROM addresses
		WHERE user_id = $1
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("unexpected address repository list error: %w", err)
	}
	defer rows.Close()

	var addresses []entities.Address
	for rows.Next() {
		var addressModel AddressDB
		err := rows.Scan(
			&addressModel.ID,
			&addressModel.UserID,
			&addressModel.Address,
			&addressModel.Lat,
			&addressModel.Lng,
			&addressModel.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected address repository scan error: %w", err)
		}
		addresses = append(addresses, *ToDomain(&addressModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected address repository rows error: %w", err)
	}

	return addresses, nil
}

func (r *Repository) Delete(ctx context.Context, id int64) error {
	query := `
		DELETE FROM addresses WHERE id = $1
	`
	result, err := r.querier.Exec(ctx, query, id)
	if err != nil {
		return fmt.Errorf("unexpected address repository delete error: %w", err)
	}

	if result.RowsAffected() == 0 {
		return address.ErrAddressNotFound
	}

	return nil
}
