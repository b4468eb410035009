package ridercar

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/sequence"
	"github.com/yodsaphonh/api-test-delivery/internal/service/user"
)

type RiderCar struct {
	repository  Repository
	userService UserService
	allocator   Allocator
	txManager   TxManager
}

func New(repository Repository, userService UserService, allocator Allocator, txManager TxManager) *RiderCar {
	return &RiderCar{
		repository:  repository,
		userService: userService,
		allocator:   allocator,
		txManager:   txManager,
	}
}

// CreateCar attaches a car record to a rider user. At most one car per
// rider; a second create is rejected.
func (s *RiderCar) CreateCar(ctx context.Context, riderCarModify entities.RiderCarModify) (*entities.RiderCar, error) {
	if riderCarModify.UserID == nil ||
		riderCarModify.PlateNumber == nil ||
		riderCarModify.CarType == nil {
		return nil, ErrMissingRequiredFields
	}
	if *riderCarModify.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	if strings.TrimSpace(*riderCarModify.PlateNumber) == "" {
		return nil, ErrMissingRequiredFields
	}

	var created *entities.RiderCar
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		owner, err := s.userService.GetUser(ctx, *riderCarModify.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return ErrRiderNotFound
			}
			return fmt.Errorf("check car owner: %w", err)
		}
		if owner.Role != entities.RoleRider {
			return ErrNotARider
		}

		id, err := s.allocator.Next(ctx, sequence.RiderSeq)
		if err != nil {
			return fmt.Errorf("allocate rider id: %w", err)
		}

		created, err = s.repository.Create(ctx, id, riderCarModify)
		if err != nil {
			return fmt.Errorf("create rider car: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *RiderCar) GetCarByUser(ctx context.Context, userID int64) (*entities.RiderCar, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	found, err := s.repository.GetByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get rider car: %w", err)
	}
	return found, nil
}
