package address

import (
	"context"
	"errors"
	"fmt"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/sequence"
	"github.com/yodsaphonh/api-test-delivery/internal/service/user"
	"github.com/yodsaphonh/api-test-delivery/pkg/geo"
)

type Address struct {
	repository  Repository
	userService UserService
	allocator   Allocator
	txManager   TxManager
}

func New(repository Repository, userService UserService, allocator Allocator, txManager TxManager) *Address {
	return &Address{
		repository:  repository,
		userService: userService,
		allocator:   allocator,
		txManager:   txManager,
	}
}

func (s *Address) CreateAddress(ctx context.Context, addressModify entities.AddressModify) (*entities.Address, error) {
	if addressModify.UserID == nil || addressModify.Address == nil {
		return nil, ErrMissingRequiredFields
	}
	if *addressModify.UserID <= 0 {
		return nil, ErrInvalidUserID
	}
	if (addressModify.Lat == nil) != (addressModify.Lng == nil) {
		return nil, ErrInvalidCoordinates
	}
	if addressModify.Lat != nil {
		point := geo.Point{Lat: *addressModify.Lat, Lng: *addressModify.Lng}
		if !point.Valid() {
			return nil, ErrInvalidCoordinates
		}
	}

	var created *entities.Address
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		_, err := s.userService.GetUser(ctx, *addressModify.UserID)
		if err != nil {
			if errors.Is(err, user.ErrUserNotFound) {
				return ErrOwnerNotFound
			}
			return fmt.Errorf("check address owner: %w", err)
		}

		id, err := s.allocator.Next(ctx, sequence.AddressSeq)
		if err != nil {
			return fmt.Errorf("allocate address id: %w", err)
		}

		created, err = s.repository.Create(ctx, id, addressModify)
		if err != nil {
			return fmt.Errorf("create address: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

func (s *Address) GetAddress(ctx context.Context, id int64) (*entities.Address, error) {
	if id <= 0 {
		return nil, ErrInvalidAddressID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get address: %w", err)
	}
	return found, nil
}

func (s *Address) ListAddresses(ctx context.Context, userID int64) ([]entities.Address, error) {
	if userID <= 0 {
		return nil, ErrInvalidUserID
	}

	addresses, err := s.repository.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list addresses: %w", err)
	}
	return addresses, nil
}

// DeleteAddress removes the record only when the requester owns it. The
// read and the delete run in one transaction so the ownership check cannot
// race with a concurrent delete.
func (s *Address) DeleteAddress(ctx context.Context, id, requesterID int64) error {
	if id <= 0 {
		return ErrInvalidAddressID
	}
	if requesterID <= 0 {
		return ErrInvalidUserID
	}

	return s.txManager.Do(ctx, func(ctx context.Context) error {
		found, err := s.repository.GetByID(ctx, id)
		if err != nil {
			return fmt.Errorf("get address for delete: %w", err)
		}

		if found.UserID != requesterID {
			return ErrNotOwner
		}

		if err := s.repository.Delete(ctx, id); err != nil {
			return fmt.Errorf("delete address: %w", err)
		}
		return nil
	})
}
