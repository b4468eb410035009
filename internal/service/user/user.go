package user

import (
	"context"
	"fmt"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/sequence"
)

type User struct {
	repository Repository
	allocator  Allocator
	txManager  TxManager
}

func New(repository Repository, allocator Allocator, txManager TxManager) *User {
	return &User{
		repository: repository,
		allocator:  allocator,
		txManager:  txManager,
	}
}

// Register mints a user id and persists the profile in one transaction, so
// a rejected insert never burns a visible gap in entity records.
func (s *User) Register(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.Name == nil ||
		userModify.Password == nil ||
		userModify.Phone == nil ||
		userModify.Role == nil {
		return nil, ErrMissingRequiredFields
	}

	if !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}
	if !isValidPhone(*userModify.Phone) {
		return nil, ErrInvalidPhone
	}
	if !userModify.Role.Valid() {
		return nil, ErrInvalidRole
	}

	var created *entities.User
	err := s.txManager.Do(ctx, func(ctx context.Context) error {
		id, err := s.allocator.Next(ctx, sequence.UserSeq)
		if err != nil {
			return fmt.Errorf("allocate user id: %w", err)
		}

		created, err = s.repository.Create(ctx, id, userModify)
		if err != nil {
			return fmt.Errorf("create user: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return created, nil
}

// Login compares the stored opaque password string. Plaintext comparison is
// a placeholder; the auth layer is explicitly out of scope.
func (s *User) Login(ctx context.Context, phone, password string) (*entities.User, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	found, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("get user by phone: %w", err)
	}

	if found.Password != password {
		return nil, ErrWrongPassword
	}
	return found, nil
}

func (s *User) GetUser(ctx context.Context, id int64) (*entities.User, error) {
	if id <= 0 {
		return nil, ErrInvalidUserID
	}

	found, err := s.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return found, nil
}

func (s *User) GetUserByPhone(ctx context.Context, phone string) (*entities.User, error) {
	if !isValidPhone(phone) {
		return nil, ErrInvalidPhone
	}

	found, err := s.repository.GetByPhone(ctx, phone)
	if err != nil {
		return nil, fmt.Errorf("failed to get user by phone: %w", err)
	}
	return found, nil
}

func (s *User) GetUsers(ctx context.Context) ([]entities.User, error) {
	users, err := s.repository.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get users: %w", err)
	}
	return users, nil
}

func (s *User) UpdateUser(ctx context.Context, userModify entities.UserModify) (*entities.User, error) {
	if userModify.ID == nil || *userModify.ID <= 0 {
		return nil, ErrInvalidUserID
	}
	if userModify.Name == nil &&
		userModify.Password == nil &&
		userModify.Picture == nil {
		return nil, fmt.Errorf("no fields to update: %w", ErrMissingRequiredFields)
	}
	if userModify.Name != nil && !isValidName(*userModify.Name) {
		return nil, ErrInvalidName
	}

	updated, err := s.repository.Update(ctx, userModify)
	if err != nil {
		return nil, fmt.Errorf("failed to update user: %w", err)
	}
	return updated, nil
}
