package user

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/repository"
	"github.com/yodsaphonh/api-test-delivery/internal/service/user"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, id int64, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	query := `
		INSERT INTO users (id, name, password, phone, picture, role)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), $6)
		RETURNING id, name, password, phone, picture, role, created_at, updated_at
	`

	var userModel UserDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		userModifyModel.Name,
		userModifyModel.Password,
		userModifyModel.Phone,
		userModifyModel.Picture,
		userModifyModel.Role,
	).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Password,
		&userModel.Phone,
		&userModel.Picture,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if repository.IsPgErrorWithCode(err, repository.PgErrUniqueViolation) {
			return nil, user.ErrPhoneTaken
		}
		return nil, fmt.Errorf("unexpected user repository create error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.User, error) {
	query := `
		SELECT id, name, password, phone, picture, role, created_at, updated_at
		FROM users
		WHERE id = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, id).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Password,
		&userModel.Phone,
		&userModel.Picture,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetByPhone(ctx context.Context, phone string) (*entities.User, error) {
	query := `
		SELECT id, name, password, phone, picture, role, created_at, updated_at
		FROM users
		WHERE phone = $1
	`

	var userModel UserDB
	err := r.querier.QueryRow(ctx, query, phone).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Password,
		&userModel.Phone,
		&userModel.Picture,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository get by phone error: %w", err)
	}

	return ToDomain(&userModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.User, error) {
	query := `
		SELECT id, name, password, phone, picture, role, created_at, updated_at
		FROM users
		ORDER BY id
	`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository get all error: %w", err)
	}
	defer rows.Close()

	var users []entities.User
	for rows.Next() {
		var userModel UserDB
		err := rows.Scan(
			&userModel.ID,
			&userModel.Name,
			&userModel.Password,
			&userModel.Phone,
			&userModel.Picture,
			&userModel.Role,
			&userModel.CreatedAt,
			&userModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected user repository scan error: %w", err)
		}
		users = append(users, *ToDomain(&userModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected user repository rows error: %w", err)
	}

	return users, nil
}

func (r *Repository) Update(ctx context.Context, userModifyEntity entities.UserModify) (*entities.User, error) {
	userModifyModel := FromDomainModify(&userModifyEntity)

	builder := qb.
		Update("users")

	if userModifyModel.Name != nil {
		builder = builder.Set("name", userModifyModel.Name)
	}
	if userModifyModel.Password != nil {
		builder = builder.Set("password", userModifyModel.Password)
	}
	if userModifyModel.Picture != nil {
		builder = builder.Set("picture", userModifyModel.Picture)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": userModifyModel.ID}).
		Suffix("RETURNING id, name, password, phone, picture, role, created_at, updated_at")

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	var userModel UserDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(
		&userModel.ID,
		&userModel.Name,
		&userModel.Password,
		&userModel.Phone,
		&userModel.Picture,
		&userModel.Role,
		&userModel.CreatedAt,
		&userModel.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, user.ErrUserNotFound
		}
		return nil, fmt.Errorf("unexpected user repository update error: %w", err)
	}

	return ToDomain(&userModel), nil
}
