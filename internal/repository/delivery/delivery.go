package delivery

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/delivery"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryColumns = `id, user_id_sender, user_id_receiver, address_id_sender, address_id_receiver,
		phone_receiver, name_product, detail_product, picture_product, amount, picture_status1,
		status, created_at, updated_at`

const assignmentColumns = `id, delivery_id, rider_id, status, picture_status2, picture_status3,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) CreateDelivery(ctx context.Context, id int64, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error) {
	query := `
		INSERT INTO deliveries (id, user_id_sender, user_id_receiver, address_id_sender, address_id_receiver,
			phone_receiver, name_product, detail_product, picture_product, amount, picture_status1, status)
		VALUES ($1, $2, $3, $4, $5, COALESCE($6, ''), $7, COALESCE($8, ''), COALESCE($9, ''),
			COALESCE($10, 1), COALESCE($11, ''), $12)
		RETURNING ` + deliveryColumns

	status := entities.DeliveryWaiting
	if deliveryModifyEntity.Status != nil {
		status = *deliveryModifyEntity.Status
	}

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		deliveryModifyEntity.UserIDSender,
		deliveryModifyEntity.UserIDReceiver,
		deliveryModifyEntity.AddressIDSender,
		deliveryModifyEntity.AddressIDReceiver,
		deliveryModifyEntity.PhoneReceiver,
		deliveryModifyEntity.NameProduct,
		deliveryModifyEntity.DetailProduct,
		deliveryModifyEntity.PictureProduct,
		deliveryModifyEntity.Amount,
		deliveryModifyEntity.PictureStatus1,
		status.String(),
	).Scan(deliveryFields(&deliveryModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository create error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) GetDeliveryByID(ctx context.Context, id int64) (*entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE id = $1
	`

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, id).Scan(deliveryFields(&deliveryModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository get error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) UpdateDeliveryStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) (*entities.Delivery, error) {
	query := `
		UPDATE deliveries
		SET status = $2,
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + deliveryColumns

	var deliveryModel DeliveryDB
	err := r.querier.QueryRow(ctx, query, id, status.String()).Scan(deliveryFields(&deliveryModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrDeliveryNotFound
		}
		return nil, fmt.Errorf("unexpected delivery repository update status error: %w", err)
	}

	return ToDomain(&deliveryModel), nil
}

func (r *Repository) ListBySender(ctx context.Context, userID int64) ([]entities.Delivery, error) {
	query := `
		SELECT ` + deliveryColumns + `
		FROM deliveries
		WHERE user_id_sender = $1
		ORDER BY id DESC
	`
	return r.listDeliveries(ctx, query, userID)
}

func (r *Repository) ListByRider(ctx context.Context, riderID int64) ([]entities.Delivery, error) {
	query := `
		SELECT ` + prefixedDeliveryColumns("d") + `
		FROM deliveries d
		JOIN assignments a ON a.delivery_id = d.id
		WHERE a.rider_id = $1
		ORDER BY d.id DESC
	`
	return r.listDeliveries(ctx, query, riderID)
}

func (r *Repository) listDeliveries(ctx context.Context, query string, arg interface{}) ([]entities.Delivery, error) {
	rows, err := r.querier.Query(ctx, query, arg)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery repository list error: %w", err)
	}
	defer rows.Close()

	var deliveries []entities.Delivery
	for rows.Next() {
		var deliveryModel DeliveryDB
		if err := rows.Scan(deliveryFields(&deliveryModel)...); err != nil {
			return nil, fmt.Errorf("unexpected delivery repository scan error: %w", err)
		}
		deliveries = append(deliveries, *ToDomain(&deliveryModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery repository rows error: %w", err)
	}

	return deliveries, nil
}

func (r *Repository) CreateAssignment(ctx context.Context, id int64, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	query := `
		INSERT INTO assignments (id, delivery_id, rider_id, status, picture_status2, picture_status3)
		VALUES ($1, $2, $3, $4, COALESCE($5, ''), COALESCE($6, ''))
		RETURNING ` + assignmentColumns

	status := entities.DeliveryAccept
	if assignmentModifyEntity.Status != nil {
		status = *assignmentModifyEntity.Status
	}

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(
		ctx,
		query,
		id,
		assignmentModifyEntity.DeliveryID,
		assignmentModifyEntity.RiderID,
		status.String(),
		assignmentModifyEntity.PictureStatus2,
		assignmentModifyEntity.PictureStatus3,
	).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository create error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func (r *Repository) GetAssignmentForRider(ctx context.Context, deliveryID, riderID int64) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE delivery_id = $1 AND rider_id = $2
		ORDER BY id DESC
		LIMIT 1
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, deliveryID, riderID).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func (r *Repository) GetAssignmentByStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatusType) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE delivery_id = $1 AND status = $2
		ORDER BY id DESC
		LIMIT 1
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, deliveryID, status.String()).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get by status error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func (r *Repository) GetActiveAssignmentByDelivery(ctx context.Context, deliveryID int64) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE delivery_id = $1 AND status IN ('accept', 'transporting')
		ORDER BY id DESC
		LIMIT 1
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, deliveryID).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get active error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

// GetLatestActiveAssignmentByRider picks the non-terminal assignment with
// the largest id. The sequence id is the one totally ordered value, so it
// substitutes for a timestamp ordering.
func (r *Repository) GetLatestActiveAssignmentByRider(ctx context.Context, riderID int64) (*entities.Assignment, error) {
	query := `
		SELECT ` + assignmentColumns + `
		FROM assignments
		WHERE rider_id = $1 AND status IN ('accept', 'transporting')
		ORDER BY id DESC
		LIMIT 1
	`

	var assignmentModel AssignmentDB
	err := r.querier.QueryRow(ctx, query, riderID).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository get latest active error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func (r *Repository) UpdateAssignment(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error) {
	builder := qb.
		Update("assignments")

	if assignmentModifyEntity.Status != nil {
		builder = builder.Set("status", assignmentModifyEntity.Status.String())
	}
	if assignmentModifyEntity.PictureStatus2 != nil {
		builder = builder.Set("picture_status2", assignmentModifyEntity.PictureStatus2)
	}
	if assignmentModifyEntity.PictureStatus3 != nil {
		builder = builder.Set("picture_status3", assignmentModifyEntity.PictureStatus3)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": assignmentModifyEntity.ID}).
		Suffix("RETURNING " + assignmentColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	var assignmentModel AssignmentDB
	err = r.querier.QueryRow(ctx, query, args...).Scan(assignmentFields(&assignmentModel)...)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, delivery.ErrAssignmentNotFound
		}
		return nil, fmt.Errorf("unexpected assignment repository update error: %w", err)
	}

	return ToAssignmentDomain(&assignmentModel), nil
}

func deliveryFields(m *DeliveryDB) []interface{} {
	return []interface{}{
		&m.ID,
		&m.UserIDSender,
		&m.UserIDReceiver,
		&m.AddressIDSender,
		&m.AddressIDReceiver,
		&m.PhoneReceiver,
		&m.NameProduct,
		&m.DetailProduct,
		&m.PictureProduct,
		&m.Amount,
		&m.PictureStatus1,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}

func assignmentFields(m *AssignmentDB) []interface{} {
	return []interface{}{
		&m.ID,
		&m.DeliveryID,
		&m.RiderID,
		&m.Status,
		&m.PictureStatus2,
		&m.PictureStatus3,
		&m.CreatedAt,
		&m.UpdatedAt,
	}
}

func prefixedDeliveryColumns(alias string) string {
	return alias + `.id, ` + alias + `.user_id_sender, ` + alias + `.user_id_receiver, ` +
		alias + `.address_id_sender, ` + alias + `.address_id_receiver, ` + alias + `.phone_receiver, ` +
		alias + `.name_product, ` + alias + `.detail_product, ` + alias + `.picture_product, ` +
		alias + `.amount, ` + alias + `.picture_status1, ` + alias + `.status, ` +
		alias + `.created_at, ` + alias + `.updated_at`
}
