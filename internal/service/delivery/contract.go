//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=delivery_test
package delivery

import (
	"context"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

type Repository interface {
	CreateDelivery(ctx context.Context, id int64, deliveryModifyEntity entities.DeliveryModify) (*entities.Delivery, error)
	GetDeliveryByID(ctx context.Context, id int64) (*entities.Delivery, error)
	UpdateDeliveryStatus(ctx context.Context, id int64, status entities.DeliveryStatusType) (*entities.Delivery, error)
	ListBySender(ctx context.Context, userID int64) ([]entities.Delivery, error)
	ListByRider(ctx context.Context, riderID int64) ([]entities.Delivery, error)

	CreateAssignment(ctx context.Context, id int64, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error)
	GetAssignmentForRider(ctx context.Context, deliveryID, riderID int64) (*entities.Assignment, error)
	GetAssignmentByStatus(ctx context.Context, deliveryID int64, status entities.DeliveryStatusType) (*entities.Assignment, error)
	GetActiveAssignmentByDelivery(ctx context.Context, deliveryID int64) (*entities.Assignment, error)
	GetLatestActiveAssignmentByRider(ctx context.Context, riderID int64) (*entities.Assignment, error)
	UpdateAssignment(ctx context.Context, assignmentModifyEntity entities.AssignmentModify) (*entities.Assignment, error)
}

type UserService interface {
	GetUser(ctx context.Context, id int64) (*entities.User, error)
}

type AddressService interface {
	GetAddress(ctx context.Context, id int64) (*entities.Address, error)
}

type LocationService interface {
	Upsert(ctx context.Context, riderID int64, lat, lng float64) (bool, error)
	Get(ctx context.Context, riderID int64) (*entities.RiderLocation, error)
}

type Allocator interface {
	Next(ctx context.Context, name string) (int64, error)
}

type Publisher interface {
	PublishStatusChanged(ctx context.Context, event entities.DeliveryStatusChanged)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
