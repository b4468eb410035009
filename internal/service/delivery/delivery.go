package delivery

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/address"
	"github.com/yodsaphonh/api-test-delivery/internal/service/sequence"
	"github.com/yodsaphonh/api-test-delivery/internal/service/user"
)

// Delivery owns the delivery status field and the assignment records tied to
// it. Every transition runs as one serializable transaction: all reads come
// first, then the writes, and either the whole transition commits or none of
// its effects are observed.
type Delivery struct {
	repository      Repository
	userService     UserService
	addressService  AddressService
	locationService LocationService
	allocator       Allocator
	publisher       Publisher
	txManager       TxManager
}

func New(
	repository Repository,
	userService UserService,
	addressService AddressService,
	locationService LocationService,
	allocator Allocator,
	publisher Publisher,
	txManager TxManager,
) *Delivery {
	return &Delivery{
		repository:      repository,
		userService:     userService,
		addressService:  addressService,
		locationService: locationService,
		allocator:       allocator,
		publisher:       publisher,
		txManager:       txManager,
	}
}

// CreateDelivery validates the referenced users and addresses, mints a
// delivery id and persists the record in waiting state.
func (d *Delivery) CreateDelivery(ctx context.Context, deliveryModify entities.DeliveryModify) (*entities.Delivery, error) {
	// The REST layer decodes absent JSON fields to zero values, so a zero id
	// and a blank name are the same defect as a nil pointer.
	if deliveryModify.UserIDSender == nil || !isValidID(*deliveryModify.UserIDSender) ||
		deliveryModify.UserIDReceiver == nil || !isValidID(*deliveryModify.UserIDReceiver) ||
		deliveryModify.AddressIDSender == nil || !isValidID(*deliveryModify.AddressIDSender) ||
		deliveryModify.AddressIDReceiver == nil || !isValidID(*deliveryModify.AddressIDReceiver) ||
		deliveryModify.NameProduct == nil || !isValidProductName(*deliveryModify.NameProduct) {
		return nil, ErrMissingRequiredFields
	}
	if deliveryModify.Amount != nil && *deliveryModify.Amount <= 0 {
		return nil, ErrInvalidAmount
	}

	var created *entities.Delivery
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.userService.GetUser(ctx, *deliveryModify.UserIDSender); err != nil {
			return refError(err, ErrSenderNotFound, "check sender")
		}
		if _, err := d.userService.GetUser(ctx, *deliveryModify.UserIDReceiver); err != nil {
			return refError(err, ErrReceiverNotFound, "check receiver")
		}
		if _, err := d.addressService.GetAddress(ctx, *deliveryModify.AddressIDSender); err != nil {
			return addrRefError(err, ErrSenderAddressNotFound, "check sender address")
		}
		if _, err := d.addressService.GetAddress(ctx, *deliveryModify.AddressIDReceiver); err != nil {
			return addrRefError(err, ErrReceiverAddressNotFound, "check receiver address")
		}

		id, err := d.allocator.Next(ctx, sequence.DeliverySeq)
		if err != nil {
			return fmt.Errorf("allocate delivery id: %w", err)
		}

		status := entities.DeliveryWaiting
		deliveryModify.Status = &status
		created, err = d.repository.CreateDelivery(ctx, id, deliveryModify)
		if err != nil {
			return fmt.Errorf("create delivery: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publisher.PublishStatusChanged(ctx, entities.DeliveryStatusChanged{
		DeliveryID: created.ID,
		Status:     created.Status,
		OccurredAt: time.Now().UTC(),
	})
	return created, nil
}

// AcceptDelivery moves a waiting delivery to accept, creating the assignment
// and recording the rider's position, all in one transaction. Of two
// concurrent accepts on the same delivery exactly one observes waiting and
// commits; the other sees the changed status and gets ErrNotWaiting.
func (d *Delivery) AcceptDelivery(ctx context.Context, deliveryID, riderID int64, lat, lng float64) (*entities.Assignment, *entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, nil, ErrInvalidDeliveryID
	}
	if !isValidID(riderID) {
		return nil, nil, ErrInvalidRiderID
	}
	if !isValidPoint(lat, lng) {
		return nil, nil, ErrInvalidCoordinates
	}

	var (
		assignment      *entities.Assignment
		updatedDelivery *entities.Delivery
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.GetDeliveryByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if deliveryEntity.Status != entities.DeliveryWaiting {
			return ErrNotWaiting
		}

		rider, err := d.userService.GetUser(ctx, riderID)
		if err != nil {
			return refError(err, ErrRiderNotFound, "check rider")
		}
		if rider.Role != entities.RoleRider {
			return ErrNotARider
		}

		assiID, err := d.allocator.Next(ctx, sequence.AssignmentSeq)
		if err != nil {
			return fmt.Errorf("allocate assignment id: %w", err)
		}

		status := entities.DeliveryAccept
		assignment, err = d.repository.CreateAssignment(ctx, assiID, entities.AssignmentModify{
			DeliveryID: &deliveryID,
			RiderID:    &riderID,
			Status:     &status,
		})
		if err != nil {
			return fmt.Errorf("create assignment: %w", err)
		}

		updatedDelivery, err = d.repository.UpdateDeliveryStatus(ctx, deliveryID, entities.DeliveryAccept)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		if _, err := d.locationService.Upsert(ctx, riderID, lat, lng); err != nil {
			return fmt.Errorf("upsert rider location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	d.publisher.PublishStatusChanged(ctx, entities.DeliveryStatusChanged{
		DeliveryID: deliveryID,
		Status:     entities.DeliveryAccept,
		RiderID:    &riderID,
		OccurredAt: time.Now().UTC(),
	})
	return assignment, updatedDelivery, nil
}

// TransportDelivery moves an accepted assignment to transporting, attaching
// the pickup-confirmation image. The assignment is matched by delivery and
// rider, so a stale or wrong-rider client cannot force the transition.
func (d *Delivery) TransportDelivery(ctx context.Context, deliveryID, riderID int64, pickupImage string, lat, lng float64) (*entities.Assignment, *entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, nil, ErrInvalidDeliveryID
	}
	if !isValidID(riderID) {
		return nil, nil, ErrInvalidRiderID
	}
	if !isValidPoint(lat, lng) {
		return nil, nil, ErrInvalidCoordinates
	}

	var (
		assignment      *entities.Assignment
		updatedDelivery *entities.Delivery
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.repository.GetDeliveryByID(ctx, deliveryID); err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		current, err := d.repository.GetAssignmentForRider(ctx, deliveryID, riderID)
		if err != nil {
			return fmt.Errorf("get assignment: %w", err)
		}
		if current.Status != entities.DeliveryAccept {
			return ErrNotAccepted
		}

		status := entities.DeliveryTransporting
		assignment, err = d.repository.UpdateAssignment(ctx, entities.AssignmentModify{
			ID:             &current.ID,
			Status:         &status,
			PictureStatus2: &pickupImage,
		})
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		updatedDelivery, err = d.repository.UpdateDeliveryStatus(ctx, deliveryID, entities.DeliveryTransporting)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}

		if _, err := d.locationService.Upsert(ctx, riderID, lat, lng); err != nil {
			return fmt.Errorf("upsert rider location: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	d.publisher.PublishStatusChanged(ctx, entities.DeliveryStatusChanged{
		DeliveryID: deliveryID,
		Status:     entities.DeliveryTransporting,
		RiderID:    &riderID,
		OccurredAt: time.Now().UTC(),
	})
	return assignment, updatedDelivery, nil
}

// FinishDelivery completes a transporting delivery. Assignment and delivery
// are updated in the same transaction, so a crash between the two writes can
// never leave them out of sync. riderID is an optional authorization check:
// zero skips it.
func (d *Delivery) FinishDelivery(ctx context.Context, deliveryID int64, deliveryImage string, riderID int64) (*entities.Assignment, *entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, nil, ErrInvalidDeliveryID
	}

	var (
		assignment      *entities.Assignment
		updatedDelivery *entities.Delivery
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		if _, err := d.repository.GetDeliveryByID(ctx, deliveryID); err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}

		// Covers both "already finished" and "never started transporting".
		current, err := d.repository.GetAssignmentByStatus(ctx, deliveryID, entities.DeliveryTransporting)
		if err != nil {
			if errors.Is(err, ErrAssignmentNotFound) {
				return ErrNotTransporting
			}
			return fmt.Errorf("get transporting assignment: %w", err)
		}
		if riderID != 0 && current.RiderID != riderID {
			return ErrWrongRider
		}

		status := entities.DeliveryFinish
		assignmentModify := entities.AssignmentModify{
			ID:     &current.ID,
			Status: &status,
		}
		if deliveryImage != "" {
			assignmentModify.PictureStatus3 = &deliveryImage
		}

		assignment, err = d.repository.UpdateAssignment(ctx, assignmentModify)
		if err != nil {
			return fmt.Errorf("update assignment: %w", err)
		}

		updatedDelivery, err = d.repository.UpdateDeliveryStatus(ctx, deliveryID, entities.DeliveryFinish)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}

	d.publisher.PublishStatusChanged(ctx, entities.DeliveryStatusChanged{
		DeliveryID: deliveryID,
		Status:     entities.DeliveryFinish,
		RiderID:    &assignment.RiderID,
		OccurredAt: time.Now().UTC(),
	})
	return assignment, updatedDelivery, nil
}

// CancelDelivery aborts a non-terminal delivery. An active assignment, when
// present, is cancelled together with it.
func (d *Delivery) CancelDelivery(ctx context.Context, deliveryID int64) (*entities.Delivery, error) {
	if !isValidID(deliveryID) {
		return nil, ErrInvalidDeliveryID
	}

	var (
		updatedDelivery *entities.Delivery
		cancelledRider  *int64
	)
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		deliveryEntity, err := d.repository.GetDeliveryByID(ctx, deliveryID)
		if err != nil {
			return fmt.Errorf("get delivery: %w", err)
		}
		if deliveryEntity.Status.Terminal() {
			return ErrAlreadyTerminal
		}

		active, err := d.repository.GetActiveAssignmentByDelivery(ctx, deliveryID)
		if err != nil && !errors.Is(err, ErrAssignmentNotFound) {
			return fmt.Errorf("get active assignment: %w", err)
		}
		if active != nil {
			status := entities.DeliveryCancel
			if _, err := d.repository.UpdateAssignment(ctx, entities.AssignmentModify{
				ID:     &active.ID,
				Status: &status,
			}); err != nil {
				return fmt.Errorf("cancel assignment: %w", err)
			}
			cancelledRider = &active.RiderID
		}

		updatedDelivery, err = d.repository.UpdateDeliveryStatus(ctx, deliveryID, entities.DeliveryCancel)
		if err != nil {
			return fmt.Errorf("update delivery status: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.publisher.PublishStatusChanged(ctx, entities.DeliveryStatusChanged{
		DeliveryID: deliveryID,
		Status:     entities.DeliveryCancel,
		RiderID:    cancelledRider,
		OccurredAt: time.Now().UTC(),
	})
	return updatedDelivery, nil
}

// RiderOverview pairs the rider's stored position with the destination of
// the most recent non-terminal assignment. The assignment with the largest
// id wins: sequence ids are totally ordered, timestamps are not.
func (d *Delivery) RiderOverview(ctx context.Context, riderID int64) (*entities.RiderOverview, error) {
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	location, err := d.locationService.Get(ctx, riderID)
	if err != nil {
		return nil, ErrNoLocation
	}

	overview := &entities.RiderOverview{
		RiderID:  riderID,
		RiderLat: location.Lat,
		RiderLng: location.Lng,
	}

	active, err := d.repository.GetLatestActiveAssignmentByRider(ctx, riderID)
	if err != nil {
		if errors.Is(err, ErrAssignmentNotFound) {
			return overview, nil
		}
		return nil, fmt.Errorf("get active assignment: %w", err)
	}

	deliveryEntity, err := d.repository.GetDeliveryByID(ctx, active.DeliveryID)
	if err != nil {
		return nil, fmt.Errorf("get delivery for overview: %w", err)
	}

	destination, err := d.addressService.GetAddress(ctx, deliveryEntity.AddressIDReceiver)
	if err != nil {
		return nil, fmt.Errorf("get receiver address: %w", err)
	}

	overview.ActiveDeliveryID = &active.DeliveryID
	overview.DestinationLat = destination.Lat
	overview.DestinationLng = destination.Lng
	return overview, nil
}

func (d *Delivery) ListBySender(ctx context.Context, userID int64) ([]entities.Delivery, error) {
	if !isValidID(userID) {
		return nil, ErrInvalidUserID
	}

	deliveries, err := d.repository.ListBySender(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries by sender: %w", err)
	}
	return deliveries, nil
}

func (d *Delivery) ListByRider(ctx context.Context, riderID int64) ([]entities.Delivery, error) {
	if !isValidID(riderID) {
		return nil, ErrInvalidRiderID
	}

	deliveries, err := d.repository.ListByRider(ctx, riderID)
	if err != nil {
		return nil, fmt.Errorf("failed to list deliveries by rider: %w", err)
	}
	return deliveries, nil
}

// refError maps a missing user reference onto the operation-specific
// sentinel and wraps anything else.
func refError(err error, notFound error, op string) error {
	if errors.Is(err, user.ErrUserNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}

func addrRefError(err error, notFound error, op string) error {
	if errors.Is(err, address.ErrAddressNotFound) {
		return notFound
	}
	return fmt.Errorf("%s: %w", op, err)
}
