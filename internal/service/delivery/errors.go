package delivery

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidDeliveryID     = errors.New("invalid delivery id")
	ErrInvalidRiderID        = errors.New("invalid rider id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidAmount         = errors.New("invalid amount")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrDeliveryNotFound        = errors.New("delivery not found")
	ErrAssignmentNotFound      = errors.New("assignment not found")
	ErrSenderNotFound          = errors.New("sender not found")
	ErrReceiverNotFound        = errors.New("receiver not found")
	ErrSenderAddressNotFound   = errors.New("sender address not found")
	ErrReceiverAddressNotFound = errors.New("receiver address not found")
	ErrRiderNotFound           = errors.New("rider not found")
	ErrNotARider               = errors.New("user is not a rider")

	// State-machine precondition failures. Accept on a non-waiting delivery
	// is the lost-race case: exactly one concurrent accept ever succeeds.
	ErrNotWaiting      = errors.New("delivery is not waiting")
	ErrNotAccepted     = errors.New("assignment is not in accept state")
	ErrNotTransporting = errors.New("assignment is not transporting")
	ErrAlreadyTerminal = errors.New("delivery already finished or cancelled")

	ErrWrongRider = errors.New("assignment belongs to another rider")

	ErrNoLocation = errors.New("rider has no location on record")
)
