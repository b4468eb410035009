package address

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidAddressID      = errors.New("invalid address id")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrInvalidCoordinates    = errors.New("invalid coordinates")

	ErrAddressNotFound = errors.New("address not found")
	ErrOwnerNotFound   = errors.New("owner not found")
	ErrNotOwner        = errors.New("address belongs to another user")
)
