package location

import "errors"

var (
	ErrInvalidRiderID     = errors.New("invalid rider id")
	ErrInvalidCoordinates = errors.New("invalid coordinates")
	ErrLocationNotFound   = errors.New("rider location not found")
	ErrRiderNotFound      = errors.New("rider not found")
)
