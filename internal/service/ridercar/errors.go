package ridercar

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidUserID         = errors.New("invalid user id")
	ErrNotARider             = errors.New("user is not a rider")

	ErrRiderCarNotFound = errors.New("rider car not found")
	ErrCarAlreadyExists = errors.New("rider already has a car")
	ErrRiderNotFound    = errors.New("rider not found")
)
