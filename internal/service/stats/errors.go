package stats

import "errors"

var (
	ErrInvalidRiderID = errors.New("invalid rider id")
	ErrStatsNotFound  = errors.New("rider stats not found")
)
