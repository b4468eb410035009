package entities

import "time"

// RiderStats is a denormalized projection over finished and cancelled
// assignments, maintained by the status-changed worker.
type RiderStats struct {
	RiderID   int64
	Finished  int64
	Cancelled int64
	UpdatedAt time.Time
}

// DeliveryStatusChanged is the lifecycle event published after a transition
// commits.
type DeliveryStatusChanged struct {
	DeliveryID int64              `json:"delivery_id"`
	Status     DeliveryStatusType `json:"status"`
	RiderID    *int64             `json:"rider_id,omitempty"`
	OccurredAt time.Time          `json:"occurred_at"`
}
