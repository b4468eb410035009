package entities

import "time"

// RiderLocation is the rider's last known position. No history is kept:
// every accepted upsert overwrites the previous row.
type RiderLocation struct {
	RiderID   int64
	Lat       float64
	Lng       float64
	UpdatedAt time.Time
}

// RiderOverview pairs the rider's position with the destination of the
// active job, if any.
type RiderOverview struct {
	RiderID          int64
	RiderLat         float64
	RiderLng         float64
	ActiveDeliveryID *int64
	DestinationLat   *float64
	DestinationLng   *float64
}

// NearbyRider is one hit from the geo index search.
type NearbyRider struct {
	RiderID    int64
	Lat        float64
	Lng        float64
	DistanceKM float64
}
