package location

import "time"

type RiderLocationDB struct {
	RiderID   int64
	Lat       float64
	Lng       float64
	UpdatedAt time.Time
}
