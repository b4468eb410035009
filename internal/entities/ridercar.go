package entities

import "time"

// RiderCar gets its own rider_seq id, but the rider itself is always
// addressed by the user id. The car record is a profile attachment, not a
// separate identity.
type RiderCar struct {
	ID          int64
	UserID      int64
	PlateNumber string
	CarType     string
	ImageCar    string
	CreatedAt   time.Time
}

type RiderCarModify struct {
	ID          *int64
	UserID      *int64
	PlateNumber *string
	CarType     *string
	ImageCar    *string
}
