package ridercar

import "time"

type RiderCarDB struct {
	ID          int64
	UserID      int64
	PlateNumber string
	CarType     string
	ImageCar    string
	CreatedAt   time.Time
}
