package entities

import "time"

type Address struct {
	ID        int64
	UserID    int64
	Address   string
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
}

type AddressModify struct {
	ID      *int64
	UserID  *int64
	Address *string
	Lat     *float64
	Lng     *float64
}
