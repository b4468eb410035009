package address

import "time"

type AddressDB struct {
	ID        int64
	UserID    int64
	Address   string
	Lat       *float64
	Lng       *float64
	CreatedAt time.Time
}
