package delivery

import "time"

type DeliveryDB struct {
	ID                int64
	UserIDSender      int64
	UserIDReceiver    int64
	AddressIDSender   int64
	AddressIDReceiver int64
	PhoneReceiver     string
	NameProduct       string
	DetailProduct     string
	PictureProduct    string
	Amount            int
	PictureStatus1    string
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type AssignmentDB struct {
	ID             int64
	DeliveryID     int64
	RiderID        int64
	Status         string
	PictureStatus2 string
	PictureStatus3 string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}
