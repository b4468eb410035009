package entities

import "time"

type Delivery struct {
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
	Status            DeliveryStatusType
	CreatedAt         time.Time
	UpdatedAt         time.Time
}

type DeliveryStatusType string

const (
	DeliveryWaiting      DeliveryStatusType = "waiting"
	DeliveryAccept       DeliveryStatusType = "accept"
	DeliveryTransporting DeliveryStatusType = "transporting"
	DeliveryFinish       DeliveryStatusType = "finish"
	DeliveryCancel       DeliveryStatusType = "cancel"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

// Terminal reports whether no further transition is allowed from s.
func (s DeliveryStatusType) Terminal() bool {
	return s == DeliveryFinish || s == DeliveryCancel
}

type DeliveryModify struct {
	ID                *int64
	UserIDSender      *int64
	UserIDReceiver    *int64
	AddressIDSender   *int64
	AddressIDReceiver *int64
	PhoneReceiver     *string
	NameProduct       *string
	DetailProduct     *string
	PictureProduct    *string
	Amount            *int
	PictureStatus1    *string
	Status            *DeliveryStatusType
}

// Assignment binds one rider to one delivery attempt. Rows are never
// deleted; they form the audit trail of who handled the job.
type Assignment struct {
	ID             int64
	DeliveryID     int64
	RiderID        int64
	Status         DeliveryStatusType
	PictureStatus2 string
	PictureStatus3 string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

type AssignmentModify struct {
	ID             *int64
	DeliveryID     *int64
	RiderID        *int64
	Status         *DeliveryStatusType
	PictureStatus2 *string
	PictureStatus3 *string
}
