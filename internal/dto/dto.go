// Package dto holds the request and response shapes of the REST surface.
// Field names follow the wire contract, not the domain entities.
package dto

import "time"

type UserCreate struct {
	Name     string `json:"name"`
	Password string `json:"password"`
	Phone    string `json:"phone"`
	Picture  string `json:"picture,omitempty"`
	Role     int    `json:"role"`
}

type UserUpdate struct {
	ID       int64   `json:"id"`
	Name     *string `json:"name,omitempty"`
	Password *string `json:"password,omitempty"`
	Picture  *string `json:"picture,omitempty"`
}

type UserLogin struct {
	Phone    string `json:"phone"`
	Password string `json:"password"`
}

// User never carries the password back out.
type User struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Phone     string    `json:"phone"`
	Picture   string    `json:"picture,omitempty"`
	Role      int       `json:"role"`
	RoleName  string    `json:"role_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddressCreate struct {
	UserID  int64    `json:"user_id"`
	Address string   `json:"address"`
	Lat     *float64 `json:"lat,omitempty"`
	Lng     *float64 `json:"lng,omitempty"`
}

type Address struct {
	ID        int64     `json:"id"`
	UserID    int64     `json:"user_id"`
	Address   string    `json:"address"`
	Lat       *float64  `json:"lat,omitempty"`
	Lng       *float64  `json:"lng,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

type RiderCarCreate struct {
	UserID      int64  `json:"user_id"`
	PlateNumber string `json:"plate_number"`
	CarType     string `json:"car_type,omitempty"`
	ImageCar    string `json:"image_car,omitempty"`
}

type RiderCar struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	PlateNumber string    `json:"plate_number"`
	CarType     string    `json:"car_type,omitempty"`
	ImageCar    string    `json:"image_car,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

type DeliveryCreate struct {
	UserIDSender      int64  `json:"user_id_sender"`
	UserIDReceiver    int64  `json:"user_id_receiver"`
	AddressIDSender   int64  `json:"address_id_sender"`
	AddressIDReceiver int64  `json:"address_id_receiver"`
	PhoneReceiver     string `json:"phone_receiver,omitempty"`
	NameProduct       string `json:"name_product"`
	DetailProduct     string `json:"detail_product,omitempty"`
	PictureProduct    string `json:"picture_product,omitempty"`
	Amount            *int   `json:"amount,omitempty"`
	PictureStatus1    string `json:"picture_status1,omitempty"`
}

type Delivery struct {
	ID                int64     `json:"id"`
	UserIDSender      int64     `json:"user_id_sender"`
	UserIDReceiver    int64     `json:"user_id_receiver"`
	AddressIDSender   int64     `json:"address_id_sender"`
	AddressIDReceiver int64     `json:"address_id_receiver"`
	PhoneReceiver     string    `json:"phone_receiver,omitempty"`
	NameProduct       string    `json:"name_product"`
	DetailProduct     string    `json:"detail_product,omitempty"`
	PictureProduct    string    `json:"picture_product,omitempty"`
	Amount            int       `json:"amount"`
	PictureStatus1    string    `json:"picture_status1,omitempty"`
	Status            string    `json:"status"`
	CreatedAt         time.Time `json:"created_at"`
	UpdatedAt         time.Time `json:"updated_at"`
}

type DeliveryAccept struct {
	DeliveryID int64   `json:"delivery_id"`
	RiderID    int64   `json:"rider_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
}

type DeliveryTransport struct {
	DeliveryID     int64   `json:"delivery_id"`
	RiderID        int64   `json:"rider_id"`
	PictureStatus2 string  `json:"picture_status2"`
	Lat            float64 `json:"lat"`
	Lng            float64 `json:"lng"`
}

type DeliveryFinish struct {
	DeliveryID     int64  `json:"delivery_id"`
	RiderID        int64  `json:"rider_id,omitempty"`
	PictureStatus3 string `json:"picture_status3,omitempty"`
}

type DeliveryCancel struct {
	DeliveryID int64 `json:"delivery_id"`
}

type Assignment struct {
	ID             int64     `json:"id"`
	DeliveryID     int64     `json:"delivery_id"`
	RiderID        int64     `json:"rider_id"`
	Status         string    `json:"status"`
	PictureStatus2 string    `json:"picture_status2,omitempty"`
	PictureStatus3 string    `json:"picture_status3,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type DeliveryTransition struct {
	Delivery   Delivery   `json:"delivery"`
	Assignment Assignment `json:"assignment"`
}

type RiderLocationUpdate struct {
	RiderID int64   `json:"rider_id"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
}

type RiderLocationUpdated struct {
	RiderID int64 `json:"rider_id"`
	Updated bool  `json:"updated"`
	Skipped bool  `json:"skipped"`
}

type NearbyRider struct {
	RiderID    int64   `json:"rider_id"`
	Lat        float64 `json:"lat"`
	Lng        float64 `json:"lng"`
	DistanceKM float64 `json:"distance_km"`
}

type RiderOverview struct {
	RiderID          int64    `json:"rider_id"`
	Lat              float64  `json:"lat"`
	Lng              float64  `json:"lng"`
	ActiveDeliveryID *int64   `json:"active_delivery_id,omitempty"`
	DestinationLat   *float64 `json:"destination_lat,omitempty"`
	DestinationLng   *float64 `json:"destination_lng,omitempty"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}
