package dto

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func FromUser(u *entities.User) User {
	return User{
		ID:        u.ID,
		Name:      u.Name,
		Phone:     u.Phone,
		Picture:   u.Picture,
		Role:      int(u.Role),
		RoleName:  u.Role.String(),
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
	}
}

func FromAddress(a *entities.Address) Address {
	return Address{
		ID:        a.ID,
		UserID:    a.UserID,
		Address:   a.Address,
		Lat:       a.Lat,
		Lng:       a.Lng,
		CreatedAt: a.CreatedAt,
	}
}

func FromRiderCar(c *entities.RiderCar) RiderCar {
	return RiderCar{
		ID:          c.ID,
		UserID:      c.UserID,
		PlateNumber: c.PlateNumber,
		CarType:     c.CarType,
		ImageCar:    c.ImageCar,
		CreatedAt:   c.CreatedAt,
	}
}

func FromDelivery(d *entities.Delivery) Delivery {
	return Delivery{
		ID:                d.ID,
		UserIDSender:      d.UserIDSender,
		UserIDReceiver:    d.UserIDReceiver,
		AddressIDSender:   d.AddressIDSender,
		AddressIDReceiver: d.AddressIDReceiver,
		PhoneReceiver:     d.PhoneReceiver,
		NameProduct:       d.NameProduct,
		DetailProduct:     d.DetailProduct,
		PictureProduct:    d.PictureProduct,
		Amount:            d.Amount,
		PictureStatus1:    d.PictureStatus1,
		Status:            d.Status.String(),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func FromAssignment(a *entities.Assignment) Assignment {
	return Assignment{
		ID:             a.ID,
		DeliveryID:     a.DeliveryID,
		RiderID:        a.RiderID,
		Status:         a.Status.String(),
		PictureStatus2: a.PictureStatus2,
		PictureStatus3: a.PictureStatus3,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
