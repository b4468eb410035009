package delivery

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(d *DeliveryDB) *entities.Delivery {
	if d == nil {
		return nil
	}
	return &entities.Delivery{
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
		Status:            entities.DeliveryStatusType(d.Status),
		CreatedAt:         d.CreatedAt,
		UpdatedAt:         d.UpdatedAt,
	}
}

func ToAssignmentDomain(a *AssignmentDB) *entities.Assignment {
	if a == nil {
		return nil
	}
	return &entities.Assignment{
		ID:             a.ID,
		DeliveryID:     a.DeliveryID,
		RiderID:        a.RiderID,
		Status:         entities.DeliveryStatusType(a.Status),
		PictureStatus2: a.PictureStatus2,
		PictureStatus3: a.PictureStatus3,
		CreatedAt:      a.CreatedAt,
		UpdatedAt:      a.UpdatedAt,
	}
}
