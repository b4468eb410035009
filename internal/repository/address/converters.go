package address

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(a *AddressDB) *entities.Address {
	if a == nil {
		return nil
	}
	return &entities.Address{
		ID:        a.ID,
		UserID:    a.UserID,
		Address:   a.Address,
		Lat:       a.Lat,
		Lng:       a.Lng,
		CreatedAt: a.CreatedAt,
	}
}
