package ridercar

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(c *RiderCarDB) *entities.RiderCar {
	if c == nil {
		return nil
	}
	return &entities.RiderCar{
		ID:          c.ID,
		UserID:      c.UserID,
		PlateNumber: c.PlateNumber,
		CarType:     c.CarType,
		ImageCar:    c.ImageCar,
		CreatedAt:   c.CreatedAt,
	}
}
