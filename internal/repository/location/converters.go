package location

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(l *RiderLocationDB) *entities.RiderLocation {
	if l == nil {
		return nil
	}
	return &entities.RiderLocation{
		RiderID:   l.RiderID,
		Lat:       l.Lat,
		Lng:       l.Lng,
		UpdatedAt: l.UpdatedAt,
	}
}
