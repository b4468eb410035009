package stats

import "github.com/yodsaphonh/api-test-delivery/internal/entities"

func ToDomain(s *RiderStatsDB) *entities.RiderStats {
	if s == nil {
		return nil
	}
	return &entities.RiderStats{
		RiderID:   s.RiderID,
		Finished:  s.Finished,
		Cancelled: s.Cancelled,
		UpdatedAt: s.UpdatedAt,
	}
}
