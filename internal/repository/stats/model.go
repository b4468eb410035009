package stats

import "time"

type RiderStatsDB struct {
	RiderID   int64
	Finished  int64
	Cancelled int64
	UpdatedAt time.Time
}
