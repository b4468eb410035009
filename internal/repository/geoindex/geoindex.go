// Package geoindex maintains a Redis GEO set of rider positions. Postgres
// owns the data; the index only answers proximity queries.
package geoindex

import (
	"context"
	"fmt"
	"strconv"

	"github.com/redis/go-redis/v9"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
)

const ridersKey = "riders:locations"

type Index struct {
	client *redis.Client
}

func New(client *redis.Client) *Index {
	return &Index{
		client: client,
	}
}

func (i *Index) Add(ctx context.Context, riderID int64, lat, lng float64) error {
	err := i.client.GeoAdd(ctx, ridersKey, &redis.GeoLocation{
		Name:      strconv.FormatInt(riderID, 10),
		Longitude: lng,
		Latitude:  lat,
	}).Err()
	if err != nil {
		return fmt.Errorf("geo index add: %w", err)
	}
	return nil
}

func (i *Index) Search(ctx context.Context, lat, lng, radiusKM float64, limit int) ([]entities.NearbyRider, error) {
	results, err := i.client.GeoRadius(ctx, ridersKey, lng, lat, &redis.GeoRadiusQuery{
		Radius:    radiusKM,
		Unit:      "km",
		WithCoord: true,
		WithDist:  true,
		Count:     limit,
		Sort:      "ASC",
	}).Result()
	if err != nil {
		return nil, fmt.Errorf("geo index search: %w", err)
	}

	riders := make([]entities.NearbyRider, 0, len(results))
	for _, result := range results {
		riderID, err := strconv.ParseInt(result.Name, 10, 64)
		if err != nil {
			// Foreign members in the set are skipped, not fatal.
			continue
		}
		riders = append(riders, entities.NearbyRider{
			RiderID:    riderID,
			Lat:        result.Latitude,
			Lng:        result.Longitude,
			DistanceKM: result.Dist,
		})
	}

	return riders, nil
}

func (i *Index) Remove(ctx context.Context, riderIDs ...int64) error {
	if len(riderIDs) == 0 {
		return nil
	}

	members := make([]interface{}, 0, len(riderIDs))
	for _, riderID := range riderIDs {
		members = append(members, strconv.FormatInt(riderID, 10))
	}

	if err := i.client.ZRem(ctx, ridersKey, members...).Err(); err != nil {
		return fmt.Errorf("geo index remove: %w", err)
	}
	return nil
}
