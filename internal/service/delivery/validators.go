package delivery

import (
	"strings"

	"github.com/yodsaphonh/api-test-delivery/pkg/geo"
)

func isValidID(id int64) bool {
	return id > 0
}

func isValidProductName(name string) bool {
	return strings.TrimSpace(name) != ""
}

func isValidPoint(lat, lng float64) bool {
	return geo.Point{Lat: lat, Lng: lng}.Valid()
}
