package riders_nearby_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/service/location"
	"github.com/yodsaphonh/api-test-delivery/pkg/logger"
)

type Handler struct {
	log     handlerLogger
	service Service
}

func New(log handlerLogger, service Service) *Handler {
	handlerLog := log.With()

	return &Handler{
		service: service,
		log:     handlerLog,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	lat, err := strconv.ParseFloat(query.Get("lat"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	lng, err := strconv.ParseFloat(query.Get("lng"), 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	// radius_km and limit are optional, the service applies defaults.
	var radiusKM float64
	if v := query.Get("radius_km"); v != "" {
		radiusKM, err = strconv.ParseFloat(v, 64)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}
	var limit int
	if v := query.Get("limit"); v != "" {
		limit, err = strconv.Atoi(v)
		if err != nil {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
	}

	riders, err := h.service.NearbyRiders(r.Context(), lat, lng, radiusKM, limit)
	if err != nil {
		switch {
		case errors.Is(err, location.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.NearbyRider, 0, len(riders))
	for _, rider := range riders {
		response = append(response, dto.NearbyRider{
			RiderID:    rider.RiderID,
			Lat:        rider.Lat,
			Lng:        rider.Lng,
			DistanceKM: rider.DistanceKM,
		})
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
