package deliveries_rider_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"
	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/service/delivery"
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
	riderIDStr := mux.Vars(r)["riderID"]
	riderID, err := strconv.ParseInt(riderIDStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryEntities, err := h.service.ListByRider(r.Context(), riderID)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidRiderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := make([]dto.Delivery, 0, len(deliveryEntities))
	for i := range deliveryEntities {
		response = append(response, dto.FromDelivery(&deliveryEntities[i]))
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
