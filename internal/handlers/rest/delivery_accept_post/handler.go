package delivery_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"

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
		log:     handlerLog,
		service: service,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	var acceptDTO dto.DeliveryAccept
	err := json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, deliveryEntity, err := h.service.AcceptDelivery(
		r.Context(),
		acceptDTO.DeliveryID,
		acceptDTO.RiderID,
		acceptDTO.Lat,
		acceptDTO.Lng,
	)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID),
			errors.Is(err, delivery.ErrInvalidRiderID),
			errors.Is(err, delivery.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound),
			errors.Is(err, delivery.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrNotARider):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrNotWaiting):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryTransition{
		Delivery:   dto.FromDelivery(deliveryEntity),
		Assignment: dto.FromAssignment(assignmentEntity),
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
