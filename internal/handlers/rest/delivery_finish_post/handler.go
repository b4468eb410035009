package delivery_finish_post

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
	var finishDTO dto.DeliveryFinish
	err := json.NewDecoder(r.Body).Decode(&finishDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	assignmentEntity, deliveryEntity, err := h.service.FinishDelivery(
		r.Context(),
		finishDTO.DeliveryID,
		finishDTO.PictureStatus3,
		finishDTO.RiderID,
	)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrInvalidDeliveryID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrDeliveryNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, delivery.ErrWrongRider):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, delivery.ErrNotTransporting):
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
