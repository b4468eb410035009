package rider_car_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/ridercar"
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
	var riderCarCreateDTO dto.RiderCarCreate
	err := json.NewDecoder(r.Body).Decode(&riderCarCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	riderCarModifyEntity := entities.RiderCarModify{
		UserID:      &riderCarCreateDTO.UserID,
		PlateNumber: &riderCarCreateDTO.PlateNumber,
		CarType:     &riderCarCreateDTO.CarType,
		ImageCar:    &riderCarCreateDTO.ImageCar,
	}

	riderCarEntity, err := h.service.CreateCar(r.Context(), riderCarModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, ridercar.ErrMissingRequiredFields),
			errors.Is(err, ridercar.ErrInvalidUserID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, ridercar.ErrRiderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, ridercar.ErrNotARider):
			w.WriteHeader(http.StatusForbidden)
		case errors.Is(err, ridercar.ErrCarAlreadyExists):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromRiderCar(riderCarEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
