package address_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/address"
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
	var addressCreateDTO dto.AddressCreate
	err := json.NewDecoder(r.Body).Decode(&addressCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	addressModifyEntity := entities.AddressModify{
		UserID:  &addressCreateDTO.UserID,
		Address: &addressCreateDTO.Address,
		Lat:     addressCreateDTO.Lat,
		Lng:     addressCreateDTO.Lng,
	}

	addressEntity, err := h.service.CreateAddress(r.Context(), addressModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, address.ErrMissingRequiredFields),
			errors.Is(err, address.ErrInvalidUserID),
			errors.Is(err, address.ErrInvalidCoordinates):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, address.ErrOwnerNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromAddress(addressEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
