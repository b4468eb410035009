package delivery_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
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
	var deliveryCreateDTO dto.DeliveryCreate
	err := json.NewDecoder(r.Body).Decode(&deliveryCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	deliveryModifyEntity := entities.DeliveryModify{
		UserIDSender:      &deliveryCreateDTO.UserIDSender,
		UserIDReceiver:    &deliveryCreateDTO.UserIDReceiver,
		AddressIDSender:   &deliveryCreateDTO.AddressIDSender,
		AddressIDReceiver: &deliveryCreateDTO.AddressIDReceiver,
		PhoneReceiver:     &deliveryCreateDTO.PhoneReceiver,
		NameProduct:       &deliveryCreateDTO.NameProduct,
		DetailProduct:     &deliveryCreateDTO.DetailProduct,
		PictureProduct:    &deliveryCreateDTO.PictureProduct,
		Amount:            deliveryCreateDTO.Amount,
		PictureStatus1:    &deliveryCreateDTO.PictureStatus1,
	}

	deliveryEntity, err := h.service.CreateDelivery(r.Context(), deliveryModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, delivery.ErrMissingRequiredFields),
			errors.Is(err, delivery.ErrInvalidAmount):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, delivery.ErrSenderNotFound),
			errors.Is(err, delivery.ErrReceiverNotFound),
			errors.Is(err, delivery.ErrSenderAddressNotFound),
			errors.Is(err, delivery.ErrReceiverAddressNotFound):
			w.WriteHeader(http.StatusNotFound)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromDelivery(deliveryEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
