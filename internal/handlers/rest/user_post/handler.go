package user_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/yodsaphonh/api-test-delivery/internal/dto"
	"github.com/yodsaphonh/api-test-delivery/internal/entities"
	"github.com/yodsaphonh/api-test-delivery/internal/service/user"
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
	var userCreateDTO dto.UserCreate
	err := json.NewDecoder(r.Body).Decode(&userCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	role := entities.UserRole(userCreateDTO.Role)
	userModifyEntity := entities.UserModify{
		Name:     &userCreateDTO.Name,
		Password: &userCreateDTO.Password,
		Phone:    &userCreateDTO.Phone,
		Picture:  &userCreateDTO.Picture,
		Role:     &role,
	}

	userEntity, err := h.service.Register(r.Context(), userModifyEntity)
	if err != nil {
		switch {
		case errors.Is(err, user.ErrMissingRequiredFields),
			errors.Is(err, user.ErrInvalidName),
			errors.Is(err, user.ErrInvalidPhone),
			errors.Is(err, user.ErrInvalidRole):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, user.ErrPhoneTaken):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.FromUser(userEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
