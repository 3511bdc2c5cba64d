package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/httperr"
	"marketplace/internal/service/courier"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
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
	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "invalid order id")
		return
	}

	var updateDTO dto.OrderStatusUpdateRequest
	err = json.NewDecoder(r.Body).Decode(&updateDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "invalid request body")
		return
	}

	target := entities.OrderStatusType(updateDTO.Status)

	orderEntity, err := h.service.TransitionOrder(r.Context(), orderID, target, updateDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidStatus):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, order.ErrOrderNotFound),
			errors.Is(err, courier.ErrCourierNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, err.Error())
		case errors.Is(err, order.ErrCourierRequired),
			errors.Is(err, order.ErrCourierBusy),
			errors.Is(err, order.ErrOrderFinalized),
			errors.Is(err, order.ErrInvalidTransition):
			httperr.Write(w, http.StatusConflict, httperr.KindConflict, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
