package couriers_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/httperr"
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
	var statusFilter *entities.CourierStatusType

	if rawStatus := r.URL.Query().Get("status"); rawStatus != "" {
		status := entities.CourierStatusType(rawStatus)
		switch status {
		case entities.CourierAvailable, entities.CourierBusy:
			statusFilter = &status
		default:
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "unknown courier status")
			return
		}
	}

	courierEntities, err := h.service.ListCouriers(r.Context(), statusFilter)
	if err != nil {
		httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		return
	}

	response := dto.CourierListResponse{Data: dto.FromCourierList(courierEntities)}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
