package deliveries_get

import (
	"encoding/json"
	"net/http"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/httperr"
	"marketplace/internal/pkg/middlewares/auth"
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
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	listType := entities.OrderListType(r.URL.Query().Get("type"))
	switch listType {
	case entities.OrderListAll, entities.OrderListActive, entities.OrderListHistory:
	default:
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "unknown list type")
		return
	}

	orders, err := h.service.ListCourierAssignments(r.Context(), ident.UserID, listType)
	if err != nil {
		httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		return
	}

	response := dto.OrderListResponse{Data: dto.FromOrderList(orders)}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
