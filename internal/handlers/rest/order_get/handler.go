package order_get

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"marketplace/internal/dto"
	"marketplace/internal/entities"
	"marketplace/internal/handlers/rest/httperr"
	"marketplace/internal/pkg/middlewares/auth"
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
	ident, ok := auth.FromContext(r.Context())
	if !ok {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	idStr := mux.Vars(r)["id"]
	orderID, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "invalid order id")
		return
	}

	orderEntity, err := h.service.GetOrder(r.Context(), orderID)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrOrderNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	if !canView(ident, orderEntity) {
		httperr.Write(w, http.StatusForbidden, httperr.KindForbidden, "order belongs to another user")
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

func canView(ident entities.Identity, o *entities.Order) bool {
	switch ident.Role {
	case entities.RoleAdmin:
		return true
	case entities.RoleCourier:
		return o.CourierID != nil && *o.CourierID == ident.UserID
	default:
		return o.CustomerID == ident.UserID
	}
}
