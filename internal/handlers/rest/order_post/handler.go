package order_post

import (
	"encoding/json"
	"errors"
	"net/http"

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

	var createDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "invalid request body")
		return
	}

	items := make([]entities.OrderDraftItem, 0, len(createDTO.Items))
	for _, item := range createDTO.Items {
		items = append(items, entities.OrderDraftItem{
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		})
	}

	draft := entities.OrderDraft{
		AddressID:     createDTO.AddressID,
		PaymentMethod: entities.PaymentMethodType(createDTO.PaymentMethod),
		Items:         items,
	}

	orderEntity, err := h.service.CreateOrder(r.Context(), ident.UserID, draft)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrEmptyItems),
			errors.Is(err, order.ErrInvalidQuantity),
			errors.Is(err, order.ErrInvalidPaymentMethod):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, order.ErrAddressNotFound),
			errors.Is(err, order.ErrProductNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, err.Error())
		case errors.Is(err, order.ErrNotAddressOwner):
			httperr.Write(w, http.StatusForbidden, httperr.KindForbidden, err.Error())
		default:
			httperr.Write(w, http.StatusInternalServerError, httperr.KindInternal, "internal error")
		}
		return
	}

	response := dto.FromOrder(orderEntity)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
