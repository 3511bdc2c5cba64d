package order_payment_proof_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"marketplace/internal/dto"
	"marketplace/internal/handlers/rest/httperr"
	"marketplace/internal/pkg/middlewares/auth"
	"marketplace/internal/service/order"
	"marketplace/pkg/logger"
)

// maxProofSize caps the multipart body at 5 MiB.
const maxProofSize = 5 << 20

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

	r.Body = http.MaxBytesReader(w, r.Body, maxProofSize)
	err = r.ParseMultipartForm(maxProofSize)
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "invalid multipart body")
		return
	}

	file, header, err := r.FormFile("payment_proof")
	if err != nil {
		httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, "payment_proof file is required")
		return
	}
	defer file.Close()

	orderEntity, err := h.service.UploadPaymentProof(r.Context(), orderID, ident.UserID, header.Filename, file)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingProof):
			httperr.Write(w, http.StatusBadRequest, httperr.KindValidation, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			httperr.Write(w, http.StatusNotFound, httperr.KindNotFound, err.Error())
		case errors.Is(err, order.ErrNotOrderOwner):
			httperr.Write(w, http.StatusForbidden, httperr.KindForbidden, err.Error())
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
