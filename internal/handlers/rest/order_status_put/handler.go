package order_status_put

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/order"
	"fooddelivery/pkg/logger"
)

// Handler serves the status callback shared by the restaurant and delivery
// backends. Unknown statuses and disallowed transitions are rejected instead
// of being persisted blindly.
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
	orderID := mux.Vars(r)["orderId"]

	var statusUpdateDTO dto.OrderStatusUpdateRequest
	err := json.NewDecoder(r.Body).Decode(&statusUpdateDTO)
	if err != nil {
		writeError(w, h.log, http.StatusBadRequest, "invalid request body")
		return
	}

	status, ok := entities.ParseOrderStatus(statusUpdateDTO.Status)
	if !ok {
		writeError(w, h.log, http.StatusBadRequest, order.ErrUnknownStatus.Error()+": "+statusUpdateDTO.Status)
		return
	}

	orderModify := entities.OrderModify{
		ID:         &orderID,
		Status:     &status,
		AcceptedAt: statusUpdateDTO.AcceptedAt,
		RejectedAt: statusUpdateDTO.RejectedAt,
	}
	if statusUpdateDTO.RejectionReason != "" {
		orderModify.RejectionReason = &statusUpdateDTO.RejectionReason
	}

	updated, err := h.service.UpdateOrderStatus(r.Context(), orderModify)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrInvalidOrderID),
			errors.Is(err, order.ErrMissingRequiredFields):
			writeError(w, h.log, http.StatusBadRequest, err.Error())
		case errors.Is(err, order.ErrOrderNotFound):
			writeError(w, h.log, http.StatusNotFound, err.Error())
		case errors.Is(err, order.ErrInvalidTransition):
			writeError(w, h.log, http.StatusConflict, err.Error())
		default:
			writeError(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response := dto.OrderResponse{
		Success: true,
		Data:    dto.NewOrderDTO(updated),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}

func writeError(w http.ResponseWriter, log handlerLogger, code int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	err := json.NewEncoder(w).Encode(dto.ErrorResponse{Success: false, Message: message})
	if err != nil {
		log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
