package deliveryorder_accept_post

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/service/deliveryorder"
	"fooddelivery/pkg/logger"
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
	id, err := strconv.ParseInt(idStr, 10, 64)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	var acceptDTO dto.DeliveryAcceptRequest
	err = json.NewDecoder(r.Body).Decode(&acceptDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	accepted, err := h.service.AcceptDelivery(r.Context(), id, acceptDTO.CourierID)
	if err != nil {
		switch {
		case errors.Is(err, deliveryorder.ErrInvalidCourierID):
			w.WriteHeader(http.StatusBadRequest)
		case errors.Is(err, deliveryorder.ErrDeliveryOrderNotFound):
			w.WriteHeader(http.StatusNotFound)
		case errors.Is(err, deliveryorder.ErrOrderNotAvailable),
			errors.Is(err, deliveryorder.ErrCourierNotAvailable),
			errors.Is(err, deliveryorder.ErrCourierBusy):
			w.WriteHeader(http.StatusConflict)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryOrderResponse{
		Success: true,
		Data:    dto.NewDeliveryOrderDTO(accepted),
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
