package orders_ready_get

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/dto"
	"fooddelivery/pkg/logger"
)

// Handler serves the internal reconciliation endpoint. The delivery service
// polls it to pick up ready orders whose creation callback never arrived.
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
	orders, err := h.service.ListReadyOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	orderDTOs := make([]dto.OrderDTO, 0, len(orders))
	for i := range orders {
		orderDTOs = append(orderDTOs, dto.NewOrderDTO(&orders[i]))
	}

	response := dto.OrderListResponse{
		Success: true,
		Data:    orderDTOs,
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
