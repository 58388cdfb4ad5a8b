package deliveryorders_available_get

import (
	"encoding/json"
	"net/http"

	"fooddelivery/internal/dto"
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
	deliveryOrders, err := h.service.ListAvailableOrders(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	deliveryOrderDTOs := make([]dto.DeliveryOrderDTO, 0, len(deliveryOrders))
	for i := range deliveryOrders {
		deliveryOrderDTOs = append(deliveryOrderDTOs, dto.NewDeliveryOrderDTO(&deliveryOrders[i]))
	}

	response := dto.DeliveryOrderListResponse{
		Success: true,
		Data:    deliveryOrderDTOs,
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
