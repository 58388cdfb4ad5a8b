package couriers_get

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
	courierEntities, err := h.service.GetCouriers(r.Context())
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	courierDTOs := make([]dto.CourierDTO, len(courierEntities))
	for i, courierEntity := range courierEntities {
		courierDTOs[i] = dto.CourierDTO{
			ID:              courierEntity.ID,
			Name:            courierEntity.Name,
			Phone:           courierEntity.Phone,
			Status:          courierEntity.Status.String(),
			TransportType:   courierEntity.TransportType.String(),
			CurrentOrderID:  courierEntity.CurrentOrderID,
			CompletedOrders: courierEntity.CompletedOrders,
			TotalEarnings:   courierEntity.TotalEarnings,
			CreatedAt:       courierEntity.CreatedAt,
			UpdatedAt:       courierEntity.UpdatedAt,
		}
	}

	response := dto.CourierListResponse{
		Couriers: courierDTOs,
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
