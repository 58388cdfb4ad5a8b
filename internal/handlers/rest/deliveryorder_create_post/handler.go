package deliveryorder_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/deliveryorder"
	"fooddelivery/pkg/logger"
)

// Handler serves the cross-service creation callback. Creation is
// idempotent: a repeated callback for an order with an active delivery
// answers 200 with the existing record, a fresh one answers 201.
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
	var createDTO dto.DeliveryOrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&createDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	createEntity := entities.DeliveryOrderCreate{
		OrderID:            createDTO.OrderID,
		OrderNumber:        createDTO.OrderNumber,
		RestaurantID:       createDTO.Restaurant,
		RestaurantName:     createDTO.RestaurantName,
		RestaurantLocation: createDTO.RestaurantLocation,
		CustomerID:         createDTO.Customer,
		CustomerName:       createDTO.CustomerName,
		CustomerPhone:      createDTO.CustomerPhone,
		DeliveryAddress:    createDTO.DeliveryAddress,
		OrderAmount:        createDTO.OrderAmount,
		DeliveryFee:        createDTO.DeliveryFee,
		Distance:           createDTO.Distance,
		EstimatedMinutes:   createDTO.EstimatedDeliveryTime,
		DeliveryOTP:        createDTO.DeliveryOTP,
	}

	deliveryOrder, created, err := h.service.CreateDeliveryOrder(r.Context(), createEntity)
	if err != nil {
		switch {
		case errors.Is(err, deliveryorder.ErrMissingRequiredFields),
			errors.Is(err, deliveryorder.ErrInvalidOrderID):
			w.WriteHeader(http.StatusBadRequest)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
		return
	}

	response := dto.DeliveryOrderResponse{
		Success: true,
		Data:    dto.NewDeliveryOrderDTO(deliveryOrder),
	}

	status := http.StatusOK
	if created {
		status = http.StatusCreated
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err = json.NewEncoder(w).Encode(response)
	if err != nil {
		h.log.With(
			logger.NewField("error", err),
		).Error("encode JSON response")
	}
}
