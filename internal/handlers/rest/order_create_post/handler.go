package order_create_post

import (
	"encoding/json"
	"errors"
	"net/http"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/order"
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
	var orderCreateDTO dto.OrderCreateRequest
	err := json.NewDecoder(r.Body).Decode(&orderCreateDTO)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	items := make([]entities.OrderItem, 0, len(orderCreateDTO.Items))
	for _, item := range orderCreateDTO.Items {
		items = append(items, entities.OrderItem{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Image:         item.Image,
		})
	}

	orderEntity := entities.Order{
		CustomerID:         orderCreateDTO.Customer,
		CustomerName:       orderCreateDTO.CustomerName,
		CustomerPhone:      orderCreateDTO.CustomerPhone,
		RestaurantID:       orderCreateDTO.Restaurant,
		RestaurantName:     orderCreateDTO.RestaurantName,
		RestaurantLocation: orderCreateDTO.RestaurantLocation,
		Items:              items,
		Subtotal:           orderCreateDTO.Subtotal,
		DeliveryFee:        orderCreateDTO.DeliveryFee,
		Taxes:              orderCreateDTO.Taxes,
		Discount:           orderCreateDTO.Discount,
		Total:              orderCreateDTO.Total,
		DeliveryAddress:    orderCreateDTO.DeliveryAddress,
		Distance:           orderCreateDTO.Distance,
		EstimatedMinutes:   orderCreateDTO.EstimatedDeliveryTime,
	}

	created, err := h.service.CreateOrder(r.Context(), orderEntity)
	if err != nil {
		switch {
		case errors.Is(err, order.ErrMissingRequiredFields):
			writeError(w, h.log, http.StatusBadRequest, err.Error())
		default:
			writeError(w, h.log, http.StatusInternalServerError, "internal error")
		}
		return
	}

	response := dto.OrderResponse{
		Success: true,
		Data:    dto.NewOrderDTO(created),
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
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
