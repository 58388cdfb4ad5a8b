package order

import (
	"strings"

	"fooddelivery/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidCreate(order entities.Order) bool {
	if strings.TrimSpace(order.CustomerID) == "" ||
		strings.TrimSpace(order.RestaurantID) == "" ||
		strings.TrimSpace(order.DeliveryAddress) == "" {
		return false
	}
	if len(order.Items) == 0 {
		return false
	}
	for _, item := range order.Items {
		if strings.TrimSpace(item.Name) == "" || item.Quantity <= 0 {
			return false
		}
	}
	return order.Total >= 0
}
