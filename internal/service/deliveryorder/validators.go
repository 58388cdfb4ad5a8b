package deliveryorder

import (
	"strings"

	"fooddelivery/internal/entities"
)

func isValidOrderID(orderID string) bool {
	return strings.TrimSpace(orderID) != ""
}

func isValidCreate(create entities.DeliveryOrderCreate) bool {
	return strings.TrimSpace(create.OrderID) != "" &&
		strings.TrimSpace(create.RestaurantID) != "" &&
		strings.TrimSpace(create.CustomerID) != ""
}
