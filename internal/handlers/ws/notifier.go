package ws

import (
	"fmt"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
)

const (
	eventOrderStatusUpdated = "orderStatusUpdated"
	eventNewOrder           = "new:order"
)

func orderRoom(orderID string) string {
	return "order_" + orderID
}

func courierRoom(courierID int64) string {
	return fmt.Sprintf("courier_%d", courierID)
}

// PublishOrderStatus emits orderStatusUpdated into the order's room.
func (h *Hub) PublishOrderStatus(orderID string, status entities.OrderStatusType, order *entities.Order) {
	event := dto.OrderStatusEvent{
		Event:   eventOrderStatusUpdated,
		OrderID: orderID,
		Status:  status.String(),
	}
	if order != nil {
		orderDTO := dto.NewOrderDTO(order)
		event.UpdatedOrder = &orderDTO
	}
	h.Publish(orderRoom(orderID), event)
}

// AnnounceNewOrder broadcasts the redacted delivery summary to every
// connected courier. It always reports true: the hub is the courier feed,
// even when no courier happens to be connected right now.
func (h *Hub) AnnounceNewOrder(announcement entities.DeliveryAnnouncement) bool {
	h.Publish(broadcastRoom, dto.NewOrderEvent{
		Event:                 eventNewOrder,
		DeliveryOrderID:       announcement.DeliveryOrderID,
		OrderID:               announcement.OrderID,
		OrderNumber:           announcement.OrderNumber,
		RestaurantName:        announcement.RestaurantName,
		DeliveryAddress:       announcement.DeliveryAddress,
		OrderAmount:           announcement.OrderAmount,
		DeliveryFee:           announcement.DeliveryFee,
		Distance:              announcement.Distance,
		EstimatedDeliveryTime: announcement.EstimatedMinutes,
	})
	return true
}

// SilentNotifier stands in for the hub in processes without a websocket
// surface, such as the kafka worker. Announcements are reported as
// unhandled so the delivery service sweep broadcasts them instead.
type SilentNotifier struct{}

func (SilentNotifier) AnnounceNewOrder(entities.DeliveryAnnouncement) bool {
	return false
}
