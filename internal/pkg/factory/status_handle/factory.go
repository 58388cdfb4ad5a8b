package status_handle

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/deliveryorder"
	"fooddelivery/internal/service/ordersync"
)

type StatusHandlerFactory struct {
	deliveryOrderService DeliveryOrderService
}

func NewStatusHandlerFactory(deliveryOrderService DeliveryOrderService) *StatusHandlerFactory {
	return &StatusHandlerFactory{
		deliveryOrderService: deliveryOrderService,
	}
}

func (f *StatusHandlerFactory) GetHandler(status entities.OrderStatusType) (ordersync.ExecuteFn, error) {
	switch status {
	case entities.OrderReady:
		return f.readyHandler, nil
	case entities.OrderCancelled:
		return f.cancelledHandler, nil
	default:
		return nil, fmt.Errorf("%w: %s", ordersync.ErrUndefinedStatus, status)
	}
}

func (f *StatusHandlerFactory) readyHandler(ctx context.Context, order *entities.Order) error {
	_, _, err := f.deliveryOrderService.CreateDeliveryOrder(ctx, entities.DeliveryOrderCreate{
		OrderID:            order.ID,
		OrderNumber:        order.OrderNumber,
		RestaurantID:       order.RestaurantID,
		RestaurantName:     order.RestaurantName,
		RestaurantLocation: order.RestaurantLocation,
		CustomerID:         order.CustomerID,
		CustomerName:       order.CustomerName,
		CustomerPhone:      order.CustomerPhone,
		DeliveryAddress:    order.DeliveryAddress,
		OrderAmount:        order.Total,
		DeliveryFee:        order.DeliveryFee,
		Distance:           order.Distance,
		EstimatedMinutes:   order.EstimatedMinutes,
		DeliveryOTP:        order.DeliveryOTP,
	})
	if err != nil {
		return fmt.Errorf("create delivery order for ready order %s: %w", order.ID, err)
	}
	return nil
}

func (f *StatusHandlerFactory) cancelledHandler(ctx context.Context, order *entities.Order) error {
	_, err := f.deliveryOrderService.CancelBySourceOrder(ctx, order.ID)
	if err != nil {
		// no active delivery order means there is nothing to cancel
		if errors.Is(err, deliveryorder.ErrDeliveryOrderNotFound) {
			return nil
		}
		return fmt.Errorf("cancel delivery order for cancelled order %s: %w", order.ID, err)
	}
	return nil
}
