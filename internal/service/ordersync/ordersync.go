package ordersync

import (
	"context"
	"errors"
	"fmt"

	"fooddelivery/internal/entities"
)

// Service processes order.status.changed events on the delivery side. The
// event only carries the order id and status; the order is re-read from the
// customer service so a stale or reordered event cannot apply outdated data.
type Service struct {
	orderGateway  OrderGateway
	statusFactory HandlerFactory
}

func New(orderGateway OrderGateway, statusFactory HandlerFactory) *Service {
	return &Service{
		orderGateway:  orderGateway,
		statusFactory: statusFactory,
	}
}

func (s *Service) ProcessOrderStatusChange(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || orderModify.Status == nil {
		return nil, fmt.Errorf("order id and status are required")
	}

	order, err := s.orderGateway.GetOrderByID(ctx, *orderModify.ID)
	if err != nil {
		return nil, fmt.Errorf("get order from customer service: %w", err)
	}

	executeFn, err := s.statusFactory.GetHandler(order.Status)
	if err != nil {
		// statuses without a delivery-side reaction are skipped
		if errors.Is(err, ErrUndefinedStatus) {
			return order, nil
		}
		return order, err
	}

	if err := executeFn(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}
