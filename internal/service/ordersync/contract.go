//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ordersync_test
package ordersync

import (
	"context"

	"fooddelivery/internal/entities"
)

type OrderGateway interface {
	GetOrderByID(ctx context.Context, orderID string) (*entities.Order, error)
}

type DeliveryOrderService interface {
	CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error)
	CancelBySourceOrder(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
}

type (
	ExecuteFn      func(ctx context.Context, order *entities.Order) error
	HandlerFactory interface {
		GetHandler(status entities.OrderStatusType) (ExecuteFn, error)
	}
)
