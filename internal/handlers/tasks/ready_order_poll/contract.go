//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ready_order_poll_test
package ready_order_poll

import (
	"context"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrderGateway interface {
	ListReadyOrders(ctx context.Context) ([]entities.Order, error)
}

type DeliveryOrderService interface {
	CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error)
	AnnounceUnclaimed(ctx context.Context) (int, error)
}
