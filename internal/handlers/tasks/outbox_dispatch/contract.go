//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=outbox_dispatch_test
package outbox_dispatch

import (
	"context"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type taskLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OutboxRepository interface {
	ListPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error)
	MarkDispatched(ctx context.Context, id int64) error
	RecordFailure(ctx context.Context, id int64, lastError string) error
}

type EventPublisher interface {
	PublishOrderStatusChanged(ctx context.Context, event dto.OrderStatusChangedEvent) error
}

type DeliveryGateway interface {
	CreateDeliveryOrder(ctx context.Context, req dto.DeliveryOrderCreateRequest) error
}

type RestaurantGateway interface {
	SyncOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error
}
