//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_test
package order

import (
	"context"

	"fooddelivery/internal/entities"
)

type Repository interface {
	Create(ctx context.Context, order entities.Order) (*entities.Order, error)
	GetByID(ctx context.Context, id string) (*entities.Order, error)
	Update(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error)
	ListByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error)
}

type OutboxRepository interface {
	Append(ctx context.Context, event entities.OutboxEvent) error
}

// Notifier fans a committed status change out to realtime subscribers.
// Delivery is best-effort and must never fail the surrounding request.
type Notifier interface {
	PublishOrderStatus(orderID string, status entities.OrderStatusType, order *entities.Order)
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
