//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryorder_test
package deliveryorder

import (
	"context"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Repository interface {
	Create(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, error)
	GetByID(ctx context.Context, id int64) (*entities.DeliveryOrder, error)
	GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
	Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error)
	ListAvailable(ctx context.Context) ([]entities.DeliveryOrder, error)
	ListStaleAccepted(ctx context.Context, olderThanSeconds int64) ([]entities.DeliveryOrder, error)
	ListUnannounced(ctx context.Context) ([]entities.DeliveryOrder, error)
	MarkAnnounced(ctx context.Context, id int64, at time.Time) error
}

type CourierService interface {
	UpdateCourier(ctx context.Context, courierModify entities.CourierModify) (*entities.Courier, error)
	GetCourier(ctx context.Context, id int64) (*entities.Courier, error)
}

// CustomerGateway mirrors delivery progress back into the customer service.
// Calls are best-effort: the local write always wins and a failed mirror is
// reported through logs and metrics, never to the courier.
type CustomerGateway interface {
	UpdateOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) error
}

// Notifier broadcasts availability of a delivery order to every connected
// courier client. AnnounceNewOrder reports whether the current process has a
// courier feed at all: the kafka worker serves no websocket routes and
// returns false, leaving the order unannounced until the delivery service
// sweep picks it up.
type Notifier interface {
	AnnounceNewOrder(announcement entities.DeliveryAnnouncement) bool
}

type TxManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}
