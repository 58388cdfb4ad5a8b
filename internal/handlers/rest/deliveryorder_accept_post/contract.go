//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryorder_accept_post_test
package deliveryorder_accept_post

import (
	"context"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	AcceptDelivery(ctx context.Context, deliveryOrderID, courierID int64) (*entities.DeliveryOrder, error)
}
