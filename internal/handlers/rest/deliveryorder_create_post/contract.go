//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=deliveryorder_create_post_test
package deliveryorder_create_post

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
	CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error)
}
