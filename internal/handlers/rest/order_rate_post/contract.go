//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_rate_post_test
package order_rate_post

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
	RateOrder(ctx context.Context, orderID string, rating int, review string) (*entities.Order, error)
}
