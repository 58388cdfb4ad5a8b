//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=ws_test
package ws

import (
	"fooddelivery/pkg/logger"
)

type hubLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}
