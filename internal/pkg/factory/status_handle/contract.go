//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=status_handle_test
package status_handle

import (
	"context"

	"fooddelivery/internal/entities"
)

type DeliveryOrderService interface {
	CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error)
	CancelBySourceOrder(ctx context.Context, orderID string) (*entities.DeliveryOrder, error)
}
