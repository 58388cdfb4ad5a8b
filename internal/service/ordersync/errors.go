package ordersync

import "errors"

var (
	ErrStatusMismatch  = errors.New("order status mismatch between event and customer service")
	ErrUndefinedStatus = errors.New("undefined order status")
	ErrOrderNotFound   = errors.New("order not found")
)
