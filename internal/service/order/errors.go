package order

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrUnknownStatus         = errors.New("unknown order status")
	ErrInvalidRating         = errors.New("rating must be between 1 and 5")

	ErrOrderNotFound     = errors.New("order not found")
	ErrInvalidTransition = errors.New("invalid status transition")
	ErrNotDelivered      = errors.New("order is not delivered yet")
)
