package deliveryorder

import "errors"

var (
	ErrMissingRequiredFields = errors.New("missing required fields")
	ErrInvalidOrderID        = errors.New("invalid order id")
	ErrInvalidCourierID      = errors.New("invalid courier id")

	ErrDeliveryOrderNotFound = errors.New("delivery order not found")
	ErrAlreadyExists         = errors.New("delivery order already exists for this order")
	ErrOrderNotAvailable     = errors.New("delivery order is not available for acceptance")
	ErrCourierNotAvailable   = errors.New("courier is not available")
	ErrCourierBusy           = errors.New("courier already has an active delivery")
	ErrNotAssignedCourier    = errors.New("courier is not assigned to this delivery")
	ErrInvalidTransition     = errors.New("invalid delivery status transition")
	ErrInvalidOTP            = errors.New("delivery otp mismatch")
)
