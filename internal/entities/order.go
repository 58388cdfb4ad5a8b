package entities

import (
	"strings"
	"time"
)

// Order is the canonical purchase record, owned by the customer service.
// Line items are a point-in-time snapshot, not live menu references.
type Order struct {
	ID                 string
	OrderNumber        string
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	Items              []OrderItem
	Status             OrderStatusType
	Subtotal           float64
	DeliveryFee        float64
	Taxes              float64
	Discount           float64
	Total              float64
	DeliveryAddress    string
	Distance           float64
	EstimatedMinutes   int
	DeliveryOTP        string
	AcceptedAt         *time.Time
	RejectedAt         *time.Time
	RejectionReason    string
	Rating             int
	Review             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type OrderItem struct {
	Name          string
	Price         float64
	Quantity      int
	Customization string
	Image         string
}

type OrderStatusType string

const (
	OrderPending        OrderStatusType = "Pending"
	OrderAccepted       OrderStatusType = "Accepted"
	OrderRejected       OrderStatusType = "Rejected"
	OrderPreparing      OrderStatusType = "Preparing"
	OrderReady          OrderStatusType = "Ready"
	OrderOutForDelivery OrderStatusType = "OutForDelivery"
	OrderDelivered      OrderStatusType = "Delivered"
	OrderCancelled      OrderStatusType = "Cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

// IsTerminal reports whether no further status mutation is permitted.
func (s OrderStatusType) IsTerminal() bool {
	switch s {
	case OrderDelivered, OrderRejected, OrderCancelled:
		return true
	default:
		return false
	}
}

var orderTransitions = map[OrderStatusType][]OrderStatusType{
	OrderPending:        {OrderAccepted, OrderRejected, OrderCancelled},
	OrderAccepted:       {OrderPreparing, OrderCancelled},
	OrderPreparing:      {OrderReady, OrderCancelled},
	OrderReady:          {OrderOutForDelivery, OrderCancelled},
	OrderOutForDelivery: {OrderDelivered, OrderCancelled},
}

// CanTransitionTo validates a status change against the lifecycle
// Pending -> Accepted/Rejected -> Preparing -> Ready -> OutForDelivery ->
// Delivered, with Cancelled reachable from any non-terminal state.
// Same-status writes are treated as no-op transitions and allowed.
func (s OrderStatusType) CanTransitionTo(next OrderStatusType) bool {
	if s == next {
		return true
	}
	for _, allowed := range orderTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

// ParseOrderStatus normalizes a wire status string to its canonical form.
// The spaced spelling "Out for Delivery" is accepted as an alias.
func ParseOrderStatus(raw string) (OrderStatusType, bool) {
	trimmed := strings.TrimSpace(raw)
	if strings.EqualFold(trimmed, "Out for Delivery") {
		return OrderOutForDelivery, true
	}
	status := OrderStatusType(trimmed)
	switch status {
	case OrderPending, OrderAccepted, OrderRejected, OrderPreparing,
		OrderReady, OrderOutForDelivery, OrderDelivered, OrderCancelled:
		return status, true
	default:
		return "", false
	}
}

type OrderModify struct {
	ID              *string
	Status          *OrderStatusType
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason *string
	Rating          *int
	Review          *string
}
