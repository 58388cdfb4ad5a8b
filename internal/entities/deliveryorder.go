package entities

import "time"

// DeliveryOrder is the delivery-side shadow of an order once it becomes
// ready for courier pickup. Restaurant and customer fields are snapshots
// captured at creation time; the two services do not share a database.
type DeliveryOrder struct {
	ID                 int64
	OrderID            string
	OrderNumber        string
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	DeliveryAddress    string
	OrderAmount        float64
	DeliveryFee        float64
	Distance           float64
	EstimatedMinutes   int
	DeliveryOTP        string
	Status             DeliveryStatusType
	CourierID          *int64
	RejectionReason    string
	DurationSeconds    int64
	AssignedAt         *time.Time
	AcceptedAt         *time.Time
	PickedUpAt         *time.Time
	DeliveredAt        *time.Time
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

type DeliveryStatusType string

const (
	DeliveryReadyForPickup DeliveryStatusType = "ready_for_pickup"
	DeliveryAccepted       DeliveryStatusType = "accepted"
	DeliveryPickedUp       DeliveryStatusType = "picked_up"
	DeliveryInTransit      DeliveryStatusType = "in_transit"
	DeliveryDelivered      DeliveryStatusType = "delivered"
	DeliveryCancelled      DeliveryStatusType = "cancelled"
)

func (s DeliveryStatusType) String() string {
	return string(s)
}

func (s DeliveryStatusType) IsTerminal() bool {
	return s == DeliveryDelivered || s == DeliveryCancelled
}

// IsActive reports whether the delivery is assigned and in progress.
func (s DeliveryStatusType) IsActive() bool {
	switch s {
	case DeliveryAccepted, DeliveryPickedUp, DeliveryInTransit:
		return true
	default:
		return false
	}
}

var deliveryTransitions = map[DeliveryStatusType][]DeliveryStatusType{
	DeliveryReadyForPickup: {DeliveryAccepted, DeliveryCancelled},
	// ready_for_pickup from accepted is the reject path: the assignment is
	// released and the order goes back to the pool.
	DeliveryAccepted:  {DeliveryPickedUp, DeliveryReadyForPickup, DeliveryDelivered, DeliveryCancelled},
	DeliveryPickedUp:  {DeliveryInTransit, DeliveryDelivered, DeliveryCancelled},
	DeliveryInTransit: {DeliveryDelivered, DeliveryCancelled},
}

func (s DeliveryStatusType) CanTransitionTo(next DeliveryStatusType) bool {
	for _, allowed := range deliveryTransitions[s] {
		if next == allowed {
			return true
		}
	}
	return false
}

type DeliveryOrderModify struct {
	ID              *int64
	Status          *DeliveryStatusType
	CourierID       *int64
	ClearCourier    bool
	RejectionReason *string
	DurationSeconds *int64
	AssignedAt      *time.Time
	AcceptedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}

// DeliveryOrderCreate carries the snapshot payload accepted by the
// delivery-order creation endpoint and by the reconciliation poller.
type DeliveryOrderCreate struct {
	OrderID            string
	OrderNumber        string
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	DeliveryAddress    string
	OrderAmount        float64
	DeliveryFee        float64
	Distance           float64
	EstimatedMinutes   int
	DeliveryOTP        string
}

// DeliveryAnnouncement is the redacted summary broadcast to couriers when a
// new delivery order appears. No customer PII beyond what is needed to
// decide whether to accept.
type DeliveryAnnouncement struct {
	DeliveryOrderID  int64
	OrderID          string
	OrderNumber      string
	RestaurantName   string
	DeliveryAddress  string
	OrderAmount      float64
	DeliveryFee      float64
	Distance         float64
	EstimatedMinutes int
}
