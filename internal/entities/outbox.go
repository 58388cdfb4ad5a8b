package entities

import "time"

// OutboxEvent is a durable record of an order status change, appended in the
// same transaction as the status write. The dispatcher task delivers it to
// downstream systems until every sink has acknowledged.
type OutboxEvent struct {
	ID           int64
	OrderID      string
	OrderStatus  OrderStatusType
	Payload      []byte
	State        OutboxStateType
	Attempts     int32
	LastError    string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}

type OutboxStateType string

const (
	OutboxPending    OutboxStateType = "pending"
	OutboxDispatched OutboxStateType = "dispatched"
)

func (s OutboxStateType) String() string {
	return string(s)
}
