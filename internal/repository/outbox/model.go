package outbox

import "time"

type OutboxEventDB struct {
	ID           int64
	OrderID      string
	OrderStatus  string
	Payload      []byte
	State        string
	Attempts     int32
	LastError    string
	CreatedAt    time.Time
	DispatchedAt *time.Time
}
