package entities

import (
	"time"
)

// Courier holds at most one active delivery order at a time. Availability is
// gated by being online: an offline courier is never offered work.
type Courier struct {
	ID              int64
	Name            string
	Phone           string
	Status          CourierStatusType
	TransportType   CourierTransportType
	CurrentOrderID  *int64
	CompletedOrders int64
	TotalEarnings   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CourierTransportType string

const (
	OnFoot  CourierTransportType = "on_foot"
	Scooter CourierTransportType = "scooter"
	Car     CourierTransportType = "car"
)

const DefaultTransportType = OnFoot

func (t CourierTransportType) String() string {
	return string(t)
}

type CourierStatusType string

const (
	CourierOffline   CourierStatusType = "offline"
	CourierAvailable CourierStatusType = "available"
	CourierBusy      CourierStatusType = "busy"
)

const DefaultStatusType = CourierOffline

func (t CourierStatusType) String() string {
	return string(t)
}

type CourierModify struct {
	ID              *int64
	Name            *string
	Phone           *string
	Status          *CourierStatusType
	TransportType   *CourierTransportType
	CurrentOrderID  *int64
	ClearCurrent    bool
	CompletedOrders *int64
	TotalEarnings   *float64
}
