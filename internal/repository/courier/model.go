package courier

import "time"

type CourierDB struct {
	ID              int64
	Name            string
	Phone           string
	Status          string
	TransportType   string
	CurrentOrderID  *int64
	CompletedOrders int64
	TotalEarnings   float64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

type CourierModifyDB struct {
	ID              *int64
	Name            *string
	Phone           *string
	Status          *string
	TransportType   *string
	CurrentOrderID  *int64
	ClearCurrent    bool
	CompletedOrders *int64
	TotalEarnings   *float64
}
