package deliveryorder

import "time"

type DeliveryOrderDB struct {
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
	Status             string
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

type DeliveryOrderModifyDB struct {
	ID              *int64
	Status          *string
	CourierID       *int64
	ClearCourier    bool
	RejectionReason *string
	DurationSeconds *int64
	AssignedAt      *time.Time
	AcceptedAt      *time.Time
	PickedUpAt      *time.Time
	DeliveredAt     *time.Time
}
