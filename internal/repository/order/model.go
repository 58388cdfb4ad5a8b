package order

import "time"

type OrderDB struct {
	ID                 string
	OrderNumber        string
	CustomerID         string
	CustomerName       string
	CustomerPhone      string
	RestaurantID       string
	RestaurantName     string
	RestaurantLocation string
	Items              []byte
	Status             string
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

// itemDB is the jsonb shape of a single line item inside orders.items.
type itemDB struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
	Image         string  `json:"image,omitempty"`
}

type OrderModifyDB struct {
	ID              *string
	Status          *string
	AcceptedAt      *time.Time
	RejectedAt      *time.Time
	RejectionReason *string
	Rating          *int
	Review          *string
}
