// Package dto holds the JSON request/response shapes of both services and
// of the cross-service contracts. Field names follow the wire contract, not
// Go conventions.
package dto

import "time"

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

// --- customer service ---

type OrderItemDTO struct {
	Name          string  `json:"name"`
	Price         float64 `json:"price"`
	Quantity      int     `json:"quantity"`
	Customization string  `json:"customization,omitempty"`
	Image         string  `json:"image,omitempty"`
}

type OrderCreateRequest struct {
	Customer              string         `json:"customer"`
	CustomerName          string         `json:"customerName"`
	CustomerPhone         string         `json:"customerPhone"`
	Restaurant            string         `json:"restaurant"`
	RestaurantName        string         `json:"restaurantName"`
	RestaurantLocation    string         `json:"restaurantLocation"`
	Items                 []OrderItemDTO `json:"items"`
	Subtotal              float64        `json:"subtotal"`
	DeliveryFee           float64        `json:"deliveryFee"`
	Taxes                 float64        `json:"taxes"`
	Discount              float64        `json:"discount"`
	Total                 float64        `json:"total"`
	DeliveryAddress       string         `json:"deliveryAddress"`
	Distance              float64        `json:"distance"`
	EstimatedDeliveryTime int            `json:"estimatedDeliveryTime"`
}

type OrderDTO struct {
	ID                    string         `json:"id"`
	OrderNumber           string         `json:"orderNumber"`
	Customer              string         `json:"customer"`
	CustomerName          string         `json:"customerName"`
	CustomerPhone         string         `json:"customerPhone"`
	Restaurant            string         `json:"restaurant"`
	RestaurantName        string         `json:"restaurantName"`
	RestaurantLocation    string         `json:"restaurantLocation"`
	Items                 []OrderItemDTO `json:"items"`
	Status                string         `json:"status"`
	Subtotal              float64        `json:"subtotal"`
	DeliveryFee           float64        `json:"deliveryFee"`
	Taxes                 float64        `json:"taxes"`
	Discount              float64        `json:"discount"`
	Total                 float64        `json:"total"`
	DeliveryAddress       string         `json:"deliveryAddress"`
	Distance              float64        `json:"distance"`
	EstimatedDeliveryTime int            `json:"estimatedDeliveryTime"`
	DeliveryOTP           string         `json:"deliveryOtp,omitempty"`
	AcceptedAt            *time.Time     `json:"acceptedAt,omitempty"`
	RejectedAt            *time.Time     `json:"rejectedAt,omitempty"`
	RejectionReason       string         `json:"rejectionReason,omitempty"`
	Rating                int            `json:"rating,omitempty"`
	Review                string         `json:"review,omitempty"`
	CreatedAt             time.Time      `json:"createdAt"`
	UpdatedAt             time.Time      `json:"updatedAt"`
}

type OrderResponse struct {
	Success bool     `json:"success"`
	Data    OrderDTO `json:"data"`
}

type OrderListResponse struct {
	Success bool       `json:"success"`
	Data    []OrderDTO `json:"data"`
}

type OrderStatusUpdateRequest struct {
	Status          string     `json:"status"`
	AcceptedAt      *time.Time `json:"acceptedAt,omitempty"`
	RejectedAt      *time.Time `json:"rejectedAt,omitempty"`
	RejectionReason string     `json:"rejectionReason,omitempty"`
}

type OrderStatusUpdateResponse struct {
	Success bool `json:"success"`
}

type OrderRateRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review,omitempty"`
}

// --- delivery service ---

type DeliveryOrderCreateRequest struct {
	OrderID               string  `json:"orderId"`
	OrderNumber           string  `json:"orderNumber"`
	Restaurant            string  `json:"restaurant"`
	RestaurantName        string  `json:"restaurantName"`
	RestaurantLocation    string  `json:"restaurantLocation"`
	Customer              string  `json:"customer"`
	CustomerName          string  `json:"customerName"`
	CustomerPhone         string  `json:"customerPhone"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	OrderAmount           float64 `json:"orderAmount"`
	DeliveryFee           float64 `json:"deliveryFee"`
	Distance              float64 `json:"distance"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime"`
	DeliveryOTP           string  `json:"deliveryOtp,omitempty"`
}

type DeliveryOrderDTO struct {
	ID                    int64      `json:"id"`
	OrderID               string     `json:"orderId"`
	OrderNumber           string     `json:"orderNumber"`
	Restaurant            string     `json:"restaurant"`
	RestaurantName        string     `json:"restaurantName"`
	RestaurantLocation    string     `json:"restaurantLocation"`
	Customer              string     `json:"customer"`
	CustomerName          string     `json:"customerName"`
	CustomerPhone         string     `json:"customerPhone"`
	DeliveryAddress       string     `json:"deliveryAddress"`
	OrderAmount           float64    `json:"orderAmount"`
	DeliveryFee           float64    `json:"deliveryFee"`
	Distance              float64    `json:"distance"`
	EstimatedDeliveryTime int        `json:"estimatedDeliveryTime"`
	Status                string     `json:"status"`
	CourierID             *int64     `json:"courierId,omitempty"`
	RejectionReason       string     `json:"rejectionReason,omitempty"`
	DurationSeconds       int64      `json:"durationSeconds,omitempty"`
	AssignedAt            *time.Time `json:"assignedAt,omitempty"`
	AcceptedAt            *time.Time `json:"acceptedAt,omitempty"`
	PickedUpAt            *time.Time `json:"pickedUpAt,omitempty"`
	DeliveredAt           *time.Time `json:"deliveredAt,omitempty"`
	CreatedAt             time.Time  `json:"createdAt"`
	UpdatedAt             time.Time  `json:"updatedAt"`
}

type DeliveryOrderResponse struct {
	Success bool             `json:"success"`
	Data    DeliveryOrderDTO `json:"data"`
}

type DeliveryOrderListResponse struct {
	Success bool               `json:"success"`
	Data    []DeliveryOrderDTO `json:"data"`
}

type DeliveryAcceptRequest struct {
	CourierID int64 `json:"courierId"`
}

type DeliveryPickupRequest struct {
	CourierID int64 `json:"courierId"`
}

type DeliveryTransitRequest struct {
	CourierID int64 `json:"courierId"`
}

type DeliveryCompleteRequest struct {
	CourierID int64  `json:"courierId"`
	OTP       string `json:"otp,omitempty"`
}

type DeliveryRejectRequest struct {
	CourierID int64  `json:"courierId"`
	Reason    string `json:"reason,omitempty"`
}

type CourierCreate struct {
	Name          string `json:"name"`
	Phone         string `json:"phone"`
	Status        string `json:"status"`
	TransportType string `json:"transport_type"`
}

type CourierCreateResponse struct {
	ID int64 `json:"id"`
}

type CourierUpdate struct {
	ID            int64   `json:"id"`
	Name          *string `json:"name,omitempty"`
	Phone         *string `json:"phone,omitempty"`
	Status        *string `json:"status,omitempty"`
	TransportType *string `json:"transport_type,omitempty"`
}

type CourierDTO struct {
	ID              int64     `json:"id"`
	Name            string    `json:"name"`
	Phone           string    `json:"phone"`
	Status          string    `json:"status"`
	TransportType   string    `json:"transport_type"`
	CurrentOrderID  *int64    `json:"currentOrderId,omitempty"`
	CompletedOrders int64     `json:"completedOrders"`
	TotalEarnings   float64   `json:"totalEarnings"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

type CourierListResponse struct {
	Couriers []CourierDTO `json:"couriers"`
}

// --- realtime events ---

type OrderStatusEvent struct {
	Event        string    `json:"event"`
	OrderID      string    `json:"orderId"`
	Status       string    `json:"status"`
	UpdatedOrder *OrderDTO `json:"updatedOrder,omitempty"`
}

type NewOrderEvent struct {
	Event                 string  `json:"event"`
	DeliveryOrderID       int64   `json:"deliveryOrderId"`
	OrderID               string  `json:"orderId"`
	OrderNumber           string  `json:"orderNumber"`
	RestaurantName        string  `json:"restaurantName"`
	DeliveryAddress       string  `json:"deliveryAddress"`
	OrderAmount           float64 `json:"orderAmount"`
	DeliveryFee           float64 `json:"deliveryFee"`
	Distance              float64 `json:"distance"`
	EstimatedDeliveryTime int     `json:"estimatedDeliveryTime"`
}

// --- kafka events ---

type OrderStatusChangedEvent struct {
	OrderID string `json:"orderId"`
	Status  string `json:"status"`
}
