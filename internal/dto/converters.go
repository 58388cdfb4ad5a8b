package dto

import "fooddelivery/internal/entities"

// NewOrderDTO maps the domain order onto the wire shape shared by every
// order endpoint and the realtime events.
func NewOrderDTO(o *entities.Order) OrderDTO {
	items := make([]OrderItemDTO, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemDTO{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Image:         item.Image,
		})
	}

	return OrderDTO{
		ID:                    o.ID,
		OrderNumber:           o.OrderNumber,
		Customer:              o.CustomerID,
		CustomerName:          o.CustomerName,
		CustomerPhone:         o.CustomerPhone,
		Restaurant:            o.RestaurantID,
		RestaurantName:        o.RestaurantName,
		RestaurantLocation:    o.RestaurantLocation,
		Items:                 items,
		Status:                o.Status.String(),
		Subtotal:              o.Subtotal,
		DeliveryFee:           o.DeliveryFee,
		Taxes:                 o.Taxes,
		Discount:              o.Discount,
		Total:                 o.Total,
		DeliveryAddress:       o.DeliveryAddress,
		Distance:              o.Distance,
		EstimatedDeliveryTime: o.EstimatedMinutes,
		DeliveryOTP:           o.DeliveryOTP,
		AcceptedAt:            o.AcceptedAt,
		RejectedAt:            o.RejectedAt,
		RejectionReason:       o.RejectionReason,
		Rating:                o.Rating,
		Review:                o.Review,
		CreatedAt:             o.CreatedAt,
		UpdatedAt:             o.UpdatedAt,
	}
}

func NewDeliveryOrderDTO(d *entities.DeliveryOrder) DeliveryOrderDTO {
	return DeliveryOrderDTO{
		ID:                    d.ID,
		OrderID:               d.OrderID,
		OrderNumber:           d.OrderNumber,
		Restaurant:            d.RestaurantID,
		RestaurantName:        d.RestaurantName,
		RestaurantLocation:    d.RestaurantLocation,
		Customer:              d.CustomerID,
		CustomerName:          d.CustomerName,
		CustomerPhone:         d.CustomerPhone,
		DeliveryAddress:       d.DeliveryAddress,
		OrderAmount:           d.OrderAmount,
		DeliveryFee:           d.DeliveryFee,
		Distance:              d.Distance,
		EstimatedDeliveryTime: d.EstimatedMinutes,
		Status:                d.Status.String(),
		CourierID:             d.CourierID,
		RejectionReason:       d.RejectionReason,
		DurationSeconds:       d.DurationSeconds,
		AssignedAt:            d.AssignedAt,
		AcceptedAt:            d.AcceptedAt,
		PickedUpAt:            d.PickedUpAt,
		DeliveredAt:           d.DeliveredAt,
		CreatedAt:             d.CreatedAt,
		UpdatedAt:             d.UpdatedAt,
	}
}
