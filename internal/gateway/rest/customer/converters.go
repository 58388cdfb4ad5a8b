package customer

import (
	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
)

func toDomain(o *dto.OrderDTO) *entities.Order {
	if o == nil {
		return nil
	}

	items := make([]entities.OrderItem, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, entities.OrderItem{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Image:         item.Image,
		})
	}

	status, ok := entities.ParseOrderStatus(o.Status)
	if !ok {
		status = entities.OrderStatusType(o.Status)
	}

	return &entities.Order{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		CustomerID:         o.Customer,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		RestaurantID:       o.Restaurant,
		RestaurantName:     o.RestaurantName,
		RestaurantLocation: o.RestaurantLocation,
		Items:              items,
		Status:             status,
		Subtotal:           o.Subtotal,
		DeliveryFee:        o.DeliveryFee,
		Taxes:              o.Taxes,
		Discount:           o.Discount,
		Total:              o.Total,
		DeliveryAddress:    o.DeliveryAddress,
		Distance:           o.Distance,
		EstimatedMinutes:   o.EstimatedDeliveryTime,
		DeliveryOTP:        o.DeliveryOTP,
		AcceptedAt:         o.AcceptedAt,
		RejectedAt:         o.RejectedAt,
		RejectionReason:    o.RejectionReason,
		Rating:             o.Rating,
		Review:             o.Review,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}
}

func toDomainList(list []dto.OrderDTO) []entities.Order {
	orders := make([]entities.Order, 0, len(list))
	for i := range list {
		orders = append(orders, *toDomain(&list[i]))
	}
	return orders
}
