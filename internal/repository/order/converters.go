package order

import (
	"encoding/json"
	"fmt"

	"fooddelivery/internal/entities"
)

func ToDomain(o *OrderDB) (*entities.Order, error) {
	if o == nil {
		return nil, nil
	}

	var itemModels []itemDB
	if len(o.Items) > 0 {
		if err := json.Unmarshal(o.Items, &itemModels); err != nil {
			return nil, fmt.Errorf("unmarshal order items: %w", err)
		}
	}
	items := make([]entities.OrderItem, 0, len(itemModels))
	for _, item := range itemModels {
		items = append(items, entities.OrderItem{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Image:         item.Image,
		})
	}

	return &entities.Order{
		ID:                 o.ID,
		OrderNumber:        o.OrderNumber,
		CustomerID:         o.CustomerID,
		CustomerName:       o.CustomerName,
		CustomerPhone:      o.CustomerPhone,
		RestaurantID:       o.RestaurantID,
		RestaurantName:     o.RestaurantName,
		RestaurantLocation: o.RestaurantLocation,
		Items:              items,
		Status:             entities.OrderStatusType(o.Status),
		Subtotal:           o.Subtotal,
		DeliveryFee:        o.DeliveryFee,
		Taxes:              o.Taxes,
		Discount:           o.Discount,
		Total:              o.Total,
		DeliveryAddress:    o.DeliveryAddress,
		Distance:           o.Distance,
		EstimatedMinutes:   o.EstimatedMinutes,
		DeliveryOTP:        o.DeliveryOTP,
		AcceptedAt:         o.AcceptedAt,
		RejectedAt:         o.RejectedAt,
		RejectionReason:    o.RejectionReason,
		Rating:             o.Rating,
		Review:             o.Review,
		CreatedAt:          o.CreatedAt,
		UpdatedAt:          o.UpdatedAt,
	}, nil
}

func itemsToJSON(items []entities.OrderItem) ([]byte, error) {
	itemModels := make([]itemDB, 0, len(items))
	for _, item := range items {
		itemModels = append(itemModels, itemDB{
			Name:          item.Name,
			Price:         item.Price,
			Quantity:      item.Quantity,
			Customization: item.Customization,
			Image:         item.Image,
		})
	}
	payload, err := json.Marshal(itemModels)
	if err != nil {
		return nil, fmt.Errorf("marshal order items: %w", err)
	}
	return payload, nil
}

func FromDomainModify(o *entities.OrderModify) *OrderModifyDB {
	if o == nil {
		return nil
	}
	orderModifyDB := &OrderModifyDB{
		ID:              o.ID,
		AcceptedAt:      o.AcceptedAt,
		RejectedAt:      o.RejectedAt,
		RejectionReason: o.RejectionReason,
		Rating:          o.Rating,
		Review:          o.Review,
	}

	if o.Status != nil {
		status := o.Status.String()
		orderModifyDB.Status = &status
	}

	return orderModifyDB
}
