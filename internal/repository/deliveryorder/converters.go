package deliveryorder

import "fooddelivery/internal/entities"

func ToDomain(d *DeliveryOrderDB) *entities.DeliveryOrder {
	if d == nil {
		return nil
	}
	return &entities.DeliveryOrder{
		ID:                 d.ID,
		OrderID:            d.OrderID,
		OrderNumber:        d.OrderNumber,
		RestaurantID:       d.RestaurantID,
		RestaurantName:     d.RestaurantName,
		RestaurantLocation: d.RestaurantLocation,
		CustomerID:         d.CustomerID,
		CustomerName:       d.CustomerName,
		CustomerPhone:      d.CustomerPhone,
		DeliveryAddress:    d.DeliveryAddress,
		OrderAmount:        d.OrderAmount,
		DeliveryFee:        d.DeliveryFee,
		Distance:           d.Distance,
		EstimatedMinutes:   d.EstimatedMinutes,
		DeliveryOTP:        d.DeliveryOTP,
		Status:             entities.DeliveryStatusType(d.Status),
		CourierID:          d.CourierID,
		RejectionReason:    d.RejectionReason,
		DurationSeconds:    d.DurationSeconds,
		AssignedAt:         d.AssignedAt,
		AcceptedAt:         d.AcceptedAt,
		PickedUpAt:         d.PickedUpAt,
		DeliveredAt:        d.DeliveredAt,
		CreatedAt:          d.CreatedAt,
		UpdatedAt:          d.UpdatedAt,
	}
}

func FromDomainModify(d *entities.DeliveryOrderModify) *DeliveryOrderModifyDB {
	if d == nil {
		return nil
	}
	deliveryOrderModifyDB := &DeliveryOrderModifyDB{
		ID:              d.ID,
		CourierID:       d.CourierID,
		ClearCourier:    d.ClearCourier,
		RejectionReason: d.RejectionReason,
		DurationSeconds: d.DurationSeconds,
		AssignedAt:      d.AssignedAt,
		AcceptedAt:      d.AcceptedAt,
		PickedUpAt:      d.PickedUpAt,
		DeliveredAt:     d.DeliveredAt,
	}

	if d.Status != nil {
		status := d.Status.String()
		deliveryOrderModifyDB.Status = &status
	}

	return deliveryOrderModifyDB
}
