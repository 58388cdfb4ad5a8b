package courier

import "fooddelivery/internal/entities"

func ToDomain(c *CourierDB) *entities.Courier {
	if c == nil {
		return nil
	}
	return &entities.Courier{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		Status:          entities.CourierStatusType(c.Status),
		TransportType:   entities.CourierTransportType(c.TransportType),
		CurrentOrderID:  c.CurrentOrderID,
		CompletedOrders: c.CompletedOrders,
		TotalEarnings:   c.TotalEarnings,
		CreatedAt:       c.CreatedAt,
		UpdatedAt:       c.UpdatedAt,
	}
}

func FromDomainModify(c *entities.CourierModify) *CourierModifyDB {
	if c == nil {
		return nil
	}
	courierModifyDB := &CourierModifyDB{
		ID:              c.ID,
		Name:            c.Name,
		Phone:           c.Phone,
		CurrentOrderID:  c.CurrentOrderID,
		ClearCurrent:    c.ClearCurrent,
		CompletedOrders: c.CompletedOrders,
		TotalEarnings:   c.TotalEarnings,
	}

	if c.Status != nil {
		status := c.Status.String()
		courierModifyDB.Status = &status
	}
	if c.TransportType != nil {
		transport := c.TransportType.String()
		courierModifyDB.TransportType = &transport
	}

	return courierModifyDB
}
