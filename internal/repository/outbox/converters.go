package outbox

import "fooddelivery/internal/entities"

func ToDomain(e *OutboxEventDB) *entities.OutboxEvent {
	if e == nil {
		return nil
	}
	return &entities.OutboxEvent{
		ID:           e.ID,
		OrderID:      e.OrderID,
		OrderStatus:  entities.OrderStatusType(e.OrderStatus),
		Payload:      e.Payload,
		State:        entities.OutboxStateType(e.State),
		Attempts:     e.Attempts,
		LastError:    e.LastError,
		CreatedAt:    e.CreatedAt,
		DispatchedAt: e.DispatchedAt,
	}
}
