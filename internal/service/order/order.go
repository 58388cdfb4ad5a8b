package order

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
)

type Order struct {
	repository Repository
	outbox     OutboxRepository
	notifier   Notifier
	txManager  TxManager
}

func New(
	repository Repository,
	outbox OutboxRepository,
	notifier Notifier,
	txManager TxManager,
) *Order {
	return &Order{
		repository: repository,
		outbox:     outbox,
		notifier:   notifier,
		txManager:  txManager,
	}
}

// CreateOrder persists a new order in Pending status and appends the
// creation event to the outbox in the same transaction. The dispatcher
// publishes the creation to kafka only; the restaurant HTTP sink carries
// later status changes.
func (o *Order) CreateOrder(ctx context.Context, order entities.Order) (*entities.Order, error) {
	if !isValidCreate(order) {
		return nil, ErrMissingRequiredFields
	}

	now := time.Now().UTC()
	order.OrderNumber = newOrderNumber(now)
	order.DeliveryOTP = newDeliveryOTP()
	order.Status = entities.OrderPending

	var created *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		var err error
		created, err = o.repository.Create(ctx, order)
		if err != nil {
			return fmt.Errorf("create order: %w", err)
		}

		event := entities.OutboxEvent{
			OrderID:     created.ID,
			OrderStatus: created.Status,
			State:       entities.OutboxPending,
		}
		if err := o.outbox.Append(ctx, event); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return created, nil
}

// UpdateOrderStatus applies a validated status transition. The status write
// and the outbox append commit atomically; the realtime notification happens
// after commit and is best-effort. A same-status write is a no-op: nothing
// is persisted and no event is produced, which keeps the Ready callback
// idempotent when the restaurant service retries.
func (o *Order) UpdateOrderStatus(ctx context.Context, orderModify entities.OrderModify) (*entities.Order, error) {
	if orderModify.ID == nil || !isValidOrderID(*orderModify.ID) {
		return nil, ErrInvalidOrderID
	}
	if orderModify.Status == nil {
		return nil, ErrMissingRequiredFields
	}
	newStatus := *orderModify.Status

	var updated *entities.Order
	noop := false
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, *orderModify.ID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}

		if current.Status == newStatus {
			noop = true
			updated = current
			return nil
		}
		if !current.Status.CanTransitionTo(newStatus) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, current.Status, newStatus)
		}

		updated, err = o.repository.Update(ctx, orderModify)
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}

		event := entities.OutboxEvent{
			OrderID:     updated.ID,
			OrderStatus: newStatus,
			State:       entities.OutboxPending,
		}
		if newStatus == entities.OrderReady {
			payload, err := json.Marshal(deliverySnapshot(updated))
			if err != nil {
				return fmt.Errorf("marshal delivery snapshot: %w", err)
			}
			event.Payload = payload
		}
		if err := o.outbox.Append(ctx, event); err != nil {
			return fmt.Errorf("append outbox event: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	if !noop {
		o.notifier.PublishOrderStatus(updated.ID, updated.Status, updated)
	}
	return updated, nil
}

// CancelOrder is the customer-facing cancellation; it goes through the same
// transition validation, so terminal orders reject it.
func (o *Order) CancelOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	cancelled := entities.OrderCancelled
	return o.UpdateOrderStatus(ctx, entities.OrderModify{
		ID:     &orderID,
		Status: &cancelled,
	})
}

func (o *Order) GetOrder(ctx context.Context, orderID string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	order, err := o.repository.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get order: %w", err)
	}
	return order, nil
}

// ListReadyOrders backs the internal reconciliation endpoint polled by the
// delivery service.
func (o *Order) ListReadyOrders(ctx context.Context) ([]entities.Order, error) {
	orders, err := o.repository.ListByStatus(ctx, entities.OrderReady)
	if err != nil {
		return nil, fmt.Errorf("list ready orders: %w", err)
	}
	return orders, nil
}

func (o *Order) RateOrder(ctx context.Context, orderID string, rating int, review string) (*entities.Order, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	if rating < 1 || rating > 5 {
		return nil, ErrInvalidRating
	}

	var updated *entities.Order
	err := o.txManager.Do(ctx, func(ctx context.Context) error {
		current, err := o.repository.GetByID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get order: %w", err)
		}
		if current.Status != entities.OrderDelivered {
			return ErrNotDelivered
		}

		updated, err = o.repository.Update(ctx, entities.OrderModify{
			ID:     &orderID,
			Rating: &rating,
			Review: &review,
		})
		if err != nil {
			return fmt.Errorf("update order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func deliverySnapshot(order *entities.Order) dto.DeliveryOrderCreateRequest {
	return dto.DeliveryOrderCreateRequest{
		OrderID:               order.ID,
		OrderNumber:           order.OrderNumber,
		Restaurant:            order.RestaurantID,
		RestaurantName:        order.RestaurantName,
		RestaurantLocation:    order.RestaurantLocation,
		Customer:              order.CustomerID,
		CustomerName:          order.CustomerName,
		CustomerPhone:         order.CustomerPhone,
		DeliveryAddress:       order.DeliveryAddress,
		OrderAmount:           order.Total,
		DeliveryFee:           order.DeliveryFee,
		Distance:              order.Distance,
		EstimatedDeliveryTime: order.EstimatedMinutes,
		DeliveryOTP:           order.DeliveryOTP,
	}
}

// newOrderNumber builds the human-readable identifier ORD-YYYYMMDD-HEX6.
func newOrderNumber(now time.Time) string {
	var buf [3]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("ORD-%s-%s", now.Format("20060102"), strings.ToUpper(hex.EncodeToString(buf[:])))
}

func newDeliveryOTP() string {
	var buf [4]byte
	_, _ = rand.Read(buf[:])
	return fmt.Sprintf("%04d", binary.BigEndian.Uint32(buf[:])%10000)
}
