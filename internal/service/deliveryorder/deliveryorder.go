package deliveryorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

type DeliveryOrder struct {
	log             serviceLogger
	repository      Repository
	courierService  CourierService
	customerGateway CustomerGateway
	notifier        Notifier
	txManager       TxManager
}

func New(
	log serviceLogger,
	repository Repository,
	courierService CourierService,
	customerGateway CustomerGateway,
	notifier Notifier,
	txManager TxManager,
) *DeliveryOrder {
	return &DeliveryOrder{
		log:             log.With(logger.NewField("component", "delivery_order_service")),
		repository:      repository,
		courierService:  courierService,
		customerGateway: customerGateway,
		notifier:        notifier,
		txManager:       txManager,
	}
}

// CreateDeliveryOrder registers the shadow record for an order that became
// ready for pickup. A partial unique index on the source order id makes the
// operation idempotent: a concurrent or repeated create surfaces as a unique
// violation and the existing record is returned instead. The boolean result
// reports whether a new record was created.
func (d *DeliveryOrder) CreateDeliveryOrder(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, bool, error) {
	if !isValidCreate(create) {
		return nil, false, ErrMissingRequiredFields
	}

	created, err := d.repository.Create(ctx, create)
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) {
			existing, getErr := d.repository.GetActiveByOrderID(ctx, create.OrderID)
			if getErr != nil {
				return nil, false, fmt.Errorf("get existing delivery order: %w", getErr)
			}
			return existing, false, nil
		}
		return nil, false, fmt.Errorf("create delivery order: %w", err)
	}

	d.announce(ctx, created)
	return created, true, nil
}

// announce broadcasts the order to the courier pool and records that it
// reached a live feed. When the process has no feed the record stays
// unannounced and AnnounceUnclaimed delivers it from the delivery service.
func (d *DeliveryOrder) announce(ctx context.Context, order *entities.DeliveryOrder) {
	if !d.notifier.AnnounceNewOrder(announcement(order)) {
		return
	}
	if err := d.repository.MarkAnnounced(ctx, order.ID, time.Now().UTC()); err != nil {
		d.log.Warn("mark delivery order announced",
			logger.NewField("delivery_order_id", order.ID),
			logger.NewField("error", err),
		)
	}
}

// AnnounceUnclaimed broadcasts ready deliveries whose new:order event never
// reached a courier feed, typically ones the kafka worker created. It
// returns the number of orders announced.
func (d *DeliveryOrder) AnnounceUnclaimed(ctx context.Context) (int, error) {
	orders, err := d.repository.ListUnannounced(ctx)
	if err != nil {
		return 0, fmt.Errorf("list unannounced delivery orders: %w", err)
	}

	announced := 0
	for i := range orders {
		order := &orders[i]
		if !d.notifier.AnnounceNewOrder(announcement(order)) {
			return announced, nil
		}
		if err := d.repository.MarkAnnounced(ctx, order.ID, time.Now().UTC()); err != nil {
			return announced, fmt.Errorf("mark delivery order announced: %w", err)
		}
		announced++
	}
	return announced, nil
}

// AcceptDelivery assigns a delivery order to a courier. Both guards run
// inside one serializable transaction: the courier must be available with no
// current order, and the order must still be unassigned and ready.
func (d *DeliveryOrder) AcceptDelivery(ctx context.Context, deliveryOrderID, courierID int64) (*entities.DeliveryOrder, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetByID(ctx, deliveryOrderID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if order.Status != entities.DeliveryReadyForPickup || order.CourierID != nil {
			return ErrOrderNotAvailable
		}

		courier, err := d.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		if courier.CurrentOrderID != nil {
			return ErrCourierBusy
		}
		if courier.Status != entities.CourierAvailable {
			return ErrCourierNotAvailable
		}

		now := time.Now().UTC()
		accepted := entities.DeliveryAccepted
		updated, err = d.repository.Update(ctx, entities.DeliveryOrderModify{
			ID:         &deliveryOrderID,
			Status:     &accepted,
			CourierID:  &courierID,
			AssignedAt: &now,
			AcceptedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		busy := entities.CourierBusy
		_, err = d.courierService.UpdateCourier(ctx, entities.CourierModify{
			ID:             &courierID,
			Status:         &busy,
			CurrentOrderID: &deliveryOrderID,
		})
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// PickupDelivery marks the order picked up and mirrors OutForDelivery into
// the customer service after commit.
func (d *DeliveryOrder) PickupDelivery(ctx context.Context, deliveryOrderID, courierID int64) (*entities.DeliveryOrder, error) {
	now := time.Now().UTC()
	pickedUp := entities.DeliveryPickedUp
	updated, err := d.transition(ctx, deliveryOrderID, courierID, entities.DeliveryOrderModify{
		ID:         &deliveryOrderID,
		Status:     &pickedUp,
		PickedUpAt: &now,
	})
	if err != nil {
		return nil, err
	}

	d.mirrorOrderStatus(ctx, updated.OrderID, entities.OrderOutForDelivery)
	return updated, nil
}

// StartTransit has no external side effects.
func (d *DeliveryOrder) StartTransit(ctx context.Context, deliveryOrderID, courierID int64) (*entities.DeliveryOrder, error) {
	inTransit := entities.DeliveryInTransit
	return d.transition(ctx, deliveryOrderID, courierID, entities.DeliveryOrderModify{
		ID:     &deliveryOrderID,
		Status: &inTransit,
	})
}

// CompleteDelivery finishes the delivery: the OTP must match when the order
// carries one, the duration is measured from acceptance, the courier is
// freed and credited with the delivery fee, and Delivered is mirrored to the
// customer service.
func (d *DeliveryOrder) CompleteDelivery(ctx context.Context, deliveryOrderID, courierID int64, otp string) (*entities.DeliveryOrder, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetByID(ctx, deliveryOrderID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if order.CourierID == nil || *order.CourierID != courierID {
			return ErrNotAssignedCourier
		}
		if !order.Status.CanTransitionTo(entities.DeliveryDelivered) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, entities.DeliveryDelivered)
		}
		if order.DeliveryOTP != "" && otp != order.DeliveryOTP {
			return ErrInvalidOTP
		}

		now := time.Now().UTC()
		var duration int64
		if order.AcceptedAt != nil {
			duration = int64(now.Sub(*order.AcceptedAt).Seconds())
		}

		delivered := entities.DeliveryDelivered
		updated, err = d.repository.Update(ctx, entities.DeliveryOrderModify{
			ID:              &deliveryOrderID,
			Status:          &delivered,
			DeliveredAt:     &now,
			DurationSeconds: &duration,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		courier, err := d.courierService.GetCourier(ctx, courierID)
		if err != nil {
			return fmt.Errorf("get courier: %w", err)
		}
		available := entities.CourierAvailable
		completed := courier.CompletedOrders + 1
		earnings := courier.TotalEarnings + order.DeliveryFee
		_, err = d.courierService.UpdateCourier(ctx, entities.CourierModify{
			ID:              &courierID,
			Status:          &available,
			ClearCurrent:    true,
			CompletedOrders: &completed,
			TotalEarnings:   &earnings,
		})
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.mirrorOrderStatus(ctx, updated.OrderID, entities.OrderDelivered)
	return updated, nil
}

// RejectDelivery releases an assignment back to the pool. Only the assigned
// courier may reject; the order is re-announced so other couriers see it.
func (d *DeliveryOrder) RejectDelivery(ctx context.Context, deliveryOrderID, courierID int64, reason string) (*entities.DeliveryOrder, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetByID(ctx, deliveryOrderID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if order.CourierID == nil || *order.CourierID != courierID {
			return ErrNotAssignedCourier
		}
		if !order.Status.CanTransitionTo(entities.DeliveryReadyForPickup) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, entities.DeliveryReadyForPickup)
		}

		ready := entities.DeliveryReadyForPickup
		updated, err = d.repository.Update(ctx, entities.DeliveryOrderModify{
			ID:              &deliveryOrderID,
			Status:          &ready,
			ClearCourier:    true,
			RejectionReason: &reason,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		available := entities.CourierAvailable
		_, err = d.courierService.UpdateCourier(ctx, entities.CourierModify{
			ID:           &courierID,
			Status:       &available,
			ClearCurrent: true,
		})
		if err != nil {
			return fmt.Errorf("update courier: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	d.announce(ctx, updated)
	return updated, nil
}

// CancelBySourceOrder terminates the active delivery for a cancelled order,
// freeing the courier when one is assigned.
func (d *DeliveryOrder) CancelBySourceOrder(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}

	var updated *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetActiveByOrderID(ctx, orderID)
		if err != nil {
			return fmt.Errorf("get delivery order by order id: %w", err)
		}

		cancelled := entities.DeliveryCancelled
		updated, err = d.repository.Update(ctx, entities.DeliveryOrderModify{
			ID:     &order.ID,
			Status: &cancelled,
		})
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}

		if order.CourierID != nil {
			available := entities.CourierAvailable
			_, err = d.courierService.UpdateCourier(ctx, entities.CourierModify{
				ID:           order.CourierID,
				Status:       &available,
				ClearCurrent: true,
			})
			if err != nil {
				return fmt.Errorf("update courier: %w", err)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}

func (d *DeliveryOrder) GetDeliveryOrder(ctx context.Context, id int64) (*entities.DeliveryOrder, error) {
	order, err := d.repository.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get delivery order: %w", err)
	}
	return order, nil
}

func (d *DeliveryOrder) GetByOrderID(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	if !isValidOrderID(orderID) {
		return nil, ErrInvalidOrderID
	}
	order, err := d.repository.GetActiveByOrderID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("get delivery order by order id: %w", err)
	}
	return order, nil
}

func (d *DeliveryOrder) ListAvailableOrders(ctx context.Context) ([]entities.DeliveryOrder, error) {
	orders, err := d.repository.ListAvailable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list available delivery orders: %w", err)
	}
	return orders, nil
}

// ReleaseStaleAssignments resets orders stuck in accepted beyond the window
// and frees their couriers. Backs the cleanup task.
func (d *DeliveryOrder) ReleaseStaleAssignments(ctx context.Context, olderThan time.Duration) (int64, error) {
	var released int64
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		stale, err := d.repository.ListStaleAccepted(ctx, int64(olderThan.Seconds()))
		if err != nil {
			return fmt.Errorf("list stale assignments: %w", err)
		}

		for i := range stale {
			order := stale[i]
			ready := entities.DeliveryReadyForPickup
			reason := "assignment expired"
			if _, err := d.repository.Update(ctx, entities.DeliveryOrderModify{
				ID:              &order.ID,
				Status:          &ready,
				ClearCourier:    true,
				RejectionReason: &reason,
			}); err != nil {
				return fmt.Errorf("release delivery order: %w", err)
			}

			if order.CourierID != nil {
				available := entities.CourierAvailable
				if _, err := d.courierService.UpdateCourier(ctx, entities.CourierModify{
					ID:           order.CourierID,
					Status:       &available,
					ClearCurrent: true,
				}); err != nil {
					return fmt.Errorf("free courier: %w", err)
				}
			}
			released++
		}
		return nil
	})
	if err != nil {
		return 0, err
	}
	return released, nil
}

// mirrorOrderStatus replicates a local transition into the customer service.
// The local write already committed; a failed mirror is logged and absorbed.
func (d *DeliveryOrder) mirrorOrderStatus(ctx context.Context, orderID string, status entities.OrderStatusType) {
	if err := d.customerGateway.UpdateOrderStatus(ctx, orderID, status); err != nil {
		d.log.With(
			logger.NewField("order", orderID),
			logger.NewField("status", status.String()),
			logger.NewField("error", err),
		).Warn("failed to mirror order status to customer service")
	}
}

func announcement(order *entities.DeliveryOrder) entities.DeliveryAnnouncement {
	return entities.DeliveryAnnouncement{
		DeliveryOrderID:  order.ID,
		OrderID:          order.OrderID,
		OrderNumber:      order.OrderNumber,
		RestaurantName:   order.RestaurantName,
		DeliveryAddress:  order.DeliveryAddress,
		OrderAmount:      order.OrderAmount,
		DeliveryFee:      order.DeliveryFee,
		Distance:         order.Distance,
		EstimatedMinutes: order.EstimatedMinutes,
	}
}

// transition applies an ownership-guarded, table-validated status change.
func (d *DeliveryOrder) transition(ctx context.Context, deliveryOrderID, courierID int64, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	if courierID <= 0 {
		return nil, ErrInvalidCourierID
	}

	var updated *entities.DeliveryOrder
	err := d.txManager.Do(ctx, func(ctx context.Context) error {
		order, err := d.repository.GetByID(ctx, deliveryOrderID)
		if err != nil {
			return fmt.Errorf("get delivery order: %w", err)
		}
		if order.CourierID == nil || *order.CourierID != courierID {
			return ErrNotAssignedCourier
		}
		if !order.Status.CanTransitionTo(*modify.Status) {
			return fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, order.Status, *modify.Status)
		}

		updated, err = d.repository.Update(ctx, modify)
		if err != nil {
			return fmt.Errorf("update delivery order: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return updated, nil
}
