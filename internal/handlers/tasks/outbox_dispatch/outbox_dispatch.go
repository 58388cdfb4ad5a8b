package outbox_dispatch

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"fooddelivery/internal/dto"
	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

const (
	outcomeOK    = "ok"
	outcomeError = "error"

	sinkKafka      = "kafka"
	sinkDelivery   = "delivery"
	sinkRestaurant = "restaurant"
)

// OutboxDispatch drains pending outbox events every tick. An event is
// marked dispatched only when every sink for its status succeeded; anything
// less records the failure and leaves the event pending for the next tick.
// Receivers are idempotent, so systematic redelivery is safe.
type OutboxDispatch struct {
	log        taskLogger
	outbox     OutboxRepository
	publisher  EventPublisher
	delivery   DeliveryGateway
	restaurant RestaurantGateway
	interval   time.Duration
	batchSize  int
}

func New(
	log taskLogger,
	outbox OutboxRepository,
	publisher EventPublisher,
	delivery DeliveryGateway,
	restaurant RestaurantGateway,
	interval time.Duration,
	batchSize int,
) *OutboxDispatch {
	return &OutboxDispatch{
		log:        log,
		outbox:     outbox,
		publisher:  publisher,
		delivery:   delivery,
		restaurant: restaurant,
		interval:   interval,
		batchSize:  batchSize,
	}
}

func (o *OutboxDispatch) TTL() time.Duration {
	return o.interval
}

func (o *OutboxDispatch) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	events, err := o.outbox.ListPending(ctxWithTimeout, o.batchSize)
	if err != nil {
		return fmt.Errorf("list pending outbox events: %w", err)
	}
	PendingEvents.Set(float64(len(events)))

	for i := range events {
		event := &events[i]
		if err := o.dispatch(ctxWithTimeout, event); err != nil {
			o.log.With(
				logger.NewField("event_id", event.ID),
				logger.NewField("order_id", event.OrderID),
				logger.NewField("status", event.OrderStatus),
				logger.NewField("attempts", event.Attempts+1),
				logger.NewField("error", err),
			).Warn("outbox event delivery failed, will retry")

			if err := o.outbox.RecordFailure(ctxWithTimeout, event.ID, err.Error()); err != nil {
				return fmt.Errorf("record outbox failure: %w", err)
			}
			continue
		}

		if err := o.outbox.MarkDispatched(ctxWithTimeout, event.ID); err != nil {
			return fmt.Errorf("mark outbox event dispatched: %w", err)
		}
	}

	return nil
}

func (o *OutboxDispatch) Info() string {
	return "outbox dispatch"
}

func (o *OutboxDispatch) dispatch(ctx context.Context, event *entities.OutboxEvent) error {
	if err := o.publishKafka(ctx, event); err != nil {
		return fmt.Errorf("publish status event: %w", err)
	}

	switch event.OrderStatus {
	case entities.OrderReady:
		if err := o.createDeliveryOrder(ctx, event); err != nil {
			return fmt.Errorf("create delivery order: %w", err)
		}
	case entities.OrderOutForDelivery, entities.OrderDelivered:
		if err := o.syncRestaurant(ctx, event); err != nil {
			return fmt.Errorf("sync restaurant: %w", err)
		}
	}

	return nil
}

func (o *OutboxDispatch) publishKafka(ctx context.Context, event *entities.OutboxEvent) error {
	err := o.publisher.PublishOrderStatusChanged(ctx, dto.OrderStatusChangedEvent{
		OrderID: event.OrderID,
		Status:  event.OrderStatus.String(),
	})
	DispatchTotal.WithLabelValues(sinkKafka, outcome(err)).Inc()
	return err
}

func (o *OutboxDispatch) createDeliveryOrder(ctx context.Context, event *entities.OutboxEvent) error {
	var req dto.DeliveryOrderCreateRequest
	if err := json.Unmarshal(event.Payload, &req); err != nil {
		DispatchTotal.WithLabelValues(sinkDelivery, outcomeError).Inc()
		return fmt.Errorf("unmarshal delivery snapshot: %w", err)
	}

	err := o.delivery.CreateDeliveryOrder(ctx, req)
	DispatchTotal.WithLabelValues(sinkDelivery, outcome(err)).Inc()
	return err
}

func (o *OutboxDispatch) syncRestaurant(ctx context.Context, event *entities.OutboxEvent) error {
	err := o.restaurant.SyncOrderStatus(ctx, event.OrderID, event.OrderStatus)
	DispatchTotal.WithLabelValues(sinkRestaurant, outcome(err)).Inc()
	return err
}

func outcome(err error) string {
	if err != nil {
		return outcomeError
	}
	return outcomeOK
}
