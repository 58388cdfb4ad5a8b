package ready_order_poll

import (
	"context"
	"errors"
	"syscall"
	"time"

	"fooddelivery/internal/entities"
	"fooddelivery/pkg/logger"
)

// ReadyOrderPoll is the reconciliation safety net behind the callback and
// the kafka consumer: every tick it asks the customer service for orders in
// Ready status and creates any delivery order that is still missing.
// Creation is idempotent, so orders already handed over are absorbed. The
// same tick re-broadcasts deliveries that were created in a process without
// a courier feed and were never announced.
type ReadyOrderPoll struct {
	log      taskLogger
	gateway  OrderGateway
	service  DeliveryOrderService
	interval time.Duration
}

func New(log taskLogger, gateway OrderGateway, service DeliveryOrderService, interval time.Duration) *ReadyOrderPoll {
	return &ReadyOrderPoll{
		log:      log,
		gateway:  gateway,
		service:  service,
		interval: interval,
	}
}

func (r *ReadyOrderPoll) TTL() time.Duration {
	return r.interval
}

func (r *ReadyOrderPoll) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, r.interval)
	defer cancel()

	if err := r.reconcile(ctxWithTimeout); err != nil {
		return err
	}
	return r.announceUnclaimed(ctxWithTimeout)
}

func (r *ReadyOrderPoll) reconcile(ctx context.Context) error {
	orders, err := r.gateway.ListReadyOrders(ctx)
	if err != nil {
		// The customer service being down is an expected condition for a
		// reconciliation poller, not an error worth alerting on.
		if errors.Is(err, syscall.ECONNREFUSED) {
			return nil
		}
		return err
	}

	var created int
	for i := range orders {
		order := &orders[i]
		_, fresh, err := r.service.CreateDeliveryOrder(ctx, deliveryCreate(order))
		if err != nil {
			r.log.With(
				logger.NewField("order_id", order.ID),
				logger.NewField("error", err),
			).Error("reconcile ready order")
			continue
		}
		if fresh {
			created++
		}
	}

	if created > 0 {
		r.log.With(
			logger.NewField("created", created),
		).Info("ready order reconciliation")
	}

	return nil
}

// announceUnclaimed re-broadcasts deliveries whose new:order event never
// reached the courier feed, typically ones created by the kafka worker.
func (r *ReadyOrderPoll) announceUnclaimed(ctx context.Context) error {
	announced, err := r.service.AnnounceUnclaimed(ctx)
	if err != nil {
		return err
	}
	if announced > 0 {
		r.log.With(
			logger.NewField("announced", announced),
		).Info("announced unclaimed deliveries")
	}
	return nil
}

func (r *ReadyOrderPoll) Info() string {
	return "ready order poll"
}

func deliveryCreate(order *entities.Order) entities.DeliveryOrderCreate {
	return entities.DeliveryOrderCreate{
		OrderID:            order.ID,
		OrderNumber:        order.OrderNumber,
		RestaurantID:       order.RestaurantID,
		RestaurantName:     order.RestaurantName,
		RestaurantLocation: order.RestaurantLocation,
		CustomerID:         order.CustomerID,
		CustomerName:       order.CustomerName,
		CustomerPhone:      order.CustomerPhone,
		DeliveryAddress:    order.DeliveryAddress,
		OrderAmount:        order.Total,
		DeliveryFee:        order.DeliveryFee,
		Distance:           order.Distance,
		EstimatedMinutes:   order.EstimatedMinutes,
		DeliveryOTP:        order.DeliveryOTP,
	}
}
