// Code generated by Wire. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package app

import (
	"context"
	"fooddelivery/internal/gateway/rest/customer"
	"fooddelivery/internal/gateway/rest/delivery"
	"fooddelivery/internal/gateway/rest/restaurant"
	"fooddelivery/internal/handlers/rest/courier_get"
	"fooddelivery/internal/handlers/rest/courier_post"
	"fooddelivery/internal/handlers/rest/courier_put"
	"fooddelivery/internal/handlers/rest/couriers_get"
	"fooddelivery/internal/handlers/rest/deliveryorder_accept_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_complete_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_create_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_pickup_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_reject_post"
	"fooddelivery/internal/handlers/rest/deliveryorder_transit_post"
	"fooddelivery/internal/handlers/rest/deliveryorders_available_get"
	"fooddelivery/internal/handlers/rest/order_cancel_post"
	"fooddelivery/internal/handlers/rest/order_create_post"
	"fooddelivery/internal/handlers/rest/order_get"
	"fooddelivery/internal/handlers/rest/order_rate_post"
	"fooddelivery/internal/handlers/rest/order_status_put"
	"fooddelivery/internal/handlers/rest/orders_ready_get"
	"fooddelivery/internal/handlers/tasks/assignment_cleanup"
	"fooddelivery/internal/handlers/tasks/outbox_dispatch"
	"fooddelivery/internal/handlers/tasks/ready_order_poll"
	"fooddelivery/internal/handlers/ws"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/factory/status_handle"
	"fooddelivery/internal/pkg/kafka"
	"fooddelivery/internal/repository/courier"
	"fooddelivery/internal/repository/deliveryorder"
	"fooddelivery/internal/repository/order"
	"fooddelivery/internal/repository/outbox"
	courier2 "fooddelivery/internal/service/courier"
	deliveryorder2 "fooddelivery/internal/service/deliveryorder"
	order2 "fooddelivery/internal/service/order"
	"fooddelivery/internal/service/ordersync"
	"fooddelivery/pkg/background"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/querier"
	"fooddelivery/pkg/tx"
	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/jackc/pgx/v5/pgxpool"
	"net/http"
)

// Injectors from wire.go:

func InitializeCustomerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, producer *kafka.Producer, httpClient *http.Client, cfg *config.Config) (*CustomerApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideOrderRepository(querier)
	outboxRepository := provideOutboxRepository(querier)
	hub := provideHub(log)
	manager := provideTxManager(pool)
	order := provideServiceOrder(repository, outboxRepository, hub, manager)
	gateway := provideDeliveryGateway(cfg, httpClient)
	restaurantGateway := provideRestaurantGateway(cfg, httpClient)
	outboxDispatch := provideOutboxDispatchTask(log, outboxRepository, producer, gateway, restaurantGateway, cfg)
	v := provideCustomerTaskList(outboxDispatch)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	customerApp := &CustomerApp{
		ServiceOrder:      order,
		Hub:               hub,
		BackgroundWorkers: worker,
	}
	return customerApp, nil
}

func InitializeDeliveryApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, httpClient *http.Client, cfg *config.Config) (*DeliveryApp, error) {
	querier := provideQuerier(pool, getter)
	repository := provideCourierRepository(querier)
	manager := provideTxManager(pool)
	courier := provideServiceCourier(repository, manager)
	deliveryorderRepository := provideDeliveryOrderRepository(querier)
	gateway := provideCustomerGateway(cfg, httpClient)
	hub := provideHub(log)
	deliveryOrder := provideServiceDeliveryOrder(log, deliveryorderRepository, courier, gateway, hub, manager)
	readyOrderPoll := provideReadyOrderPollTask(log, gateway, deliveryOrder, cfg)
	assignmentCleanup := provideAssignmentCleanupTask(log, deliveryOrder, cfg)
	v := provideDeliveryTaskList(readyOrderPoll, assignmentCleanup)
	worker, err := provideBackgroundWorkers(ctx, log, v)
	if err != nil {
		return nil, err
	}
	deliveryApp := &DeliveryApp{
		ServiceCourier:       courier,
		ServiceDeliveryOrder: deliveryOrder,
		Hub:                  hub,
		BackgroundWorkers:    worker,
	}
	return deliveryApp, nil
}

func InitializeKafkaWorkerApp(ctx context.Context, log logger.Logger, pool *pgxpool.Pool, getter *pgxv5.CtxGetter, httpClient *http.Client, cfg *config.Config) (*KafkaWorkerApp, error) {
	gateway := provideCustomerGateway(cfg, httpClient)
	querier := provideQuerier(pool, getter)
	repository := provideDeliveryOrderRepository(querier)
	courierRepository := provideCourierRepository(querier)
	manager := provideTxManager(pool)
	courier := provideServiceCourier(courierRepository, manager)
	silentNotifier := _wireSilentNotifierValue
	deliveryOrder := provideServiceDeliveryOrder(log, repository, courier, gateway, silentNotifier, manager)
	statusHandlerFactory := provideStatusHandlerFactory(deliveryOrder)
	service := provideOrderSyncService(gateway, statusHandlerFactory)
	kafkaWorkerApp := &KafkaWorkerApp{
		OrderSyncService: service,
	}
	return kafkaWorkerApp, nil
}

var (
	_wireSilentNotifierValue = ws.SilentNotifier{}
)

// wire.go:

// CustomerApp wires the customer-facing service: order lifecycle, the
// realtime hub and the outbox dispatcher.
type CustomerApp struct {
	ServiceOrder      ServiceOrder
	Hub               *ws.Hub
	BackgroundWorkers *background.Worker
}

type ServiceOrder interface {
	order_create_post.Service
	order_get.Service
	order_status_put.Service
	order_cancel_post.Service
	order_rate_post.Service
	orders_ready_get.Service
}

// DeliveryApp wires the courier-facing service: couriers, delivery orders,
// the realtime hub and the reconciliation tasks.
type DeliveryApp struct {
	ServiceCourier       ServiceCourier
	ServiceDeliveryOrder ServiceDeliveryOrder
	Hub                  *ws.Hub
	BackgroundWorkers    *background.Worker
}

type ServiceCourier interface {
	courier_get.Service
	courier_post.Service
	courier_put.Service
	couriers_get.Service
}

type ServiceDeliveryOrder interface {
	deliveryorder_create_post.Service
	deliveryorders_available_get.Service
	deliveryorder_accept_post.Service
	deliveryorder_pickup_post.Service
	deliveryorder_transit_post.Service
	deliveryorder_complete_post.Service
	deliveryorder_reject_post.Service
}

// KafkaWorkerApp wires the order.status.changed consumer on the delivery
// side. The worker serves no websocket routes, so the delivery order
// service gets a silent notifier: orders it creates stay unannounced and
// the delivery service sweep broadcasts them to connected couriers.
type KafkaWorkerApp struct {
	OrderSyncService *ordersync.Service
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier2 *querier.Querier) *courier.Repository {
	return courier.New(querier2)
}

func provideOrderRepository(querier2 *querier.Querier) *order.Repository {
	return order.New(querier2)
}

func provideOutboxRepository(querier2 *querier.Querier) *outbox.Repository {
	return outbox.New(querier2)
}

func provideDeliveryOrderRepository(querier2 *querier.Querier) *deliveryorder.Repository {
	return deliveryorder.New(querier2)
}

func provideHub(log logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

func provideServiceCourier(
	repository courier2.Repository,
	txManager courier2.TxManager,
) *courier2.Courier {
	return courier2.New(repository, txManager)
}

func provideServiceOrder(
	repository order2.Repository, outbox2 order2.OutboxRepository,

	notifier order2.Notifier,
	txManager order2.TxManager,
) *order2.Order {
	return order2.New(repository, outbox2, notifier, txManager)
}

func provideServiceDeliveryOrder(
	log logger.Logger,
	repository deliveryorder2.Repository,
	courierSvc deliveryorder2.CourierService,
	customerGw deliveryorder2.CustomerGateway,
	notifier deliveryorder2.Notifier,
	txManager deliveryorder2.TxManager,
) *deliveryorder2.DeliveryOrder {
	return deliveryorder2.New(log, repository, courierSvc, customerGw, notifier, txManager)
}

func provideOrderSyncService(
	orderGw ordersync.OrderGateway,
	handlerFactory ordersync.HandlerFactory,
) *ordersync.Service {
	return ordersync.New(orderGw, handlerFactory)
}

func provideStatusHandlerFactory(deliveryOrderSvc ordersync.DeliveryOrderService) *status_handle.StatusHandlerFactory {
	return status_handle.NewStatusHandlerFactory(deliveryOrderSvc)
}

func provideCustomerGateway(cfg *config.Config, client *http.Client) *customer.Gateway {
	return customer.New(cfg.Services.CustomerBaseURL, client)
}

func provideDeliveryGateway(cfg *config.Config, client *http.Client) *delivery.Gateway {
	return delivery.New(cfg.Services.DeliveryBaseURL, client)
}

func provideRestaurantGateway(cfg *config.Config, client *http.Client) *restaurant.Gateway {
	return restaurant.New(cfg.Services.RestaurantBaseURL, client)
}

func provideOutboxDispatchTask(
	log logger.Logger, outbox2 outbox_dispatch.OutboxRepository,

	publisher outbox_dispatch.EventPublisher, delivery2 outbox_dispatch.DeliveryGateway, restaurant2 outbox_dispatch.RestaurantGateway,

	cfg *config.Config,
) *outbox_dispatch.OutboxDispatch {
	return outbox_dispatch.New(
		log, outbox2, publisher, delivery2, restaurant2, cfg.Tasks.OutboxDispatchInterval,
		cfg.Tasks.OutboxDispatchBatchSize,
	)
}

func provideReadyOrderPollTask(
	log logger.Logger,
	gateway ready_order_poll.OrderGateway,
	service ready_order_poll.DeliveryOrderService,
	cfg *config.Config,
) *ready_order_poll.ReadyOrderPoll {
	return ready_order_poll.New(log, gateway, service, cfg.Tasks.ReadyOrderPollInterval)
}

func provideAssignmentCleanupTask(
	log logger.Logger,
	service assignment_cleanup.Service,
	cfg *config.Config,
) *assignment_cleanup.AssignmentCleanup {
	return assignment_cleanup.New(log, service, cfg.Tasks.AssignmentCleanupInterval, cfg.Tasks.AssignmentStaleAfter)
}

func provideCustomerTaskList(
	outboxDispatchTask *outbox_dispatch.OutboxDispatch,
) []background.Task {
	return []background.Task{
		outboxDispatchTask,
	}
}

func provideDeliveryTaskList(
	readyOrderPollTask *ready_order_poll.ReadyOrderPoll,
	assignmentCleanupTask *assignment_cleanup.AssignmentCleanup,
) []background.Task {
	return []background.Task{
		readyOrderPollTask,
		assignmentCleanupTask,
	}
}

func provideBackgroundWorkers(ctx context.Context, log logger.Logger, tasks []background.Task) (*background.Worker, error) {
	return background.New(ctx, log, tasks)
}
