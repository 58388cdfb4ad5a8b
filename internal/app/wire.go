//go:build wireinject
// +build wireinject

package app

import (
	"context"
	"net/http"

	customerGateway "fooddelivery/internal/gateway/rest/customer"
	deliveryGateway "fooddelivery/internal/gateway/rest/delivery"
	restaurantGateway "fooddelivery/internal/gateway/rest/restaurant"
	courier_get "fooddelivery/internal/handlers/rest/courier_get"
	courier_post "fooddelivery/internal/handlers/rest/courier_post"
	courier_put "fooddelivery/internal/handlers/rest/courier_put"
	couriers_get "fooddelivery/internal/handlers/rest/couriers_get"
	deliveryorder_accept_post "fooddelivery/internal/handlers/rest/deliveryorder_accept_post"
	deliveryorder_complete_post "fooddelivery/internal/handlers/rest/deliveryorder_complete_post"
	deliveryorder_create_post "fooddelivery/internal/handlers/rest/deliveryorder_create_post"
	deliveryorder_pickup_post "fooddelivery/internal/handlers/rest/deliveryorder_pickup_post"
	deliveryorder_reject_post "fooddelivery/internal/handlers/rest/deliveryorder_reject_post"
	deliveryorder_transit_post "fooddelivery/internal/handlers/rest/deliveryorder_transit_post"
	deliveryorders_available_get "fooddelivery/internal/handlers/rest/deliveryorders_available_get"
	order_cancel_post "fooddelivery/internal/handlers/rest/order_cancel_post"
	order_create_post "fooddelivery/internal/handlers/rest/order_create_post"
	order_get "fooddelivery/internal/handlers/rest/order_get"
	order_rate_post "fooddelivery/internal/handlers/rest/order_rate_post"
	order_status_put "fooddelivery/internal/handlers/rest/order_status_put"
	orders_ready_get "fooddelivery/internal/handlers/rest/orders_ready_get"
	"fooddelivery/internal/handlers/tasks/assignment_cleanup"
	"fooddelivery/internal/handlers/tasks/outbox_dispatch"
	"fooddelivery/internal/handlers/tasks/ready_order_poll"
	"fooddelivery/internal/handlers/ws"
	"fooddelivery/internal/pkg/config"
	"fooddelivery/internal/pkg/factory/status_handle"
	"fooddelivery/internal/pkg/kafka"

	courierRepo "fooddelivery/internal/repository/courier"
	deliveryorderRepo "fooddelivery/internal/repository/deliveryorder"
	orderRepo "fooddelivery/internal/repository/order"
	outboxRepo "fooddelivery/internal/repository/outbox"
	courierService "fooddelivery/internal/service/courier"
	deliveryorderService "fooddelivery/internal/service/deliveryorder"
	orderService "fooddelivery/internal/service/order"
	"fooddelivery/internal/service/ordersync"

	"fooddelivery/pkg/background"
	"fooddelivery/pkg/logger"
	"fooddelivery/pkg/querier"
	"fooddelivery/pkg/tx"

	"github.com/avito-tech/go-transaction-manager/pgxv5"
	"github.com/google/wire"
	"github.com/jackc/pgx/v5/pgxpool"
)

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

func InitializeCustomerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	producer *kafka.Producer,
	httpClient *http.Client,
	cfg *config.Config,
) (*CustomerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideOrderRepository,
		provideOutboxRepository,

		provideHub,
		provideServiceOrder,

		provideDeliveryGateway,
		provideRestaurantGateway,

		provideOutboxDispatchTask,
		provideCustomerTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(CustomerApp), "*"),

		wire.Bind(new(ServiceOrder), new(*orderService.Order)),

		wire.Bind(new(orderService.Repository), new(*orderRepo.Repository)),
		wire.Bind(new(orderService.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(orderService.Notifier), new(*ws.Hub)),
		wire.Bind(new(orderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(outbox_dispatch.OutboxRepository), new(*outboxRepo.Repository)),
		wire.Bind(new(outbox_dispatch.EventPublisher), new(*kafka.Producer)),
		wire.Bind(new(outbox_dispatch.DeliveryGateway), new(*deliveryGateway.Gateway)),
		wire.Bind(new(outbox_dispatch.RestaurantGateway), new(*restaurantGateway.Gateway)),
	)
	return &CustomerApp{}, nil
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

func InitializeDeliveryApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*DeliveryApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideDeliveryOrderRepository,

		provideHub,
		provideServiceCourier,
		provideServiceDeliveryOrder,

		provideCustomerGateway,

		provideReadyOrderPollTask,
		provideAssignmentCleanupTask,
		provideDeliveryTaskList,
		provideBackgroundWorkers,

		wire.Struct(new(DeliveryApp), "*"),

		wire.Bind(new(ServiceCourier), new(*courierService.Courier)),
		wire.Bind(new(ServiceDeliveryOrder), new(*deliveryorderService.DeliveryOrder)),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryorderService.Repository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(deliveryorderService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(deliveryorderService.CustomerGateway), new(*customerGateway.Gateway)),
		wire.Bind(new(deliveryorderService.Notifier), new(*ws.Hub)),
		wire.Bind(new(deliveryorderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ready_order_poll.OrderGateway), new(*customerGateway.Gateway)),
		wire.Bind(new(ready_order_poll.DeliveryOrderService), new(*deliveryorderService.DeliveryOrder)),
		wire.Bind(new(assignment_cleanup.Service), new(*deliveryorderService.DeliveryOrder)),
	)
	return &DeliveryApp{}, nil
}

// KafkaWorkerApp wires the order.status.changed consumer on the delivery
// side. The worker serves no websocket routes, so the delivery order
// service gets a silent notifier: orders it creates stay unannounced and
// the delivery service sweep broadcasts them to connected couriers.
type KafkaWorkerApp struct {
	OrderSyncService *ordersync.Service
}

func InitializeKafkaWorkerApp(
	ctx context.Context,
	log logger.Logger,
	pool *pgxpool.Pool,
	getter *pgxv5.CtxGetter,
	httpClient *http.Client,
	cfg *config.Config,
) (*KafkaWorkerApp, error) {
	wire.Build(
		provideTxManager,
		provideQuerier,

		provideCourierRepository,
		provideDeliveryOrderRepository,

		provideServiceCourier,
		provideServiceDeliveryOrder,

		provideCustomerGateway,
		provideStatusHandlerFactory,
		provideOrderSyncService,

		wire.Value(ws.SilentNotifier{}),

		wire.Bind(new(courierService.Repository), new(*courierRepo.Repository)),
		wire.Bind(new(courierService.TxManager), new(*tx.Manager)),

		wire.Bind(new(deliveryorderService.Repository), new(*deliveryorderRepo.Repository)),
		wire.Bind(new(deliveryorderService.CourierService), new(*courierService.Courier)),
		wire.Bind(new(deliveryorderService.CustomerGateway), new(*customerGateway.Gateway)),
		wire.Bind(new(deliveryorderService.Notifier), new(ws.SilentNotifier)),
		wire.Bind(new(deliveryorderService.TxManager), new(*tx.Manager)),

		wire.Bind(new(ordersync.OrderGateway), new(*customerGateway.Gateway)),
		wire.Bind(new(ordersync.DeliveryOrderService), new(*deliveryorderService.DeliveryOrder)),
		wire.Bind(new(ordersync.HandlerFactory), new(*status_handle.StatusHandlerFactory)),

		wire.Struct(new(KafkaWorkerApp), "*"),
	)
	return nil, nil
}

func provideTxManager(pool *pgxpool.Pool) *tx.Manager {
	return tx.New(pool)
}

func provideQuerier(pool *pgxpool.Pool, getter *pgxv5.CtxGetter) *querier.Querier {
	return querier.New(pool, getter)
}

func provideCourierRepository(querier *querier.Querier) *courierRepo.Repository {
	return courierRepo.New(querier)
}

func provideOrderRepository(querier *querier.Querier) *orderRepo.Repository {
	return orderRepo.New(querier)
}

func provideOutboxRepository(querier *querier.Querier) *outboxRepo.Repository {
	return outboxRepo.New(querier)
}

func provideDeliveryOrderRepository(querier *querier.Querier) *deliveryorderRepo.Repository {
	return deliveryorderRepo.New(querier)
}

func provideHub(log logger.Logger) *ws.Hub {
	return ws.NewHub(log)
}

func provideServiceCourier(
	repository courierService.Repository,
	txManager courierService.TxManager,
) *courierService.Courier {
	return courierService.New(repository, txManager)
}

func provideServiceOrder(
	repository orderService.Repository,
	outbox orderService.OutboxRepository,
	notifier orderService.Notifier,
	txManager orderService.TxManager,
) *orderService.Order {
	return orderService.New(repository, outbox, notifier, txManager)
}

func provideServiceDeliveryOrder(
	log logger.Logger,
	repository deliveryorderService.Repository,
	courierSvc deliveryorderService.CourierService,
	customerGw deliveryorderService.CustomerGateway,
	notifier deliveryorderService.Notifier,
	txManager deliveryorderService.TxManager,
) *deliveryorderService.DeliveryOrder {
	return deliveryorderService.New(log, repository, courierSvc, customerGw, notifier, txManager)
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

func provideCustomerGateway(cfg *config.Config, client *http.Client) *customerGateway.Gateway {
	return customerGateway.New(cfg.Services.CustomerBaseURL, client)
}

func provideDeliveryGateway(cfg *config.Config, client *http.Client) *deliveryGateway.Gateway {
	return deliveryGateway.New(cfg.Services.DeliveryBaseURL, client)
}

func provideRestaurantGateway(cfg *config.Config, client *http.Client) *restaurantGateway.Gateway {
	return restaurantGateway.New(cfg.Services.RestaurantBaseURL, client)
}

func provideOutboxDispatchTask(
	log logger.Logger,
	outbox outbox_dispatch.OutboxRepository,
	publisher outbox_dispatch.EventPublisher,
	delivery outbox_dispatch.DeliveryGateway,
	restaurant outbox_dispatch.RestaurantGateway,
	cfg *config.Config,
) *outbox_dispatch.OutboxDispatch {
	return outbox_dispatch.New(
		log,
		outbox,
		publisher,
		delivery,
		restaurant,
		cfg.Tasks.OutboxDispatchInterval,
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
