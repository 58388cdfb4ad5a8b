package deliveryorder

import (
	"context"
	"errors"
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/deliveryorder"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const deliveryOrderColumns = `id, order_id, order_number,
		restaurant_id, restaurant_name, restaurant_location,
		customer_id, customer_name, customer_phone, delivery_address,
		order_amount, delivery_fee, distance, estimated_minutes, delivery_otp,
		status, courier_id, rejection_reason, duration_seconds,
		assigned_at, accepted_at, picked_up_at, delivered_at,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

// Create inserts a new delivery order in ready_for_pickup status. The partial
// unique index on order_id over non-terminal rows turns a duplicate callback
// into ErrAlreadyExists instead of a second active delivery.
func (r *Repository) Create(ctx context.Context, create entities.DeliveryOrderCreate) (*entities.DeliveryOrder, error) {
	query := `INSERT INTO delivery_orders (
			order_id, order_number,
			restaurant_id, restaurant_name, restaurant_location,
			customer_id, customer_name, customer_phone, delivery_address,
			order_amount, delivery_fee, distance, estimated_minutes, delivery_otp,
			status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)
		RETURNING ` + deliveryOrderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		create.OrderID,
		create.OrderNumber,
		create.RestaurantID,
		create.RestaurantName,
		create.RestaurantLocation,
		create.CustomerID,
		create.CustomerName,
		create.CustomerPhone,
		create.DeliveryAddress,
		create.OrderAmount,
		create.DeliveryFee,
		create.Distance,
		create.EstimatedMinutes,
		create.DeliveryOTP,
		entities.DeliveryReadyForPickup.String(),
	)

	deliveryOrderModel, err := scanDeliveryOrder(row)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return nil, deliveryorder.ErrAlreadyExists
		}
		return nil, fmt.Errorf("unexpected delivery order repository create error: %w", err)
	}

	return ToDomain(deliveryOrderModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE id = $1`

	deliveryOrderModel, err := scanDeliveryOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryorder.ErrDeliveryOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository get error: %w", err)
	}

	return ToDomain(deliveryOrderModel), nil
}

// GetActiveByOrderID finds the non-terminal delivery order for a source
// order. At most one such row exists thanks to the partial unique index.
func (r *Repository) GetActiveByOrderID(ctx context.Context, orderID string) (*entities.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE order_id = $1 AND status NOT IN ($2, $3)`

	deliveryOrderModel, err := scanDeliveryOrder(r.querier.QueryRow(
		ctx,
		query,
		orderID,
		entities.DeliveryDelivered.String(),
		entities.DeliveryCancelled.String(),
	))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryorder.ErrDeliveryOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository get error: %w", err)
	}

	return ToDomain(deliveryOrderModel), nil
}

func (r *Repository) Update(ctx context.Context, modify entities.DeliveryOrderModify) (*entities.DeliveryOrder, error) {
	deliveryOrderModifyModel := FromDomainModify(&modify)

	builder := qb.
		Update("delivery_orders")

	if deliveryOrderModifyModel.Status != nil {
		builder = builder.Set("status", deliveryOrderModifyModel.Status)
	}
	// ClearCourier wins over CourierID so a release cannot be shadowed
	if deliveryOrderModifyModel.ClearCourier {
		builder = builder.Set("courier_id", nil)
	} else if deliveryOrderModifyModel.CourierID != nil {
		builder = builder.Set("courier_id", deliveryOrderModifyModel.CourierID)
	}
	if deliveryOrderModifyModel.RejectionReason != nil {
		builder = builder.Set("rejection_reason", deliveryOrderModifyModel.RejectionReason)
	}
	if deliveryOrderModifyModel.DurationSeconds != nil {
		builder = builder.Set("duration_seconds", deliveryOrderModifyModel.DurationSeconds)
	}
	if deliveryOrderModifyModel.AssignedAt != nil {
		builder = builder.Set("assigned_at", deliveryOrderModifyModel.AssignedAt)
	}
	if deliveryOrderModifyModel.AcceptedAt != nil {
		builder = builder.Set("accepted_at", deliveryOrderModifyModel.AcceptedAt)
	}
	if deliveryOrderModifyModel.PickedUpAt != nil {
		builder = builder.Set("picked_up_at", deliveryOrderModifyModel.PickedUpAt)
	}
	if deliveryOrderModifyModel.DeliveredAt != nil {
		builder = builder.Set("delivered_at", deliveryOrderModifyModel.DeliveredAt)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": deliveryOrderModifyModel.ID}).
		Suffix("RETURNING " + deliveryOrderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}

	deliveryOrderModel, err := scanDeliveryOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, deliveryorder.ErrDeliveryOrderNotFound
		}
		return nil, fmt.Errorf("unexpected delivery order repository update error: %w", err)
	}

	return ToDomain(deliveryOrderModel), nil
}

func (r *Repository) ListAvailable(ctx context.Context) ([]entities.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE status = $1
		ORDER BY created_at`

	return r.list(ctx, query, entities.DeliveryReadyForPickup.String())
}

// ListStaleAccepted returns assignments a courier accepted but has not
// advanced within olderThanSeconds. They are candidates for release back to
// the pool.
func (r *Repository) ListStaleAccepted(ctx context.Context, olderThanSeconds int64) ([]entities.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE status = $1 AND accepted_at < NOW() - make_interval(secs => $2)
		ORDER BY accepted_at`

	return r.list(ctx, query, entities.DeliveryAccepted.String(), olderThanSeconds)
}

// ListUnannounced returns ready deliveries whose new:order broadcast has
// not reached a courier feed yet, oldest first. Rows created by the kafka
// worker land here until the delivery service sweep announces them.
func (r *Repository) ListUnannounced(ctx context.Context) ([]entities.DeliveryOrder, error) {
	query := `SELECT ` + deliveryOrderColumns + `
		FROM delivery_orders
		WHERE status = $1 AND announced_at IS NULL
		ORDER BY created_at`

	return r.list(ctx, query, entities.DeliveryReadyForPickup.String())
}

func (r *Repository) MarkAnnounced(ctx context.Context, id int64, at time.Time) error {
	query := `UPDATE delivery_orders
		SET announced_at = $2, updated_at = NOW()
		WHERE id = $1`

	if _, err := r.querier.Exec(ctx, query, id, at); err != nil {
		return fmt.Errorf("unexpected delivery order repository mark announced error: %w", err)
	}
	return nil
}

func (r *Repository) list(ctx context.Context, query string, args ...interface{}) ([]entities.DeliveryOrder, error) {
	rows, err := r.querier.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository list error: %w", err)
	}
	defer rows.Close()

	var deliveryOrders []entities.DeliveryOrder
	for rows.Next() {
		deliveryOrderModel, err := scanDeliveryOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected delivery order repository scan error: %w", err)
		}
		deliveryOrders = append(deliveryOrders, *ToDomain(deliveryOrderModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected delivery order repository rows error: %w", err)
	}

	return deliveryOrders, nil
}

func scanDeliveryOrder(row pgx.Row) (*DeliveryOrderDB, error) {
	var deliveryOrderModel DeliveryOrderDB
	err := row.Scan(
		&deliveryOrderModel.ID,
		&deliveryOrderModel.OrderID,
		&deliveryOrderModel.OrderNumber,
		&deliveryOrderModel.RestaurantID,
		&deliveryOrderModel.RestaurantName,
		&deliveryOrderModel.RestaurantLocation,
		&deliveryOrderModel.CustomerID,
		&deliveryOrderModel.CustomerName,
		&deliveryOrderModel.CustomerPhone,
		&deliveryOrderModel.DeliveryAddress,
		&deliveryOrderModel.OrderAmount,
		&deliveryOrderModel.DeliveryFee,
		&deliveryOrderModel.Distance,
		&deliveryOrderModel.EstimatedMinutes,
		&deliveryOrderModel.DeliveryOTP,
		&deliveryOrderModel.Status,
		&deliveryOrderModel.CourierID,
		&deliveryOrderModel.RejectionReason,
		&deliveryOrderModel.DurationSeconds,
		&deliveryOrderModel.AssignedAt,
		&deliveryOrderModel.AcceptedAt,
		&deliveryOrderModel.PickedUpAt,
		&deliveryOrderModel.DeliveredAt,
		&deliveryOrderModel.CreatedAt,
		&deliveryOrderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &deliveryOrderModel, nil
}
