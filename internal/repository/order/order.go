package order

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/service/order"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const orderColumns = `id, order_number, customer_id, customer_name, customer_phone,
		restaurant_id, restaurant_name, restaurant_location, items, status,
		subtotal, delivery_fee, taxes, discount, total,
		delivery_address, distance, estimated_minutes, delivery_otp,
		accepted_at, rejected_at, rejection_reason, rating, review,
		created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, orderEntity entities.Order) (*entities.Order, error) {
	items, err := itemsToJSON(orderEntity.Items)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	query := `INSERT INTO orders (
			order_number, customer_id, customer_name, customer_phone,
			restaurant_id, restaurant_name, restaurant_location, items, status,
			subtotal, delivery_fee, taxes, discount, total,
			delivery_address, distance, estimated_minutes, delivery_otp)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18)
		RETURNING ` + orderColumns

	row := r.querier.QueryRow(
		ctx,
		query,
		orderEntity.OrderNumber,
		orderEntity.CustomerID,
		orderEntity.CustomerName,
		orderEntity.CustomerPhone,
		orderEntity.RestaurantID,
		orderEntity.RestaurantName,
		orderEntity.RestaurantLocation,
		items,
		orderEntity.Status.String(),
		orderEntity.Subtotal,
		orderEntity.DeliveryFee,
		orderEntity.Taxes,
		orderEntity.Discount,
		orderEntity.Total,
		orderEntity.DeliveryAddress,
		orderEntity.Distance,
		orderEntity.EstimatedMinutes,
		orderEntity.DeliveryOTP,
	)

	orderModel, err := scanOrder(row)
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository create error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) GetByID(ctx context.Context, id string) (*entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE id = $1`

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository get error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) Update(ctx context.Context, orderModifyEntity entities.OrderModify) (*entities.Order, error) {
	orderModifyModel := FromDomainModify(&orderModifyEntity)

	builder := qb.
		Update("orders")

	if orderModifyModel.Status != nil {
		builder = builder.Set("status", orderModifyModel.Status)
	}
	if orderModifyModel.AcceptedAt != nil {
		builder = builder.Set("accepted_at", orderModifyModel.AcceptedAt)
	}
	if orderModifyModel.RejectedAt != nil {
		builder = builder.Set("rejected_at", orderModifyModel.RejectedAt)
	}
	if orderModifyModel.RejectionReason != nil {
		builder = builder.Set("rejection_reason", orderModifyModel.RejectionReason)
	}
	if orderModifyModel.Rating != nil {
		builder = builder.Set("rating", orderModifyModel.Rating)
	}
	if orderModifyModel.Review != nil {
		builder = builder.Set("review", orderModifyModel.Review)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": orderModifyModel.ID}).
		Suffix("RETURNING " + orderColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	orderModel, err := scanOrder(r.querier.QueryRow(ctx, query, args...))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, order.ErrOrderNotFound
		}
		return nil, fmt.Errorf("unexpected order repository update error: %w", err)
	}

	return ToDomain(orderModel)
}

func (r *Repository) ListByStatus(ctx context.Context, status entities.OrderStatusType) ([]entities.Order, error) {
	query := `SELECT ` + orderColumns + `
		FROM orders
		WHERE status = $1
		ORDER BY created_at`

	rows, err := r.querier.Query(ctx, query, status.String())
	if err != nil {
		return nil, fmt.Errorf("unexpected order repository list error: %w", err)
	}
	defer rows.Close()

	var orders []entities.Order
	for rows.Next() {
		orderModel, err := scanOrder(rows)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository scan error: %w", err)
		}
		orderEntity, err := ToDomain(orderModel)
		if err != nil {
			return nil, fmt.Errorf("unexpected order repository convert error: %w", err)
		}
		orders = append(orders, *orderEntity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected order repository rows error: %w", err)
	}

	return orders, nil
}

func scanOrder(row pgx.Row) (*OrderDB, error) {
	var orderModel OrderDB
	err := row.Scan(
		&orderModel.ID,
		&orderModel.OrderNumber,
		&orderModel.CustomerID,
		&orderModel.CustomerName,
		&orderModel.CustomerPhone,
		&orderModel.RestaurantID,
		&orderModel.RestaurantName,
		&orderModel.RestaurantLocation,
		&orderModel.Items,
		&orderModel.Status,
		&orderModel.Subtotal,
		&orderModel.DeliveryFee,
		&orderModel.Taxes,
		&orderModel.Discount,
		&orderModel.Total,
		&orderModel.DeliveryAddress,
		&orderModel.Distance,
		&orderModel.EstimatedMinutes,
		&orderModel.DeliveryOTP,
		&orderModel.AcceptedAt,
		&orderModel.RejectedAt,
		&orderModel.RejectionReason,
		&orderModel.Rating,
		&orderModel.Review,
		&orderModel.CreatedAt,
		&orderModel.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &orderModel, nil
}
