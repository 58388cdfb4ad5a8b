package courier

import (
	"context"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"fooddelivery/internal/entities"
	"fooddelivery/internal/repository"
	"fooddelivery/internal/service/courier"
)

var qb sq.StatementBuilderType = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

const courierColumns = `id, name, phone, status, transport_type, current_order_id, completed_orders, total_earnings, created_at, updated_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Create(ctx context.Context, courierModifyEntity entities.CourierModify) (int64, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)
	query := `INSERT INTO couriers (name, phone, status, transport_type)
		VALUES ($1, $2, $3, $4)
		RETURNING id`

	var id int64
	err := r.querier.QueryRow(
		ctx,
		query,
		courierModifyModel.Name,
		courierModifyModel.Phone,
		courierModifyModel.Status,
		courierModifyModel.TransportType,
	).Scan(&id)
	if err != nil {
		if repository.IsUniqueViolation(err) {
			return 0, courier.ErrConflict
		}
		return 0, fmt.Errorf("unexpected courier repository create error: %w", err)
	}

	return id, nil
}

func (r *Repository) Update(ctx context.Context, courierModifyEntity entities.CourierModify) (*entities.Courier, error) {
	courierModifyModel := FromDomainModify(&courierModifyEntity)

	builder := qb.
		Update("couriers")

	if courierModifyModel.Name != nil {
		builder = builder.Set("name", courierModifyModel.Name)
	}
	if courierModifyModel.Phone != nil {
		builder = builder.Set("phone", courierModifyModel.Phone)
	}
	if courierModifyModel.Status != nil {
		builder = builder.Set("status", courierModifyModel.Status)
	}
	if courierModifyModel.TransportType != nil {
		builder = builder.Set("transport_type", courierModifyModel.TransportType)
	}
	// ClearCurrent wins over CurrentOrderID so a release cannot be shadowed
	if courierModifyModel.ClearCurrent {
		builder = builder.Set("current_order_id", nil)
	} else if courierModifyModel.CurrentOrderID != nil {
		builder = builder.Set("current_order_id", courierModifyModel.CurrentOrderID)
	}
	if courierModifyModel.CompletedOrders != nil {
		builder = builder.Set("completed_orders", courierModifyModel.CompletedOrders)
	}
	if courierModifyModel.TotalEarnings != nil {
		builder = builder.Set("total_earnings", courierModifyModel.TotalEarnings)
	}

	builder = builder.Set("updated_at", sq.Expr("NOW()"))

	builder = builder.
		Where(sq.Eq{"id": courierModifyModel.ID}).
		Suffix("RETURNING " + courierColumns)

	query, args, err := builder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	var courierModel CourierDB
	err = r.querier.QueryRow(ctx, query, args...).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.TransportType,
			&courierModel.CurrentOrderID,
			&courierModel.CompletedOrders,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}

		if repository.IsUniqueViolation(err) {
			return nil, courier.ErrConflict
		}

		return nil, fmt.Errorf("unexpected courier repository update error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetByID(ctx context.Context, id int64) (*entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		WHERE id = $1`

	var courierModel CourierDB
	err := r.querier.QueryRow(ctx, query, id).
		Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.TransportType,
			&courierModel.CurrentOrderID,
			&courierModel.CompletedOrders,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, courier.ErrCourierNotFound
		}
		return nil, fmt.Errorf("unexpected courier repository get error: %w", err)
	}

	return ToDomain(&courierModel), nil
}

func (r *Repository) GetAll(ctx context.Context) ([]entities.Courier, error) {
	query := `SELECT ` + courierColumns + `
		FROM couriers
		ORDER BY id`

	rows, err := r.querier.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("unexpected courier repository get all error: %w", err)
	}
	defer rows.Close()

	var couriers []entities.Courier
	for rows.Next() {
		var courierModel CourierDB
		err := rows.Scan(
			&courierModel.ID,
			&courierModel.Name,
			&courierModel.Phone,
			&courierModel.Status,
			&courierModel.TransportType,
			&courierModel.CurrentOrderID,
			&courierModel.CompletedOrders,
			&courierModel.TotalEarnings,
			&courierModel.CreatedAt,
			&courierModel.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected courier repository scan error: %w", err)
		}
		couriers = append(couriers, *ToDomain(&courierModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected courier repository rows error: %w", err)
	}

	return couriers, nil
}
