package outbox

import (
	"context"
	"fmt"

	"fooddelivery/internal/entities"
)

const outboxColumns = `id, order_id, order_status, payload, state, attempts, last_error, created_at, dispatched_at`

type Repository struct {
	querier Querier
}

func New(querier Querier) *Repository {
	return &Repository{
		querier: querier,
	}
}

func (r *Repository) Append(ctx context.Context, event entities.OutboxEvent) error {
	query := `INSERT INTO order_outbox (order_id, order_status, payload, state)
		VALUES ($1, $2, $3, $4)`

	_, err := r.querier.Exec(
		ctx,
		query,
		event.OrderID,
		event.OrderStatus.String(),
		event.Payload,
		entities.OutboxPending.String(),
	)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository append error: %w", err)
	}

	return nil
}

// ListPending returns pending events oldest-first so dispatch preserves the
// per-order status order.
func (r *Repository) ListPending(ctx context.Context, limit int) ([]entities.OutboxEvent, error) {
	query := `SELECT ` + outboxColumns + `
		FROM order_outbox
		WHERE state = $1
		ORDER BY id
		LIMIT $2`

	rows, err := r.querier.Query(ctx, query, entities.OutboxPending.String(), limit)
	if err != nil {
		return nil, fmt.Errorf("unexpected outbox repository list error: %w", err)
	}
	defer rows.Close()

	var events []entities.OutboxEvent
	for rows.Next() {
		var eventModel OutboxEventDB
		err := rows.Scan(
			&eventModel.ID,
			&eventModel.OrderID,
			&eventModel.OrderStatus,
			&eventModel.Payload,
			&eventModel.State,
			&eventModel.Attempts,
			&eventModel.LastError,
			&eventModel.CreatedAt,
			&eventModel.DispatchedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("unexpected outbox repository scan error: %w", err)
		}
		events = append(events, *ToDomain(&eventModel))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("unexpected outbox repository rows error: %w", err)
	}

	return events, nil
}

func (r *Repository) MarkDispatched(ctx context.Context, id int64) error {
	query := `UPDATE order_outbox
		SET state = $1, dispatched_at = NOW(), last_error = ''
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, entities.OutboxDispatched.String(), id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository mark error: %w", err)
	}

	return nil
}

// RecordFailure keeps the event pending and stores the last delivery error
// so stuck events are visible from the table itself.
func (r *Repository) RecordFailure(ctx context.Context, id int64, lastError string) error {
	query := `UPDATE order_outbox
		SET attempts = attempts + 1, last_error = $1
		WHERE id = $2`

	_, err := r.querier.Exec(ctx, query, lastError, id)
	if err != nil {
		return fmt.Errorf("unexpected outbox repository record failure error: %w", err)
	}

	return nil
}
