package assignment_cleanup

import (
	"context"
	"time"

	"fooddelivery/pkg/logger"
)

type Service interface {
	ReleaseStaleAssignments(ctx context.Context, olderThan time.Duration) (int64, error)
}

// AssignmentCleanup returns deliveries stuck in accepted status to the pool
// and frees their couriers.
type AssignmentCleanup struct {
	log       logger.Logger
	service   Service
	interval  time.Duration
	olderThan time.Duration
}

func New(log logger.Logger, service Service, interval, olderThan time.Duration) *AssignmentCleanup {
	return &AssignmentCleanup{
		log:       log,
		service:   service,
		interval:  interval,
		olderThan: olderThan,
	}
}

func (a *AssignmentCleanup) TTL() time.Duration {
	return a.interval
}

func (a *AssignmentCleanup) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, a.interval)
	defer cancel()

	released, err := a.service.ReleaseStaleAssignments(ctxWithTimeout, a.olderThan)

	if released > 0 {
		a.log.With(
			logger.NewField("released_assignments", released),
		).Info("assignment cleanup")
	}

	return err
}

func (a *AssignmentCleanup) Info() string {
	return "assignment cleanup"
}
