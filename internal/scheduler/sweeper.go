package scheduler

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/ErlanBelekov/bookstore/internal/metrics"
	"github.com/robfig/cron/v3"
)

const defaultBatchSize = 100

// StaleOrderCanceller is the slice of the order repository the sweeper uses.
type StaleOrderCanceller interface {
	CancelStale(ctx context.Context, cutoff time.Time, limit int) ([]int, error)
}

// Sweeper cancels PENDING, UNPAID orders older than ttl on a cron schedule,
// returning their stock to the shelf.
type Sweeper struct {
	orders    StaleOrderCanceller
	logger    *slog.Logger
	schedule  cron.Schedule
	ttl       time.Duration
	batchSize int
	now       func() time.Time
}

func NewSweeper(orders StaleOrderCanceller, logger *slog.Logger, cronExpr string, ttl time.Duration) (*Sweeper, error) {
	sched, err := cron.ParseStandard(cronExpr)
	if err != nil {
		return nil, fmt.Errorf("parse sweep schedule %q: %w", cronExpr, err)
	}
	return &Sweeper{
		orders:    orders,
		logger:    logger.With("component", "sweeper"),
		schedule:  sched,
		ttl:       ttl,
		batchSize: defaultBatchSize,
		now:       time.Now,
	}, nil
}

// Start blocks until ctx is cancelled, sweeping at every scheduled tick.
func (s *Sweeper) Start(ctx context.Context) {
	s.logger.Info("sweeper started", "ttl", s.ttl, "next_run", s.schedule.Next(s.now()))

	for {
		wait := time.Until(s.schedule.Next(s.now()))
		timer := time.NewTimer(wait)

		select {
		case <-ctx.Done():
			timer.Stop()
			s.logger.Info("sweeper shut down")
			return
		case <-timer.C:
			if _, err := s.Sweep(ctx); err != nil && ctx.Err() == nil {
				s.logger.Error("sweep stale orders", "error", err)
			}
		}
	}
}

// Sweep cancels stale orders in batches until none are left and returns how
// many it cancelled. Orders locked by a concurrent sweeper are left to it.
func (s *Sweeper) Sweep(ctx context.Context) (int, error) {
	start := s.now()
	defer func() {
		metrics.SweeperCycleDuration.Observe(time.Since(start).Seconds())
	}()

	cutoff := start.Add(-s.ttl)
	total := 0
	for {
		ids, err := s.orders.CancelStale(ctx, cutoff, s.batchSize)
		if err != nil {
			return total, fmt.Errorf("cancel stale orders: %w", err)
		}
		total += len(ids)
		metrics.OrdersCancelledTotal.WithLabelValues("expired").Add(float64(len(ids)))
		if len(ids) > 0 {
			s.logger.InfoContext(ctx, "cancelled stale orders", "count", len(ids), "order_ids", ids)
		}
		if len(ids) < s.batchSize {
			break
		}
	}

	metrics.SweeperLastRun.SetToCurrentTime()
	return total, nil
}
