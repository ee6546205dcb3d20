package jobs

import (
	"context"
	"errors"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrderDispatchJob matches pending orders with free couriers on a fixed
// schedule. Each tick dispatches at most one order, so a burst of orders
// drains at one assignment per tick.
type OrderDispatchJob struct {
	handler  commands.DispatchPendingOrderCommandHandler
	cron     *cron.Cron
	schedule string
	logger   *slog.Logger
}

// NewOrderDispatchJob creates the dispatch job. The schedule is a cron
// expression with a seconds field, e.g. "* * * * * *" for every second.
func NewOrderDispatchJob(
	handler commands.DispatchPendingOrderCommandHandler,
	schedule string,
	logger *slog.Logger,
) *OrderDispatchJob {
	return &OrderDispatchJob{
		handler:  handler,
		cron:     cron.New(cron.WithSeconds()),
		schedule: schedule,
		logger:   logger.With("component", "order_dispatch_job"),
	}
}

// Start begins the dispatch job on its schedule.
func (j *OrderDispatchJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewDispatchPendingOrderCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			// An empty queue and a fully busy fleet are normal states,
			// not failures.
			if !errors.Is(err, commands.ErrNoOrderFound) && !errors.Is(err, commands.ErrNoFreeCouriersFound) {
				j.logger.ErrorContext(ctx, "Order dispatch job failed", "error", err)
			}
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Order dispatch job started", "schedule", j.schedule)
	return nil
}

// Stop stops the dispatch job.
func (j *OrderDispatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Order dispatch job stopped")
}
