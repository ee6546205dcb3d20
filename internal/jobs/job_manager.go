// Package jobs provides scheduled background tasks built on
// github.com/robfig/cron/v3. The only job today is order dispatch, which
// pairs the oldest unassigned pending order with the nearest free courier
// on every tick.
package jobs

import (
	"fmt"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
type JobManager struct {
	orderDispatchJob *OrderDispatchJob
}

// NewJobManager wires the background jobs to their command handlers.
func NewJobManager(
	dispatchHandler commands.DispatchPendingOrderCommandHandler,
	dispatchSchedule string,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orderDispatchJob: NewOrderDispatchJob(dispatchHandler, dispatchSchedule, logger),
	}
}

// StartAll starts all scheduled jobs.
func (jm *JobManager) StartAll() error {
	if err := jm.orderDispatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start order dispatch job: %w", err)
	}
	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.orderDispatchJob.Stop()
}
