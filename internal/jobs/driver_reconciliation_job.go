package jobs

import (
	"context"
	"log/slog"

	"fooddelivery/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// DriverReconciliationJob periodically sweeps busy driver profiles and frees
// the ones whose orders have all reached a terminal status. It is the safety
// net for ties that a crashed process left behind.
type DriverReconciliationJob struct {
	handler commands.ReconcileDriversCommandHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewDriverReconciliationJob creates a job for reconciling driver ties.
// Uses ReconcileDriversCommandHandler to process the sweep every 30 seconds.
func NewDriverReconciliationJob(
	handler commands.ReconcileDriversCommandHandler,
	logger *slog.Logger,
) *DriverReconciliationJob {
	return &DriverReconciliationJob{
		handler: handler,
		cron:    cron.New(cron.WithSeconds()),
		logger:  logger.With("component", "driver_reconciliation_job"),
	}
}

// Start begins the reconciliation job to run every 30 seconds.
func (j *DriverReconciliationJob) Start() error {
	_, err := j.cron.AddFunc("*/30 * * * * *", func() {
		ctx := context.Background()
		cmd := commands.NewReconcileDriversCommand()

		if err := j.handler.Handle(ctx, cmd); err != nil {
			j.logger.ErrorContext(ctx, "Driver reconciliation job failed", "error", err)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Driver reconciliation job started (running every 30 seconds)")
	return nil
}

// Stop stops the reconciliation job.
func (j *DriverReconciliationJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Driver reconciliation job stopped")
}
