package jobs

import (
	"context"
	"log/slog"

	"routesync/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// StaleShiftCleanupJob periodically purges pending shifts that outlived the
// retention window without ever being confirmed.
type StaleShiftCleanupJob struct {
	handler        commands.PurgeStaleShiftsCommandHandler
	cron           *cron.Cron
	cronSpec       string
	retentionHours int
	logger         *slog.Logger
}

// NewStaleShiftCleanupJob creates the retention sweep job. cronSpec uses the
// six-field format with seconds; retentionHours of zero selects the default
// retention window.
func NewStaleShiftCleanupJob(
	handler commands.PurgeStaleShiftsCommandHandler,
	cronSpec string,
	retentionHours int,
	logger *slog.Logger,
) *StaleShiftCleanupJob {
	return &StaleShiftCleanupJob{
		handler:        handler,
		cron:           cron.New(cron.WithSeconds()),
		cronSpec:       cronSpec,
		retentionHours: retentionHours,
		logger:         logger.With("component", "stale_shift_cleanup_job"),
	}
}

// Start begins the retention sweep on the configured schedule.
func (j *StaleShiftCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.cronSpec, func() {
		ctx := context.Background()

		cmd, err := commands.NewPurgeStaleShiftsCommand(j.retentionHours)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale shift cleanup job misconfigured", "error", err)
			return
		}

		purgedIDs, err := j.handler.Handle(ctx, cmd)
		if err != nil {
			j.logger.ErrorContext(ctx, "Stale shift cleanup job failed", "error", err)
			return
		}

		if len(purgedIDs) > 0 {
			j.logger.InfoContext(ctx, "Purged stale pending shifts",
				"count", len(purgedIDs), "shift_ids", purgedIDs)
		}
	})

	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Stale shift cleanup job started", "schedule", j.cronSpec)
	return nil
}

// Stop stops the retention sweep.
func (j *StaleShiftCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Stale shift cleanup job stopped")
}
