package jobs

import (
	"fmt"
	"log/slog"

	"routesync/internal/core/application/usecases/commands"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	staleShiftCleanupJob *StaleShiftCleanupJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	purgeStaleShiftsHandler commands.PurgeStaleShiftsCommandHandler,
	cleanupCronSpec string,
	retentionHours int,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		staleShiftCleanupJob: NewStaleShiftCleanupJob(
			purgeStaleShiftsHandler, cleanupCronSpec, retentionHours, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.staleShiftCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start stale shift cleanup job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.staleShiftCleanupJob.Stop()
}
