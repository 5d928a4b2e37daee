// Package jobs provides scheduled background tasks for the synchronization
// service.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic maintenance of the scheduling context.
//
// # Available Jobs
//
// 1. StaleShiftCleanupJob - Purges pending shifts that outlived the retention
// window without being confirmed, together with their assignments
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(purgeHandler, "0 0 * * * *", 24, logger)
//
//	// Start all jobs
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	// Stop all jobs when shutting down
//	defer jobManager.StopAll()
//
// # Scheduling
//
// The cleanup job uses a configurable six-field cron expression with seconds;
// the default "0 0 * * * *" runs it at the top of every hour. Confirmed
// shifts are never touched by the sweep, so a conservative schedule only
// delays reclaiming abandoned rows.
//
// # Error Handling
//
// A failed sweep is logged and retried on the next tick; it never stops the
// schedule.
package jobs
