// Package jobs provides scheduled background tasks for the parcel tracking system.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle periodic operations required for the tracking service.
//
// # Available Jobs
//
// 1. OverdueParcelWatchJob - Runs every minute to report parcels still in
// flight past their estimated delivery time
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	// Create job manager with required handlers
//	jobManager := jobs.NewJobManager(overdueParcelsHandler, logger)
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
// The watch job uses the standard five-field cron expression "* * * * *",
// running once a minute. Overdue reporting is informational, so minute
// granularity is plenty.
//
// # Error Handling
//
// - Watch job logs query failures; a failed run is retried on the next tick
// - Failed job starts will stop any already running jobs
package jobs
