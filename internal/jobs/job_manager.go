package jobs

import (
	"fmt"
	"log/slog"

	"parceltrack/internal/core/application/usecases/queries"
)

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	overdueParcelWatchJob *OverdueParcelWatchJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes query handlers as dependencies to wire up the job execution.
func NewJobManager(
	overdueParcelsHandler queries.GetOverdueParcelsQueryHandler,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		overdueParcelWatchJob: NewOverdueParcelWatchJob(overdueParcelsHandler, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.overdueParcelWatchJob.Start(); err != nil {
		return fmt.Errorf("failed to start overdue parcel watch: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.overdueParcelWatchJob.Stop()
}
