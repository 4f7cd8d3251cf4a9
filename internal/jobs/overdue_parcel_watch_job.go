package jobs

import (
	"context"
	"log/slog"
	"time"

	"parceltrack/internal/core/application/usecases/queries"

	"github.com/robfig/cron/v3"
)

// OverdueParcelWatchJob periodically reports parcels that missed their
// promised delivery time and are still in flight. The job only observes
// and logs; it never mutates parcel state.
type OverdueParcelWatchJob struct {
	handler queries.GetOverdueParcelsQueryHandler
	cron    *cron.Cron
	logger  *slog.Logger
}

// NewOverdueParcelWatchJob creates a job that checks for overdue parcels every minute.
func NewOverdueParcelWatchJob(
	handler queries.GetOverdueParcelsQueryHandler,
	logger *slog.Logger,
) *OverdueParcelWatchJob {
	return &OverdueParcelWatchJob{
		handler: handler,
		cron:    cron.New(),
		logger:  logger.With("component", "overdue_parcel_watch_job"),
	}
}

// Start begins the overdue parcel watch, running once a minute.
func (j *OverdueParcelWatchJob) Start() error {
	_, err := j.cron.AddFunc("* * * * *", j.run)
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Overdue parcel watch started (running every minute)")
	return nil
}

// Stop stops the overdue parcel watch.
func (j *OverdueParcelWatchJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Overdue parcel watch stopped")
}

func (j *OverdueParcelWatchJob) run() {
	ctx := context.Background()

	query, err := queries.NewGetOverdueParcelsQuery(time.Now())
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel watch failed to build query", "error", err)
		return
	}

	overdue, err := j.handler.Handle(ctx, query)
	if err != nil {
		j.logger.ErrorContext(ctx, "Overdue parcel watch failed", "error", err)
		return
	}

	for _, p := range overdue {
		j.logger.WarnContext(ctx, "Parcel is overdue",
			"trackingNumber", p.TrackingNumber,
			"status", p.Status.String(),
			"estimatedDelivery", p.EstimatedDelivery,
		)
	}
}
