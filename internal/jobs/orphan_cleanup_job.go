package jobs

import (
	"context"
	"log/slog"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// OrphanCleanupJob periodically removes parcels that were registered but never
// assembled into a delivery within the retention window.
type OrphanCleanupJob struct {
	handler   commands.CleanupOrphanParcelsCommandHandler
	schedule  string
	retention time.Duration
	cron      *cron.Cron
	logger    *slog.Logger
}

// NewOrphanCleanupJob creates the cleanup job. The schedule is a six-field
// cron expression; retention is how long an unbound parcel survives.
func NewOrphanCleanupJob(
	handler commands.CleanupOrphanParcelsCommandHandler,
	schedule string,
	retention time.Duration,
	logger *slog.Logger,
) *OrphanCleanupJob {
	return &OrphanCleanupJob{
		handler:   handler,
		schedule:  schedule,
		retention: retention,
		cron:      cron.New(cron.WithSeconds()),
		logger:    logger.With("component", "orphan_cleanup_job"),
	}
}

// Start begins the scheduled cleanup runs.
func (j *OrphanCleanupJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()

		cmd, cmdErr := commands.NewCleanupOrphanParcelsCommand(j.retention)
		if cmdErr != nil {
			j.logger.ErrorContext(ctx, "Orphan cleanup job misconfigured", "error", cmdErr)
			return
		}

		removed, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Orphan cleanup job failed", "error", handleErr)
			return
		}

		if removed > 0 {
			j.logger.InfoContext(ctx, "Removed orphan parcels", "count", removed)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Orphan cleanup job started", "schedule", j.schedule)
	return nil
}

// Stop stops the cleanup job.
func (j *OrphanCleanupJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Orphan cleanup job stopped")
}
