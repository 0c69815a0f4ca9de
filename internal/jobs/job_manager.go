package jobs

import (
	"fmt"
	"log/slog"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
)

// Schedules carries the cron expressions and cutoffs for the background jobs.
type Schedules struct {
	OrphanCleanup   string
	OrphanRetention time.Duration
	InvoiceOverdue  string
}

// JobManager coordinates all scheduled jobs in the application.
// Provides a unified interface to start and stop all background jobs.
type JobManager struct {
	orphanCleanupJob  *OrphanCleanupJob
	invoiceOverdueJob *InvoiceOverdueJob
}

// NewJobManager creates a new job manager with all required jobs.
// Takes command handlers as dependencies to wire up the job execution.
func NewJobManager(
	cleanupHandler commands.CleanupOrphanParcelsCommandHandler,
	overdueHandler commands.MarkOverdueInvoicesCommandHandler,
	schedules Schedules,
	logger *slog.Logger,
) *JobManager {
	return &JobManager{
		orphanCleanupJob:  NewOrphanCleanupJob(cleanupHandler, schedules.OrphanCleanup, schedules.OrphanRetention, logger),
		invoiceOverdueJob: NewInvoiceOverdueJob(overdueHandler, schedules.InvoiceOverdue, logger),
	}
}

// StartAll starts all scheduled jobs.
// Returns an error if any job fails to start.
func (jm *JobManager) StartAll() error {
	if err := jm.orphanCleanupJob.Start(); err != nil {
		return fmt.Errorf("failed to start orphan cleanup job: %w", err)
	}

	if err := jm.invoiceOverdueJob.Start(); err != nil {
		// Stop already started jobs if this one fails
		jm.orphanCleanupJob.Stop()
		return fmt.Errorf("failed to start invoice overdue job: %w", err)
	}

	return nil
}

// StopAll stops all scheduled jobs gracefully.
func (jm *JobManager) StopAll() {
	jm.invoiceOverdueJob.Stop()
	jm.orphanCleanupJob.Stop()
}
