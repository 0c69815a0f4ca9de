// Package jobs provides scheduled background tasks for the parcel marketplace.
//
// This package implements cron-based jobs using github.com/robfig/cron/v3
// to handle the periodic housekeeping the marketplace relies on.
//
// # Available Jobs
//
// 1. OrphanCleanupJob - removes parcels that were registered but never joined
// a delivery within the retention window
// 2. InvoiceOverdueJob - marks pending invoices whose due date has passed as
// overdue
//
// # Usage
//
// Jobs are managed through JobManager which provides a unified interface:
//
//	jobManager := jobs.NewJobManager(cleanupHandler, overdueHandler, cfg, logger)
//
//	if err := jobManager.StartAll(); err != nil {
//		log.Fatal("Failed to start jobs:", err)
//	}
//
//	defer jobManager.StopAll()
//
// # Scheduling
//
// Both schedules come from configuration as six-field cron expressions. The
// defaults run cleanup hourly and the overdue check every ten minutes; neither
// operation needs tighter cadence because both act on cutoffs measured in days.
//
// # Error Handling
//
// Job failures are logged and the next scheduled run retries; both operations
// are idempotent against rows already processed.
package jobs
