package jobs

import (
	"context"
	"log/slog"

	"parcelmarket/internal/core/application/usecases/commands"

	"github.com/robfig/cron/v3"
)

// InvoiceOverdueJob periodically marks pending invoices whose due date has
// passed as overdue. Overdue is the one invoice state that only the system
// may set, never an API caller.
type InvoiceOverdueJob struct {
	handler  commands.MarkOverdueInvoicesCommandHandler
	schedule string
	cron     *cron.Cron
	logger   *slog.Logger
}

// NewInvoiceOverdueJob creates the overdue marking job. The schedule is a
// six-field cron expression.
func NewInvoiceOverdueJob(
	handler commands.MarkOverdueInvoicesCommandHandler,
	schedule string,
	logger *slog.Logger,
) *InvoiceOverdueJob {
	return &InvoiceOverdueJob{
		handler:  handler,
		schedule: schedule,
		cron:     cron.New(cron.WithSeconds()),
		logger:   logger.With("component", "invoice_overdue_job"),
	}
}

// Start begins the scheduled overdue checks.
func (j *InvoiceOverdueJob) Start() error {
	_, err := j.cron.AddFunc(j.schedule, func() {
		ctx := context.Background()
		cmd := commands.NewMarkOverdueInvoicesCommand()

		marked, handleErr := j.handler.Handle(ctx, cmd)
		if handleErr != nil {
			j.logger.ErrorContext(ctx, "Invoice overdue job failed", "error", handleErr)
			return
		}

		if marked > 0 {
			j.logger.InfoContext(ctx, "Marked invoices overdue", "count", marked)
		}
	})
	if err != nil {
		return err
	}

	j.cron.Start()
	j.logger.InfoContext(context.Background(), "Invoice overdue job started", "schedule", j.schedule)
	return nil
}

// Stop stops the overdue marking job.
func (j *InvoiceOverdueJob) Stop() {
	j.cron.Stop()
	j.logger.InfoContext(context.Background(), "Invoice overdue job stopped")
}
