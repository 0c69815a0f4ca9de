package commands

import (
	"context"
	"time"
)

// MarkOverdueInvoicesCommandHandler sweeps pending invoices past their due date
// and marks each OVERDUE in one transaction.
type MarkOverdueInvoicesCommandHandler struct {
	uowFactory InvoiceUoWFactory
	clock      func() time.Time
}

// NewMarkOverdueInvoicesCommandHandler creates a handler for overdue marking.
func NewMarkOverdueInvoicesCommandHandler(uowFactory InvoiceUoWFactory) MarkOverdueInvoicesCommandHandler {
	return MarkOverdueInvoicesCommandHandler{
		uowFactory: uowFactory,
		clock:      time.Now,
	}
}

// Handle processes the overdue sweep and returns the number of invoices marked.
func (h *MarkOverdueInvoicesCommandHandler) Handle(ctx context.Context, cmd MarkOverdueInvoicesCommand) (int, error) {
	if err := cmd.Validate(); err != nil {
		return 0, err
	}

	uow := h.uowFactory.Create()
	if err := uow.Begin(ctx); err != nil {
		return 0, err
	}

	defer func() {
		_ = uow.Rollback(ctx)
	}()

	now := h.clock()
	due, err := uow.InvoiceRepository().GetPendingDueBefore(ctx, now)
	if err != nil {
		return 0, err
	}

	marked := 0
	for _, inv := range due {
		if err = inv.MarkOverdue(now); err != nil {
			return 0, err
		}
		if err = uow.InvoiceRepository().Update(ctx, inv); err != nil {
			return 0, err
		}
		marked++
	}

	if err = uow.Commit(ctx); err != nil {
		return 0, err
	}

	return marked, nil
}
