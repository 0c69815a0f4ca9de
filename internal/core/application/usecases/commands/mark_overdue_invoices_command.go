package commands

import (
	"errors"

	"parcelmarket/internal/pkg/guard"
)

var (
	ErrMarkOverdueInvoicesCommandIsNotConstructed = errors.New(
		"MarkOverdueInvoicesCommand must be created via NewMarkOverdueInvoicesCommand constructor",
	)
)

// MarkOverdueInvoicesCommand triggers a sweep over pending invoices whose due
// date has passed, marking each OVERDUE. Run periodically by the scheduler.
type MarkOverdueInvoicesCommand struct {
	guard guard.ConstructorGuard
}

// NewMarkOverdueInvoicesCommand creates a command to mark overdue invoices.
// This is a parameterless command that processes every pending invoice past due.
func NewMarkOverdueInvoicesCommand() MarkOverdueInvoicesCommand {
	return MarkOverdueInvoicesCommand{
		guard: guard.NewConstructorGuard(),
	}
}

// Validate ensures the command was created through the constructor.
func (c *MarkOverdueInvoicesCommand) Validate() error {
	return c.guard.Validate(ErrMarkOverdueInvoicesCommandIsNotConstructed)
}
