package commands

import (
	"errors"
	"time"

	"parcelmarket/internal/pkg/errs"
	"parcelmarket/internal/pkg/guard"
)

var (
	ErrCleanupOrphanParcelsCommandIsNotConstructed = errors.New(
		"CleanupOrphanParcelsCommand must be created via NewCleanupOrphanParcelsCommand constructor",
	)
)

// CleanupOrphanParcelsCommand triggers removal of parcels that were estimated
// but never assembled into a delivery within the retention window. Run
// periodically by the scheduler.
type CleanupOrphanParcelsCommand struct { //nolint:recvcheck //using for validation
	retention time.Duration

	guard guard.ConstructorGuard
}

// NewCleanupOrphanParcelsCommand creates a command to delete unbound parcels
// older than the retention window.
func NewCleanupOrphanParcelsCommand(retention time.Duration) (CleanupOrphanParcelsCommand, error) {
	cmd := CleanupOrphanParcelsCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := cmd.setRetention(retention); err != nil {
		return CleanupOrphanParcelsCommand{}, err
	}

	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CleanupOrphanParcelsCommand) Validate() error {
	return c.guard.Validate(ErrCleanupOrphanParcelsCommandIsNotConstructed)
}

// Retention returns how long an unbound parcel is kept before cleanup.
func (c CleanupOrphanParcelsCommand) Retention() time.Duration {
	return c.retention
}

func (c *CleanupOrphanParcelsCommand) setRetention(retention time.Duration) error {
	if retention <= 0 {
		return errs.NewValueIsInvalidError("retention")
	}

	c.retention = retention
	return nil
}
