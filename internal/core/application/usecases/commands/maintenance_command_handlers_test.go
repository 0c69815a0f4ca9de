package commands_test

import (
	"testing"
	"time"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCleanupOrphanParcelsCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCleanupOrphanParcelsCommand(72 * time.Hour)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParcelRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	repo.On("DeleteUnboundBefore", mock.Anything, mock.AnythingOfType("time.Time")).Return(int64(3), nil).Once()

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCleanupOrphanParcelsCommandHandler(factory)
	removed, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, int64(3), removed)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
}

func TestNewCleanupOrphanParcelsCommand_RejectsNonPositiveRetention(t *testing.T) {
	_, err := commands.NewCleanupOrphanParcelsCommand(0)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}

func TestMarkOverdueInvoicesCommandHandler_Handle(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMarkOverdueInvoicesCommand()

	amount, err := kernel.NewMoney(5000)
	require.NoError(t, err)
	issued := time.Now().AddDate(0, -1, 0)
	overdue, err := invoice.RestoreInvoice(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(),
		amount, kernel.Money{}, kernel.Money{}, amount,
		issued, issued.AddDate(0, 0, 14), nil, invoice.StatusPending,
	)
	require.NoError(t, err)

	repo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	repo.On("GetPendingDueBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*invoice.Invoice{overdue}, nil).Once()
	repo.On("Update", mock.Anything, overdue).Return(nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueInvoicesCommandHandler(factory)
	marked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, 1, marked)
	require.Equal(t, invoice.StatusOverdue, overdue.Status())
	repo.AssertExpectations(t)
}

func TestMarkOverdueInvoicesCommandHandler_Handle_NothingDue(t *testing.T) {
	ctx := t.Context()
	cmd := commands.NewMarkOverdueInvoicesCommand()

	repo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(repo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	repo.On("GetPendingDueBefore", mock.Anything, mock.AnythingOfType("time.Time")).
		Return([]*invoice.Invoice{}, nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewMarkOverdueInvoicesCommandHandler(factory)
	marked, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Zero(t, marked)
}
