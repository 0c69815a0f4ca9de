package commands_test

import (
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/invoice"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/participant"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testActor(t *testing.T, role participant.Role) *participant.Participant {
	t.Helper()
	p, err := participant.NewParticipant(kernel.NewUUID(), "ops", role)
	require.NoError(t, err)
	return p
}

func TestUpdateInvoiceStatusCommandHandler_Handle_SettlementCorrection(t *testing.T) {
	ctx := t.Context()
	inv := testPendingInvoice(t, kernel.NewUUID(), invoice.StatusPending)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(kernel.NewUUID(), inv.ID(), invoice.StatusPaid)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("InvoiceRepository").Return(invoiceRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	invoiceRepo.On("Get", mock.Anything, inv.ID()).Return(inv, nil).Once()
	invoiceRepo.On("Update", mock.Anything, inv).Return(nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateInvoiceStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, invoice.StatusPaid, updated.Status())
	require.NotNil(t, updated.PaymentDate())
	invoiceRepo.AssertExpectations(t)
}

func TestUpdateInvoiceStatusCommandHandler_Handle_RefundNeedsAdmin(t *testing.T) {
	ctx := t.Context()
	inv := testPendingInvoice(t, kernel.NewUUID(), invoice.StatusPaid)
	actor := testActor(t, participant.RoleClient)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(actor.ID(), inv.ID(), invoice.StatusRefunded)
	require.NoError(t, err)

	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParticipantRepository").Return(participantRepo)
	uow.On("Rollback", ctx).Return(nil).Once()

	participantRepo.On("Get", mock.Anything, actor.ID()).Return(actor, nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateInvoiceStatusCommandHandler(factory)
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	require.Equal(t, invoice.StatusPaid, inv.Status())
}

func TestUpdateInvoiceStatusCommandHandler_Handle_AdminRefund(t *testing.T) {
	ctx := t.Context()
	inv := testPendingInvoice(t, kernel.NewUUID(), invoice.StatusPaid)
	admin := testActor(t, participant.RoleAdmin)
	cmd, err := commands.NewUpdateInvoiceStatusCommand(admin.ID(), inv.ID(), invoice.StatusRefunded)
	require.NoError(t, err)

	invoiceRepo := new(MockInvoiceRepository)
	participantRepo := new(MockParticipantRepository)
	uow := new(MockUoW)
	uow.On("Begin", ctx).Return(nil).Once()
	uow.On("ParticipantRepository").Return(participantRepo)
	uow.On("InvoiceRepository").Return(invoiceRepo)
	uow.On("Commit", ctx).Return(nil).Once()
	uow.On("Rollback", ctx).Return(nil).Once()

	participantRepo.On("Get", mock.Anything, admin.ID()).Return(admin, nil).Once()
	invoiceRepo.On("Get", mock.Anything, inv.ID()).Return(inv, nil).Once()
	invoiceRepo.On("Update", mock.Anything, inv).Return(nil).Once()

	factory := new(MockInvoiceUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewUpdateInvoiceStatusCommandHandler(factory)
	updated, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.Equal(t, invoice.StatusRefunded, updated.Status())
}

func TestNewUpdateInvoiceStatusCommand_RejectsOverdueTarget(t *testing.T) {
	_, err := commands.NewUpdateInvoiceStatusCommand(kernel.NewUUID(), kernel.NewUUID(), invoice.StatusOverdue)
	require.ErrorIs(t, err, errs.ErrValueIsInvalid)
}
