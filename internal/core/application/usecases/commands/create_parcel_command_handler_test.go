package commands_test

import (
	"errors"
	"testing"

	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestCreateParcelCommandHandler_Handle_Success(t *testing.T) {
	ctx := t.Context()
	id := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(
		id, "ceramic vase", 1.2, parcel.SizeSmall, parcel.CategoryFragileGoods, true, "this side up",
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(nil).Once(),
		uow.On("Commit", ctx).Return(nil).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewPriceEstimator())
	result, err := h.Handle(ctx, cmd)
	require.NoError(t, err)
	require.True(t, result.ParcelID.IsEqual(id))
	require.Positive(t, result.SuggestedPrice.Cents())
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_ValidationError(t *testing.T) {
	ctx := t.Context()
	cmd := commands.CreateParcelCommand{} // not constructed properly
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, services.NewPriceEstimator())
	_, err := h.Handle(ctx, cmd)
	require.Error(t, err)
}

func TestCreateParcelCommandHandler_Handle_WeightOutsideSizeRange(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "anvil", 90, parcel.SizeSmall, parcel.CategoryOther, false, "",
	)
	require.NoError(t, err)

	// Estimation fails before the transaction opens, so the factory stays untouched.
	factory := new(MockParcelUoWFactory)
	h := commands.NewCreateParcelCommandHandler(factory, services.NewPriceEstimator())
	_, err = h.Handle(ctx, cmd)
	require.ErrorIs(t, err, errs.ErrValueIsOutOfRange)
	factory.AssertExpectations(t)
}

func TestCreateParcelCommandHandler_Handle_AddError(t *testing.T) {
	ctx := t.Context()
	cmd, err := commands.NewCreateParcelCommand(
		kernel.NewUUID(), "books", 4, parcel.SizeMedium, parcel.CategoryOther, false, "",
	)
	require.NoError(t, err)

	repo := new(MockParcelRepository)
	uow := new(MockUoW)
	mock.InOrder(
		uow.On("Begin", ctx).Return(nil).Once(),
		uow.On("ParcelRepository").Return(repo).Once(),
		repo.On("Add", mock.Anything, mock.AnythingOfType("*parcel.Parcel")).Return(errors.New("add error")).Once(),
		uow.On("Rollback", ctx).Return(nil).Once(),
	)

	factory := new(MockParcelUoWFactory)
	factory.On("Create").Return(uow).Once()

	h := commands.NewCreateParcelCommandHandler(factory, services.NewPriceEstimator())
	_, err = h.Handle(ctx, cmd)
	require.Error(t, err)
	repo.AssertExpectations(t)
	uow.AssertExpectations(t)
	factory.AssertExpectations(t)
}
