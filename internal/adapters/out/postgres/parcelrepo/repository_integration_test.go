package parcelrepo_test

import (
	"context"
	"testing"
	"time"

	"parcelmarket/internal/adapters/out/postgres/parcelrepo"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// MockAggregateTracker is a mock implementation of aggregateTracker interface.
type MockAggregateTracker struct {
	mock.Mock
}

func (m *MockAggregateTracker) TrackAggregate(id kernel.UUID, aggregate any) {
	m.Called(id, aggregate)
}

// ParcelRepositoryIntegrationTestSuite provides integration tests for
// ParcelRepository using a PostgreSQL container.
type ParcelRepositoryIntegrationTestSuite struct {
	suite.Suite
	container  *postgres.PostgresContainer
	db         *gorm.DB
	repository *parcelrepo.GormParcelRepository
	tracker    *MockAggregateTracker
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	connStr, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(connStr), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(&parcelrepo.ParcelDTO{}, &parcelrepo.ParcelImageDTO{}))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *ParcelRepositoryIntegrationTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcels CASCADE").Error)
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE parcel_images CASCADE").Error)

	suite.tracker = new(MockAggregateTracker)
	suite.tracker.On("TrackAggregate", mock.Anything, mock.Anything).Maybe()
	suite.repository = parcelrepo.NewGormParcelRepository(suite.db, suite.tracker)
}

func (suite *ParcelRepositoryIntegrationTestSuite) newParcel() *parcel.Parcel {
	price, err := kernel.NewMoney(1850)
	suite.Require().NoError(err)

	p, err := parcel.NewParcel(
		kernel.NewUUID(),
		"ceramic vase",
		2.5,
		parcel.SizeMedium,
		parcel.CategoryFragileGoods,
		true,
		"this side up",
		price,
	)
	suite.Require().NoError(err)

	return p
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestAddAndGet_RoundTrip() {
	ctx := context.Background()
	p := suite.newParcel()

	suite.Require().NoError(suite.repository.Add(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.True(p.IsEqual(loaded))
	suite.Equal(p.Description(), loaded.Description())
	suite.Equal(p.Size(), loaded.Size())
	suite.Equal(p.Category(), loaded.Category())
	suite.True(loaded.Fragile())
	suite.InDelta(p.WeightKg(), loaded.WeightKg(), 0.0001)
	suite.Equal(int64(1850), loaded.EstimatedPrice().Cents())
	suite.False(loaded.IsBound())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestUpdate_PersistsAttachedImages() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	ref, err := parcel.NewImageRef("/media/vase-front.jpg", "front")
	suite.Require().NoError(err)
	p.AttachImage(ref)
	suite.Require().NoError(suite.repository.Update(ctx, p))

	loaded, err := suite.repository.Get(ctx, p.ID())
	suite.Require().NoError(err)
	suite.Require().Len(loaded.Images(), 1)
	suite.Equal("/media/vase-front.jpg", loaded.Images()[0].URL())
	suite.Equal("front", loaded.Images()[0].Title())
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByIDs_MissingParcelFailsWhole() {
	ctx := context.Background()
	p := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, p))

	_, err := suite.repository.GetByIDs(ctx, []kernel.UUID{p.ID(), kernel.NewUUID()})
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestGetByIDs_PreservesRequestedOrder() {
	ctx := context.Background()
	first := suite.newParcel()
	second := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, first))
	suite.Require().NoError(suite.repository.Add(ctx, second))

	parcels, err := suite.repository.GetByIDs(ctx, []kernel.UUID{second.ID(), first.ID()})
	suite.Require().NoError(err)
	suite.Require().Len(parcels, 2)
	suite.True(second.IsEqual(parcels[0]))
	suite.True(first.IsEqual(parcels[1]))
}

func (suite *ParcelRepositoryIntegrationTestSuite) TestDeleteUnboundBefore_RemovesOnlyStaleOrphans() {
	ctx := context.Background()

	orphan := suite.newParcel()
	suite.Require().NoError(suite.repository.Add(ctx, orphan))

	bound := suite.newParcel()
	suite.Require().NoError(bound.BindToDelivery(kernel.NewUUID()))
	suite.Require().NoError(suite.repository.Add(ctx, bound))

	// Everything was just created, so a cutoff in the past removes nothing.
	removed, err := suite.repository.DeleteUnboundBefore(ctx, time.Now().Add(-time.Hour))
	suite.Require().NoError(err)
	suite.Zero(removed)

	// A cutoff in the future catches the orphan but not the bound parcel.
	removed, err = suite.repository.DeleteUnboundBefore(ctx, time.Now().Add(time.Hour))
	suite.Require().NoError(err)
	suite.Equal(int64(1), removed)

	_, err = suite.repository.Get(ctx, orphan.ID())
	suite.ErrorIs(err, errs.ErrObjectNotFound)

	_, err = suite.repository.Get(ctx, bound.ID())
	suite.Require().NoError(err)
}

func TestParcelRepositoryIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(ParcelRepositoryIntegrationTestSuite))
}
