package queries_test

import (
	"context"
	"testing"
	"time"

	"parcelmarket/internal/adapters/out/postgres/deliveryrepo"
	"parcelmarket/internal/adapters/out/postgres/parcelrepo"
	redis_adapter "parcelmarket/internal/adapters/out/redis"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/model/delivery"
	"parcelmarket/internal/core/domain/model/kernel"
	"parcelmarket/internal/core/domain/model/parcel"
	"parcelmarket/internal/pkg/errs"

	"github.com/alicebob/miniredis/v2"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/stretchr/testify/suite"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// mockAggregateTracker satisfies the repository tracker without recording anything.
type mockAggregateTracker struct{}

func (mockAggregateTracker) TrackAggregate(_ kernel.UUID, _ any) {}

// QueryHandlersIntegrationTestSuite exercises the read-side handlers against a
// PostgreSQL container and a miniredis-backed tracking cache.
type QueryHandlersIntegrationTestSuite struct {
	suite.Suite
	container    *postgres.PostgresContainer
	db           *gorm.DB
	redis        *miniredis.Miniredis
	cache        *redis_adapter.TrackingCache
	deliveryRepo *deliveryrepo.GormDeliveryRepository
	parcelRepo   *parcelrepo.GormParcelRepository
}

func (suite *QueryHandlersIntegrationTestSuite) SetupSuite() {
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

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(
		&deliveryrepo.DeliveryDTO{},
		&deliveryrepo.DeliveryParcelDTO{},
		&parcelrepo.ParcelDTO{},
		&parcelrepo.ParcelImageDTO{},
	)
	suite.Require().NoError(err)

	suite.deliveryRepo = deliveryrepo.NewGormDeliveryRepository(db, mockAggregateTracker{})
	suite.parcelRepo = parcelrepo.NewGormParcelRepository(db, mockAggregateTracker{})
}

func (suite *QueryHandlersIntegrationTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *QueryHandlersIntegrationTestSuite) SetupTest() {
	err := suite.db.Exec("TRUNCATE TABLE deliveries, delivery_parcels, parcels, parcel_images").Error
	suite.Require().NoError(err)

	suite.redis = miniredis.RunT(suite.T())
	cache, err := redis_adapter.NewTrackingCache("redis://"+suite.redis.Addr(), time.Minute)
	suite.Require().NoError(err)
	suite.cache = cache
}

func (suite *QueryHandlersIntegrationTestSuite) seedDelivery(tripID *kernel.UUID, parcelCount int) *delivery.Delivery {
	ctx := context.Background()

	parcelIDs := make([]kernel.UUID, 0, parcelCount)
	for range parcelCount {
		price, err := kernel.NewMoney(1500)
		suite.Require().NoError(err)

		p, err := parcel.NewParcel(
			kernel.NewUUID(), "board games", 2, parcel.SizeSmall, parcel.CategoryOther, false, "", price,
		)
		suite.Require().NoError(err)
		parcelIDs = append(parcelIDs, p.ID())

		suite.Require().NoError(suite.parcelRepo.Add(ctx, p))
	}

	pickup, err := kernel.NewAddress("12", "Rue de Rivoli", "Paris", "75001", "France", "")
	suite.Require().NoError(err)
	dropoff, err := kernel.NewAddress("5", "Avenue Habib Bourguiba", "Tunis", "1000", "Tunisia", "")
	suite.Require().NoError(err)

	price, err := kernel.NewMoney(4500)
	suite.Require().NoError(err)

	d, err := delivery.NewDelivery(
		kernel.NewUUID(), kernel.NewUUID(), kernel.NewUUID(), tripID,
		pickup, dropoff, "", "",
		kernel.NewTrackingNumber(), price, parcelIDs,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.deliveryRepo.Add(ctx, d))

	// Bind the seeded parcels so the parcel count subquery sees them.
	parcels, err := suite.parcelRepo.GetByIDs(ctx, parcelIDs)
	suite.Require().NoError(err)
	for _, p := range parcels {
		suite.Require().NoError(p.BindToDelivery(d.ID()))
		suite.Require().NoError(suite.parcelRepo.Update(ctx, p))
	}

	return d
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDeliveryByTracking_CacheMissFallsThroughAndPopulates() {
	ctx := context.Background()
	d := suite.seedDelivery(nil, 2)

	handler := queries.NewGetDeliveryByTrackingQueryHandler(suite.db, suite.cache)
	query, err := queries.NewGetDeliveryByTrackingQuery(d.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(d.ID().IsEqual(resp.ID))
	suite.Equal(d.TrackingNumber().String(), resp.TrackingNumber)
	suite.Equal("UNASSIGNED", resp.Status)
	suite.InDelta(45.0, resp.EstimatedPrice, 0.001)
	suite.Equal(2, resp.ParcelCount)

	cached, err := suite.cache.Get(ctx, d.TrackingNumber())
	suite.Require().NoError(err)
	suite.Require().NotNil(cached)
	suite.True(d.ID().IsEqual(*cached))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDeliveryByTracking_CacheHitServesById() {
	ctx := context.Background()
	d := suite.seedDelivery(nil, 1)
	suite.Require().NoError(suite.cache.Set(ctx, d.TrackingNumber(), d.ID()))

	handler := queries.NewGetDeliveryByTrackingQueryHandler(suite.db, suite.cache)
	query, err := queries.NewGetDeliveryByTrackingQuery(d.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(d.ID().IsEqual(resp.ID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDeliveryByTracking_StaleCacheEntryRecovers() {
	ctx := context.Background()
	d := suite.seedDelivery(nil, 1)

	// Cache points at a delivery that does not exist.
	suite.Require().NoError(suite.cache.Set(ctx, d.TrackingNumber(), kernel.NewUUID()))

	handler := queries.NewGetDeliveryByTrackingQueryHandler(suite.db, suite.cache)
	query, err := queries.NewGetDeliveryByTrackingQuery(d.TrackingNumber())
	suite.Require().NoError(err)

	resp, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.True(d.ID().IsEqual(resp.ID))
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetDeliveryByTracking_UnknownNumber() {
	handler := queries.NewGetDeliveryByTrackingQueryHandler(suite.db, suite.cache)
	query, err := queries.NewGetDeliveryByTrackingQuery(kernel.NewTrackingNumber())
	suite.Require().NoError(err)

	_, err = handler.Handle(context.Background(), query)
	suite.Require().Error(err)
	suite.ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetTripDeliveries_ReturnsOnlyActiveOnTrip() {
	ctx := context.Background()
	tripID := kernel.NewUUID()

	active := suite.seedDelivery(&tripID, 1)

	canceled := suite.seedDelivery(&tripID, 1)
	suite.Require().NoError(canceled.ChangeStatus(delivery.StatusCanceled))
	suite.Require().NoError(suite.deliveryRepo.Update(ctx, canceled))

	suite.seedDelivery(nil, 1) // unrelated delivery

	handler := queries.NewGetTripDeliveriesQueryHandler(suite.db)
	query, err := queries.NewGetTripDeliveriesQuery(tripID)
	suite.Require().NoError(err)

	manifest, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(manifest, 1)
	suite.True(active.ID().IsEqual(manifest[0].ID))
	suite.Equal("Paris", manifest[0].PickupCity)
	suite.Equal("Tunis", manifest[0].DeliveryCity)
	suite.Equal("RESERVED", manifest[0].Status)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetTripDeliveries_EmptyManifest() {
	handler := queries.NewGetTripDeliveriesQueryHandler(suite.db)
	query, err := queries.NewGetTripDeliveriesQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	manifest, err := handler.Handle(context.Background(), query)
	suite.Require().NoError(err)
	suite.NotNil(manifest)
	suite.Empty(manifest)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrphanParcels_ReturnsOnlyUnbound() {
	ctx := context.Background()

	// Bound parcels must not appear.
	suite.seedDelivery(nil, 1)

	price, err := kernel.NewMoney(1850)
	suite.Require().NoError(err)
	orphan, err := parcel.NewParcel(
		kernel.NewUUID(), "ceramic vase", 2.5, parcel.SizeMedium, parcel.CategoryFragileGoods,
		true, "this side up", price,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(suite.parcelRepo.Add(ctx, orphan))

	canceled, err := parcel.NewParcel(
		kernel.NewUUID(), "paperbacks", 1, parcel.SizeSmall, parcel.CategoryOther, false, "", price,
	)
	suite.Require().NoError(err)
	suite.Require().NoError(canceled.ChangeStatus(parcel.StatusCanceled))
	suite.Require().NoError(suite.parcelRepo.Add(ctx, canceled))

	handler := queries.NewGetOrphanParcelsQueryHandler(suite.db)
	orphans, err := handler.Handle(ctx, queries.NewGetOrphanParcelsQuery())
	suite.Require().NoError(err)
	suite.Require().Len(orphans, 1)
	suite.True(orphan.ID().IsEqual(orphans[0].ID))
	suite.Equal("ceramic vase", orphans[0].Description)
	suite.Equal("PENDING", orphans[0].Status)
	suite.InDelta(18.50, orphans[0].EstimatedPrice, 0.001)
}

func (suite *QueryHandlersIntegrationTestSuite) TestGetOrphanParcels_Empty() {
	handler := queries.NewGetOrphanParcelsQueryHandler(suite.db)

	orphans, err := handler.Handle(context.Background(), queries.NewGetOrphanParcelsQuery())
	suite.Require().NoError(err)
	suite.NotNil(orphans)
	suite.Empty(orphans)
}

func TestQueryHandlersIntegrationTestSuite(t *testing.T) {
	suite.Run(t, new(QueryHandlersIntegrationTestSuite))
}
