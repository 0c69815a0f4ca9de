package cmd

import (
	"log/slog"

	httpin "parcelmarket/internal/adapters/in/http"
	"parcelmarket/internal/adapters/out/media"
	"parcelmarket/internal/adapters/out/postgres"
	redisout "parcelmarket/internal/adapters/out/redis"
	"parcelmarket/internal/core/application/usecases/commands"
	"parcelmarket/internal/core/application/usecases/queries"
	"parcelmarket/internal/core/domain/services"
	"parcelmarket/internal/jobs"

	"gorm.io/gorm"
)

// CompositionRoot wires adapters, domain services, and use case handlers.
type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	cache      *redisout.TrackingCache
	mediaStore *media.DiskStore
	estimator  services.PriceEstimator
	adjuster   services.PriceAdjuster
	logger     *slog.Logger
}

// NewCompositionRoot builds the object graph from the loaded configuration.
func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	cache *redisout.TrackingCache,
	mediaStore *media.DiskStore,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		cache:      cache,
		mediaStore: mediaStore,
		estimator:  services.NewPriceEstimator(),
		adjuster:   services.NewPriceAdjuster(),
		logger:     logger,
	}
}

func (c *CompositionRoot) billingPolicy() commands.BillingPolicy {
	return commands.BillingPolicy{
		PlatformFeeRate: c.config.PlatformFeeRate,
		TaxRate:         c.config.TaxRate,
		PaymentTerm:     c.config.PaymentTerm,
	}
}

func (c *CompositionRoot) CreateRegisterParticipantCommandHandler() commands.RegisterParticipantCommandHandler {
	var f commands.ParticipantUoWFactory = FuncParticipantUoWFactory(func() commands.ParticipantUoW {
		return c.uowFactory.Create()
	})
	return commands.NewRegisterParticipantCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f, c.estimator)
}

func (c *CompositionRoot) CreateAttachParcelImagesCommandHandler() commands.AttachParcelImagesCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAttachParcelImagesCommandHandler(f, c.mediaStore)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateTripCommandHandler() commands.CreateTripCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateTripCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateTripStatusCommandHandler() commands.UpdateTripStatusCommandHandler {
	var f commands.TripUoWFactory = FuncTripUoWFactory(func() commands.TripUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateTripStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateDeliveryCommandHandler() commands.CreateDeliveryCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateDeliveryCommandHandler(f, c.adjuster, c.billingPolicy())
}

func (c *CompositionRoot) CreateUpdateDeliveryStatusCommandHandler() commands.UpdateDeliveryStatusCommandHandler {
	var f commands.DeliveryUoWFactory = FuncDeliveryUoWFactory(func() commands.DeliveryUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateDeliveryStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateInvoiceStatusCommandHandler() commands.UpdateInvoiceStatusCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateInvoiceStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCleanupOrphanParcelsCommandHandler() commands.CleanupOrphanParcelsCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCleanupOrphanParcelsCommandHandler(f)
}

func (c *CompositionRoot) CreateMarkOverdueInvoicesCommandHandler() commands.MarkOverdueInvoicesCommandHandler {
	var f commands.InvoiceUoWFactory = FuncInvoiceUoWFactory(func() commands.InvoiceUoW {
		return c.uowFactory.Create()
	})
	return commands.NewMarkOverdueInvoicesCommandHandler(f)
}

func (c *CompositionRoot) CreateGetDeliveryByTrackingQueryHandler() queries.GetDeliveryByTrackingQueryHandler {
	return queries.NewGetDeliveryByTrackingQueryHandler(c.gormDB, c.cache)
}

func (c *CompositionRoot) CreateGetTripDeliveriesQueryHandler() queries.GetTripDeliveriesQueryHandler {
	return queries.NewGetTripDeliveriesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOrphanParcelsQueryHandler() queries.GetOrphanParcelsQueryHandler {
	return queries.NewGetOrphanParcelsQueryHandler(c.gormDB)
}

// CreateJobManager wires the background jobs to their handlers and schedules.
func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateCleanupOrphanParcelsCommandHandler(),
		c.CreateMarkOverdueInvoicesCommandHandler(),
		jobs.Schedules{
			OrphanCleanup:   c.config.OrphanCleanupSchedule,
			OrphanRetention: c.config.OrphanRetention,
			InvoiceOverdue:  c.config.InvoiceOverdueSchedule,
		},
		c.logger,
	)
}

// CreateHTTPServer wires every endpoint handler into the HTTP server.
func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateRegisterParticipantCommandHandler(),
		c.CreateCreateParcelCommandHandler(),
		c.CreateAttachParcelImagesCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateCreateTripCommandHandler(),
		c.CreateUpdateTripStatusCommandHandler(),
		c.CreateCreateDeliveryCommandHandler(),
		c.CreateUpdateDeliveryStatusCommandHandler(),
		c.CreateUpdateInvoiceStatusCommandHandler(),
		c.CreateGetDeliveryByTrackingQueryHandler(),
		c.CreateGetTripDeliveriesQueryHandler(),
		c.CreateGetOrphanParcelsQueryHandler(),
	)
}

// MediaDir exposes the media storage directory for the static file route.
func (c *CompositionRoot) MediaDir() string {
	return c.mediaStore.BaseDir()
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncDeliveryUoWFactory func() commands.DeliveryUoW

func (f FuncDeliveryUoWFactory) Create() commands.DeliveryUoW {
	return f()
}

type FuncTripUoWFactory func() commands.TripUoW

func (f FuncTripUoWFactory) Create() commands.TripUoW {
	return f()
}

type FuncInvoiceUoWFactory func() commands.InvoiceUoW

func (f FuncInvoiceUoWFactory) Create() commands.InvoiceUoW {
	return f()
}

type FuncParticipantUoWFactory func() commands.ParticipantUoW

func (f FuncParticipantUoWFactory) Create() commands.ParticipantUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
