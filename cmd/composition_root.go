package cmd

import (
	"time"

	"log/slog"

	adapterhttp "parceltrack/internal/adapters/in/http"
	"parceltrack/internal/adapters/out/postgres"
	adapterredis "parceltrack/internal/adapters/out/redis"
	"parceltrack/internal/core/application/usecases/commands"
	"parceltrack/internal/core/application/usecases/queries"
	"parceltrack/internal/jobs"

	goredis "github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	gormDB      *gorm.DB
	uowFactory  postgres.GormUnitOfWorkFactory
	redisClient *goredis.Client
	cacheTTL    time.Duration
	logger      *slog.Logger
}

// NewCompositionRoot wires the application graph. The redis client is
// optional; without it the public tracking lookup is served straight from
// the database.
func NewCompositionRoot(
	_ Config,
	gormDB *gorm.DB,
	redisClient *goredis.Client,
	cacheTTL time.Duration,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		gormDB:      gormDB,
		uowFactory:  *postgres.NewGormUnitOfWorkFactory(gormDB),
		redisClient: redisClient,
		cacheTTL:    cacheTTL,
		logger:      logger,
	}
}

func (c *CompositionRoot) CreateCreateParcelCommandHandler() commands.CreateParcelCommandHandler {
	var f commands.ParcelUoWFactory = FuncParcelUoWFactory(func() commands.ParcelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateParcelCommandHandler(f)
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateParcelStatusCommandHandler() commands.UpdateParcelStatusCommandHandler {
	var f commands.UoWFactory = FuncUoWFactory(func() commands.UoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateParcelStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateCourierCommandHandler() commands.CreateCourierCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateSetCourierStatusCommandHandler() commands.SetCourierStatusCommandHandler {
	var f commands.CourierUoWFactory = FuncCourierUoWFactory(func() commands.CourierUoW {
		return c.uowFactory.Create()
	})
	return commands.NewSetCourierStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateGetParcelQueryHandler() queries.GetParcelQueryHandler {
	return queries.NewGetParcelQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCourierParcelsQueryHandler() queries.GetCourierParcelsQueryHandler {
	return queries.NewGetCourierParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetCustomerParcelsQueryHandler() queries.GetCustomerParcelsQueryHandler {
	return queries.NewGetCustomerParcelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetAvailableCouriersQueryHandler() queries.GetAvailableCouriersQueryHandler {
	return queries.NewGetAvailableCouriersQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetOverdueParcelsQueryHandler() queries.GetOverdueParcelsQueryHandler {
	return queries.NewGetOverdueParcelsQueryHandler(c.gormDB)
}

// CreateTrackParcelHandler returns the public tracking lookup, wrapped with
// the redis read-through cache when a client is configured.
func (c *CompositionRoot) CreateTrackParcelHandler() adapterhttp.TrackParcelHandler {
	inner := queries.NewTrackParcelQueryHandler(c.gormDB)
	if c.redisClient == nil {
		return inner
	}

	cache := adapterredis.NewTrackingCache(c.redisClient, c.cacheTTL)
	return adapterredis.NewCachedTrackParcelQueryHandler(inner, cache, c.logger)
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.CreateGetOverdueParcelsQueryHandler(), c.logger)
}

func (c *CompositionRoot) CreateHTTPServer() *adapterhttp.Server {
	return adapterhttp.NewServer(
		c.CreateCreateParcelCommandHandler(),
		c.CreateAssignCourierCommandHandler(),
		c.CreateUpdateParcelStatusCommandHandler(),
		c.CreateCreateCourierCommandHandler(),
		c.CreateSetCourierStatusCommandHandler(),
		c.CreateGetParcelQueryHandler(),
		c.CreateGetCourierParcelsQueryHandler(),
		c.CreateGetCustomerParcelsQueryHandler(),
		c.CreateGetAvailableCouriersQueryHandler(),
		c.CreateTrackParcelHandler(),
		c.logger,
	)
}

type FuncParcelUoWFactory func() commands.ParcelUoW

func (f FuncParcelUoWFactory) Create() commands.ParcelUoW {
	return f()
}

type FuncCourierUoWFactory func() commands.CourierUoW

func (f FuncCourierUoWFactory) Create() commands.CourierUoW {
	return f()
}

type FuncUoWFactory func() commands.UoW

func (f FuncUoWFactory) Create() commands.UoW {
	return f()
}
