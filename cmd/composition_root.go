package cmd

import (
	"log/slog"
	"strconv"

	adapterhttp "orderboard/internal/adapters/in/http"
	"orderboard/internal/adapters/out/courierapi"
	"orderboard/internal/adapters/out/postgres/userrepo"
	"orderboard/internal/adapters/out/shopapi"
	"orderboard/internal/core/application/usecases/commands"
	"orderboard/internal/core/application/usecases/queries"
	"orderboard/internal/core/domain/services"
	"orderboard/internal/jobs"
	"orderboard/internal/pkg/snapshot"

	"gorm.io/gorm"
)

// DefaultDashboardWindowHours is the creation-time window the dashboard
// covers when none is configured.
const DefaultDashboardWindowHours = 48

type CompositionRoot struct {
	config Config
	gormDB *gorm.DB
	logger *slog.Logger
	cache  *snapshot.Cache[queries.GetDashboardQueryResponse]
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	if logger == nil {
		logger = slog.Default()
	}

	return CompositionRoot{
		config: config,
		gormDB: gormDB,
		logger: logger,
		cache:  snapshot.NewCache[queries.GetDashboardQueryResponse](),
	}
}

func (c *CompositionRoot) CreateUserRepository() *userrepo.GormUserRepository {
	return userrepo.NewGormUserRepository(c.gormDB)
}

func (c *CompositionRoot) CreateRegisterUserCommandHandler() commands.RegisterUserCommandHandler {
	return commands.NewRegisterUserCommandHandler(c.CreateUserRepository())
}

func (c *CompositionRoot) CreateAuthenticateUserQueryHandler() queries.AuthenticateUserQueryHandler {
	return queries.NewAuthenticateUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetDashboardQueryHandler() (queries.GetDashboardQueryHandler, error) {
	shopClient, err := shopapi.NewClient(shopapi.Config{
		BaseURL:     c.config.ShopAPIURL,
		APIUser:     c.config.ShopAPIUser,
		APIPassword: c.config.ShopAPIPassword,
	})
	if err != nil {
		return queries.GetDashboardQueryHandler{}, err
	}

	courierClient, err := courierapi.NewClient(courierapi.Config{
		BaseURL: c.config.CourierAPIURL,
	})
	if err != nil {
		return queries.GetDashboardQueryHandler{}, err
	}

	resolver, err := services.NewStatusResolver(courierClient, c.trackingWorkers(), c.logger)
	if err != nil {
		return queries.GetDashboardQueryHandler{}, err
	}

	enricher, err := services.NewOrderEnricher(shopClient, services.DefaultEnrichmentPolicy(), c.logger)
	if err != nil {
		return queries.GetDashboardQueryHandler{}, err
	}

	return queries.NewGetDashboardQueryHandler(shopClient, resolver, enricher, c.logger)
}

func (c *CompositionRoot) CreateJobManager() (*jobs.JobManager, error) {
	dashboardHandler, err := c.CreateGetDashboardQueryHandler()
	if err != nil {
		return nil, err
	}

	return jobs.NewJobManager(
		dashboardHandler,
		c.cache,
		c.DashboardWindowHours(),
		c.config.DashboardRefreshSpec,
		c.logger,
	), nil
}

func (c *CompositionRoot) CreateHTTPServer() (*adapterhttp.Server, error) {
	dashboardHandler, err := c.CreateGetDashboardQueryHandler()
	if err != nil {
		return nil, err
	}

	authHandler := c.CreateAuthenticateUserQueryHandler()

	return adapterhttp.NewServer(
		dashboardHandler,
		authHandler,
		adapterhttp.NewSessionStore(0),
		c.cache,
		adapterhttp.Config{WindowHours: c.DashboardWindowHours()},
	)
}

// DashboardWindowHours parses the configured window, falling back to
// DefaultDashboardWindowHours on an absent or invalid value.
func (c *CompositionRoot) DashboardWindowHours() int {
	hours, err := strconv.Atoi(c.config.DashboardWindowHours)
	if err != nil || hours <= 0 {
		return DefaultDashboardWindowHours
	}
	return hours
}

// trackingWorkers parses the configured worker count; the resolver applies
// its own default for values <= 0.
func (c *CompositionRoot) trackingWorkers() int {
	workers, err := strconv.Atoi(c.config.TrackingWorkers)
	if err != nil {
		return 0
	}
	return workers
}
