package provider

import (
	"github.com/flightbase-api/internal/authz"
	"github.com/flightbase-api/internal/cache"
	"github.com/flightbase-api/internal/config"
	"github.com/flightbase-api/internal/logger"
	"github.com/flightbase-api/internal/models"
	"github.com/flightbase-api/internal/queue"
	"github.com/flightbase-api/internal/repository"
	"github.com/flightbase-api/internal/service"
)

// Container wires repositories and services once and hands them to the
// router and worker.
type Container struct {
	Config      *config.Config
	QueueClient *queue.Client

	// Repositories
	StaffRepo          repository.StaffRepository
	StaffLoginLogRepo  repository.StaffLoginLogRepository
	AirportRepo        repository.AirportRepository
	AirlineRepo        repository.AirlineRepository
	AirplaneRepo       repository.AirplaneRepository
	AirplaneTypeRepo   repository.AirplaneTypeRepository
	FlightRepo         repository.FlightRepository
	FlightScheduleRepo repository.FlightScheduleRepository
	PassengerRepo      repository.PassengerRepository
	BookingRepo        repository.BookingRepository

	// Services
	AuthzService          *authz.Service
	AuthService           *service.AuthService
	StaffService          *service.StaffService
	LoginLogService       *service.LoginLogService
	AirportService        *service.AirportService
	AirlineService        *service.AirlineService
	AirplaneService       *service.AirplaneService
	FlightService         *service.FlightService
	FlightScheduleService *service.FlightScheduleService
	PassengerService      *service.PassengerService
	BookingService        *service.BookingService
	SensorService         *service.SensorService
	WeatherService        *service.WeatherService
}

// NewContainer initializes the container.
func NewContainer(cfg *config.Config) *Container {
	if err := cache.InitRedis(&cfg.Redis); err != nil {
		logger.Warnw("provider_init_redis_failed", "error", err)
	}

	queueClient, err := queue.NewClient(&cfg.Queue)
	if err != nil {
		logger.Errorw("provider_init_queue_client_failed", "error", err)
		queueClient, _ = queue.NewClient(nil)
	}

	c := &Container{
		Config:      cfg,
		QueueClient: queueClient,
	}

	c.initRepositories()
	c.initServices()

	return c
}

func (c *Container) initRepositories() {
	db := models.DB
	c.StaffRepo = repository.NewStaffRepository(db)
	c.StaffLoginLogRepo = repository.NewStaffLoginLogRepository(db)
	c.AirportRepo = repository.NewAirportRepository(db)
	c.AirlineRepo = repository.NewAirlineRepository(db)
	c.AirplaneRepo = repository.NewAirplaneRepository(db)
	c.AirplaneTypeRepo = repository.NewAirplaneTypeRepository(db)
	c.FlightRepo = repository.NewFlightRepository(db)
	c.FlightScheduleRepo = repository.NewFlightScheduleRepository(db)
	c.PassengerRepo = repository.NewPassengerRepository(db)
	c.BookingRepo = repository.NewBookingRepository(db)
}

func (c *Container) initServices() {
	authzService, err := authz.NewService(models.DB)
	if err != nil {
		logger.Errorw("provider_init_authz_failed", "error", err)
		panic(err)
	}
	c.AuthzService = authzService
	if err := c.AuthzService.BootstrapRoleHierarchy(); err != nil {
		logger.Errorw("provider_bootstrap_role_hierarchy_failed", "error", err)
		panic(err)
	}

	c.AuthService = service.NewAuthService(c.Config, c.StaffRepo, c.QueueClient)
	c.LoginLogService = service.NewLoginLogService(c.StaffLoginLogRepo, c.QueueClient)
	c.StaffService = service.NewStaffService(c.StaffRepo, c.AirportRepo, c.AirlineRepo)
	c.AirportService = service.NewAirportService(c.AirportRepo)
	c.AirlineService = service.NewAirlineService(c.AirlineRepo, c.AirportRepo)
	c.AirplaneService = service.NewAirplaneService(c.AirplaneRepo, c.AirplaneTypeRepo, c.AirlineRepo)
	c.FlightService = service.NewFlightService(c.FlightRepo, c.AirportRepo, c.AirlineRepo, c.AirplaneRepo)
	c.FlightScheduleService = service.NewFlightScheduleService(c.FlightScheduleRepo, c.AirportRepo, c.AirlineRepo)
	c.PassengerService = service.NewPassengerService(c.PassengerRepo)
	c.BookingService = service.NewBookingService(c.BookingRepo, c.FlightRepo, c.PassengerRepo)
	c.SensorService = service.NewSensorService(&c.Config.Sensor)
	c.WeatherService = service.NewWeatherService(&c.Config.Weather)
}
