package app

import (
	"go-hrcore/internal/auth"
	"go-hrcore/internal/leave"
	"go-hrcore/internal/middleware"
	"go-hrcore/internal/payroll"
	"go-hrcore/internal/person"
	"go-hrcore/internal/shared/clock"
	"go-hrcore/internal/trip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"gorm.io/gorm"
)

func registerModules(
	router *gin.Engine,
	cfg Config,
	gormDB *gorm.DB,
	rdb *redis.Client,
	kafkaWriter *kafkago.Writer,
) error {
	clk := clock.System()

	// --- Repositories ---
	var (
		personRepo  person.Repository
		leaveRepo   leave.Repository
		tripRepo    trip.Repository
		payrollRepo payroll.Repository
	)
	if gormDB != nil {
		personRepo = person.NewGormRepository(gormDB)
		leaveRepo = leave.NewGormRepository(gormDB)
		tripRepo = trip.NewGormRepository(gormDB)
		payrollRepo = payroll.NewGormRepository(gormDB)
	} else {
		personRepo = person.NewMemoryRepository()
		leaveRepo = leave.NewMemoryRepository()
		tripRepo = trip.NewMemoryRepository()
		payrollRepo = payroll.NewMemoryRepository()
	}

	// --- Event publishers ---
	personPublisher := person.NoopEventPublisher()
	leavePublisher := leave.NoopEventPublisher()
	tripPublisher := trip.NoopEventPublisher()
	if kafkaWriter != nil {
		personPublisher = person.NewKafkaEventPublisher(kafkaWriter)
		leavePublisher = leave.NewKafkaEventPublisher(kafkaWriter)
		tripPublisher = trip.NewKafkaEventPublisher(kafkaWriter)
	}

	// --- Services ---
	personService := person.NewService(personRepo, personPublisher, clk, cfg.AnnualLeaveAllotment)
	leaveService := leave.NewService(leaveRepo, personRepo, leavePublisher, clk)
	tripService := trip.NewService(tripRepo, personRepo, tripPublisher, clk)
	payrollService := payroll.NewService(payrollRepo, personRepo, leaveRepo, tripRepo, clk, cfg.PayrollPaymentDueDays)
	authService := auth.NewService(personRepo, clk)

	// --- Handlers ---
	personHandler := person.NewHandler(personService)
	leaveHandler := leave.NewHandler(leaveService)
	tripHandler := trip.NewHandler(tripService)
	payrollHandler := payroll.NewHandler(payrollService)
	authHandler := auth.NewHandler(authService)

	// --- Routes ---
	api := router.Group("/api/v1")
	if rdb != nil {
		api.Use(middleware.Idempotency(rdb))
	}
	{
		auth.RegisterRoutes(api, authHandler)
		person.RegisterRoutes(api, personHandler)
		leave.RegisterRoutes(api, leaveHandler)
		trip.RegisterRoutes(api, tripHandler)
		payroll.RegisterRoutes(api, payrollHandler)
	}

	return nil
}
