package app

import (
	"fmt"

	"go-hrcore/internal/leave"
	hrkafka "go-hrcore/internal/messaging/kafka"
	"go-hrcore/internal/middleware"
	"go-hrcore/internal/payroll"
	"go-hrcore/internal/person"
	"go-hrcore/internal/shared/connection"
	"go-hrcore/internal/trip"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	kafkago "github.com/segmentio/kafka-go"
	"go.uber.org/zap"
	"golang.org/x/time/rate"
	"gorm.io/gorm"
)

// BuildApp assembles storage, optional infrastructure, and all module routes
// on the given engine. The memory driver needs no external services; the
// postgres driver migrates its tables on startup.
func BuildApp(router *gin.Engine, cfg Config) error {
	logger := zap.L().Named("app")

	router.Use(middleware.RequestID())
	router.Use(middleware.RateLimitByIP(rate.Limit(50), 100))

	var gormDB *gorm.DB
	switch cfg.StorageDriver {
	case StorageMemory:
		logger.Info("using in-memory storage")
	case StoragePostgres:
		db, err := connection.ConnectGORMWithRetry(
			cfg.DBHost,
			cfg.DBUser,
			cfg.DBPassword,
			cfg.DBName,
			cfg.DBPort,
			cfg.DBSSLMode,
			5,
		)
		if err != nil {
			return err
		}
		if err := db.AutoMigrate(
			&person.Person{},
			&leave.Leave{},
			&trip.Trip{},
			&payroll.Payroll{},
		); err != nil {
			return fmt.Errorf("auto migrate: %w", err)
		}
		gormDB = db
	default:
		return fmt.Errorf("unknown storage driver %q", cfg.StorageDriver)
	}

	var rdb *redis.Client
	if cfg.RedisAddr != "" {
		client, err := connection.ConnectRedisWithRetry(cfg.RedisAddr, 5)
		if err != nil {
			return err
		}
		rdb = client
	}

	var kafkaWriter *kafkago.Writer
	if cfg.KafkaBrokers != "" {
		kafkaWriter = hrkafka.NewWriter(cfg.KafkaBrokers)
		logger.Info("kafka producer configured", zap.String("brokers", cfg.KafkaBrokers))
	}

	return registerModules(router, cfg, gormDB, rdb, kafkaWriter)
}
