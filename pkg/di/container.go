package di

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/sathvik89/Taskease/application/serviceimpl"
	"github.com/sathvik89/Taskease/domain/ports"
	"github.com/sathvik89/Taskease/domain/repositories"
	"github.com/sathvik89/Taskease/domain/services"
	"github.com/sathvik89/Taskease/infrastructure/export"
	natspkg "github.com/sathvik89/Taskease/infrastructure/nats"
	"github.com/sathvik89/Taskease/infrastructure/postgres"
	redispkg "github.com/sathvik89/Taskease/infrastructure/redis"
	"github.com/sathvik89/Taskease/interfaces/api/handlers"
	"github.com/sathvik89/Taskease/pkg/config"
	"github.com/sathvik89/Taskease/pkg/logger"
	"github.com/sathvik89/Taskease/pkg/scheduler"
)

type Container struct {
	Config *config.Config

	// Infrastructure
	DB             *gorm.DB
	RedisClient    *redispkg.Client // optional, stats are computed on every call without it
	NATSClient     *natspkg.Client  // optional, events are dropped without it
	EventScheduler scheduler.EventScheduler

	// Ports
	StatsCache     ports.StatsCachePort
	EventPublisher ports.TaskEventPublisherPort
	TaskExporter   ports.TaskExporterPort

	// Repositories
	UserRepository repositories.UserRepository
	TaskRepository repositories.TaskRepository

	// Services
	UserService       services.UserService
	TaskService       services.TaskService
	TrashRetentionJob *serviceimpl.TrashRetentionJob
}

func NewContainer() *Container {
	return &Container{}
}

func (c *Container) Initialize() error {
	if err := c.initConfig(); err != nil {
		return err
	}
	if err := c.initLogger(); err != nil {
		return err
	}
	if err := c.initInfrastructure(); err != nil {
		return err
	}
	if err := c.initRepositories(); err != nil {
		return err
	}
	if err := c.initServices(); err != nil {
		return err
	}
	if err := c.initScheduler(); err != nil {
		return err
	}

	logger.Info("Container initialized")
	return nil
}

func (c *Container) initConfig() error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	c.Config = cfg
	return nil
}

func (c *Container) initLogger() error {
	if err := logger.Init(LoggerConfig(c.Config)); err != nil {
		return err
	}

	logger.Info("Logger initialized",
		"level", c.Config.Log.Level,
		"format", c.Config.Log.Format,
		"output", c.Config.Log.Output,
	)
	return nil
}

func (c *Container) initInfrastructure() error {
	db, err := OpenDatabase(c.Config)
	if err != nil {
		return err
	}
	c.DB = db
	logger.Info("Database connected", "driver", c.Config.Database.Driver, "db", c.Config.Database.DBName)

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}
	logger.Info("Database migrated")

	// Redis and NATS are optional: a failure degrades the service instead of
	// stopping it.
	if c.Config.Redis.URL != "" {
		redisClient, err := redispkg.NewClient(&c.Config.Redis)
		if err != nil {
			logger.Warn("Redis client initialization failed (stats cache disabled)", "error", err)
		} else {
			c.RedisClient = redisClient
			c.StatsCache = redispkg.NewStatsCache(redisClient, c.Config.Redis.StatsTTL)
		}
	} else {
		logger.Info("Redis not configured, stats cache disabled")
	}

	c.EventPublisher = natspkg.NoopPublisher{}
	if c.Config.NATS.URL != "" {
		natsClient, err := natspkg.NewClient(natspkg.ClientConfig{URL: c.Config.NATS.URL})
		if err != nil {
			logger.Warn("NATS client initialization failed (task events disabled)", "error", err)
		} else {
			c.NATSClient = natsClient
			c.EventPublisher = natspkg.NewPublisher(natsClient)
		}
	} else {
		logger.Info("NATS not configured, task events disabled")
	}

	c.TaskExporter = export.NewXLSXExporter()
	return nil
}

func (c *Container) initRepositories() error {
	c.UserRepository = postgres.NewUserRepository(c.DB)
	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	logger.Info("Repositories initialized")
	return nil
}

func (c *Container) initServices() error {
	c.UserService = serviceimpl.NewUserService(c.UserRepository, c.Config.JWT.Secret, c.Config.JWT.TTL)
	c.TaskService = serviceimpl.NewTaskService(
		c.TaskRepository,
		c.UserRepository,
		c.StatsCache,
		c.EventPublisher,
		c.TaskExporter,
		serviceimpl.TaskServiceConfig{UpcomingLimit: c.Config.Tasks.UpcomingLimit},
	)
	logger.Info("Services initialized")
	return nil
}

func (c *Container) initScheduler() error {
	c.EventScheduler = scheduler.NewEventScheduler()

	c.TrashRetentionJob = serviceimpl.NewTrashRetentionJob(
		serviceimpl.TrashRetentionConfig{
			Retention: c.Config.TrashRetention(),
			Cron:      c.Config.Tasks.TrashPurgeCron,
		},
		c.TaskService,
		c.EventScheduler,
	)
	if err := c.TrashRetentionJob.Register(); err != nil {
		return fmt.Errorf("failed to register trash retention job: %w", err)
	}

	c.EventScheduler.Start()
	return nil
}

func (c *Container) Cleanup() error {
	logger.Info("Starting cleanup...")

	if c.EventScheduler != nil && c.EventScheduler.IsRunning() {
		c.EventScheduler.Stop()
	}

	if c.NATSClient != nil {
		if err := c.NATSClient.Close(); err != nil {
			logger.Warn("Failed to close NATS connection", "error", err)
		}
	}

	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Warn("Failed to close Redis connection", "error", err)
		} else {
			logger.Info("Redis connection closed")
		}
	}

	if c.DB != nil {
		if sqlDB, err := c.DB.DB(); err == nil {
			if err := sqlDB.Close(); err != nil {
				logger.Warn("Failed to close database connection", "error", err)
			} else {
				logger.Info("Database connection closed")
			}
		}
	}

	logger.Info("Cleanup completed")
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	checks := map[string]handlers.HealthCheck{
		"database": func(context.Context) error { return postgres.Ping(c.DB) },
	}
	if c.RedisClient != nil {
		checks["redis"] = c.RedisClient.Ping
	}
	if c.NATSClient != nil {
		checks["nats"] = func(context.Context) error { return c.NATSClient.Ping() }
	}

	return &handlers.Services{
		UserService:  c.UserService,
		TaskService:  c.TaskService,
		HealthChecks: checks,
	}
}

// OpenDatabase connects using the database section of cfg. Shared with the
// operator CLI.
func OpenDatabase(cfg *config.Config) (*gorm.DB, error) {
	return postgres.NewDatabase(postgres.DatabaseConfig{
		Driver:     cfg.Database.Driver,
		Host:       cfg.Database.Host,
		Port:       cfg.Database.Port,
		User:       cfg.Database.User,
		Password:   cfg.Database.Password,
		DBName:     cfg.Database.DBName,
		SSLMode:    cfg.Database.SSLMode,
		SQLitePath: cfg.Database.SQLitePath,
		LogLevel:   cfg.Database.LogLevel,
	})
}

func LoggerConfig(cfg *config.Config) logger.Config {
	return logger.Config{
		Level:      cfg.Log.Level,
		Format:     cfg.Log.Format,
		Output:     cfg.Log.Output,
		FilePath:   cfg.Log.FilePath,
		MaxSize:    cfg.Log.MaxSize,
		MaxBackups: cfg.Log.MaxBackups,
		MaxAge:     cfg.Log.MaxAge,
		Compress:   cfg.Log.Compress,
	}
}
