package di

import (
	"fmt"

	"gorm.io/gorm"

	"taskflow-api/application/serviceimpl"
	"taskflow-api/domain/repositories"
	"taskflow-api/domain/services"
	"taskflow-api/infrastructure/postgres"
	redispkg "taskflow-api/infrastructure/redis"
	"taskflow-api/interfaces/api/handlers"
	"taskflow-api/pkg/config"
	"taskflow-api/pkg/logger"
	"taskflow-api/pkg/ratelimit"
)

// Container wires the application once at process start; everything below is
// passed explicitly, never imported as shared module state.
type Container struct {
	Config *config.Config

	DB          *gorm.DB
	RedisClient *redispkg.Client
	RateLimiter *ratelimit.Limiter

	TaskRepository repositories.TaskRepository

	TaskService services.TaskService
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

	if err := c.initDatabase(); err != nil {
		return err
	}

	if err := c.initRateLimiter(); err != nil {
		return err
	}

	c.TaskRepository = postgres.NewTaskRepository(c.DB)
	c.TaskService = serviceimpl.NewTaskService(c.TaskRepository)

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
	return logger.Init(logger.Config{
		Level:      c.Config.Log.Level,
		Format:     c.Config.Log.Format,
		Output:     c.Config.Log.Output,
		FilePath:   c.Config.Log.FilePath,
		MaxSize:    c.Config.Log.MaxSize,
		MaxBackups: c.Config.Log.MaxBackups,
		MaxAge:     c.Config.Log.MaxAge,
		Compress:   c.Config.Log.Compress,
	})
}

func (c *Container) initDatabase() error {
	db, err := postgres.NewDatabase(postgres.DatabaseConfig{
		Host:     c.Config.Database.Host,
		Port:     c.Config.Database.Port,
		User:     c.Config.Database.User,
		Password: c.Config.Database.Password,
		DBName:   c.Config.Database.DBName,
		SSLMode:  c.Config.Database.SSLMode,
	})
	if err != nil {
		return err
	}

	if err := postgres.Migrate(db); err != nil {
		return fmt.Errorf("failed to migrate database: %w", err)
	}

	logger.Info("Database connected", "host", c.Config.Database.Host, "db", c.Config.Database.DBName)
	c.DB = db
	return nil
}

// initRateLimiter is optional: without Redis (or with limiting disabled) the
// limiter stays nil and the middleware passes requests through.
func (c *Container) initRateLimiter() error {
	if !c.Config.RateLimit.Enabled || !c.Config.Redis.Enabled {
		logger.Info("Rate limiting disabled")
		return nil
	}

	client, err := redispkg.NewClient(&c.Config.Redis)
	if err != nil {
		return fmt.Errorf("failed to connect to redis: %w", err)
	}
	c.RedisClient = client

	c.RateLimiter = ratelimit.NewLimiter(client.Raw(), ratelimit.Config{
		MaxRequests: c.Config.RateLimit.MaxRequests,
		Window:      c.Config.RateLimit.Window,
	}, "ratelimit:")

	logger.Info("Rate limiting enabled",
		"max_requests", c.Config.RateLimit.MaxRequests,
		"window", c.Config.RateLimit.Window.String(),
	)
	return nil
}

func (c *Container) GetConfig() *config.Config {
	return c.Config
}

func (c *Container) GetHandlerServices() *handlers.Services {
	return &handlers.Services{
		TaskService: c.TaskService,
		DB:          c.DB,
		Version:     c.Config.App.Version,
	}
}

func (c *Container) Cleanup() error {
	if c.RedisClient != nil {
		if err := c.RedisClient.Close(); err != nil {
			logger.Error("Failed to close redis client", "error", err)
		}
	}

	if c.DB != nil {
		sqlDB, err := c.DB.DB()
		if err != nil {
			return err
		}
		if err := sqlDB.Close(); err != nil {
			return err
		}
	}

	return nil
}
