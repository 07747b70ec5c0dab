package container

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/gdugdh24/mentorship-backend/internal/config"
	deliveryhttp "github.com/gdugdh24/mentorship-backend/internal/delivery/http"
	"github.com/gdugdh24/mentorship-backend/internal/delivery/http/handler"
	"github.com/gdugdh24/mentorship-backend/internal/delivery/http/middleware"
	"github.com/gdugdh24/mentorship-backend/internal/domain"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/auth"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/database"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/metrics"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/notifier"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/refdata"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/seed"
	"github.com/gdugdh24/mentorship-backend/internal/infrastructure/server"
	"github.com/gdugdh24/mentorship-backend/internal/repository"
	"github.com/gdugdh24/mentorship-backend/internal/repository/memory"
	"github.com/gdugdh24/mentorship-backend/internal/repository/postgres"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/activity"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/match"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/mentor"
	"github.com/gdugdh24/mentorship-backend/internal/usecase/notify"
	"github.com/jmoiron/sqlx"
	"github.com/redis/go-redis/v9"
)

// Container holds all application dependencies
type Container struct {
	Config     *config.Config
	Logger     *slog.Logger
	DB         *sqlx.DB
	Redis      *redis.Client
	Metrics    *metrics.Metrics
	Dispatcher *notify.Dispatcher
	Server     *server.Server
}

// NewContainer creates a new dependency injection container
func NewContainer(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Container, error) {
	c := &Container{Config: cfg, Logger: logger}

	refData, err := refdata.Load(cfg.ReferenceData.Path)
	if err != nil {
		return nil, fmt.Errorf("failed to load reference data: %w", err)
	}

	// Initialize storage
	var (
		userRepo  repository.UserRepository
		matchRepo repository.MatchRepository
	)
	switch cfg.Storage.Type {
	case config.StorageTypePostgres:
		db, err := database.NewPostgresDB(ctx, &cfg.Database)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize database: %w", err)
		}
		c.DB = db
		userRepo = postgres.NewUserRepository(db)
		matchRepo = postgres.NewMatchRepository(db)
	case config.StorageTypeMemory:
		logger.Warn("using in-memory storage, data is lost on restart")
		users, err := seedUsers(ctx, cfg.Storage.SeedPath, refData, logger)
		if err != nil {
			return nil, err
		}
		userRepo = memory.NewUserRepository(users...)
		matchRepo = memory.NewMatchRepository()
	default:
		return nil, fmt.Errorf("unknown storage type %q", cfg.Storage.Type)
	}

	// Initialize notification channel
	var mentorNotifier notify.Notifier
	if cfg.Redis.Enabled {
		redisClient, err := database.NewRedisClient(ctx, &cfg.Redis)
		if err != nil {
			_ = c.Close()
			return nil, fmt.Errorf("failed to initialize redis: %w", err)
		}
		c.Redis = redisClient
		mentorNotifier = notifier.NewRedis(redisClient, cfg.Notification.QueueKey)
	} else {
		mentorNotifier = notifier.NewLog(logger)
	}

	c.Metrics = metrics.New()
	c.Dispatcher = notify.NewDispatcher(mentorNotifier, notify.Config{
		Workers: cfg.Notification.Workers,
		Buffer:  cfg.Notification.Buffer,
		Timeout: cfg.Notification.Timeout,
	}, logger, c.Metrics)
	c.Dispatcher.Start()

	// Initialize use cases
	finder := mentor.NewFinder(userRepo, refData)

	lifecycleUseCase := match.NewLifecycleUseCase(
		matchRepo,
		userRepo,
		c.Dispatcher,
		c.Metrics,
		match.Policy{
			AllowDuplicatePending:     cfg.Matching.AllowDuplicatePending,
			AllowRerequestAfterReject: cfg.Matching.AllowRerequestAfterReject,
		},
		logger,
	)

	activityUseCase := activity.NewActivityUseCase(matchRepo, userRepo)

	// Initialize handlers and middleware
	matchHandler := handler.NewMatchHandler(finder, lifecycleUseCase, activityUseCase)
	authMiddleware := middleware.NewAuthMiddleware(auth.NewHMACService(cfg.JWT.AccessSecret, cfg.JWT.Issuer))

	// Initialize router
	router := deliveryhttp.NewRouter(
		matchHandler,
		authMiddleware,
		c.Metrics,
		c.Metrics.Handler(),
		logger,
	)

	c.Server = server.NewServer(&cfg.Server, router.Setup(), logger)

	return c, nil
}

func seedUsers(ctx context.Context, path string, refData *refdata.Provider, logger *slog.Logger) ([]*domain.User, error) {
	if path == "" {
		logger.Warn("USERS_SEED_PATH is not set, user directory is empty")
		return nil, nil
	}
	enums, err := refData.CareerEnumerations(ctx)
	if err != nil {
		return nil, err
	}
	tags, err := refData.ExpertiseTags(ctx)
	if err != nil {
		return nil, err
	}
	users, err := seed.LoadUsers(path, enums, tags)
	if err != nil {
		return nil, fmt.Errorf("failed to seed users: %w", err)
	}
	logger.Info("seeded user directory", slog.Int("users", len(users)), slog.String("path", path))
	return users, nil
}

// Close drains pending notifications, then closes connections
func (c *Container) Close() error {
	if c.Dispatcher != nil {
		c.Dispatcher.Close()
	}

	if c.Redis != nil {
		if err := c.Redis.Close(); err != nil {
			c.Logger.Error("failed to close redis", slog.String("error", err.Error()))
		}
	}

	if c.DB != nil {
		if err := c.DB.Close(); err != nil {
			return fmt.Errorf("failed to close database: %w", err)
		}
	}

	return nil
}
