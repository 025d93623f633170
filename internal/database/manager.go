package database

import (
	"context"
	"fmt"
	"time"

	"github.com/anujiiiscopyforanushka/healthcare-symptom-checker/internal/models"
	"github.com/go-redis/redis/v8"
	"github.com/sirupsen/logrus"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// Manager owns the storage connections. Redis is nil when no REDIS_URL was
// configured; callers check CacheEnabled before touching it.
type Manager struct {
	DB     *gorm.DB
	Redis  *redis.Client
	logger *logrus.Logger
}

type Config struct {
	DatabaseURL string
	SQLitePath  string
	RedisURL    string
	LogLevel    string
}

// NewManager opens the database and, when configured, Redis. A non-empty
// DatabaseURL selects Postgres; otherwise it falls back to a local SQLite
// file, which is the default deployment.
func NewManager(config *Config, logger *logrus.Logger) (*Manager, error) {
	var gormLogger gormlogger.Interface
	switch config.LogLevel {
	case "debug":
		gormLogger = gormlogger.Default.LogMode(gormlogger.Info)
	default:
		gormLogger = gormlogger.Default.LogMode(gormlogger.Silent)
	}

	var dialector gorm.Dialector
	if config.DatabaseURL != "" {
		dialector = postgres.Open(config.DatabaseURL)
	} else {
		dialector = sqlite.Open(config.SQLitePath)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:                 gormLogger,
		SkipDefaultTransaction: true,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}

	if config.DatabaseURL != "" {
		// Connection pool settings only matter for Postgres.
		sqlDB.SetMaxIdleConns(10)
		sqlDB.SetMaxOpenConns(100)
		sqlDB.SetConnMaxLifetime(time.Hour)
		sqlDB.SetConnMaxIdleTime(10 * time.Minute)
	} else {
		// SQLite serializes writes; a single connection avoids lock errors.
		sqlDB.SetMaxOpenConns(1)
	}

	if err := sqlDB.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	manager := &Manager{
		DB:     db,
		logger: logger,
	}

	// Redis is optional. Configured but unreachable is a startup error,
	// silently running without a cache the operator asked for is worse.
	if config.RedisURL != "" {
		redisOpts, err := redis.ParseURL(config.RedisURL)
		if err != nil {
			return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
		}

		redisOpts.PoolSize = 20
		redisOpts.MinIdleConns = 5

		manager.Redis = redis.NewClient(redisOpts)

		if err := manager.PingRedis(); err != nil {
			return nil, fmt.Errorf("failed to connect to Redis: %w", err)
		}
	}

	logger.Info("Storage connections established successfully")
	return manager, nil
}

// Migrate creates or updates the queries table.
func (m *Manager) Migrate() error {
	m.logger.Info("Running database migrations...")

	return m.DB.AutoMigrate(
		&models.Query{},
	)
}

// Close closes all storage connections.
func (m *Manager) Close() error {
	if m.Redis != nil {
		if err := m.Redis.Close(); err != nil {
			m.logger.WithError(err).Error("Failed to close Redis connection")
		}
	}

	if m.DB != nil {
		sqlDB, err := m.DB.DB()
		if err != nil {
			return err
		}
		return sqlDB.Close()
	}

	return nil
}

func (m *Manager) CacheEnabled() bool {
	return m.Redis != nil
}

// Health check methods
func (m *Manager) PingDatabase() error {
	sqlDB, err := m.DB.DB()
	if err != nil {
		return err
	}
	return sqlDB.Ping()
}

func (m *Manager) PingRedis() error {
	if m.Redis == nil {
		return fmt.Errorf("redis not configured")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return m.Redis.Ping(ctx).Err()
}
