package db

import (
	"fmt"
	"strings"

	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/avenlyn/commerce-backend/internal/data/records"
	"github.com/avenlyn/commerce-backend/internal/pkg/env"
	"github.com/avenlyn/commerce-backend/internal/pkg/logger"
)

type DatabaseService struct {
	db  *gorm.DB
	log *logger.Logger
}

// NewDatabaseService connects to the configured store. DB_DRIVER selects the
// dialect: postgres (default) or sqlite for local runs.
func NewDatabaseService(log *logger.Logger) (*DatabaseService, error) {
	serviceLog := log.With("service", "DatabaseService")

	driver := strings.ToLower(env.Get("DB_DRIVER", "postgres", log))

	var dialector gorm.Dialector
	switch driver {
	case "sqlite":
		path := env.Get("SQLITE_PATH", "commerce.db", log)
		dialector = sqlite.Open(path)
	case "postgres":
		host := env.Get("POSTGRES_HOST", "localhost", log)
		port := env.Get("POSTGRES_PORT", "5432", log)
		user := env.Get("POSTGRES_USER", "postgres", log)
		password := env.Get("POSTGRES_PASSWORD", "", log)
		name := env.Get("POSTGRES_NAME", "commerce", log)
		dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=disable", user, password, host, port, name)
		dialector = postgres.Open(dsn)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}

	log.Info("Connecting to database...", "driver", driver)
	theDB, err := gorm.Open(dialector, &gorm.Config{
		DisableForeignKeyConstraintWhenMigrating: true,
	})
	if err != nil {
		serviceLog.Error("Failed to connect to database", "error", err)
		return nil, fmt.Errorf("connect database: %w", err)
	}

	return &DatabaseService{db: theDB, log: serviceLog}, nil
}

func (s *DatabaseService) AutoMigrateAll() error {
	s.log.Info("Auto migrating tables...")
	err := s.db.AutoMigrate(
		&records.Customer{},
		&records.Order{},
		&records.Product{},
		&records.OrderEvent{},
		&records.User{},
		&records.UserToken{},
	)
	if err != nil {
		s.log.Error("Auto migration failed", "error", err)
		return err
	}
	return nil
}

func (s *DatabaseService) DB() *gorm.DB {
	return s.db
}
