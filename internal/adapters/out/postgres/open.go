package postgres

import (
	"fmt"
	"time"

	"logistics/internal/adapters/out/postgres/carrierrepo"
	"logistics/internal/adapters/out/postgres/orderrepo"
	"logistics/internal/adapters/out/postgres/routerepo"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

const (
	DialectPostgres = "postgres"
	DialectMySQL    = "mysql"
)

// Config selects and addresses the authoritative store.
type Config struct {
	Dialect      string
	Host         string
	Port         string
	User         string
	Password     string
	Name         string
	SSLMode      string
	MaxOpenConns int
}

// DSN renders the connection string for the configured dialect.
func (c Config) DSN() (string, error) {
	switch c.Dialect {
	case DialectPostgres, "":
		return fmt.Sprintf("host=%s port=%s user=%s password=%s dbname=%s sslmode=%s",
			c.Host, c.Port, c.User, c.Password, c.Name, c.SSLMode), nil
	case DialectMySQL:
		return fmt.Sprintf("%s:%s@tcp(%s:%s)/%s?charset=utf8mb4&parseTime=True&loc=UTC",
			c.User, c.Password, c.Host, c.Port, c.Name), nil
	default:
		return "", fmt.Errorf("unsupported database dialect %q", c.Dialect)
	}
}

// Open connects to the store and tunes the connection pool. Driver errors
// for duplicate keys are translated to gorm.ErrDuplicatedKey.
func Open(cfg Config) (*gorm.DB, error) {
	dsn, err := cfg.DSN()
	if err != nil {
		return nil, err
	}

	var dialector gorm.Dialector
	if cfg.Dialect == DialectMySQL {
		dialector = mysql.Open(dsn)
	} else {
		dialector = postgres.Open(dsn)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Warn),
		TranslateError: true,
	})
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", dialector.Name(), err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	maxOpen := cfg.MaxOpenConns
	if maxOpen <= 0 {
		maxOpen = 25
	}
	sqlDB.SetConnMaxLifetime(5 * time.Minute)
	sqlDB.SetMaxOpenConns(maxOpen)
	sqlDB.SetMaxIdleConns(5)

	return db, nil
}

// AutoMigrate creates or updates every table the engine uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&orderrepo.CityDTO{},
		&carrierrepo.UserDTO{},
		&routerepo.VehicleDTO{},
		&routerepo.RouteDTO{},
		&routerepo.RouteOrderDTO{},
		&orderrepo.OrderDTO{},
	)
}
