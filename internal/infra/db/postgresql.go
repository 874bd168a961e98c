// Package db manages the PostgreSQL connection for the application.
package db

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/config"
)

const (
	connectTimeout = 5 * time.Second
	pingTimeout    = 2 * time.Second
)

// Database wraps the GORM connection handle.
type Database struct {
	gorm *gorm.DB
}

// NewPostgresConnection opens a PostgreSQL connection, applies the pool
// settings from cfg and verifies the database is reachable.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	// GORM stays quiet, application logging goes through slog.
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	sqlDB, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	sqlDB.SetMaxOpenConns(cfg.MaxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.MaxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	database := &Database{gorm: conn}
	if err := database.ping(connectTimeout); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)
	return database, nil
}

// DB returns the GORM connection handle.
func (d *Database) DB() *gorm.DB {
	return d.gorm
}

// HealthCheck reports whether the database currently answers a ping.
func (d *Database) HealthCheck() bool {
	if err := d.ping(pingTimeout); err != nil {
		slog.Error("Database health check failed", "error", err)
		return false
	}
	return true
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("failed to access underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// AutoMigrate creates or updates the tables for the given models.
func (d *Database) AutoMigrate(models ...interface{}) error {
	return d.gorm.AutoMigrate(models...)
}

func (d *Database) ping(timeout time.Duration) error {
	sqlDB, err := d.gorm.DB()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
