// Package db provides database connection and management functionality.
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

const connectTimeout = 5 * time.Second

// Database wraps the GORM connection and its pool settings.
type Database struct {
	gorm *gorm.DB
}

// NewPostgresConnection opens a PostgreSQL connection, applies the pool
// settings from cfg and verifies reachability with a ping.
func NewPostgresConnection(cfg *config.DatabaseConfig) (*Database, error) {
	conn, err := gorm.Open(postgres.Open(cfg.URL), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, fmt.Errorf("open postgres connection: %w", err)
	}

	pool, err := conn.DB()
	if err != nil {
		return nil, fmt.Errorf("access connection pool: %w", err)
	}
	pool.SetMaxOpenConns(cfg.MaxOpenConns)
	pool.SetMaxIdleConns(cfg.MaxIdleConns)
	pool.SetConnMaxLifetime(cfg.ConnMaxLifetime)

	ctx, cancel := context.WithTimeout(context.Background(), connectTimeout)
	defer cancel()
	if err := pool.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("ping database: %w", err)
	}

	slog.Info("Database connection established",
		"max_open_conns", cfg.MaxOpenConns,
		"max_idle_conns", cfg.MaxIdleConns,
	)

	return &Database{gorm: conn}, nil
}

// DB returns the underlying GORM database instance.
func (d *Database) DB() *gorm.DB {
	return d.gorm
}

// AutoMigrate runs GORM auto-migration for the given models.
func (d *Database) AutoMigrate(models ...interface{}) error {
	if err := d.gorm.AutoMigrate(models...); err != nil {
		return fmt.Errorf("run auto-migration: %w", err)
	}
	return nil
}

// Close closes the underlying connection pool.
func (d *Database) Close() error {
	pool, err := d.gorm.DB()
	if err != nil {
		return fmt.Errorf("access connection pool: %w", err)
	}
	if err := pool.Close(); err != nil {
		return fmt.Errorf("close database connection: %w", err)
	}
	slog.Info("Database connection closed")
	return nil
}
