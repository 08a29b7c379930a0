// Package mock provides in-memory test doubles for integration tests.
package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite connection used by the test suite.
type Db struct {
	DbConn *gorm.DB
	models []any
}

// NewDb opens (once) an in-memory SQLite database and migrates the given
// models. Subsequent calls return the same instance.
func NewDb(models []any) *Db {
	dbOnce.Do(func() {
		db = open(models)
	})
	return db
}

func open(models []any) *Db {
	dbSQL, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps every session on the same in-memory database.
	dbSQL.SetMaxOpenConns(1)

	dbConn, err := gorm.Open(sqlite.Dialector{Conn: dbSQL}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to database. err: " + err.Error())
	}

	if err := dbConn.AutoMigrate(models...); err != nil {
		panic("failed to migrate test database. err: " + err.Error())
	}

	return &Db{
		DbConn: dbConn,
		models: models,
	}
}

// Reset removes all rows from every migrated table.
func (d *Db) Reset() error {
	for _, model := range d.models {
		err := d.DbConn.Session(&gorm.Session{AllowGlobalUpdate: true}).Unscoped().Delete(model).Error
		if err != nil {
			return fmt.Errorf("failed to reset table for model %T: %w", model, err)
		}
	}
	return nil
}
