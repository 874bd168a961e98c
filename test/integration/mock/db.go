package mock

import (
	"database/sql"
	"fmt"
	"sync"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/expense-tracker/backend/internal/integration/persistence/model"
)

var dbOnce sync.Once
var db *Db

// Db wraps a shared in-memory SQLite database for integration scenarios. The
// schema mirrors the production tables via the same GORM models.
type Db struct {
	Conn   *gorm.DB
	models []any
}

// NewDb returns the shared test database, migrating the schema on first use.
func NewDb() *Db {
	dbOnce.Do(func() {
		db = open()
	})
	return db
}

func open() *Db {
	sqlDB, err := sql.Open("sqlite", "file::memory:?cache=shared")
	if err != nil {
		panic(err)
	}

	// A single connection keeps the shared in-memory database alive.
	sqlDB.SetMaxOpenConns(1)

	conn, err := gorm.Open(sqlite.Dialector{Conn: sqlDB}, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		panic("failed to connect to test database: " + err.Error())
	}

	d := &Db{
		Conn: conn,
		models: []any{
			&model.UserModel{},
			&model.CategoryModel{},
			&model.ExpenseModel{},
			&model.ExpenseCategoryModel{},
			&model.FixedExpenseModel{},
			&model.TransactionModel{},
			&model.TransactionExpenseModel{},
			&model.ReportJobModel{},
		},
	}

	if err := conn.AutoMigrate(d.models...); err != nil {
		panic(fmt.Sprintf("failed to migrate test database: %s", err))
	}

	return d
}

// Reset deletes all rows so each scenario starts from an empty database.
func (d *Db) Reset() error {
	for _, m := range d.models {
		err := d.Conn.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(m).Error
		if err != nil {
			return err
		}
	}
	return nil
}

// Count returns the number of rows in the given table.
func (d *Db) Count(table string) (int64, error) {
	var count int64
	err := d.Conn.Table(table).Count(&count).Error
	return count, err
}
