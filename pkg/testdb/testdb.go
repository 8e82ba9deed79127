// Package testdb opens migrated in-memory sqlite databases for tests.
package testdb

import (
	"fmt"
	"strings"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Lulu77Donc/reggie-take-out/entity"
)

// New returns a fresh database private to t, migrated with every table.
func New(t testing.TB) *gorm.DB {
	t.Helper()
	name := strings.NewReplacer("/", "_", " ", "_", "#", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared&_foreign_keys=1", name)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         gormlogger.Discard,
		TranslateError: true,
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("sql db: %v", err)
	}
	// one connection keeps the shared in-memory database alive and serialises writes
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	if err := db.AutoMigrate(entity.All()...); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

// FailOn makes every create or delete against table fail with err.
func FailOn(t testing.TB, db *gorm.DB, table string, err error) {
	t.Helper()
	hook := func(tx *gorm.DB) {
		if tx.Statement.Table == table {
			_ = tx.AddError(err)
		}
	}
	name := "testdb:fail_" + table
	if e := db.Callback().Create().Before("gorm:create").Register(name, hook); e != nil {
		t.Fatalf("register create hook: %v", e)
	}
	if e := db.Callback().Delete().Before("gorm:delete").Register(name, hook); e != nil {
		t.Fatalf("register delete hook: %v", e)
	}
}
