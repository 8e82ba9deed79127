package configs

import (
	"fmt"
	"time"

	"github.com/pkg/errors"
	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"github.com/Lulu77Donc/reggie-take-out/entity"
	"github.com/Lulu77Donc/reggie-take-out/pkg/logger"
)

// Dialector maps DB_DRIVER to a gorm dialector.
func Dialector(driver, source string) (gorm.Dialector, error) {
	switch driver {
	case "", "sqlite":
		return sqlite.Open(source), nil
	case "mysql":
		return mysql.Open(source), nil
	case "postgres", "postgresql":
		return postgres.Open(source), nil
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", driver)
	}
}

// ConnectionDB opens the configured database with the zap-backed SQL logger.
func ConnectionDB(cfg *Config) (*gorm.DB, error) {
	dial, err := Dialector(cfg.DBDriver, cfg.DBSource)
	if err != nil {
		return nil, err
	}
	db, err := gorm.Open(dial, &gorm.Config{
		Logger: logger.NewGormLogger(gormlogger.Config{
			SlowThreshold:             200 * time.Millisecond,
			LogLevel:                  gormlogger.Warn,
			IgnoreRecordNotFoundError: true,
		}, logger.L()),
		TranslateError: true,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "open %s database", cfg.DBDriver)
	}
	return db, nil
}

// SetupDatabase migrates every table.
func SetupDatabase(db *gorm.DB) error {
	return errors.Wrap(db.AutoMigrate(entity.All()...), "auto migrate")
}
