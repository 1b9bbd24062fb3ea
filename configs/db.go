package configs

import (
	"github.com/pkg/errors"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/Rikoze777/menu-api/entity"
)

// Connect opens the store for the configured driver and returns the handle
// for injection; there is no package-level connection.
func Connect(cfg *Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case "postgres":
		dialector = postgres.Open(cfg.DBSource)
	case "sqlite":
		// Foreign keys are off by default in sqlite; the cascade
		// constraints are load-bearing, so force them on.
		dialector = sqlite.Open(cfg.DBSource + "?_foreign_keys=on")
	default:
		return nil, errors.Errorf("unsupported db driver %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{})
	if err != nil {
		return nil, errors.Wrap(err, "connect database")
	}
	return db, nil
}

// SetupDatabase migrates the schema, including the ON DELETE CASCADE
// constraints declared on the entities.
func SetupDatabase(db *gorm.DB) error {
	return db.AutoMigrate(
		&entity.Menu{},
		&entity.Submenu{},
		&entity.Dish{},
	)
}
