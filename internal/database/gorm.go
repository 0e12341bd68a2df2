package database

import (
	"fmt"

	"buildpro-site/internal/config"
	"buildpro-site/internal/models"

	"go.uber.org/zap"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var GormDB *gorm.DB

// Models is every table owned by the site, in migration order.
func Models() []any {
	return []any{
		&models.Project{},
		&models.Service{},
		&models.Testimonial{},
		&models.Inquiry{},
	}
}

func PostgresDSN(cfg *config.Config) string {
	return fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=%s",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort, cfg.DBSSLMode)
}

// Open connects using the configured driver and migrates the schema.
func Open(cfg *config.Config) (*gorm.DB, error) {
	var dialector gorm.Dialector
	switch cfg.DBDriver {
	case config.DriverPostgres:
		dialector = postgres.Open(PostgresDSN(cfg))
	case config.DriverSQLite, "":
		dialector = sqlite.Open(cfg.DBPath)
	default:
		return nil, fmt.Errorf("unsupported DB_DRIVER %q", cfg.DBDriver)
	}

	db, err := gorm.Open(dialector, &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connect %s: %w", cfg.DBDriver, err)
	}

	if err := Migrate(db); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenSQLite opens a SQLite file without migrating it.
func OpenSQLite(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Warn),
	})
}

func Migrate(db *gorm.DB) error {
	if err := db.AutoMigrate(Models()...); err != nil {
		return fmt.Errorf("auto-migration: %w", err)
	}
	return nil
}

// InitGorm opens the database for a command and stores it in GormDB. It
// exits the process on failure.
func InitGorm(cfg *config.Config, log *zap.Logger) *gorm.DB {
	db, err := Open(cfg)
	if err != nil {
		log.Fatal("failed to open database", zap.String("driver", cfg.DBDriver), zap.Error(err))
	}
	log.Info("database ready", zap.String("driver", cfg.DBDriver))
	GormDB = db
	return db
}
