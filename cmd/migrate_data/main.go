package main

import (
	"buildpro-site/internal/config"
	"buildpro-site/internal/database"
	"buildpro-site/internal/logger"
	"buildpro-site/internal/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Copies every table from the SQLite file at DB_PATH into the PostgreSQL
// database described by the DB_* settings.
func main() {
	cfg, envErr := config.LoadConfig()
	log := logger.NewLogger(cfg.Development())
	defer log.Sync()
	if envErr != nil {
		log.Warn("failed to load .env", zap.Error(envErr))
	}

	// 1. Source
	sqliteDB, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		log.Fatal("failed to connect to SQLite", zap.String("path", cfg.DBPath), zap.Error(err))
	}
	log.Info("connected to SQLite", zap.String("path", cfg.DBPath))

	// 2. Destination
	cfg.DBDriver = config.DriverPostgres
	database.InitGorm(cfg, log)
	pgDB := database.GormDB

	log.Info("starting data migration")

	migrateTable(log, sqliteDB, pgDB, "projects", &[]models.Project{})
	migrateTable(log, sqliteDB, pgDB, "services", &[]models.Service{})
	migrateTable(log, sqliteDB, pgDB, "testimonials", &[]models.Testimonial{})
	migrateTable(log, sqliteDB, pgDB, "inquiries", &[]models.Inquiry{})

	log.Info("migration finished, run sync_sequences next")
}

// migrateTable reads a whole table into rows, a pointer to a slice, and
// writes it to the destination in batches within one transaction.
func migrateTable(log *zap.Logger, src, dst *gorm.DB, table string, rows any) {
	log.Info("migrating table", zap.String("table", table))

	result := src.Find(rows)
	if result.Error != nil {
		log.Error("failed to read table from SQLite", zap.String("table", table), zap.Error(result.Error))
		return
	}
	if result.RowsAffected == 0 {
		log.Info("table is empty, skipping", zap.String("table", table))
		return
	}

	err := dst.Transaction(func(tx *gorm.DB) error {
		return tx.CreateInBatches(rows, 200).Error
	})
	if err != nil {
		log.Error("failed to write table to Postgres", zap.String("table", table), zap.Error(err))
		return
	}
	log.Info("migrated table", zap.String("table", table), zap.Int64("rows", result.RowsAffected))
}
