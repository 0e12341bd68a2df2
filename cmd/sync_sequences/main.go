package main

import (
	"fmt"

	"buildpro-site/internal/config"
	"buildpro-site/internal/database"
	"buildpro-site/internal/logger"

	"go.uber.org/zap"
)

// Tables keyed by a serial id. Content tables use string ids and have no
// sequence.
var serialTables = []string{
	"inquiries",
}

func main() {
	cfg, envErr := config.LoadConfig()
	log := logger.NewLogger(cfg.Development())
	defer log.Sync()
	if envErr != nil {
		log.Warn("failed to load .env", zap.Error(envErr))
	}

	cfg.DBDriver = config.DriverPostgres
	database.InitGorm(cfg, log)
	db := database.GormDB

	log.Info("syncing PostgreSQL sequences")

	for _, table := range serialTables {
		query := fmt.Sprintf("SELECT setval(pg_get_serial_sequence('%s', 'id'), coalesce(max(id), 0) + 1, false) FROM %s", table, table)
		if err := db.Exec(query).Error; err != nil {
			log.Error("failed to sync sequence", zap.String("table", table), zap.Error(err))
		} else {
			log.Info("synced sequence", zap.String("table", table))
		}
	}

	log.Info("done")
}
