package database

import (
	"path/filepath"
	"testing"

	"buildpro-site/internal/config"

	"go.uber.org/zap/zaptest"
)

func TestInitGormSetsGlobalAndMigrates(t *testing.T) {
	t.Cleanup(func() { GormDB = nil })
	cfg := &config.Config{
		DBDriver: config.DriverSQLite,
		DBPath:   filepath.Join(t.TempDir(), "init.db"),
	}

	db := InitGorm(cfg, zaptest.NewLogger(t))
	if GormDB == nil || GormDB != db {
		t.Fatal("InitGorm did not store the connection in GormDB")
	}
	for _, table := range []string{"projects", "services", "testimonials", "inquiries"} {
		if !GormDB.Migrator().HasTable(table) {
			t.Errorf("table %s was not migrated", table)
		}
	}
}

func TestOpenRejectsUnknownDriver(t *testing.T) {
	if _, err := Open(&config.Config{DBDriver: "mysql"}); err == nil {
		t.Error("expected an error for an unsupported driver")
	}
}

func TestPostgresDSN(t *testing.T) {
	got := PostgresDSN(&config.Config{
		DBHost: "db", DBUser: "site", DBPassword: "pw", DBName: "buildpro", DBPort: "5432", DBSSLMode: "disable",
	})
	want := "host=db user=site password=pw dbname=buildpro port=5432 sslmode=disable"
	if got != want {
		t.Errorf("PostgresDSN = %q, want %q", got, want)
	}
}
