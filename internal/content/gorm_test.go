package content

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"buildpro-site/internal/database"
	"buildpro-site/internal/models"

	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.OpenSQLite(filepath.Join(t.TempDir(), "content.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := database.Migrate(db); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func TestGormReaderListAllInInsertionOrder(t *testing.T) {
	db := newTestDB(t)
	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	projects := []models.Project{
		{ID: "zeta", ProjectName: "First", CreatedAt: base},
		{ID: "alpha", ProjectName: "Second", CreatedAt: base.Add(time.Minute)},
		{ID: "mid", ProjectName: "Third", CreatedAt: base.Add(2 * time.Minute)},
	}
	if err := db.Create(&projects).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}

	got, err := NewGormReader[models.Project](db, Projects).ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d projects, want 3", len(got))
	}
	for i, want := range []string{"zeta", "alpha", "mid"} {
		if got[i].ID != want {
			t.Errorf("got[%d].ID = %q, want %q", i, got[i].ID, want)
		}
	}
}

func TestGormReaderGetOne(t *testing.T) {
	db := newTestDB(t)
	if err := db.Create(&models.Service{ID: "svc-1", ServiceName: "Roofing"}).Error; err != nil {
		t.Fatalf("seed: %v", err)
	}
	r := NewGormReader[models.Service](db, Services)

	got, err := r.GetOne(context.Background(), "svc-1")
	if err != nil {
		t.Fatalf("GetOne: %v", err)
	}
	if got.ServiceName != "Roofing" {
		t.Errorf("ServiceName = %q, want Roofing", got.ServiceName)
	}

	if _, err := r.GetOne(context.Background(), "missing"); !errors.Is(err, ErrNotFound) {
		t.Errorf("GetOne(missing) error = %v, want ErrNotFound", err)
	}
}

func TestGormCatalogEmptyTables(t *testing.T) {
	catalog := NewGormCatalog(newTestDB(t))
	got, err := catalog.Testimonials.ListAll(context.Background())
	if err != nil {
		t.Fatalf("ListAll: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("got %d testimonials, want 0", len(got))
	}
}
