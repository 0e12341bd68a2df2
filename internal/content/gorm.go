package content

import (
	"context"
	"errors"
	"fmt"
	"time"

	"buildpro-site/internal/metrics"
	"buildpro-site/internal/models"

	"gorm.io/gorm"
)

// GormReader reads a collection stored in the local database.
type GormReader[T any] struct {
	db         *gorm.DB
	collection Collection
}

func NewGormReader[T any](db *gorm.DB, c Collection) *GormReader[T] {
	return &GormReader[T]{db: db, collection: c}
}

// NewGormCatalog returns a catalog backed entirely by db.
func NewGormCatalog(db *gorm.DB) *Catalog {
	return &Catalog{
		Projects:     NewGormReader[models.Project](db, Projects),
		Services:     NewGormReader[models.Service](db, Services),
		Testimonials: NewGormReader[models.Testimonial](db, Testimonials),
	}
}

// ListAll returns records in insertion order, the order the content store
// presents them in.
func (r *GormReader[T]) ListAll(ctx context.Context) ([]T, error) {
	start := time.Now()
	var items []T
	err := r.db.WithContext(ctx).Order("created_at ASC, id ASC").Find(&items).Error
	metrics.RecordDBQueryDuration("list", string(r.collection), time.Since(start))
	if err != nil {
		metrics.IncrementContentFetch(string(r.collection), "list", "error")
		return nil, fmt.Errorf("list %s: %w", r.collection, err)
	}
	metrics.IncrementContentFetch(string(r.collection), "list", "ok")
	return items, nil
}

func (r *GormReader[T]) GetOne(ctx context.Context, id string) (*T, error) {
	start := time.Now()
	var item T
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error
	metrics.RecordDBQueryDuration("get", string(r.collection), time.Since(start))
	if errors.Is(err, gorm.ErrRecordNotFound) {
		metrics.IncrementContentFetch(string(r.collection), "get", "not_found")
		return nil, ErrNotFound
	}
	if err != nil {
		metrics.IncrementContentFetch(string(r.collection), "get", "error")
		return nil, fmt.Errorf("get %s %q: %w", r.collection, id, err)
	}
	metrics.IncrementContentFetch(string(r.collection), "get", "ok")
	return &item, nil
}
