// Package content is the read-only repository over the site's content
// collections. Pages depend on Reader; the concrete source is either the
// local database or the remote content service, optionally behind a cache.
package content

import (
	"context"
	"errors"

	"buildpro-site/internal/models"

	"go.uber.org/zap"
)

type Collection string

const (
	Projects     Collection = "projects"
	Services     Collection = "services"
	Testimonials Collection = "testimonials"
)

var ErrNotFound = errors.New("content: record not found")

// Collections lists every collection the site reads.
func Collections() []Collection {
	return []Collection{Projects, Services, Testimonials}
}

// ParseCollection returns the collection with the given name.
func ParseCollection(name string) (Collection, bool) {
	for _, c := range Collections() {
		if string(c) == name {
			return c, true
		}
	}
	return "", false
}

// Reader reads one collection. GetOne returns ErrNotFound for unknown ids.
type Reader[T any] interface {
	ListAll(ctx context.Context) ([]T, error)
	GetOne(ctx context.Context, id string) (*T, error)
}

// Catalog holds a reader per collection.
type Catalog struct {
	Projects     Reader[models.Project]
	Services     Reader[models.Service]
	Testimonials Reader[models.Testimonial]
}

// ListOrEmpty reads every record of a collection. A failed read is logged and
// reported as an empty list so a page can still render.
func ListOrEmpty[T any](ctx context.Context, r Reader[T], c Collection, log *zap.Logger) []T {
	items, err := r.ListAll(ctx)
	if err != nil {
		log.Warn("content fetch failed, rendering empty list",
			zap.String("collection", string(c)),
			zap.Error(err),
		)
		return []T{}
	}
	if items == nil {
		return []T{}
	}
	return items
}
