package inquiry

import (
	"context"
	"fmt"

	"buildpro-site/internal/models"

	"gorm.io/gorm"
)

// Store persists contact inquiries.
type Store interface {
	Create(ctx context.Context, inquiry *models.Inquiry) error
	List(ctx context.Context, limit int) ([]models.Inquiry, error)
}

type GormStore struct {
	db *gorm.DB
}

func NewGormStore(db *gorm.DB) *GormStore {
	return &GormStore{db: db}
}

func (s *GormStore) Create(ctx context.Context, inquiry *models.Inquiry) error {
	if err := s.db.WithContext(ctx).Create(inquiry).Error; err != nil {
		return fmt.Errorf("create inquiry: %w", err)
	}
	return nil
}

// List returns the newest inquiries first.
func (s *GormStore) List(ctx context.Context, limit int) ([]models.Inquiry, error) {
	var inquiries []models.Inquiry
	err := s.db.WithContext(ctx).Order("created_at DESC, id DESC").Limit(limit).Find(&inquiries).Error
	if err != nil {
		return nil, fmt.Errorf("list inquiries: %w", err)
	}
	return inquiries, nil
}
