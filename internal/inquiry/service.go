package inquiry

import (
	"context"
	"strings"
	"time"

	"buildpro-site/internal/metrics"
	"buildpro-site/internal/models"
	pkgmodels "buildpro-site/pkg/models"

	"go.uber.org/zap"
)

const RoutingKeyCreated = "inquiry.created"

// Notifier publishes events for other systems, such as the sales inbox.
type Notifier interface {
	Publish(ctx context.Context, routingKey string, payload any) error
}

type Service struct {
	store    Store
	notifier Notifier
	logger   *zap.Logger
}

// NewService builds the submission service. notifier may be nil, in which
// case nothing is published.
func NewService(store Store, notifier Notifier, logger *zap.Logger) *Service {
	return &Service{store: store, notifier: notifier, logger: logger}
}

// Submit stores the inquiry and announces it. Only the store can fail a
// submission; a failed publish is logged.
func (s *Service) Submit(ctx context.Context, inquiry *models.Inquiry) error {
	inquiry.Name = strings.TrimSpace(inquiry.Name)
	inquiry.Email = strings.TrimSpace(inquiry.Email)
	inquiry.Phone = strings.TrimSpace(inquiry.Phone)
	inquiry.ProjectType = strings.TrimSpace(inquiry.ProjectType)
	inquiry.Message = strings.TrimSpace(inquiry.Message)

	if err := s.store.Create(ctx, inquiry); err != nil {
		return err
	}
	metrics.IncrementInquiry(inquiry.ProjectType)
	s.logger.Info("inquiry received",
		zap.Uint("id", inquiry.ID),
		zap.String("project_type", inquiry.ProjectType),
	)

	if s.notifier == nil {
		return nil
	}
	event := pkgmodels.InquiryCreated{
		ID:          inquiry.ID,
		Name:        inquiry.Name,
		Email:       inquiry.Email,
		Phone:       inquiry.Phone,
		ProjectType: inquiry.ProjectType,
		Message:     inquiry.Message,
		CreatedAt:   inquiry.CreatedAt.UTC().Format(time.RFC3339),
	}
	if err := s.notifier.Publish(ctx, RoutingKeyCreated, event); err != nil {
		s.logger.Warn("failed to publish inquiry event",
			zap.Uint("id", inquiry.ID),
			zap.Error(err),
		)
	}
	return nil
}

func (s *Service) List(ctx context.Context, limit int) ([]models.Inquiry, error) {
	return s.store.List(ctx, limit)
}
