package target

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

type TargetRepository interface {
	Create(ctx context.Context, input models.TargetInput) (*models.Target, error)
	List(ctx context.Context) ([]models.Target, error)
	Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error)
}

type EventEmitter interface {
	TargetCreated(ctx context.Context, target *models.Target)
	TargetUpdated(ctx context.Context, target *models.Target)
}

type Service struct {
	repo   TargetRepository
	events EventEmitter
	logger ectologger.Logger
}

func NewService(repo TargetRepository, events EventEmitter, logger ectologger.Logger) *Service {
	return &Service{
		repo:   repo,
		events: events,
		logger: logger,
	}
}

func (s *Service) Create(ctx context.Context, input models.TargetInput) (*models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "target.Create")
	defer span.End()

	created, err := s.repo.Create(ctx, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithField("target_id", created.ID).Info("created target")
	s.events.TargetCreated(ctx, created)
	return created, nil
}

func (s *Service) List(ctx context.Context) ([]models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "target.List")
	defer span.End()

	return s.repo.List(ctx)
}

// Update replaces every writable field of the target. Missing optional fields become null.
func (s *Service) Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "target.Update")
	defer span.End()

	updated, err := s.repo.Update(ctx, id, input)
	if err != nil {
		return nil, err
	}

	s.logger.WithContext(ctx).WithField("target_id", id).Info("updated target")
	s.events.TargetUpdated(ctx, updated)
	return updated, nil
}
