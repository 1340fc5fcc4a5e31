package target

import (
	"context"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

const targetsTable = "targets"

var (
	targetStruct = database.NewStruct(models.Target{})

	writableColumns = []string{
		"name", "gender", "relationship_context", "relationship_perception",
		"relationship_goals", "relationship_goals_long", "personality", "language",
	}
	returningColumns = []string{
		"id", "name", "gender", "relationship_context", "relationship_perception",
		"relationship_goals", "relationship_goals_long", "personality", "language", "created_at",
	}
)

type TargetRepository interface {
	Create(ctx context.Context, input models.TargetInput) (*models.Target, error)
	Get(ctx context.Context, id int64) (*models.Target, error)
	List(ctx context.Context) ([]models.Target, error)
	Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error)
}

type Repository struct {
	db     database.DB
	logger ectologger.Logger
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		db:     db,
		logger: logger,
	}
}

func writableValues(t *models.Target) []any {
	return []any{
		t.Name, t.Gender, t.RelationshipContext, t.RelationshipPerception,
		t.RelationshipGoals, t.RelationshipGoalsLong, t.Personality, t.Language,
	}
}

func (r *Repository) Create(ctx context.Context, input models.TargetInput) (*models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "TargetRepository.Create")
	defer span.End()
	defer metrics.QueryTimer("targets.create")()

	target := models.NewTarget(input)

	ib := database.NewInsertBuilder()
	ib.InsertInto(targetsTable).
		Cols(writableColumns...).
		Values(writableValues(target)...).
		Returning(returningColumns...)

	query, args := ib.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var created models.Target
	if err := tx.GetContext(ctx, &created, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("name", input.Name).Error("failed to create target")
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create target")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to create target")
	}

	r.logger.WithContext(ctx).WithField("target_id", created.ID).Debugf("Created %s", targetsTable)
	return &created, nil
}

func (r *Repository) Get(ctx context.Context, id int64) (*models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "TargetRepository.Get")
	defer span.End()
	defer metrics.QueryTimer("targets.get")()

	sb := targetStruct.SelectFrom(targetsTable)
	sb.Where(sb.Equal("id", id))

	query, args := sb.Build()

	var target models.Target
	err := r.db.GetContext(ctx, &target, query, args...)
	if database.IsNoRows(err) {
		return nil, errors.NewNotFoundError("target", id)
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("target_id", id).Error("failed to get target")
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to get target")
	}

	return &target, nil
}

// List returns every target in id order.
func (r *Repository) List(ctx context.Context) ([]models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "TargetRepository.List")
	defer span.End()
	defer metrics.QueryTimer("targets.list")()

	sb := targetStruct.SelectFrom(targetsTable)
	sb.OrderBy("id").Asc()

	query, args := sb.Build()

	targets := []models.Target{}
	if err := r.db.SelectContext(ctx, &targets, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Error("failed to list targets")
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to list targets")
	}

	r.logger.WithContext(ctx).WithField("count", len(targets)).Debugf("Listed %s", targetsTable)
	return targets, nil
}

// Update overwrites every writable column of an existing target.
func (r *Repository) Update(ctx context.Context, id int64, input models.TargetInput) (*models.Target, error) {
	ctx, span := tracing.StartSpan(ctx, "TargetRepository.Update")
	defer span.End()
	defer metrics.QueryTimer("targets.update")()

	log := r.logger.WithContext(ctx).WithField("target_id", id)

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	sb := targetStruct.SelectFrom(targetsTable)
	sb.Where(sb.Equal("id", id))
	sb.ForUpdate()
	query, args := sb.Build()

	var target models.Target
	err = tx.GetContext(ctx, &target, query, args...)
	if database.IsNoRows(err) {
		return nil, errors.NewNotFoundError("target", id)
	}
	if err != nil {
		log.WithError(err).Error("failed to load target for update")
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update target")
	}

	target.Apply(input)

	ub := database.NewUpdateBuilder()
	ub.Update(targetsTable)
	assignments := make([]string, 0, len(writableColumns))
	for i, value := range writableValues(&target) {
		assignments = append(assignments, ub.Assign(writableColumns[i], value))
	}
	ub.Set(assignments...)
	ub.Where(ub.Equal("id", id))

	query, args = ub.Build()
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		log.WithError(err).Error("failed to update target")
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update target")
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, "failed to update target")
	}

	log.Debugf("Updated %s", targetsTable)
	return &target, nil
}
