// Package repositories holds the shared plumbing for the append-only coaching logs.
// Each entity package wraps an AppendOnly with its own columns and interface.
package repositories

import (
	"context"
	"fmt"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

// AppendOnly stores rows of T that are inserted once and never changed.
type AppendOnly[T any] struct {
	db        database.DB
	logger    ectologger.Logger
	table     string
	spanName  string
	columns   []string
	structure *database.Struct
}

// NewAppendOnly builds a log over table. columns are every column of T in the
// order the RETURNING clause should scan them.
func NewAppendOnly[T any](db database.DB, logger ectologger.Logger, table, spanName string, columns []string) *AppendOnly[T] {
	var zero T
	return &AppendOnly[T]{
		db:        db,
		logger:    logger,
		table:     table,
		spanName:  spanName,
		columns:   columns,
		structure: database.NewStruct(zero),
	}
}

// Insert writes one row in its own transaction and returns it as stored.
func (r *AppendOnly[T]) Insert(ctx context.Context, cols []string, values []any) (*T, error) {
	ctx, span := tracing.StartSpan(ctx, r.spanName+".Create")
	defer span.End()
	defer metrics.QueryTimer(r.table + ".create")()

	ib := database.NewInsertBuilder()
	ib.InsertInto(r.table).
		Cols(cols...).
		Values(values...).
		Returning(r.columns...)

	query, args := ib.Build()

	ctx, tx, err := r.db.GetTx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	var row T
	if err := tx.GetContext(ctx, &row, query, args...); err != nil {
		r.logger.WithContext(ctx).WithError(err).Errorf("failed to create %s", r.table)
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to create %s", r.table))
	}

	if err := tx.Commit(ctx); err != nil {
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to create %s", r.table))
	}

	r.logger.WithContext(ctx).Debugf("Created %s", r.table)
	return &row, nil
}

// Latest returns the newest row, or nil when there is none. A zero targetID searches
// every target; otherwise only that target's rows are considered.
func (r *AppendOnly[T]) Latest(ctx context.Context, targetID int64) (*T, error) {
	ctx, span := tracing.StartSpan(ctx, r.spanName+".Latest")
	defer span.End()
	defer metrics.QueryTimer(r.table + ".latest")()

	sb := r.structure.SelectFrom(r.table)
	if targetID != 0 {
		sb.Where(sb.Equal("target_id", targetID))
	}
	sb.Latest()

	query, args := sb.Build()

	var row T
	err := r.db.GetContext(ctx, &row, query, args...)
	if database.IsNoRows(err) {
		return nil, nil
	}
	if err != nil {
		r.logger.WithContext(ctx).WithError(err).WithField("target_id", targetID).Errorf("failed to get latest %s", r.table)
		tracing.RecordError(span, err)
		return nil, httperror.NewHTTPError(http.StatusInternalServerError, fmt.Sprintf("failed to get latest %s", r.table))
	}

	return &row, nil
}
