package loveanalysis

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/internal/repositories"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/models"
)

const loveAnalysisTable = "love_analysis"

type LoveAnalysisRepository interface {
	Create(ctx context.Context, analysis models.LoveAnalysis) (*models.LoveAnalysis, error)
	Latest(ctx context.Context, targetID int64) (*models.LoveAnalysis, error)
}

type Repository struct {
	*repositories.AppendOnly[models.LoveAnalysis]
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		AppendOnly: repositories.NewAppendOnly[models.LoveAnalysis](db, logger, loveAnalysisTable,
			"LoveAnalysisRepository", []string{"id", "convo", "content", "created_at", "target_id"}),
	}
}

func (r *Repository) Create(ctx context.Context, analysis models.LoveAnalysis) (*models.LoveAnalysis, error) {
	return r.Insert(ctx,
		[]string{"convo", "content", "target_id"},
		[]any{analysis.Convo, analysis.Content, analysis.TargetID},
	)
}
