package chatstrategy

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/internal/repositories"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/models"
)

const chatStrategiesTable = "chat_strategies"

type ChatStrategyRepository interface {
	Create(ctx context.Context, strategy models.ChatStrategy) (*models.ChatStrategy, error)
	Latest(ctx context.Context, targetID int64) (*models.ChatStrategy, error)
}

type Repository struct {
	*repositories.AppendOnly[models.ChatStrategy]
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		AppendOnly: repositories.NewAppendOnly[models.ChatStrategy](db, logger, chatStrategiesTable,
			"ChatStrategyRepository", []string{"id", "convo", "love_analysis", "content", "created_at", "target_id"}),
	}
}

func (r *Repository) Create(ctx context.Context, strategy models.ChatStrategy) (*models.ChatStrategy, error) {
	return r.Insert(ctx,
		[]string{"convo", "love_analysis", "content", "target_id"},
		[]any{strategy.Convo, strategy.LoveAnalysis, strategy.Content, strategy.TargetID},
	)
}
