package snippet

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/internal/repositories"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/models"
)

const snippetsTable = "conversation_snippets"

type SnippetRepository interface {
	Create(ctx context.Context, targetID int64, content string) (*models.ConversationSnippet, error)
	Latest(ctx context.Context, targetID int64) (*models.ConversationSnippet, error)
}

type Repository struct {
	*repositories.AppendOnly[models.ConversationSnippet]
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		AppendOnly: repositories.NewAppendOnly[models.ConversationSnippet](db, logger, snippetsTable,
			"SnippetRepository", []string{"id", "content", "created_at", "target_id"}),
	}
}

func (r *Repository) Create(ctx context.Context, targetID int64, content string) (*models.ConversationSnippet, error) {
	return r.Insert(ctx, []string{"content", "target_id"}, []any{content, targetID})
}
