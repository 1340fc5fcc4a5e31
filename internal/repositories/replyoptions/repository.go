package replyoptions

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/internal/repositories"
	"github.com/Ramsey-B/rose/pkg/database"
	"github.com/Ramsey-B/rose/pkg/models"
)

const replyOptionsTable = "reply_options_flows"

type ReplyOptionsRepository interface {
	Create(ctx context.Context, flow models.ReplyOptionsFlow) (*models.ReplyOptionsFlow, error)
	Latest(ctx context.Context, targetID int64) (*models.ReplyOptionsFlow, error)
}

type Repository struct {
	*repositories.AppendOnly[models.ReplyOptionsFlow]
}

func NewRepository(db database.DB, logger ectologger.Logger) *Repository {
	return &Repository{
		AppendOnly: repositories.NewAppendOnly[models.ReplyOptionsFlow](db, logger, replyOptionsTable,
			"ReplyOptionsRepository", []string{
				"id", "chat_strategy", "convo", "option1", "option2", "option3", "option4", "created_at", "target_id",
			}),
	}
}

func (r *Repository) Create(ctx context.Context, flow models.ReplyOptionsFlow) (*models.ReplyOptionsFlow, error) {
	return r.Insert(ctx,
		[]string{"chat_strategy", "convo", "option1", "option2", "option3", "option4", "target_id"},
		[]any{flow.ChatStrategy, flow.Convo, flow.Option1, flow.Option2, flow.Option3, flow.Option4, flow.TargetID},
	)
}
