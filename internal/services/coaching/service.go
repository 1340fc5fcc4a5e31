// Package coaching runs the generation flows: load the latest context rows, build a
// prompt, call the completion provider and store what comes back.
package coaching

import (
	"context"

	"github.com/Gobusters/ectologger"
	"github.com/Ramsey-B/rose/pkg/completion"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/prompts"
)

var (
	chatStrategySchema = completion.MustSchema("chat_strategy", models.StrategyContent{})
	replyOptionsSchema = completion.MustSchema("reply_options", models.ReplyOptions{})
)

type TargetRepository interface {
	Get(ctx context.Context, id int64) (*models.Target, error)
}

type SnippetRepository interface {
	Create(ctx context.Context, targetID int64, content string) (*models.ConversationSnippet, error)
	Latest(ctx context.Context, targetID int64) (*models.ConversationSnippet, error)
}

type LoveAnalysisRepository interface {
	Create(ctx context.Context, analysis models.LoveAnalysis) (*models.LoveAnalysis, error)
	Latest(ctx context.Context, targetID int64) (*models.LoveAnalysis, error)
}

type ChatStrategyRepository interface {
	Create(ctx context.Context, strategy models.ChatStrategy) (*models.ChatStrategy, error)
	Latest(ctx context.Context, targetID int64) (*models.ChatStrategy, error)
}

type ReplyOptionsRepository interface {
	Create(ctx context.Context, flow models.ReplyOptionsFlow) (*models.ReplyOptionsFlow, error)
}

type EventEmitter interface {
	LoveAnalysisCreated(ctx context.Context, analysis *models.LoveAnalysis)
	ChatStrategyCreated(ctx context.Context, strategy *models.ChatStrategy)
	ReplyOptionsCreated(ctx context.Context, flow *models.ReplyOptionsFlow)
}

type Repositories struct {
	Targets        TargetRepository
	Snippets       SnippetRepository
	LoveAnalyses   LoveAnalysisRepository
	ChatStrategies ChatStrategyRepository
	ReplyOptions   ReplyOptionsRepository
}

type Config struct {
	// When false the latest analysis, snippet and strategy are taken across all targets.
	ScopeLatestToTarget bool
	// Rendered as the client's gender in the reply options prompt.
	ClientGender string
}

type Service struct {
	repos     Repositories
	completer completion.Completer
	events    EventEmitter
	config    Config
	logger    ectologger.Logger
}

func NewService(repos Repositories, completer completion.Completer, events EventEmitter, config Config, logger ectologger.Logger) *Service {
	return &Service{
		repos:     repos,
		completer: completer,
		events:    events,
		config:    config,
		logger:    logger,
	}
}

// scope turns a target id into the filter used by Latest lookups.
func (s *Service) scope(targetID int64) int64 {
	if s.config.ScopeLatestToTarget {
		return targetID
	}
	return 0
}

func profileOf(t *models.Target) prompts.Profile {
	return prompts.Profile{
		Name:                   t.Name,
		Gender:                 t.Gender,
		Personality:            t.Personality,
		RelationshipContext:    t.RelationshipContext,
		RelationshipPerception: t.RelationshipPerception,
		RelationshipGoals:      t.RelationshipGoals,
		RelationshipGoalsLong:  t.RelationshipGoalsLong,
		Language:               t.Language,
	}
}

// contentOr renders a missing row as the literal None that the prompts use.
func contentOr(content *string) string {
	if content == nil {
		return prompts.None
	}
	return *content
}
