package coaching

import (
	"context"

	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/prompts"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

// CreateChatStrategy needs a love analysis and a conversation snippet to exist. The
// previous strategy is optional context.
func (s *Service) CreateChatStrategy(ctx context.Context, req models.ChatStrategyRequest) (*models.ContentResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "coaching.CreateChatStrategy")
	defer span.End()

	log := s.logger.WithContext(ctx).WithField("target_id", req.TargetID)

	target, err := s.repos.Targets.Get(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}

	scope := s.scope(req.TargetID)

	analysis, err := s.repos.LoveAnalyses.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}
	snippet, err := s.repos.Snippets.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}
	previous, err := s.repos.ChatStrategies.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}

	if analysis == nil || snippet == nil {
		return nil, errors.NewNotFoundErrorf("love_analysis", "Latest Love Analysis or Conversation Snippet not found")
	}

	var previousContent *string
	if previous != nil {
		previousContent = &previous.Content
	}

	prompt := prompts.ChatStrategy(profileOf(target), &analysis.Content, &snippet.Content, previousContent)

	var out models.StrategyContent
	if err := s.completer.CompleteStructured(ctx, prompt, chatStrategySchema, &out); err != nil {
		metrics.RecordGeneration("chat_strategy", "error")
		tracing.RecordError(span, err)
		log.WithError(err).Error("chat strategy completion failed")
		return nil, err
	}

	strategy, err := s.repos.ChatStrategies.Create(ctx, models.ChatStrategy{
		Convo:        snippet.Content,
		LoveAnalysis: analysis.Content,
		Content:      out.Content,
		TargetID:     req.TargetID,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordGeneration("chat_strategy", "success")
	log.WithField("chat_strategy_id", strategy.ID).Info("created chat strategy")
	s.events.ChatStrategyCreated(ctx, strategy)

	return &models.ContentResponse{Content: strategy.Content}, nil
}
