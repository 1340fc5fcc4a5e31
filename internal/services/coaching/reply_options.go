package coaching

import (
	"context"

	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/prompts"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

// CreateReplyOptions drafts four replies. Every context row is optional and renders
// as None when missing.
func (s *Service) CreateReplyOptions(ctx context.Context, req models.ReplyOptionsRequest) (*models.ReplyOptions, error) {
	ctx, span := tracing.StartSpan(ctx, "coaching.CreateReplyOptions")
	defer span.End()

	log := s.logger.WithContext(ctx).WithField("target_id", req.TargetID)

	target, err := s.repos.Targets.Get(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}

	scope := s.scope(req.TargetID)

	var convo, strategy, analysis *string
	snippetRow, err := s.repos.Snippets.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}
	if snippetRow != nil {
		convo = &snippetRow.Content
	}
	strategyRow, err := s.repos.ChatStrategies.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}
	if strategyRow != nil {
		strategy = &strategyRow.Content
	}
	analysisRow, err := s.repos.LoveAnalyses.Latest(ctx, scope)
	if err != nil {
		return nil, err
	}
	if analysisRow != nil {
		analysis = &analysisRow.Content
	}

	prompt := prompts.ReplyOptions(profileOf(target), s.config.ClientGender, convo, strategy, analysis)

	var out models.ReplyOptions
	if err := s.completer.CompleteStructured(ctx, prompt, replyOptionsSchema, &out); err != nil {
		metrics.RecordGeneration("reply_options", "error")
		tracing.RecordError(span, err)
		log.WithError(err).Error("reply options completion failed")
		return nil, err
	}

	flow, err := s.repos.ReplyOptions.Create(ctx, models.ReplyOptionsFlow{
		ChatStrategy: contentOr(strategy),
		Convo:        contentOr(convo),
		Option1:      out.Option1,
		Option2:      out.Option2,
		Option3:      out.Option3,
		Option4:      out.Option4,
		TargetID:     req.TargetID,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordGeneration("reply_options", "success")
	log.WithField("reply_options_id", flow.ID).Info("created reply options")
	s.events.ReplyOptionsCreated(ctx, flow)

	options := flow.Options()
	return &options, nil
}
