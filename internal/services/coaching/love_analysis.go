package coaching

import (
	"context"

	"github.com/Ramsey-B/rose/pkg/metrics"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/Ramsey-B/rose/pkg/prompts"
	"github.com/Ramsey-B/rose/pkg/tracing"
)

// CreateLoveAnalysis stores the submitted conversation, analyses it against the
// previous analysis and stores the result. The conversation snippet is committed
// before the completion call and stays even when the call fails.
func (s *Service) CreateLoveAnalysis(ctx context.Context, req models.LoveAnalysisRequest) (*models.ContentResponse, error) {
	ctx, span := tracing.StartSpan(ctx, "coaching.CreateLoveAnalysis")
	defer span.End()

	log := s.logger.WithContext(ctx).WithField("target_id", req.TargetID)

	target, err := s.repos.Targets.Get(ctx, req.TargetID)
	if err != nil {
		return nil, err
	}

	if _, err := s.repos.Snippets.Create(ctx, req.TargetID, req.Convo); err != nil {
		return nil, err
	}

	previous, err := s.repos.LoveAnalyses.Latest(ctx, s.scope(req.TargetID))
	if err != nil {
		return nil, err
	}

	var previousContent *string
	if previous != nil {
		previousContent = &previous.Content
	}

	prompt := prompts.LoveAnalysis(previousContent, req.Convo, target.Language)

	content, err := s.completer.Complete(ctx, prompt)
	if err != nil {
		metrics.RecordGeneration("love_analysis", "error")
		tracing.RecordError(span, err)
		log.WithError(err).Error("love analysis completion failed")
		return nil, err
	}

	analysis, err := s.repos.LoveAnalyses.Create(ctx, models.LoveAnalysis{
		Convo:    req.Convo,
		Content:  content,
		TargetID: req.TargetID,
	})
	if err != nil {
		return nil, err
	}

	metrics.RecordGeneration("love_analysis", "success")
	log.WithField("love_analysis_id", analysis.ID).Info("created love analysis")
	s.events.LoveAnalysisCreated(ctx, analysis)

	return &models.ContentResponse{Content: analysis.Content}, nil
}
