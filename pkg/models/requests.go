package models

type LoveAnalysisRequest struct {
	Convo    string `json:"convo" validate:"required"`
	TargetID int64  `json:"target_id" validate:"required"`
}

type ChatStrategyRequest struct {
	TargetID int64 `json:"target_id" validate:"required"`
}

type ReplyOptionsRequest struct {
	TargetID int64 `json:"target_id" validate:"required"`
}

// ContentResponse carries a single generated text.
type ContentResponse struct {
	Content string `json:"content"`
}

// ReplyOptions is both the structured completion shape and the API response.
type ReplyOptions struct {
	Option1 string `json:"option1" validate:"required"`
	Option2 string `json:"option2" validate:"required"`
	Option3 string `json:"option3" validate:"required"`
	Option4 string `json:"option4" validate:"required"`
}

// StrategyContent is the structured completion shape for a chat strategy.
type StrategyContent struct {
	Content string `json:"content" validate:"required"`
}
