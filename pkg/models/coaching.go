package models

import "time"

// ConversationSnippet is a raw conversation submitted for analysis.
type ConversationSnippet struct {
	ID        int64     `db:"id" json:"id"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	TargetID  int64     `db:"target_id" json:"target_id"`
}

func (ConversationSnippet) TableName() string {
	return "conversation_snippets"
}

type LoveAnalysis struct {
	ID        int64     `db:"id" json:"id"`
	Convo     string    `db:"convo" json:"convo"`
	Content   string    `db:"content" json:"content"`
	CreatedAt time.Time `db:"created_at" json:"created_at"`
	TargetID  int64     `db:"target_id" json:"target_id"`
}

func (LoveAnalysis) TableName() string {
	return "love_analysis"
}

type ChatStrategy struct {
	ID           int64     `db:"id" json:"id"`
	Convo        string    `db:"convo" json:"convo"`
	LoveAnalysis string    `db:"love_analysis" json:"love_analysis"`
	Content      string    `db:"content" json:"content"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	TargetID     int64     `db:"target_id" json:"target_id"`
}

func (ChatStrategy) TableName() string {
	return "chat_strategies"
}

type ReplyOptionsFlow struct {
	ID           int64     `db:"id" json:"id"`
	ChatStrategy string    `db:"chat_strategy" json:"chat_strategy"`
	Convo        string    `db:"convo" json:"convo"`
	Option1      string    `db:"option1" json:"option1"`
	Option2      string    `db:"option2" json:"option2"`
	Option3      string    `db:"option3" json:"option3"`
	Option4      string    `db:"option4" json:"option4"`
	CreatedAt    time.Time `db:"created_at" json:"created_at"`
	TargetID     int64     `db:"target_id" json:"target_id"`
}

func (ReplyOptionsFlow) TableName() string {
	return "reply_options_flows"
}

// Options returns the four generated replies in order.
func (r ReplyOptionsFlow) Options() ReplyOptions {
	return ReplyOptions{
		Option1: r.Option1,
		Option2: r.Option2,
		Option3: r.Option3,
		Option4: r.Option4,
	}
}
