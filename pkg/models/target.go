package models

import "time"

// Target is the person a client is being coached about.
type Target struct {
	ID                     int64     `db:"id" json:"id"`
	Name                   string    `db:"name" json:"name"`
	Gender                 *string   `db:"gender" json:"gender"`
	RelationshipContext    *string   `db:"relationship_context" json:"relationship_context"`
	RelationshipPerception *string   `db:"relationship_perception" json:"relationship_perception"`
	RelationshipGoals      *string   `db:"relationship_goals" json:"relationship_goals"`
	RelationshipGoalsLong  *string   `db:"relationship_goals_long" json:"relationship_goals_long"`
	Personality            *string   `db:"personality" json:"personality"`
	Language               *string   `db:"language" json:"language"`
	CreatedAt              time.Time `db:"created_at" json:"created_at"`
}

func (Target) TableName() string {
	return "targets"
}

// TargetInput is the writable shape of a Target, used for both create and full update.
type TargetInput struct {
	Name                   string  `json:"name" validate:"required"`
	Gender                 *string `json:"gender"`
	RelationshipContext    *string `json:"relationship_context"`
	RelationshipPerception *string `json:"relationship_perception"`
	RelationshipGoals      *string `json:"relationship_goals"`
	RelationshipGoalsLong  *string `json:"relationship_goals_long"`
	Personality            *string `json:"personality"`
	Language               *string `json:"language"`
}

// Apply overwrites every writable field. Optional fields missing from the input become null.
func (t *Target) Apply(in TargetInput) {
	t.Name = in.Name
	t.Gender = in.Gender
	t.RelationshipContext = in.RelationshipContext
	t.RelationshipPerception = in.RelationshipPerception
	t.RelationshipGoals = in.RelationshipGoals
	t.RelationshipGoalsLong = in.RelationshipGoalsLong
	t.Personality = in.Personality
	t.Language = in.Language
}

func NewTarget(in TargetInput) *Target {
	t := &Target{}
	t.Apply(in)
	return t
}
