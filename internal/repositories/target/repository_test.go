package target_test

import (
	"context"
	"testing"

	"github.com/Ramsey-B/rose/internal/repositories/target"
	"github.com/Ramsey-B/rose/internal/testutil"
	"github.com/Ramsey-B/rose/pkg/errors"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func TestTargetRepository(t *testing.T) {
	db := testutil.Postgres(t)
	repo := target.NewRepository(db, testutil.SilentLogger())
	ctx := context.Background()

	var alex *models.Target

	t.Run("create returns stored row", func(t *testing.T) {
		var err error
		alex, err = repo.Create(ctx, models.TargetInput{
			Name:        "Alex",
			Gender:      strPtr("female"),
			Personality: strPtr("curious"),
			Language:    strPtr("English"),
		})
		require.NoError(t, err)

		assert.Equal(t, int64(1), alex.ID)
		assert.Equal(t, "Alex", alex.Name)
		assert.Equal(t, "female", *alex.Gender)
		assert.Nil(t, alex.RelationshipGoals)
		assert.False(t, alex.CreatedAt.IsZero())
	})

	t.Run("list includes created target unchanged", func(t *testing.T) {
		targets, err := repo.List(ctx)
		require.NoError(t, err)
		require.Len(t, targets, 1)
		assert.Equal(t, alex.Name, targets[0].Name)
		assert.Equal(t, *alex.Personality, *targets[0].Personality)
		assert.Equal(t, *alex.Language, *targets[0].Language)
	})

	t.Run("update overwrites every field", func(t *testing.T) {
		updated, err := repo.Update(ctx, alex.ID, models.TargetInput{
			Name:              "Alexandra",
			RelationshipGoals: strPtr("coffee date"),
		})
		require.NoError(t, err)
		assert.Equal(t, "Alexandra", updated.Name)
		assert.Nil(t, updated.Gender)
		assert.Nil(t, updated.Language)
		assert.Equal(t, "coffee date", *updated.RelationshipGoals)

		stored, err := repo.Get(ctx, alex.ID)
		require.NoError(t, err)
		assert.Equal(t, updated.Name, stored.Name)
		assert.Nil(t, stored.Personality)
	})

	t.Run("update missing target is not found", func(t *testing.T) {
		_, err := repo.Update(ctx, 999, models.TargetInput{Name: "Nobody"})
		assert.True(t, errors.IsNotFound(err))
	})

	t.Run("get missing target is not found", func(t *testing.T) {
		_, err := repo.Get(ctx, 999)
		assert.True(t, errors.IsNotFound(err))
	})
}
