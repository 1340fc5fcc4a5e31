package repositories_test

import (
	"context"
	"testing"

	"github.com/Ramsey-B/rose/internal/repositories/chatstrategy"
	"github.com/Ramsey-B/rose/internal/repositories/loveanalysis"
	"github.com/Ramsey-B/rose/internal/repositories/replyoptions"
	"github.com/Ramsey-B/rose/internal/repositories/snippet"
	"github.com/Ramsey-B/rose/internal/repositories/target"
	"github.com/Ramsey-B/rose/internal/testutil"
	"github.com/Ramsey-B/rose/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendOnlyRepositories(t *testing.T) {
	db := testutil.Postgres(t)
	logger := testutil.SilentLogger()
	ctx := context.Background()

	targets := target.NewRepository(db, logger)
	first, err := targets.Create(ctx, models.TargetInput{Name: "Alex"})
	require.NoError(t, err)
	second, err := targets.Create(ctx, models.TargetInput{Name: "Sam"})
	require.NoError(t, err)

	t.Run("latest is nil when empty", func(t *testing.T) {
		analyses := loveanalysis.NewRepository(db, logger)
		latest, err := analyses.Latest(ctx, 0)
		require.NoError(t, err)
		assert.Nil(t, latest)
	})

	t.Run("snippets latest global and scoped", func(t *testing.T) {
		snippets := snippet.NewRepository(db, logger)

		a, err := snippets.Create(ctx, first.ID, "Hi, how are you?")
		require.NoError(t, err)
		assert.NotZero(t, a.ID)
		assert.Equal(t, first.ID, a.TargetID)

		b, err := snippets.Create(ctx, second.ID, "Hey Sam")
		require.NoError(t, err)

		latest, err := snippets.Latest(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, b.ID, latest.ID)

		scoped, err := snippets.Latest(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, scoped)
		assert.Equal(t, a.ID, scoped.ID)
	})

	t.Run("love analysis round trip", func(t *testing.T) {
		analyses := loveanalysis.NewRepository(db, logger)
		created, err := analyses.Create(ctx, models.LoveAnalysis{Convo: "hi", Content: "warm", TargetID: first.ID})
		require.NoError(t, err)

		latest, err := analyses.Latest(ctx, first.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, created.ID, latest.ID)
		assert.Equal(t, "warm", latest.Content)
	})

	t.Run("chat strategy round trip", func(t *testing.T) {
		strategies := chatstrategy.NewRepository(db, logger)
		created, err := strategies.Create(ctx, models.ChatStrategy{
			Convo: "hi", LoveAnalysis: "warm", Content: "ask about weekend", TargetID: first.ID,
		})
		require.NoError(t, err)

		latest, err := strategies.Latest(ctx, 0)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, created.ID, latest.ID)
		assert.Equal(t, "warm", latest.LoveAnalysis)
	})

	t.Run("reply options persists four options", func(t *testing.T) {
		flows := replyoptions.NewRepository(db, logger)
		created, err := flows.Create(ctx, models.ReplyOptionsFlow{
			ChatStrategy: "ask about weekend", Convo: "hi",
			Option1: "a", Option2: "b", Option3: "c", Option4: "d",
			TargetID: second.ID,
		})
		require.NoError(t, err)
		assert.Equal(t, models.ReplyOptions{Option1: "a", Option2: "b", Option3: "c", Option4: "d"}, created.Options())

		latest, err := flows.Latest(ctx, second.ID)
		require.NoError(t, err)
		require.NotNil(t, latest)
		assert.Equal(t, created.ID, latest.ID)
	})

	t.Run("insert for missing target fails", func(t *testing.T) {
		snippets := snippet.NewRepository(db, logger)
		_, err := snippets.Create(ctx, 999, "orphan")
		assert.Error(t, err)
	})
}
