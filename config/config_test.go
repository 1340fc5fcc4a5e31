package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_RequiresOpenAIKey(t *testing.T) {
	cfg := &Config{}
	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMissingOpenAIKey)

	cfg.OpenAIAPIKey = "sk-test"
	assert.NoError(t, cfg.Validate())
}

func TestLoad_DefaultsAndOverrides(t *testing.T) {
	t.Setenv("OPENAI_API_KEY", "sk-test")
	t.Setenv("PORT", "8080")
	t.Setenv("KAFKA_BROKERS", "a:9092,b:9092")
	t.Setenv("SCOPE_LATEST_TO_TARGET", "true")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "sk-test", cfg.OpenAIAPIKey)
	assert.Equal(t, 8080, cfg.Port)
	assert.Equal(t, []string{"a:9092", "b:9092"}, cfg.KafkaBrokers)
	assert.True(t, cfg.ScopeLatestToTarget)
	assert.Equal(t, "gpt-4o", cfg.OpenAIModel)
	assert.Equal(t, "db/pg", cfg.DatabaseMigrationFolderPath)
	assert.Equal(t, "male", cfg.CoachClientGender)
	assert.True(t, cfg.CompletionStore)
	assert.NoError(t, cfg.Validate())
}
