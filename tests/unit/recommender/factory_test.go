package recommender_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"aravalli/internal/config"
	"aravalli/internal/recommender"
	_ "aravalli/internal/recommender/claude"
	_ "aravalli/internal/recommender/openai"
)

func TestFactory_KnownProviders(t *testing.T) {
	for _, provider := range []string{"claude", "openai"} {
		rec, err := recommender.New(&config.RecommenderConfig{
			Provider: provider,
			APIKey:   "test-key",
		})
		assert.NoError(t, err, provider)
		assert.NotNil(t, rec, provider)
	}
}

func TestFactory_UnknownProvider(t *testing.T) {
	_, err := recommender.New(&config.RecommenderConfig{Provider: "gemini"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "unknown recommender provider")
}
