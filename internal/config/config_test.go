package config

import (
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewDefaultConfig(t *testing.T) {
	t.Parallel()

	cfg := NewDefaultConfig()
	assert.Equal(t, "info", cfg.Logger().Level)
	assert.Equal(t, "console", cfg.Logger().Format)
	assert.Equal(t, "wnquery-cli", cfg.Logger().ServiceName)
	assert.Equal(t, ">", cfg.Console().Prompt)
	assert.Empty(t, cfg.Wordnet().Source)
}

func TestNewConfigFromViper(t *testing.T) {
	t.Parallel()

	t.Run("overrides land in the getters", func(t *testing.T) {
		t.Parallel()
		v := viper.New()
		SetDefaults(v)
		v.Set("logger.level", "debug")
		v.Set("wordnet.source", "/data/wn.xml")
		v.Set("wordnet.sem_features", "/data/semfeatures.xml")
		v.Set("console.prompt", "wn> ")

		cfg, err := NewConfigFromViper(v)
		require.NoError(t, err)
		assert.Equal(t, "debug", cfg.Logger().Level)
		assert.Equal(t, "/data/wn.xml", cfg.Wordnet().Source)
		assert.Equal(t, "/data/semfeatures.xml", cfg.Wordnet().SemFeatures)
		assert.Equal(t, "wn> ", cfg.Console().Prompt)
	})

	t.Run("rejects an unknown log format", func(t *testing.T) {
		t.Parallel()
		v := viper.New()
		SetDefaults(v)
		v.Set("logger.format", "yaml")

		_, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "logger.format")
	})

	t.Run("rejects an empty prompt", func(t *testing.T) {
		t.Parallel()
		v := viper.New()
		SetDefaults(v)
		v.Set("console.prompt", "")

		_, err := NewConfigFromViper(v)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "console.prompt")
	})
}
