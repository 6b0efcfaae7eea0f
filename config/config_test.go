package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/poiesic/marquee/core"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lookupFrom(env map[string]string) LookupFunc {
	return func(key string) (string, bool) {
		v, ok := env[key]
		return v, ok
	}
}

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	assert.Equal(t, core.ModeMocked, cfg.Mode)
	assert.True(t, cfg.Mocked())
	assert.Equal(t, DefaultCompletionModel, cfg.CompletionModel)
	assert.Equal(t, DefaultGeolocationURL, cfg.GeolocationURL)
	assert.Empty(t, cfg.CompletionToken)
	assert.Empty(t, cfg.GeolocationKey)
}

func TestNewConfig(t *testing.T) {
	cfg := NewConfig(
		WithMode(core.ModeLive),
		WithCompletionToken("sk-test"),
		WithCompletionModel("custom-model"),
		WithCompletionBaseURL("http://localhost:9000/v1/"),
		WithGeolocationKey("geo-key"),
		WithGeolocationURL("http://localhost:9001/"),
	)

	assert.False(t, cfg.Mocked())
	assert.Equal(t, "sk-test", cfg.CompletionToken)
	assert.Equal(t, "custom-model", cfg.CompletionModel)
	assert.Equal(t, "geo-key", cfg.GeolocationKey)

	require.NoError(t, cfg.Validate())
	assert.Equal(t, "http://localhost:9000/v1", cfg.CompletionBaseURL)
	assert.Equal(t, "http://localhost:9001", cfg.GeolocationURL)
}

func TestResolveMode(t *testing.T) {
	tests := []struct {
		name       string
		production bool
		appMode    string
		want       core.Mode
	}{
		{"production", true, "", core.ModeLive},
		{"production with other app mode", true, "staging", core.ModeLive},
		{"production in testing", true, "testing", core.ModeMocked},
		{"development", false, "", core.ModeMocked},
		{"development in testing", false, "testing", core.ModeMocked},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ResolveMode(tt.production, tt.appMode))
		})
	}
}

func TestValidate(t *testing.T) {
	t.Run("mocked needs no credentials", func(t *testing.T) {
		cfg := NewConfig()
		assert.NoError(t, cfg.Validate())
	})

	t.Run("live without completion token", func(t *testing.T) {
		cfg := NewConfig(WithMode(core.ModeLive), WithGeolocationKey("geo"))
		assert.ErrorIs(t, cfg.Validate(), core.ErrMissingCompletionToken)
	})

	t.Run("live without geolocation key", func(t *testing.T) {
		cfg := NewConfig(WithMode(core.ModeLive), WithCompletionToken("sk"))
		assert.ErrorIs(t, cfg.Validate(), core.ErrMissingGeolocationKey)
	})

	t.Run("unknown mode", func(t *testing.T) {
		cfg := NewConfig(WithMode(core.Mode(9)))
		assert.ErrorIs(t, cfg.Validate(), core.ErrInvalidMode)
	})

	t.Run("restores defaults", func(t *testing.T) {
		cfg := &Config{Mode: core.ModeMocked}
		require.NoError(t, cfg.Validate())
		assert.Equal(t, DefaultCompletionModel, cfg.CompletionModel)
		assert.Equal(t, DefaultGeolocationURL, cfg.GeolocationURL)
	})
}

func TestFromEnv(t *testing.T) {
	t.Run("empty environment is mocked", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(nil))
		require.NoError(t, err)
		assert.True(t, cfg.Mocked())
	})

	t.Run("production with credentials is live", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			EnvDeployment:      "production",
			EnvCompletionToken: "sk",
			EnvGeolocationKey:  "geo",
			EnvCompletionModel: "gpt-3.5-turbo-instruct",
		}))
		require.NoError(t, err)
		assert.False(t, cfg.Mocked())
		assert.Equal(t, "sk", cfg.CompletionToken)
		assert.Equal(t, "geo", cfg.GeolocationKey)
		assert.Equal(t, "gpt-3.5-turbo-instruct", cfg.CompletionModel)
	})

	t.Run("production without completion token fails", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			EnvDeployment:     "production",
			EnvGeolocationKey: "geo",
		}))
		assert.ErrorIs(t, err, core.ErrMissingCompletionToken)
		assert.Nil(t, cfg)
	})

	t.Run("production without geolocation key fails", func(t *testing.T) {
		_, err := FromEnv(lookupFrom(map[string]string{
			EnvDeployment:      "production",
			EnvCompletionToken: "sk",
		}))
		assert.ErrorIs(t, err, core.ErrMissingGeolocationKey)
	})

	t.Run("testing app mode skips credential checks", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			EnvDeployment: "production",
			EnvAppMode:    "testing",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.Mocked())
	})

	t.Run("non-production deployment marker", func(t *testing.T) {
		cfg, err := FromEnv(lookupFrom(map[string]string{
			EnvDeployment: "staging",
		}))
		require.NoError(t, err)
		assert.True(t, cfg.Mocked())
	})
}

func TestLoad(t *testing.T) {
	t.Run("missing env file is ignored", func(t *testing.T) {
		t.Setenv(EnvDeployment, "")
		cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
		require.NoError(t, err)
		assert.True(t, cfg.Mocked())
	})

	t.Run("reads env file", func(t *testing.T) {
		// godotenv never overrides variables that are already set, so clear
		// them through t.Setenv first and let Cleanup restore them.
		for _, key := range []string{EnvDeployment, EnvAppMode, EnvCompletionToken, EnvGeolocationKey} {
			t.Setenv(key, "")
			require.NoError(t, os.Unsetenv(key))
		}

		path := filepath.Join(t.TempDir(), ".env")
		content := "RAILWAY_ENVIRONMENT=production\nOPENAI_TOKEN=sk-file\nGEOLOCATION_APIKEY=geo-file\n"
		require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

		cfg, err := Load(path)
		require.NoError(t, err)
		assert.False(t, cfg.Mocked())
		assert.Equal(t, "sk-file", cfg.CompletionToken)
		assert.Equal(t, "geo-file", cfg.GeolocationKey)
	})
}
