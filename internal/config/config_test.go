package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load("", nil)
	require.NoError(t, err)

	assert.Equal(t, "local", cfg.Env)
	assert.Equal(t, "data/questions.json", cfg.Data)
	assert.Equal(t, 10*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "info", cfg.Log.Level)
	assert.Equal(t, ":8080", cfg.Server.Addr)
	assert.Empty(t, cfg.Server.AllowedOrigins)
	assert.Equal(t, 30*time.Minute, cfg.Server.SessionTTL)
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "quizview.yaml")
	yaml := []byte(`env: production
data: embedded
fetch_timeout: 3s
log:
  level: debug
server:
  addr: 127.0.0.1:9000
  session_ttl: 5m
  allowed_origins:
    - https://quiz.example.com
`)
	require.NoError(t, os.WriteFile(path, yaml, 0o644))

	cfg, err := Load(path, nil)
	require.NoError(t, err)
	assert.Equal(t, EnvProduction, cfg.Env)
	assert.Equal(t, "embedded", cfg.Data)
	assert.Equal(t, 3*time.Second, cfg.FetchTimeout)
	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "127.0.0.1:9000", cfg.Server.Addr)
	assert.Equal(t, 5*time.Minute, cfg.Server.SessionTTL)
	assert.Equal(t, []string{"https://quiz.example.com"}, cfg.Server.AllowedOrigins)
}

func TestLoad_MissingExplicitFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"), nil)
	assert.Error(t, err)
}

func TestLoad_Env(t *testing.T) {
	t.Setenv("QUIZVIEW_DATA", "https://example.com/questions.json")
	t.Setenv("QUIZVIEW_LOG_FILE", "/tmp/q.log")
	t.Setenv("QUIZVIEW_ADDR", ":7000")

	cfg, err := Load("", nil)
	require.NoError(t, err)
	assert.Equal(t, "https://example.com/questions.json", cfg.Data)
	assert.Equal(t, "/tmp/q.log", cfg.Log.File)
	assert.Equal(t, ":7000", cfg.Server.Addr)
}

func TestLoad_FlagsOverrideEnv(t *testing.T) {
	t.Setenv("QUIZVIEW_DATA", "from-env.json")

	flags := pflag.NewFlagSet("test", pflag.ContinueOnError)
	flags.String("data", "", "")
	flags.String("addr", "", "")
	require.NoError(t, flags.Parse([]string{"--data", "from-flag.json"}))

	cfg, err := Load("", flags)
	require.NoError(t, err)
	assert.Equal(t, "from-flag.json", cfg.Data)
	// Unset flags fall through to defaults.
	assert.Equal(t, ":8080", cfg.Server.Addr)
}

func TestLoad_RejectsNonPositiveTimeout(t *testing.T) {
	t.Setenv("QUIZVIEW_FETCH_TIMEOUT", "0s")
	_, err := Load("", nil)
	assert.Error(t, err)
}

func TestLoad_RejectsNonPositiveSessionTTL(t *testing.T) {
	for _, ttl := range []string{"0s", "-1m"} {
		t.Run(ttl, func(t *testing.T) {
			t.Setenv("QUIZVIEW_SERVER_SESSION_TTL", ttl)
			_, err := Load("", nil)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "session_ttl")
		})
	}
}

func TestDefaultLogFile(t *testing.T) {
	assert.Equal(t, "quizview.log", filepath.Base(DefaultLogFile()))
}
