package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// EnvProduction selects production logging.
const EnvProduction = "production"

// Config holds application configuration loaded from files, environment
// variables and command-line flags.
type Config struct {
	Env          string        `mapstructure:"env"`           // local, production
	Data         string        `mapstructure:"data"`          // question document: path, URL or "embedded"
	FetchTimeout time.Duration `mapstructure:"fetch_timeout"` // bound on fetching a remote document
	Log          Log           `mapstructure:"log"`
	Server       Server        `mapstructure:"server"`
}

// Log configures the zap logger.
type Log struct {
	File  string `mapstructure:"file"`  // empty means the surface default
	Level string `mapstructure:"level"` // debug, info, warn, error
}

// Server configures the HTTP surface.
type Server struct {
	Addr           string        `mapstructure:"addr"`
	AllowedOrigins []string      `mapstructure:"allowed_origins"` // CORS on /api; empty means same-origin only
	SessionTTL     time.Duration `mapstructure:"session_ttl"`
}

// flagKeys maps command-line flag names to config keys.
var flagKeys = map[string]string{
	"data":     "data",
	"log-file": "log.file",
	"addr":     "server.addr",
}

// Load reads configuration. configFile may be empty, in which case
// ./config/quizview.yaml is used when present. Flags that were set on the
// command line override every other source.
func Load(configFile string, flags *pflag.FlagSet) (*Config, error) {
	// A missing .env is fine.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("load .env: %w", err)
	}

	v := viper.New()
	if configFile != "" {
		v.SetConfigFile(configFile)
	} else {
		v.SetConfigName("quizview")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
	}

	v.SetDefault("env", "local")
	v.SetDefault("data", "data/questions.json")
	v.SetDefault("fetch_timeout", "10s")
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")
	v.SetDefault("server.addr", ":8080")
	v.SetDefault("server.allowed_origins", []string{})
	v.SetDefault("server.session_ttl", "30m")

	v.SetEnvPrefix("QUIZVIEW")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	_ = v.BindEnv("server.addr", "QUIZVIEW_ADDR", "QUIZVIEW_SERVER_ADDR")

	if flags != nil {
		for name, key := range flagKeys {
			if f := flags.Lookup(name); f != nil {
				if err := v.BindPFlag(key, f); err != nil {
					return nil, fmt.Errorf("bind flag %s: %w", name, err)
				}
			}
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if configFile != "" || !errors.As(err, &notFound) {
			return nil, fmt.Errorf("read config: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if cfg.FetchTimeout <= 0 {
		return nil, fmt.Errorf("fetch_timeout must be positive, got %s", cfg.FetchTimeout)
	}
	if cfg.Server.SessionTTL <= 0 {
		return nil, fmt.Errorf("server.session_ttl must be positive, got %s", cfg.Server.SessionTTL)
	}
	return &cfg, nil
}

// DefaultLogFile is where the terminal UI logs, since it owns the screen.
func DefaultLogFile() string {
	return filepath.Join(os.TempDir(), "quizview.log")
}
