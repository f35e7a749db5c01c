package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/golobby/config/v3"
	"github.com/golobby/config/v3/pkg/feeder"

	"github.com/marcus-crane/steammini/steam"
)

type Config struct {
	Pushover PushoverConfig
	Server   ServerConfig
	Steam    SteamConfig
}

type PushoverConfig struct {
	Recipient string `env:"PUSHOVER_RECIPIENT"`
	Token     string `env:"PUSHOVER_TOKEN"`
}

type ServerConfig struct {
	AllowedOrigins        string `env:"ALLOWED_ORIGINS"`
	BackgroundJobsEnabled bool   `env:"BACKGROUND_JOBS_ENABLED"`
	LogLevel              string `env:"LOG_LEVEL"`
	PollIntervalSeconds   int    `env:"POLL_INTERVAL_SECONDS"`
	Port                  int    `env:"PORT"`
}

type SteamConfig struct {
	APIKey      string `env:"STEAM_API_KEY"`
	BaseURL     string `env:"STEAM_BASE_URL"`
	RecentCount int    `env:"STEAM_RECENT_COUNT"`
	TopCount    int    `env:"STEAM_TOP_COUNT"`
	UserID      string `env:"STEAM_USER_ID"`
}

func Default() Config {
	return Config{
		Server: ServerConfig{
			AllowedOrigins:        "http://localhost:8080",
			BackgroundJobsEnabled: true,
			LogLevel:              "info",
			PollIntervalSeconds:   15,
			Port:                  8080,
		},
		Steam: SteamConfig{
			BaseURL:     steam.APIBaseURL,
			RecentCount: steam.DefaultRecentCount,
			TopCount:    steam.DefaultTopCount,
		},
	}
}

// Load starts from Default and layers envFile (when it exists) and then the
// process environment on top.
func Load(envFile string) (Config, error) {
	cfg := Default()
	c := config.New()
	if envFile != "" {
		if _, err := os.Stat(envFile); err == nil {
			c.AddFeeder(feeder.DotEnv{Path: envFile})
		}
	}
	c.AddFeeder(feeder.Env{})
	c.AddStruct(&cfg)
	if err := c.Feed(); err != nil {
		return cfg, fmt.Errorf("failed to load config: %w", err)
	}
	return cfg, nil
}

func (c *Config) Validate() error {
	var errs []error
	if c.Steam.APIKey == "" {
		errs = append(errs, errors.New("STEAM_API_KEY must be provided"))
	}
	if c.Steam.UserID != "" {
		if err := steam.ValidateSteamID(c.Steam.UserID); err != nil {
			errs = append(errs, fmt.Errorf("STEAM_USER_ID: %w", err))
		}
	}
	if c.Steam.RecentCount < steam.MinCount {
		errs = append(errs, fmt.Errorf("STEAM_RECENT_COUNT must be at least %d", steam.MinCount))
	}
	if c.Steam.TopCount < steam.MinCount || c.Steam.TopCount > steam.MaxTopCount {
		errs = append(errs, fmt.Errorf("STEAM_TOP_COUNT must be between %d and %d", steam.MinCount, steam.MaxTopCount))
	}
	if c.Server.PollIntervalSeconds < 1 {
		errs = append(errs, errors.New("POLL_INTERVAL_SECONDS must be at least 1"))
	}
	return errors.Join(errs...)
}

func (c *Config) PollInterval() time.Duration {
	return time.Duration(c.Server.PollIntervalSeconds) * time.Second
}

func (c *Config) Origins() []string {
	var origins []string
	for _, o := range strings.Split(c.Server.AllowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	return origins
}

func (c *Config) PushoverEnabled() bool {
	return c.Pushover.Token != "" && c.Pushover.Recipient != ""
}

func (c *Config) GetLogLevel() slog.Leveler {
	switch level := strings.ToLower(c.Server.LogLevel); level {
	case "error":
		return slog.LevelError
	case "warn", "warning":
		return slog.LevelWarn
	case "info", "":
		return slog.LevelInfo
	case "debug":
		return slog.LevelDebug
	default:
		slog.Warn("Unknown LOG_LEVEL, falling back to info", slog.String("log_level", level))
		return slog.LevelInfo
	}
}
