package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// Config is the process configuration, read from the environment (and .env).
type Config struct {
	ListenAddr     string
	DatabaseURL    string // empty = local SQLite
	SQLitePath     string
	ServiceToken   string
	AllowedOrigins []string
	LogLevel       string

	ChallengeTTL           time.Duration
	ChallengeSweepInterval time.Duration
	ChallengeSweepDelay    time.Duration

	LeaderboardSize            int
	LeaderboardPublishInterval time.Duration

	R2 R2Config
}

// R2Config points the leaderboard publisher at an S3-compatible bucket.
type R2Config struct {
	AccountID       string
	AccessKeyID     string
	AccessKeySecret string
	Bucket          string
	CDNBaseURL      string
}

// Enabled reports whether enough is set to publish snapshots.
func (c R2Config) Enabled() bool {
	return c.AccountID != "" && c.AccessKeyID != "" && c.AccessKeySecret != "" && c.Bucket != ""
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("LISTEN_ADDR", ":5200")
	v.SetDefault("DATABASE_URL", "")
	v.SetDefault("SQLITE_PATH", "racing.db")
	v.SetDefault("ENGINE_SERVICE_TOKEN", "")
	v.SetDefault("ALLOWED_ORIGINS", "http://localhost:3000")
	v.SetDefault("LOG_LEVEL", "info")

	v.SetDefault("CHALLENGE_TTL", "30m")
	v.SetDefault("CHALLENGE_SWEEP_INTERVAL", "30m")
	v.SetDefault("CHALLENGE_SWEEP_DELAY", "10s")

	v.SetDefault("LEADERBOARD_SIZE", 10)
	v.SetDefault("LEADERBOARD_PUBLISH_INTERVAL", "5m")

	v.SetDefault("R2_ACCOUNT_ID", "")
	v.SetDefault("R2_ACCESS_KEY_ID", "")
	v.SetDefault("R2_ACCESS_KEY_SECRET", "")
	v.SetDefault("R2_BUCKET_NAME", "")
	v.SetDefault("CDN_BASE_URL", "")
}

// Load reads .env files (if any) into the environment, then builds the config
// from environment variables with defaults.
func Load(envFiles ...string) (*Config, error) {
	if err := godotenv.Load(envFiles...); err != nil {
		log.Warn().Msg("⚠️  No .env file found, reading environment variables directly")
	}

	v := viper.New()
	setDefaults(v)
	v.AutomaticEnv()

	cfg := &Config{
		ListenAddr:                 v.GetString("LISTEN_ADDR"),
		DatabaseURL:                v.GetString("DATABASE_URL"),
		SQLitePath:                 v.GetString("SQLITE_PATH"),
		ServiceToken:               v.GetString("ENGINE_SERVICE_TOKEN"),
		AllowedOrigins:             splitOrigins(v.GetString("ALLOWED_ORIGINS")),
		LogLevel:                   v.GetString("LOG_LEVEL"),
		ChallengeTTL:               v.GetDuration("CHALLENGE_TTL"),
		ChallengeSweepInterval:     v.GetDuration("CHALLENGE_SWEEP_INTERVAL"),
		ChallengeSweepDelay:        v.GetDuration("CHALLENGE_SWEEP_DELAY"),
		LeaderboardSize:            v.GetInt("LEADERBOARD_SIZE"),
		LeaderboardPublishInterval: v.GetDuration("LEADERBOARD_PUBLISH_INTERVAL"),
		R2: R2Config{
			AccountID:       v.GetString("R2_ACCOUNT_ID"),
			AccessKeyID:     v.GetString("R2_ACCESS_KEY_ID"),
			AccessKeySecret: v.GetString("R2_ACCESS_KEY_SECRET"),
			Bucket:          v.GetString("R2_BUCKET_NAME"),
			CDNBaseURL:      v.GetString("CDN_BASE_URL"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate rejects configurations the service cannot start with.
func (c *Config) Validate() error {
	var errs []error
	if c.ServiceToken == "" {
		errs = append(errs, errors.New("ENGINE_SERVICE_TOKEN environment variable not set"))
	}
	if c.ChallengeTTL <= 0 {
		errs = append(errs, fmt.Errorf("CHALLENGE_TTL must be positive, got %s", c.ChallengeTTL))
	}
	if c.ChallengeSweepInterval <= 0 {
		errs = append(errs, fmt.Errorf("CHALLENGE_SWEEP_INTERVAL must be positive, got %s", c.ChallengeSweepInterval))
	}
	if c.ChallengeSweepDelay < 0 {
		errs = append(errs, fmt.Errorf("CHALLENGE_SWEEP_DELAY must not be negative, got %s", c.ChallengeSweepDelay))
	}
	if c.LeaderboardSize < 1 {
		errs = append(errs, fmt.Errorf("LEADERBOARD_SIZE must be at least 1, got %d", c.LeaderboardSize))
	}
	if c.DatabaseURL == "" && c.SQLitePath == "" {
		errs = append(errs, errors.New("either DATABASE_URL or SQLITE_PATH must be set"))
	}
	return errors.Join(errs...)
}

func splitOrigins(raw string) []string {
	var out []string
	for _, origin := range strings.Split(raw, ",") {
		origin = strings.TrimSpace(origin)
		if origin != "" {
			out = append(out, origin)
		}
	}
	return out
}
