package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// unsetEnv clears a variable for the test and restores it afterwards.
func unsetEnv(t *testing.T, keys ...string) {
	t.Helper()
	for _, k := range keys {
		t.Setenv(k, "")
		require.NoError(t, os.Unsetenv(k))
	}
}

func TestLoadDefaults(t *testing.T) {
	unsetEnv(t, "LISTEN_ADDR", "DATABASE_URL", "SQLITE_PATH", "CHALLENGE_TTL",
		"CHALLENGE_SWEEP_INTERVAL", "CHALLENGE_SWEEP_DELAY", "LEADERBOARD_SIZE", "R2_BUCKET_NAME")
	t.Setenv("ENGINE_SERVICE_TOKEN", "secret")
	t.Setenv("ALLOWED_ORIGINS", "https://a.example, https://b.example,,")

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)

	assert.Equal(t, ":5200", cfg.ListenAddr)
	assert.Equal(t, "racing.db", cfg.SQLitePath)
	assert.Empty(t, cfg.DatabaseURL)
	assert.Equal(t, 30*time.Minute, cfg.ChallengeTTL)
	assert.Equal(t, 30*time.Minute, cfg.ChallengeSweepInterval)
	assert.Equal(t, 10*time.Second, cfg.ChallengeSweepDelay)
	assert.Equal(t, 10, cfg.LeaderboardSize)
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins)
	assert.False(t, cfg.R2.Enabled())
}

func TestLoadFromEnvFile(t *testing.T) {
	unsetEnv(t, "ENGINE_SERVICE_TOKEN", "CHALLENGE_TTL", "LEADERBOARD_SIZE")

	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("ENGINE_SERVICE_TOKEN=from-file\nCHALLENGE_TTL=5m\nLEADERBOARD_SIZE=25\n"), 0o600))

	cfg, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-file", cfg.ServiceToken)
	assert.Equal(t, 5*time.Minute, cfg.ChallengeTTL)
	assert.Equal(t, 25, cfg.LeaderboardSize)
}

func TestLoadRequiresServiceToken(t *testing.T) {
	unsetEnv(t, "ENGINE_SERVICE_TOKEN")

	_, err := Load(filepath.Join(t.TempDir(), "missing.env"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "ENGINE_SERVICE_TOKEN")
}

func TestValidate(t *testing.T) {
	valid := Config{
		ServiceToken:           "x",
		SQLitePath:             "racing.db",
		ChallengeTTL:           time.Minute,
		ChallengeSweepInterval: time.Minute,
		LeaderboardSize:        10,
	}
	require.NoError(t, valid.Validate())

	bad := valid
	bad.ChallengeTTL = 0
	bad.ChallengeSweepDelay = -time.Second
	bad.LeaderboardSize = 0
	bad.SQLitePath = ""
	err := bad.Validate()
	require.Error(t, err)
	for _, key := range []string{"CHALLENGE_TTL", "CHALLENGE_SWEEP_DELAY", "LEADERBOARD_SIZE", "SQLITE_PATH"} {
		assert.Contains(t, err.Error(), key)
	}
}

func TestR2Enabled(t *testing.T) {
	r2 := R2Config{AccountID: "acc", AccessKeyID: "id", AccessKeySecret: "secret"}
	assert.False(t, r2.Enabled())
	r2.Bucket = "boards"
	assert.True(t, r2.Enabled())
}
