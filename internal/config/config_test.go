package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

func TestLoadUsesDefaultsAndYAMLOverrides(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	yaml := `
http:
  addr: ":9090"
  read_timeout: 2s
data:
  snapshot_path: /var/lib/friendr/snapshot.json
redis:
  enabled: true
  addr: redis:6379
limits:
  likes_per_minute: 30
`
	if err := os.WriteFile(path, []byte(yaml), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":9090" {
		t.Fatalf("unexpected http addr: %s", cfg.HTTP.Addr)
	}
	if cfg.HTTP.ReadTimeout != 2*time.Second {
		t.Fatalf("unexpected read timeout: %s", cfg.HTTP.ReadTimeout)
	}
	if cfg.Data.SnapshotPath != "/var/lib/friendr/snapshot.json" {
		t.Fatalf("unexpected snapshot path: %s", cfg.Data.SnapshotPath)
	}
	if !cfg.Redis.Enabled || cfg.Redis.Addr != "redis:6379" {
		t.Fatalf("unexpected redis config: %+v", cfg.Redis)
	}
	if cfg.Limits.LikesPerMinute != 30 {
		t.Fatalf("unexpected likes_per_minute: %d", cfg.Limits.LikesPerMinute)
	}

	// Untouched fields keep their defaults.
	if cfg.HTTP.WriteTimeout != 10*time.Second {
		t.Fatalf("write timeout default should stay 10s, got %s", cfg.HTTP.WriteTimeout)
	}
	if cfg.Limits.LikesPer10Seconds != 15 {
		t.Fatalf("likes_per_10sec default should stay 15, got %d", cfg.Limits.LikesPer10Seconds)
	}
	if cfg.Log.Level != "debug" {
		t.Fatalf("log level default should stay debug, got %s", cfg.Log.Level)
	}
}

func TestLoadMissingFileFallsBackToDefaults(t *testing.T) {
	clearConfigEnv(t)

	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	if err != nil {
		t.Fatalf("load with missing file: %v", err)
	}
	if cfg.HTTP.Addr != ":8080" || cfg.Data.SnapshotPath != "data/snapshot.json" {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}
}

func TestEnvOverridesWinOverYAML(t *testing.T) {
	clearConfigEnv(t)

	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "config.yaml")
	if err := os.WriteFile(path, []byte("http:\n  addr: \":9090\"\n"), 0o600); err != nil {
		t.Fatalf("write temp config: %v", err)
	}

	t.Setenv("HTTP_ADDR", ":7070")
	t.Setenv("DATA_SNAPSHOT_PATH", "/tmp/snap.json")
	t.Setenv("REDIS_ENABLED", "true")
	t.Setenv("LIMITS_LIKES_PER_10SEC", "5")

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load config: %v", err)
	}

	if cfg.HTTP.Addr != ":7070" {
		t.Fatalf("env override lost: %s", cfg.HTTP.Addr)
	}
	if cfg.Data.SnapshotPath != "/tmp/snap.json" {
		t.Fatalf("env override lost: %s", cfg.Data.SnapshotPath)
	}
	if !cfg.Redis.Enabled {
		t.Fatalf("redis enabled override lost")
	}
	if cfg.Limits.LikesPer10Seconds != 5 {
		t.Fatalf("limits override lost: %d", cfg.Limits.LikesPer10Seconds)
	}
}

func TestLoadRejectsMalformedEnvOverride(t *testing.T) {
	clearConfigEnv(t)
	t.Setenv("HTTP_READ_TIMEOUT", "not-a-duration")

	if _, err := Load(""); err == nil {
		t.Fatalf("expected error for malformed duration override")
	}
}

func clearConfigEnv(t *testing.T) {
	t.Helper()

	for _, env := range []string{
		"APP_ENV",
		"HTTP_ADDR",
		"HTTP_READ_TIMEOUT",
		"HTTP_WRITE_TIMEOUT",
		"HTTP_IDLE_TIMEOUT",
		"LOG_LEVEL",
		"DATA_SNAPSHOT_PATH",
		"REDIS_ENABLED",
		"REDIS_ADDR",
		"REDIS_PASSWORD",
		"REDIS_DB",
		"LIMITS_LIKES_PER_MINUTE",
		"LIMITS_LIKES_PER_10SEC",
	} {
		t.Setenv(env, "")
	}
}
