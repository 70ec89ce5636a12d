package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadFirstRunWritesDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "conf", "lifeweeks.yaml")
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("first-run load: %v", err)
	}
	if cfg.DatabasePath == "" || cfg.AutoFillCron == "" {
		t.Fatalf("defaults missing: %#v", cfg)
	}
	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("config file not created: %v", err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected permissions: %v", info.Mode().Perm())
	}
}

func TestLoadPartialFileNormalizes(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeweeks.yaml")
	if err := os.WriteFile(path, []byte("database_path: /tmp/custom.db\n"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.DatabasePath != "/tmp/custom.db" {
		t.Fatalf("explicit value lost: %#v", cfg)
	}
	if cfg.NotesFolder == "" || cfg.AutoFillCron == "" || cfg.GlamourStyle == "" {
		t.Fatalf("missing fields not normalized: %#v", cfg)
	}
}

func TestLoadRejectsBadStyle(t *testing.T) {
	path := filepath.Join(t.TempDir(), "lifeweeks.yaml")
	if err := os.WriteFile(path, []byte("glamour_style: neon\n"), 0o600); err != nil {
		t.Fatalf("seed config: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("invalid style must be rejected")
	}
}

func TestFromEnvOverrides(t *testing.T) {
	t.Setenv("LIFEWEEKS_DATABASE_PATH", "/srv/db.sqlite")
	t.Setenv("LIFEWEEKS_AUTO_FILL_CRON", "@every 30m")

	cfg := FromEnv(DefaultConfig())
	if cfg.DatabasePath != "/srv/db.sqlite" {
		t.Fatalf("env override lost: %#v", cfg)
	}
	if cfg.AutoFillCron != "@every 30m" {
		t.Fatalf("env override lost: %#v", cfg)
	}
	if cfg.NotesFolder != DefaultConfig().NotesFolder {
		t.Fatalf("untouched field changed: %#v", cfg)
	}
}
