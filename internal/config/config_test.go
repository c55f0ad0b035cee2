package config

import (
	"os"
	"path/filepath"
	"testing"
)

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write config: %v", err)
	}
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
server:
  address: "127.0.0.1"
  port: 9000
  mode: release
database:
  path: /tmp/test.db
  log_mode: true
jwt:
  secret: s3cret
  issuer: attendance-api
  expire_hours: 8
security:
  bcrypt_cost: 12
attendance:
  single_open_session: true
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Address != "127.0.0.1" || cfg.Server.Port != 9000 {
		t.Errorf("server = %+v", cfg.Server)
	}
	if cfg.Database.Path != "/tmp/test.db" || !cfg.Database.LogMode {
		t.Errorf("database = %+v", cfg.Database)
	}
	if cfg.JWT.Secret != "s3cret" || cfg.JWT.ExpireHours != 8 {
		t.Errorf("jwt = %+v", cfg.JWT)
	}
	if cfg.Security.BcryptCost != 12 {
		t.Errorf("bcrypt cost = %d", cfg.Security.BcryptCost)
	}
	if !cfg.Attendance.SingleOpenSession {
		t.Error("single_open_session should be true")
	}
}

func TestLoadDefaults(t *testing.T) {
	path := writeConfig(t, `
jwt:
  secret: s3cret
`)

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Server.Port != 4000 {
		t.Errorf("default port = %d, want 4000", cfg.Server.Port)
	}
	if cfg.JWT.ExpireHours != 8 {
		t.Errorf("default expire_hours = %d, want 8", cfg.JWT.ExpireHours)
	}
	if cfg.Security.BcryptCost != 10 {
		t.Errorf("default bcrypt_cost = %d, want 10", cfg.Security.BcryptCost)
	}
	if cfg.Database.Path == "" {
		t.Error("default database path should be set")
	}
	if cfg.Attendance.SingleOpenSession {
		t.Error("single_open_session should default to false")
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("Load of missing file should fail")
	}
}
