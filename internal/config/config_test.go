package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"
)

// isolate runs the test in an empty directory with XDG paths pointed inside it.
func isolate(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	t.Chdir(dir)
	t.Setenv("XDG_DATA_HOME", filepath.Join(dir, "data"))
	t.Setenv("XDG_STATE_HOME", filepath.Join(dir, "state"))
	t.Setenv("XDG_CONFIG_HOME", filepath.Join(dir, "config"))
	return dir
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}
}

func TestLoad_Defaults(t *testing.T) {
	dir := isolate(t)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "local" {
		t.Errorf("Env = %q, want local", cfg.Env)
	}
	if cfg.Store.Backend != BackendSQLite {
		t.Errorf("Backend = %q, want sqlite", cfg.Store.Backend)
	}
	if want := filepath.Join(dir, "data", "navyranks", "navyranks.db"); cfg.Store.Path != want {
		t.Errorf("Path = %q, want %q", cfg.Store.Path, want)
	}
	if cfg.Store.KeyPrefix != "navyRanks" {
		t.Errorf("KeyPrefix = %q", cfg.Store.KeyPrefix)
	}
	if cfg.Redis.Addr != "localhost:6379" || cfg.Redis.DB != 0 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Quiz.TickInterval != 10*time.Millisecond {
		t.Errorf("TickInterval = %v, want 10ms", cfg.Quiz.TickInterval)
	}
	if want := filepath.Join(dir, "state", "navyranks", "navyranks.log"); cfg.Log.File != want {
		t.Errorf("Log.File = %q, want %q", cfg.Log.File, want)
	}
	if cfg.Log.Level != "info" {
		t.Errorf("Log.Level = %q", cfg.Log.Level)
	}
}

func TestLoad_ConfigFileSearchPath(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config", "navyranks", "config.yaml"), `
store:
  backend: redis
redis:
  addr: cache:6380
  db: 2
quiz:
  tick_interval: 25ms
`)

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Backend != BackendRedis {
		t.Errorf("Backend = %q, want redis", cfg.Store.Backend)
	}
	if cfg.Redis.Addr != "cache:6380" || cfg.Redis.DB != 2 {
		t.Errorf("Redis = %+v", cfg.Redis)
	}
	if cfg.Quiz.TickInterval != 25*time.Millisecond {
		t.Errorf("TickInterval = %v", cfg.Quiz.TickInterval)
	}
}

func TestLoad_ExplicitConfigFile(t *testing.T) {
	dir := isolate(t)
	path := filepath.Join(dir, "custom.yaml")
	writeFile(t, path, "ranks:\n  file: my-ranks.json\nlog:\n  level: debug\n")

	cfg, err := Load(Options{ConfigFile: path})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Ranks.File != "my-ranks.json" || cfg.Log.Level != "debug" {
		t.Errorf("cfg = %+v", cfg)
	}

	if _, err := Load(Options{ConfigFile: filepath.Join(dir, "missing.yaml")}); err == nil {
		t.Error("expected error for missing explicit config")
	}
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, "config.yaml"), "store:\n  key_prefix: fromFile\n")
	t.Setenv("NAVYRANKS_STORE_KEY_PREFIX", "fromEnv")
	t.Setenv("NAVYRANKS_QUIZ_TICK_INTERVAL", "50ms")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.KeyPrefix != "fromEnv" {
		t.Errorf("KeyPrefix = %q, want fromEnv", cfg.Store.KeyPrefix)
	}
	if cfg.Quiz.TickInterval != 50*time.Millisecond {
		t.Errorf("TickInterval = %v, want 50ms", cfg.Quiz.TickInterval)
	}
}

func TestLoad_LegacyDBVariable(t *testing.T) {
	isolate(t)
	t.Setenv("NAVYRANKS_DB", "/tmp/legacy.db")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Store.Path != "/tmp/legacy.db" {
		t.Errorf("Path = %q, want /tmp/legacy.db", cfg.Store.Path)
	}
}

func TestLoad_Dotenv(t *testing.T) {
	dir := isolate(t)
	writeFile(t, filepath.Join(dir, ".env"), "NAVYRANKS_ENV=production\nNAVYRANKS_REDIS_PASSWORD=hunter2\n")
	// godotenv never overrides variables already set; clear them for the test.
	t.Setenv("NAVYRANKS_ENV", "")
	os.Unsetenv("NAVYRANKS_ENV")
	t.Setenv("NAVYRANKS_REDIS_PASSWORD", "")
	os.Unsetenv("NAVYRANKS_REDIS_PASSWORD")

	cfg, err := Load(Options{})
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Env != "production" {
		t.Errorf("Env = %q, want production", cfg.Env)
	}
	if cfg.Redis.Password != "hunter2" {
		t.Errorf("Password = %q", cfg.Redis.Password)
	}

	if _, err := Load(Options{EnvFile: filepath.Join(dir, "nope.env")}); err == nil {
		t.Error("expected error for missing explicit env file")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		cfg     Config
		wantErr error
	}{
		{"ok", Config{Store: Store{Backend: BackendMemory}, Quiz: Quiz{TickInterval: time.Millisecond}}, nil},
		{"bad backend", Config{Store: Store{Backend: "etcd"}, Quiz: Quiz{TickInterval: time.Millisecond}}, ErrUnknownBackend},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("err = %v, want %v", err, tt.wantErr)
			}
		})
	}

	zeroTick := Config{Store: Store{Backend: BackendSQLite}}
	if err := zeroTick.Validate(); err == nil {
		t.Error("expected error for zero tick interval")
	}
}
