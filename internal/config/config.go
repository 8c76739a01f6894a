package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

var ErrUnknownBackend = errors.New("unknown store backend")

// Store backends.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// Config holds application configuration loaded from files and environment variables.
type Config struct {
	Env   string `mapstructure:"env"` // local, production
	Store Store  `mapstructure:"store"`
	Redis Redis  `mapstructure:"redis"`
	Ranks Ranks  `mapstructure:"ranks"`
	Quiz  Quiz   `mapstructure:"quiz"`
	Log   Log    `mapstructure:"log"`
}

// Store selects and configures the record backend.
type Store struct {
	Backend   string `mapstructure:"backend"`
	Path      string `mapstructure:"path"`       // sqlite database file
	KeyPrefix string `mapstructure:"key_prefix"` // namespace for record keys
}

type Redis struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

type Ranks struct {
	File string `mapstructure:"file"` // empty means the embedded list
}

type Quiz struct {
	TickInterval time.Duration `mapstructure:"tick_interval"`
}

type Log struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// Options override where configuration is read from.
type Options struct {
	ConfigFile string // explicit config file; empty searches the default paths
	EnvFile    string // dotenv file; empty means ".env" if present
}

// Load reads configuration from defaults, an optional config file, a dotenv
// file and NAVYRANKS_* environment variables, in increasing precedence.
func Load(opts Options) (*Config, error) {
	if err := loadDotenv(opts.EnvFile); err != nil {
		return nil, err
	}

	v := viper.New()
	setDefaults(v)

	v.SetEnvPrefix("NAVYRANKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// NAVYRANKS_DB predates the store section and still names the database file.
	_ = v.BindEnv("store.path", "NAVYRANKS_STORE_PATH", "NAVYRANKS_DB")
	_ = v.BindEnv("env", "NAVYRANKS_ENV", "APP_ENV")

	if opts.ConfigFile != "" {
		v.SetConfigFile(opts.ConfigFile)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("read config %s: %w", opts.ConfigFile, err)
		}
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		if dir := configDir(); dir != "" {
			v.AddConfigPath(dir)
		}
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("read config: %w", err)
			}
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate checks values viper cannot type-check on its own.
func (c *Config) Validate() error {
	switch c.Store.Backend {
	case BackendSQLite, BackendRedis, BackendMemory:
	default:
		return fmt.Errorf("%w: %q", ErrUnknownBackend, c.Store.Backend)
	}
	if c.Quiz.TickInterval <= 0 {
		return fmt.Errorf("quiz.tick_interval must be positive, got %s", c.Quiz.TickInterval)
	}
	return nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("env", "local")
	v.SetDefault("store.backend", BackendSQLite)
	v.SetDefault("store.path", DefaultDBPath())
	v.SetDefault("store.key_prefix", "navyRanks")
	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)
	v.SetDefault("ranks.file", "")
	v.SetDefault("quiz.tick_interval", "10ms")
	v.SetDefault("log.file", DefaultLogPath())
	v.SetDefault("log.level", "info")
}

func loadDotenv(path string) error {
	if path == "" {
		path = ".env"
		if _, err := os.Stat(path); err != nil {
			return nil
		}
	}
	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("load %s: %w", path, err)
	}
	return nil
}

// DefaultDBPath returns $XDG_DATA_HOME/navyranks/navyranks.db.
func DefaultDBPath() string {
	return filepath.Join(xdgDir("XDG_DATA_HOME", ".local", "share"), "navyranks", "navyranks.db")
}

// DefaultLogPath returns $XDG_STATE_HOME/navyranks/navyranks.log.
func DefaultLogPath() string {
	return filepath.Join(xdgDir("XDG_STATE_HOME", ".local", "state"), "navyranks", "navyranks.log")
}

func configDir() string {
	return filepath.Join(xdgDir("XDG_CONFIG_HOME", ".config"), "navyranks")
}

func xdgDir(env string, fallback ...string) string {
	if dir := os.Getenv(env); dir != "" {
		return dir
	}
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(append([]string{home}, fallback...)...)
}
