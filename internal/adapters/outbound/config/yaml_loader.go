package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/moneywise/moneywise/internal/domain"
)

const (
	fileName = ".moneywise.yaml"
	envFile  = ".env"

	EnvAddr     = "MONEYWISE_ADDR"
	EnvLogLevel = "MONEYWISE_LOG_LEVEL"
)

// YAMLLoader implements domain.ConfigLoader by reading .moneywise.yaml.
type YAMLLoader struct {
	locator domain.RepoLocator
	getenv  func(string) string
}

// Option customizes a YAMLLoader.
type Option func(*YAMLLoader)

// WithRepoLocator makes Load fall back to the repository root when the
// directory itself has no .moneywise.yaml.
func WithRepoLocator(l domain.RepoLocator) Option {
	return func(y *YAMLLoader) { y.locator = l }
}

// WithGetenv replaces os.Getenv for environment overrides.
func WithGetenv(fn func(string) string) Option {
	return func(y *YAMLLoader) { y.getenv = fn }
}

// New creates a YAMLLoader.
func New(opts ...Option) *YAMLLoader {
	l := &YAMLLoader{getenv: os.Getenv}
	for _, opt := range opts {
		opt(l)
	}
	return l
}

// Load reads .moneywise.yaml from dir, or from the enclosing repository root
// when dir has none. Returns DefaultConfig if no file is found. Values from a
// sibling .env file and then the process environment override the file.
func (l *YAMLLoader) Load(dir string) (domain.DashboardConfig, error) {
	cfgDir := l.resolveDir(dir)

	cfg := domain.DefaultConfig()
	data, err := os.ReadFile(filepath.Join(cfgDir, fileName))
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return domain.DashboardConfig{}, err
	default:
		var fileCfg domain.DashboardConfig
		if err := yaml.Unmarshal(data, &fileCfg); err != nil {
			return domain.DashboardConfig{}, fmt.Errorf("parsing %s: %w", fileName, err)
		}

		// Validate before merging, so typos in the raw file are reported.
		if err := fileCfg.Validate(); err != nil {
			return domain.DashboardConfig{}, fmt.Errorf("invalid %s: %w", fileName, err)
		}
		cfg = mergeConfig(cfg, fileCfg)
	}

	if err := l.applyEnv(cfgDir, &cfg); err != nil {
		return domain.DashboardConfig{}, err
	}
	if err := cfg.Validate(); err != nil {
		return domain.DashboardConfig{}, fmt.Errorf("invalid environment override: %w", err)
	}
	return cfg, nil
}

func (l *YAMLLoader) resolveDir(dir string) string {
	if _, err := os.Stat(filepath.Join(dir, fileName)); err == nil || l.locator == nil {
		return dir
	}
	root, err := l.locator.RepoRoot(dir)
	if err != nil {
		return dir
	}
	return root
}

// applyEnv overlays .env values and then process environment values.
// The .env file is read without touching the process environment.
func (l *YAMLLoader) applyEnv(dir string, cfg *domain.DashboardConfig) error {
	dotenv, err := godotenv.Read(filepath.Join(dir, envFile))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return fmt.Errorf("reading %s: %w", envFile, err)
	}

	lookup := func(key string) string {
		if v := l.getenv(key); v != "" {
			return v
		}
		return dotenv[key]
	}

	if v := lookup(EnvAddr); v != "" {
		cfg.Server.Addr = v
	}
	if v := lookup(EnvLogLevel); v != "" {
		cfg.Log.Level = v
	}
	return nil
}

// mergeConfig overlays explicit file values on top of defaults.
// Explicit (non-zero) values always win.
func mergeConfig(base, override domain.DashboardConfig) domain.DashboardConfig {
	result := base

	if override.Brand != "" {
		result.Brand = override.Brand
	}
	if override.SearchPlaceholder != "" {
		result.SearchPlaceholder = override.SearchPlaceholder
	}
	if override.PreviewLimit > 0 {
		result.PreviewLimit = override.PreviewLimit
	}
	if override.User.Name != "" {
		result.User.Name = override.User.Name
	}
	if override.User.Email != "" {
		result.User.Email = override.User.Email
	}

	// Explicit nav replaces the default list entirely.
	if len(override.Nav) > 0 {
		result.Nav = override.Nav
	}

	// A present but empty notifications list means "start with none".
	if override.Notifications != nil {
		result.Notifications = override.Notifications
	}

	if override.Server.Addr != "" {
		result.Server.Addr = override.Server.Addr
	}
	if override.Log.Level != "" {
		result.Log.Level = override.Log.Level
	}
	if override.Log.Development {
		result.Log.Development = true
	}

	return result
}
