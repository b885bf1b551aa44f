package domain

import (
	"fmt"
	"strings"
)

// Defaults applied when .moneywise.yaml leaves a key unset.
const (
	DefaultBrand             = "MoneyWise"
	DefaultSearchPlaceholder = "Search..."
	DefaultServerAddr        = ":8080"
	DefaultLogLevel          = "info"
)

// ValidLogLevels enumerates accepted values for log.level.
var ValidLogLevels = []string{"debug", "info", "warn", "error"}

// DashboardConfig holds the dashboard configuration loaded from .moneywise.yaml.
type DashboardConfig struct {
	Brand             string         `yaml:"brand"              json:"brand"`
	SearchPlaceholder string         `yaml:"search_placeholder" json:"search_placeholder"`
	PreviewLimit      int            `yaml:"preview_limit"      json:"preview_limit"`
	User              UserProfile    `yaml:"user"               json:"user"`
	Nav               []NavItem      `yaml:"nav"                json:"nav"`
	Notifications     []Notification `yaml:"notifications"      json:"notifications"`
	Server            ServerConfig   `yaml:"server"             json:"server"`
	Log               LogConfig      `yaml:"log"                json:"log"`
}

// ServerConfig configures the HTTP surface.
type ServerConfig struct {
	Addr string `yaml:"addr" json:"addr"`
}

// LogConfig configures the zap logger.
type LogConfig struct {
	Level       string `yaml:"level"       json:"level"`
	Development bool   `yaml:"development" json:"development"`
}

// DefaultConfig returns the stock dashboard: the default nav, the sample
// notifications and the placeholder user.
func DefaultConfig() DashboardConfig {
	return DashboardConfig{
		Brand:             DefaultBrand,
		SearchPlaceholder: DefaultSearchPlaceholder,
		PreviewLimit:      PreviewLimit,
		User:              DefaultUserProfile(),
		Nav:               DefaultNavItems(),
		Notifications:     SampleNotifications(),
		Server:            ServerConfig{Addr: DefaultServerAddr},
		Log:               LogConfig{Level: DefaultLogLevel},
	}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c DashboardConfig) Validate() error {
	// 1. preview_limit must not be negative
	if c.PreviewLimit < 0 {
		return fmt.Errorf("preview_limit = %d (must be >= 0)", c.PreviewLimit)
	}

	// 2. nav entries need a label, an absolute path and a known icon
	labels := make(map[string]bool, len(c.Nav))
	for i, item := range c.Nav {
		if strings.TrimSpace(item.Label) == "" {
			return fmt.Errorf("nav[%d]: label is required", i)
		}
		if labels[item.Label] {
			return fmt.Errorf("nav[%d]: duplicate label %q", i, item.Label)
		}
		labels[item.Label] = true
		if !strings.HasPrefix(item.Path, "/") {
			return fmt.Errorf("nav[%d]: path %q must start with /", i, item.Path)
		}
		if !item.Icon.IsValid() {
			return fmt.Errorf("nav[%d]: unknown icon %q", i, item.Icon)
		}
	}

	// 3. notification ids must be unique and non-negative; 0 means "assign"
	ids := make(map[int]bool, len(c.Notifications))
	for i, n := range c.Notifications {
		if n.ID < 0 {
			return fmt.Errorf("notifications[%d]: id %d must be >= 0", i, n.ID)
		}
		if n.ID != 0 && ids[n.ID] {
			return fmt.Errorf("notifications[%d]: duplicate id %d", i, n.ID)
		}
		ids[n.ID] = true
		if strings.TrimSpace(n.Title) == "" {
			return fmt.Errorf("notifications[%d]: title is required", i)
		}
	}

	// 4. log.level must be known or empty
	if c.Log.Level != "" && !isValidLogLevel(c.Log.Level) {
		return fmt.Errorf("unknown log.level %q (valid: %s)", c.Log.Level, strings.Join(ValidLogLevels, ", "))
	}

	return nil
}

func isValidLogLevel(level string) bool {
	for _, l := range ValidLogLevels {
		if l == level {
			return true
		}
	}
	return false
}
