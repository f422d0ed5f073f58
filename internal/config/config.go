package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"

	"github.com/avern/tabline/core"
	"github.com/avern/tabline/core/widgets"
)

// Config holds application configuration.
type Config struct {
	Tabs    TabsConfig
	Session SessionConfig
	UI      UIConfig
}

// TabsConfig holds the widget's pass-through settings.
type TabsConfig struct {
	Policy     string `mapstructure:"policy"`
	Axis       string `mapstructure:"axis"`
	Edge       string `mapstructure:"edge"`
	ShowArrows bool   `mapstructure:"show_arrows"`
}

// SessionConfig holds sqlite settings.
type SessionConfig struct {
	Path string `mapstructure:"path"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Accent string `mapstructure:"accent"`
}

// Load reads configuration from file and env. Env var overrides use
// prefix TABLINE_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("tabs.policy", "last")
	v.SetDefault("tabs.axis", "row")
	v.SetDefault("tabs.edge", "top")
	v.SetDefault("tabs.show_arrows", true)
	v.SetDefault("session.path", filepath.Join(os.Getenv("HOME"), ".local", "share", "tabline", "session.db"))
	v.SetDefault("ui.accent", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TABLINE_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "tabline"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TABLINE")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Save writes the provided config to disk, creating the config
// directory if needed. Used by the demo to persist settings changed at
// runtime.
func Save(cfg Config) error {
	path := os.Getenv("TABLINE_CONFIG")
	if path == "" {
		path = filepath.Join(os.Getenv("HOME"), ".config", "tabline", "config.toml")
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("mkdir config dir: %w", err)
	}

	v := viper.New()
	v.SetConfigType("toml")
	v.Set("tabs.policy", cfg.Tabs.Policy)
	v.Set("tabs.axis", cfg.Tabs.Axis)
	v.Set("tabs.edge", cfg.Tabs.Edge)
	v.Set("tabs.show_arrows", cfg.Tabs.ShowArrows)
	v.Set("session.path", cfg.Session.Path)
	v.Set("ui.accent", cfg.UI.Accent)

	if err := v.WriteConfigAs(path); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// MoveToPolicy maps the configured policy name onto the widget's enum.
// Unknown names fall back to the default (last).
func (t TabsConfig) MoveToPolicy() core.MoveToPolicy {
	if strings.EqualFold(strings.TrimSpace(t.Policy), "stay") {
		return core.MoveToStay
	}
	return core.MoveToLast
}

// LayoutAxis maps the configured axis name. Unknown names fall back to
// the row strip.
func (t TabsConfig) LayoutAxis() widgets.Axis {
	if strings.EqualFold(strings.TrimSpace(t.Axis), "rail") {
		return widgets.AxisRail
	}
	return widgets.AxisRow
}

// LayoutEdge maps the configured edge name, constrained to the axis:
// a row strip renders top or bottom, a rail renders left or right.
func (t TabsConfig) LayoutEdge() widgets.Edge {
	edge := strings.ToLower(strings.TrimSpace(t.Edge))
	if t.LayoutAxis() == widgets.AxisRail {
		if edge == "right" {
			return widgets.EdgeRight
		}
		return widgets.EdgeLeft
	}
	if edge == "bottom" {
		return widgets.EdgeBottom
	}
	return widgets.EdgeTop
}
