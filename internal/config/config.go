// Package config provides configuration management for tomato.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
	"github.com/xvierd/tomato/internal/domain"
)

// Config holds all configuration for the tomato application.
type Config struct {
	Timer         TimerConfig        `mapstructure:"timer"`
	Notifications NotificationConfig `mapstructure:"notifications"`
	Storage       StorageConfig      `mapstructure:"storage"`
	Log           LogConfig          `mapstructure:"log"`
	Theme         ThemeConfig        `mapstructure:"theme"`
}

// TimerConfig holds the interval lengths used for a fresh timer.
// Once a timer has been saved, its own durations take precedence.
type TimerConfig struct {
	WorkMinutes  int `mapstructure:"work_minutes"`
	BreakMinutes int `mapstructure:"break_minutes"`
}

// NotificationConfig holds notification settings.
type NotificationConfig struct {
	Enabled bool `mapstructure:"enabled"`
	Sound   bool `mapstructure:"sound"`
}

// StorageConfig holds storage settings.
type StorageConfig struct {
	DataDir string `mapstructure:"data_dir"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level string `mapstructure:"level"`
}

// ThemeConfig holds theme customization settings (colors and icons).
type ThemeConfig struct {
	ColorWork           string `mapstructure:"color_work"`
	ColorBreak          string `mapstructure:"color_break"`
	ColorPaused         string `mapstructure:"color_paused"`
	ColorTitle          string `mapstructure:"color_title"`
	ColorHelp           string `mapstructure:"color_help"`
	WorkGradientStart   string `mapstructure:"work_gradient_start"`
	WorkGradientEnd     string `mapstructure:"work_gradient_end"`
	BreakGradientStart  string `mapstructure:"break_gradient_start"`
	BreakGradientEnd    string `mapstructure:"break_gradient_end"`
	PausedGradientStart string `mapstructure:"paused_gradient_start"`
	PausedGradientEnd   string `mapstructure:"paused_gradient_end"`
	IconApp             string `mapstructure:"icon_app"`
	IconPaused          string `mapstructure:"icon_paused"`
}

// DefaultThemeConfig returns the default theme configuration.
func DefaultThemeConfig() ThemeConfig {
	return ThemeConfig{
		ColorWork:           "#E0533D",
		ColorBreak:          "#4ECDC4",
		ColorPaused:         "#6B7280",
		ColorTitle:          "#6B7280",
		ColorHelp:           "#95A5A6",
		WorkGradientStart:   "#E0533D",
		WorkGradientEnd:     "#F59E0B",
		BreakGradientStart:  "#4ECDC4",
		BreakGradientEnd:    "#2ECC71",
		PausedGradientStart: "#6B7280",
		PausedGradientEnd:   "#4B5563",
		IconApp:             "🍅",
		IconPaused:          "⏸",
	}
}

const defaultDataDir = "~/.tomato"

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Timer: TimerConfig{
			WorkMinutes:  domain.DefaultWorkMinutes,
			BreakMinutes: domain.DefaultBreakMinutes,
		},
		Notifications: NotificationConfig{
			Enabled: true,
			Sound:   true,
		},
		Storage: StorageConfig{
			DataDir: defaultDataDir,
		},
		Log: LogConfig{
			Level: "info",
		},
		Theme: DefaultThemeConfig(),
	}
}

// Load loads the configuration from path, or from the default location
// when path is empty. A missing file is created with defaults.
func Load(path string) (*Config, error) {
	if path == "" {
		p, err := GetConfigPath()
		if err != nil {
			return nil, fmt.Errorf("failed to get config path: %w", err)
		}
		path = p
	}

	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := Save(path, DefaultConfig()); err != nil {
			return nil, fmt.Errorf("failed to create default config: %w", err)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dir, err := expandHome(cfg.Storage.DataDir)
	if err != nil {
		return nil, err
	}
	cfg.Storage.DataDir = dir

	return &cfg, nil
}

// Save writes cfg to path.
func Save(path string, cfg *Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	v := newViper(path)
	v.Set("timer.work_minutes", cfg.Timer.WorkMinutes)
	v.Set("timer.break_minutes", cfg.Timer.BreakMinutes)
	v.Set("notifications.enabled", cfg.Notifications.Enabled)
	v.Set("notifications.sound", cfg.Notifications.Sound)
	v.Set("storage.data_dir", cfg.Storage.DataDir)
	v.Set("log.level", cfg.Log.Level)

	return v.WriteConfigAs(path)
}

// Validate rejects values the timer cannot use.
func (c *Config) Validate() error {
	if err := domain.ValidateDurationMinutes(c.Timer.WorkMinutes); err != nil {
		return fmt.Errorf("timer.work_minutes: %w", err)
	}
	if err := domain.ValidateDurationMinutes(c.Timer.BreakMinutes); err != nil {
		return fmt.Errorf("timer.break_minutes: %w", err)
	}
	return nil
}

// GetConfigPath returns the path to the config file.
func GetConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, ".tomato", "config.toml"), nil
}

// GetDBPath returns the path to the database file.
func GetDBPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomato.db")
}

// GetLogPath returns the path to the log file.
func GetLogPath(cfg *Config) string {
	return filepath.Join(cfg.Storage.DataDir, "tomato.log")
}

func newViper(path string) *viper.Viper {
	v := viper.New()
	v.SetConfigFile(path)
	v.SetConfigType("toml")
	v.SetEnvPrefix("TOMATO")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)
	return v
}

func expandHome(dir string) (string, error) {
	if dir == "" {
		dir = defaultDataDir
	}
	if dir != "~" && !strings.HasPrefix(dir, "~/") {
		return dir, nil
	}
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(homeDir, strings.TrimPrefix(dir, "~")), nil
}

// setDefaults sets default values for viper.
func setDefaults(v *viper.Viper) {
	v.SetDefault("timer.work_minutes", domain.DefaultWorkMinutes)
	v.SetDefault("timer.break_minutes", domain.DefaultBreakMinutes)
	v.SetDefault("notifications.enabled", true)
	v.SetDefault("notifications.sound", true)
	v.SetDefault("storage.data_dir", defaultDataDir)
	v.SetDefault("log.level", "info")

	// Theme defaults
	defaults := DefaultThemeConfig()
	v.SetDefault("theme.color_work", defaults.ColorWork)
	v.SetDefault("theme.color_break", defaults.ColorBreak)
	v.SetDefault("theme.color_paused", defaults.ColorPaused)
	v.SetDefault("theme.color_title", defaults.ColorTitle)
	v.SetDefault("theme.color_help", defaults.ColorHelp)
	v.SetDefault("theme.work_gradient_start", defaults.WorkGradientStart)
	v.SetDefault("theme.work_gradient_end", defaults.WorkGradientEnd)
	v.SetDefault("theme.break_gradient_start", defaults.BreakGradientStart)
	v.SetDefault("theme.break_gradient_end", defaults.BreakGradientEnd)
	v.SetDefault("theme.paused_gradient_start", defaults.PausedGradientStart)
	v.SetDefault("theme.paused_gradient_end", defaults.PausedGradientEnd)
	v.SetDefault("theme.icon_app", defaults.IconApp)
	v.SetDefault("theme.icon_paused", defaults.IconPaused)
}
