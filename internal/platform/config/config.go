package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	apperrors "flowstreak/internal/platform/errors"
)

const (
	DefaultSessionMinutes  = 25
	DefaultTimerMinutes    = 25
	DefaultRefreshInterval = 2 * time.Second
	DefaultTheme           = "dark"
	DefaultLogLevel        = "info"

	envPrefix = "FLOWSTREAK"
	fileName  = "config.yaml"
)

var defaultQuickPresets = []int{15, 25, 45}

type Config struct {
	DataDir string
	DBPath  string
	LogPath string

	SessionMinutes  int
	TimerMinutes    int
	QuickPresets    []int
	RefreshInterval time.Duration
	Theme           string
	Bell            bool
	LogLevel        string
}

// New derives paths under dataDir and fills in defaults. It does not read any file.
func New(dataDir string) (Config, error) {
	if dataDir == "" {
		return Config{}, fmt.Errorf("data dir is required")
	}
	return Config{
		DataDir:         dataDir,
		DBPath:          filepath.Join(dataDir, "flowstreak.db"),
		LogPath:         filepath.Join(dataDir, "flowstreak.log"),
		SessionMinutes:  DefaultSessionMinutes,
		TimerMinutes:    DefaultTimerMinutes,
		QuickPresets:    append([]int(nil), defaultQuickPresets...),
		RefreshInterval: DefaultRefreshInterval,
		Theme:           DefaultTheme,
		Bell:            true,
		LogLevel:        DefaultLogLevel,
	}, nil
}

// Load layers <dataDir>/config.yaml and FLOWSTREAK_* environment variables over the defaults.
// A .env file in the working directory seeds the environment when present.
func Load(dataDir string) (Config, error) {
	cfg, err := New(dataDir)
	if err != nil {
		return Config{}, err
	}
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	v.SetDefault("session_minutes", cfg.SessionMinutes)
	v.SetDefault("timer_minutes", cfg.TimerMinutes)
	v.SetDefault("quick_presets", cfg.QuickPresets)
	v.SetDefault("refresh_interval", cfg.RefreshInterval)
	v.SetDefault("theme", cfg.Theme)
	v.SetDefault("bell", cfg.Bell)
	v.SetDefault("log_level", cfg.LogLevel)

	path := filepath.Join(dataDir, fileName)
	if _, statErr := os.Stat(path); statErr == nil {
		v.SetConfigFile(path)
		v.SetConfigType("yaml")
		if err := v.ReadInConfig(); err != nil {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	} else if !errors.Is(statErr, os.ErrNotExist) {
		return Config{}, fmt.Errorf("stat config %s: %w", path, statErr)
	}

	cfg.SessionMinutes = v.GetInt("session_minutes")
	cfg.TimerMinutes = v.GetInt("timer_minutes")
	cfg.QuickPresets = v.GetIntSlice("quick_presets")
	cfg.RefreshInterval = v.GetDuration("refresh_interval")
	cfg.Theme = strings.ToLower(strings.TrimSpace(v.GetString("theme")))
	cfg.Bell = v.GetBool("bell")
	cfg.LogLevel = strings.ToLower(strings.TrimSpace(v.GetString("log_level")))

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func (c Config) Validate() error {
	if c.SessionMinutes <= 0 {
		return fmt.Errorf("%w: session_minutes must be positive", apperrors.ErrInvalidInput)
	}
	if c.TimerMinutes <= 0 {
		return fmt.Errorf("%w: timer_minutes must be positive", apperrors.ErrInvalidInput)
	}
	for _, p := range c.QuickPresets {
		if p <= 0 {
			return fmt.Errorf("%w: quick_presets must be positive, got %d", apperrors.ErrInvalidInput, p)
		}
	}
	if c.RefreshInterval <= 0 {
		return fmt.Errorf("%w: refresh_interval must be positive", apperrors.ErrInvalidInput)
	}
	switch c.Theme {
	case "light", "dark", "high-contrast":
	default:
		return fmt.Errorf("%w: unknown theme %q", apperrors.ErrInvalidInput, c.Theme)
	}
	if hclog.LevelFromString(c.LogLevel) == hclog.NoLevel {
		return fmt.Errorf("%w: unknown log_level %q", apperrors.ErrInvalidInput, c.LogLevel)
	}
	return nil
}

// DefaultDataDir returns ~/.flowstreak, or .flowstreak when the home dir is unknown.
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".flowstreak"
	}
	return filepath.Join(home, ".flowstreak")
}
