package config

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	toml "github.com/pelletier/go-toml/v2"
)

// Config captures everything flip reads at startup.
type Config struct {
	APIBind      string
	LogDir       string
	LogLevel     string
	PollInterval time.Duration
	FlipDelay    time.Duration
	FadeDuration time.Duration
}

const (
	defaultConfigPath = "~/.config/flip/config.toml"
	defaultLogDir     = "~/.local/share/flip/logs"
	defaultAPIBind    = "127.0.0.1:7487"
	defaultLogLevel   = "info"
	defaultPollMS     = 2000
	defaultFlipMS     = 250
	defaultFadeMS     = 250
)

// Default returns the configuration used when no file exists.
func Default() Config {
	return Config{
		APIBind:      defaultAPIBind,
		LogDir:       mustExpand(defaultLogDir),
		LogLevel:     defaultLogLevel,
		PollInterval: defaultPollMS * time.Millisecond,
		FlipDelay:    defaultFlipMS * time.Millisecond,
		FadeDuration: defaultFadeMS * time.Millisecond,
	}
}

// Load locates and parses the flip config, falling back to defaults when
// missing. Environment overrides are applied last, then the result is
// validated.
func Load(path string) (Config, error) {
	resolved, err := resolvePath(path)
	if err != nil {
		return Config{}, err
	}

	cfg := Default()

	file, err := os.Open(resolved)
	switch {
	case errors.Is(err, os.ErrNotExist):
	case err != nil:
		return Config{}, fmt.Errorf("open config: %w", err)
	default:
		defer file.Close()
		if err := parse(file, &cfg); err != nil {
			return Config{}, err
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return Config{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func parse(r io.Reader, cfg *Config) error {
	bytes, err := io.ReadAll(r)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}

	var raw struct {
		APIBind  string `toml:"api_bind"`
		LogDir   string `toml:"log_dir"`
		LogLevel string `toml:"log_level"`
		PollMS   *int64 `toml:"poll_ms"`
		FlipMS   *int64 `toml:"flip_delay_ms"`
		FadeMS   *int64 `toml:"fade_ms"`
	}
	if err := toml.Unmarshal(bytes, &raw); err != nil {
		return fmt.Errorf("parse config: %w", err)
	}

	if v := strings.TrimSpace(raw.APIBind); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(raw.LogDir); v != "" {
		cfg.LogDir = mustExpand(v)
	}
	if v := strings.TrimSpace(raw.LogLevel); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if raw.PollMS != nil {
		cfg.PollInterval = millis(*raw.PollMS)
	}
	if raw.FlipMS != nil {
		cfg.FlipDelay = millis(*raw.FlipMS)
	}
	if raw.FadeMS != nil {
		cfg.FadeDuration = millis(*raw.FadeMS)
	}
	return nil
}

func applyEnvOverrides(cfg *Config) error {
	if v := strings.TrimSpace(os.Getenv("FLIP_API_BIND")); v != "" {
		cfg.APIBind = v
	}
	if v := strings.TrimSpace(os.Getenv("FLIP_LOG_LEVEL")); v != "" {
		cfg.LogLevel = strings.ToLower(v)
	}
	if v := strings.TrimSpace(os.Getenv("FLIP_DELAY_MS")); v != "" {
		ms, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse FLIP_DELAY_MS: %w", err)
		}
		cfg.FlipDelay = millis(ms)
	}
	return nil
}

// Validate checks that the configuration is usable.
func (c Config) Validate() error {
	if strings.TrimSpace(c.APIBind) == "" {
		return errors.New("api_bind must be set")
	}
	switch c.LogLevel {
	case "debug", "info", "warn", "error":
	default:
		return fmt.Errorf("log_level must be one of debug, info, warn, error, got %q", c.LogLevel)
	}
	if c.PollInterval <= 0 {
		return fmt.Errorf("poll_ms must be positive, got %d", c.PollInterval.Milliseconds())
	}
	if c.FlipDelay < 0 {
		return fmt.Errorf("flip_delay_ms must not be negative, got %d", c.FlipDelay.Milliseconds())
	}
	if c.FadeDuration < 0 {
		return fmt.Errorf("fade_ms must not be negative, got %d", c.FadeDuration.Milliseconds())
	}
	return nil
}

// LogPath returns the path of flip's own log file.
func (c Config) LogPath() string {
	if strings.TrimSpace(c.LogDir) == "" {
		return mustExpand(defaultLogDir + "/flip.log")
	}
	return filepath.Join(c.LogDir, "flip.log")
}

func millis(ms int64) time.Duration {
	return time.Duration(ms) * time.Millisecond
}

func resolvePath(path string) (string, error) {
	if strings.TrimSpace(path) == "" {
		return expandPath(defaultConfigPath)
	}
	return expandPath(path)
}

func mustExpand(path string) string {
	expanded, err := expandPath(path)
	if err != nil {
		return path
	}
	return expanded
}

func expandPath(path string) (string, error) {
	trimmed := strings.TrimSpace(path)
	if trimmed == "" {
		return "", fmt.Errorf("path is empty")
	}
	if strings.HasPrefix(trimmed, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		trimmed = filepath.Join(home, strings.TrimPrefix(trimmed, "~"))
	}
	return filepath.Abs(trimmed)
}
