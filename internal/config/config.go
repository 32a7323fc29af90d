package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/knadh/koanf/parsers/yaml"
	"github.com/knadh/koanf/providers/env/v2"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/providers/structs"
	"github.com/knadh/koanf/v2"
)

// EnvPrefix prefixes every environment override, e.g.
// TIMESHEET_WEEK_THRESHOLDMINUTES=2310.
const EnvPrefix = "TIMESHEET_"

// ConfigPathEnv names the environment variable holding the config file path.
const ConfigPathEnv = "TIMESHEET_CONFIG"

type Config struct {
	Week   Week   `koanf:"week"`
	Export Export `koanf:"export"`
	UI     UI     `koanf:"ui"`
	Log    Log    `koanf:"log"`
}

type Week struct {
	ThresholdMinutes    int `koanf:"thresholdminutes"`
	DefaultBreakMinutes int `koanf:"defaultbreakminutes"`
}

type Export struct {
	OutputDir string `koanf:"outputdir"`
	Format    string `koanf:"format"`
}

type UI struct {
	BannerSeconds int `koanf:"bannerseconds"`
}

type Log struct {
	Level string `koanf:"level"`
	File  string `koanf:"file"`
}

// Default returns the built-in configuration: a 40-hour week, 30-minute
// breaks, PDF output into the working directory and a 5 second banner.
func Default() Config {
	return Config{
		Week: Week{
			ThresholdMinutes:    2400,
			DefaultBreakMinutes: 30,
		},
		Export: Export{
			OutputDir: ".",
			Format:    "pdf",
		},
		UI: UI{
			BannerSeconds: 5,
		},
		Log: Log{
			Level: "warn",
		},
	}
}

// BannerDuration is how long transient messages stay visible.
func (c Config) BannerDuration() time.Duration {
	return time.Duration(c.UI.BannerSeconds) * time.Second
}

// DefaultPath returns $TIMESHEET_CONFIG or ~/.timesheet.yaml.
func DefaultPath() string {
	if p := os.Getenv(ConfigPathEnv); p != "" {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ".timesheet.yaml"
	}
	return filepath.Join(home, ".timesheet.yaml")
}

// Load layers defaults, the YAML file at path (optional) and TIMESHEET_*
// environment variables, then validates the result. A missing file is not
// an error.
func Load(path string) (Config, error) {
	k := koanf.New(".")

	if err := k.Load(structs.Provider(Default(), "koanf"), nil); err != nil {
		return Config{}, fmt.Errorf("loading config defaults: %w", err)
	}

	if path != "" {
		if err := k.Load(file.Provider(path), yaml.Parser()); err != nil && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("loading config file %s: %w", path, err)
		}
	}

	err := k.Load(env.Provider(".", env.Opt{
		Prefix: EnvPrefix,
		TransformFunc: func(k, v string) (string, any) {
			k = strings.ReplaceAll(strings.ToLower(strings.TrimPrefix(k, EnvPrefix)), "_", ".")
			return k, v
		},
	}), nil)
	if err != nil {
		return Config{}, fmt.Errorf("loading config from env: %w", err)
	}

	var cfg Config
	if err := k.Unmarshal("", &cfg); err != nil {
		return Config{}, fmt.Errorf("decoding config: %w", err)
	}

	if errs := Validate(cfg); len(errs) > 0 {
		return Config{}, fmt.Errorf("invalid config: %w", errors.Join(errs...))
	}
	return cfg, nil
}

// Validate returns every problem found in cfg.
func Validate(cfg Config) []error {
	var errs []error

	if cfg.Week.ThresholdMinutes <= 0 {
		errs = append(errs, fmt.Errorf("week.thresholdminutes must be positive"))
	}
	if cfg.Week.DefaultBreakMinutes < 0 {
		errs = append(errs, fmt.Errorf("week.defaultbreakminutes must not be negative"))
	}
	switch cfg.Export.Format {
	case "pdf", "csv":
	default:
		errs = append(errs, fmt.Errorf("export.format: invalid value %q (expected pdf or csv)", cfg.Export.Format))
	}
	if cfg.UI.BannerSeconds <= 0 {
		errs = append(errs, fmt.Errorf("ui.bannerseconds must be positive"))
	}
	if cfg.Log.Level == "" {
		errs = append(errs, fmt.Errorf("log.level is required"))
	}

	return errs
}
