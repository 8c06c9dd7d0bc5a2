// Package config loads the optional canopy.yaml engine configuration:
// screen size, transition defaults, and diagnostics verbosity. A missing
// file yields a zero-value Config, and Resolve fills in defaults, so the
// engine runs unconfigured.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/go-canopy/canopy/pkg/animation"
	"github.com/go-canopy/canopy/pkg/geometry"
)

// FileName is the configuration file looked up by LoadOptional.
const FileName = "canopy.yaml"

// Config represents the optional canopy.yaml configuration.
type Config struct {
	Screen      ScreenConfig      `yaml:"screen"`
	Animation   AnimationConfig   `yaml:"animation"`
	Diagnostics DiagnosticsConfig `yaml:"diagnostics"`
}

// ScreenConfig sets the root reference frame.
type ScreenConfig struct {
	Width  float64 `yaml:"width,omitempty"`
	Height float64 `yaml:"height,omitempty"`
}

// AnimationConfig sets transition defaults applied when a widget animation
// is started without an explicit duration or curve.
type AnimationConfig struct {
	Duration string `yaml:"duration,omitempty"`
	Curve    string `yaml:"curve,omitempty"`
}

// DiagnosticsConfig sets the log level of the default diagnostics handler.
type DiagnosticsConfig struct {
	Level string `yaml:"level,omitempty"`
}

// LoadOptional reads canopy.yaml from dir if present. A missing file is not
// an error and yields a zero-value Config.
func LoadOptional(dir string) (*Config, error) {
	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &Config{}, nil
		}
		return nil, fmt.Errorf("failed to read %s: %w", FileName, err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse %s: %w", FileName, err)
	}

	return &cfg, nil
}

// Resolved contains resolved configuration values.
type Resolved struct {
	Screen             geometry.Size
	TransitionDuration time.Duration
	Curve              animation.Curve
	CurveName          string
	LogLevel           log.Level
}

// Defaults used when canopy.yaml omits a value.
const (
	defaultScreenWidth  = 800
	defaultScreenHeight = 600
	defaultDuration     = 200 * time.Millisecond
	defaultCurveName    = "ease"
	defaultLogLevel     = log.WarnLevel
)

// Resolve validates the configuration and fills in defaults.
func (c *Config) Resolve() (*Resolved, error) {
	res := &Resolved{
		Screen:             geometry.Size{Width: defaultScreenWidth, Height: defaultScreenHeight},
		TransitionDuration: defaultDuration,
		CurveName:          defaultCurveName,
		LogLevel:           defaultLogLevel,
	}

	if c.Screen.Width > 0 {
		res.Screen.Width = c.Screen.Width
	}
	if c.Screen.Height > 0 {
		res.Screen.Height = c.Screen.Height
	}

	if s := strings.TrimSpace(c.Animation.Duration); s != "" {
		d, err := time.ParseDuration(s)
		if err != nil {
			return nil, fmt.Errorf("invalid animation duration %q: %w", s, err)
		}
		if d < 0 {
			return nil, fmt.Errorf("animation duration %q is negative", s)
		}
		res.TransitionDuration = d
	}

	if s := strings.TrimSpace(c.Animation.Curve); s != "" {
		res.CurveName = s
	}
	curve, ok := animation.ByName(res.CurveName)
	if !ok {
		return nil, fmt.Errorf("unknown animation curve %q", res.CurveName)
	}
	res.Curve = curve

	if s := strings.TrimSpace(c.Diagnostics.Level); s != "" {
		level, err := log.ParseLevel(s)
		if err != nil {
			return nil, fmt.Errorf("invalid diagnostics level %q: %w", s, err)
		}
		res.LogLevel = level
	}

	return res, nil
}
