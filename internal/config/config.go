// Package config loads the settings shared by the demo programs.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/leterax/go-gldemos/pkg/camera"
)

// Config holds window, camera and logging settings.
type Config struct {
	Window WindowConfig `yaml:"window"`
	Camera CameraConfig `yaml:"camera"`
	Log    LogConfig    `yaml:"log"`
}

// WindowConfig describes the demo window.
type WindowConfig struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
	VSync  bool   `yaml:"vsync"`
}

// CameraConfig tunes the fly camera.
type CameraConfig struct {
	Sensitivity float32 `yaml:"sensitivity"`
	MoveSpeed   float32 `yaml:"move_speed"`
	FOV         float32 `yaml:"fov"`
	// YawWrap is "step" (one add/subtract of 360) or "modulo".
	YawWrap string `yaml:"yaw_wrap"`
}

// LogConfig selects the slog level.
type LogConfig struct {
	Level string `yaml:"level"`
}

// Default returns the built-in settings.
func Default() Config {
	return Config{
		Window: WindowConfig{
			Width:  800,
			Height: 600,
			Title:  "go-gldemos",
			VSync:  true,
		},
		Camera: CameraConfig{
			Sensitivity: camera.DefaultSensitivity,
			MoveSpeed:   camera.DefaultMoveSpeed,
			FOV:         camera.DefaultFOV,
			YawWrap:     camera.WrapStep.String(),
		},
		Log: LogConfig{Level: "info"},
	}
}

// Load reads a YAML file over the defaults. An empty path returns the
// defaults.
func Load(path string) (Config, error) {
	cfg, _, err := load(path)
	return cfg, err
}

// load is Load that also reports whether the file set window.title.
func load(path string) (cfg Config, titleSet bool, err error) {
	cfg = Default()
	if path == "" {
		return cfg, false, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false, fmt.Errorf("failed to read config file: %w", err)
	}

	cfg.Window.Title = ""
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), false, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}
	titleSet = cfg.Window.Title != ""
	if !titleSet {
		cfg.Window.Title = Default().Window.Title
	}

	if err := cfg.Validate(); err != nil {
		return cfg, titleSet, fmt.Errorf("invalid config file %s: %w", path, err)
	}
	return cfg, titleSet, nil
}

// Validate checks value ranges.
func (c Config) Validate() error {
	var errs []error
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %dx%d", c.Window.Width, c.Window.Height))
	}
	if c.Camera.Sensitivity <= 0 {
		errs = append(errs, fmt.Errorf("camera sensitivity must be positive, got %v", c.Camera.Sensitivity))
	}
	if c.Camera.MoveSpeed <= 0 {
		errs = append(errs, fmt.Errorf("camera move speed must be positive, got %v", c.Camera.MoveSpeed))
	}
	if c.Camera.FOV <= 0 || c.Camera.FOV >= 180 {
		errs = append(errs, fmt.Errorf("camera fov must be in (0,180), got %v", c.Camera.FOV))
	}
	if _, err := camera.ParseWrapMode(c.Camera.YawWrap); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// CameraOptions converts the camera section. Call Validate first.
func (c Config) CameraOptions() camera.Options {
	wrap, _ := camera.ParseWrapMode(c.Camera.YawWrap)
	return camera.Options{
		Sensitivity: c.Camera.Sensitivity,
		MoveSpeed:   c.Camera.MoveSpeed,
		FOV:         c.Camera.FOV,
		Wrap:        wrap,
	}
}

// Parse loads the file named by -config and applies the remaining flags on
// top of it. title is the window title used when neither file nor flag sets
// one.
func Parse(fs *flag.FlagSet, args []string, title string) (Config, error) {
	path := fs.String("config", "", "YAML config file")
	width := fs.Int("width", 0, "window width (overrides config)")
	height := fs.Int("height", 0, "window height (overrides config)")
	level := fs.String("log-level", "", "log level: debug, info, warn, error")
	wrap := fs.String("yaw-wrap", "", "yaw wrap mode: step or modulo")

	if err := fs.Parse(args); err != nil {
		return Config{}, err
	}

	cfg, titleSet, err := load(*path)
	if err != nil {
		return cfg, err
	}
	if !titleSet && title != "" {
		cfg.Window.Title = title
	}

	if *width > 0 {
		cfg.Window.Width = *width
	}
	if *height > 0 {
		cfg.Window.Height = *height
	}
	if *level != "" {
		cfg.Log.Level = *level
	}
	if *wrap != "" {
		cfg.Camera.YawWrap = *wrap
	}

	return cfg, cfg.Validate()
}
