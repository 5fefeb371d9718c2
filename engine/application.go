package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"github.com/spaghettifunk/pixello/engine/core"
	"github.com/spaghettifunk/pixello/engine/math"
	"gopkg.in/yaml.v3"
)

type ApplicationConfig struct {
	// The application name used in windowing.
	Name string `toml:"name" yaml:"name"`
	// Window starting position.
	StartPosX int32 `toml:"window_x" yaml:"window_x"`
	StartPosY int32 `toml:"window_y" yaml:"window_y"`
	// Window size in physical pixels.
	StartWidth  int32 `toml:"window_width" yaml:"window_width"`
	StartHeight int32 `toml:"window_height" yaml:"window_height"`
	// Physical pixels per logical pixel. Values below 1 are clamped to 1.
	PixelSize int32 `toml:"pixel_size" yaml:"pixel_size"`
	// Frames per second the loop paces itself to. Must be positive.
	TargetFPS float64 `toml:"target_fps" yaml:"target_fps"`
	// Optional default font, opened during initialization.
	FontPath string `toml:"font_path" yaml:"font_path"`
	FontSize int    `toml:"font_size" yaml:"font_size"`
	// Background colour packed as 0xRRGGBBAA.
	Background uint32 `toml:"background" yaml:"background"`
	// Key that stops the loop, "none" to disable.
	ExitKey string `toml:"exit_key" yaml:"exit_key"`
	// Start the audio subsystem.
	Audio bool `toml:"audio" yaml:"audio"`
	// Assets directory, watched for changes when WatchAssets is set.
	AssetsDir   string `toml:"assets_dir" yaml:"assets_dir"`
	WatchAssets bool   `toml:"watch_assets" yaml:"watch_assets"`
	LogLevel    string `toml:"log_level" yaml:"log_level"`
}

func DefaultApplicationConfig() *ApplicationConfig {
	return &ApplicationConfig{
		Name:        "Pixello",
		StartPosX:   100,
		StartPosY:   100,
		StartWidth:  800,
		StartHeight: 600,
		PixelSize:   1,
		TargetFPS:   60,
		FontSize:    12,
		Background:  math.Black.Uint32(),
		ExitKey:     core.KEY_ESCAPE.String(),
		LogLevel:    string(core.InfoLevel),
	}
}

// LoadApplicationConfig reads a TOML or YAML file on top of the defaults.
// The format is picked from the extension.
func LoadApplicationConfig(path string) (*ApplicationConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	config := DefaultApplicationConfig()
	switch strings.ToLower(filepath.Ext(path)) {
	case ".toml":
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	default:
		return nil, fmt.Errorf("unsupported config format %q", filepath.Ext(path))
	}
	return config, nil
}

// settings is the validated, immutable view of the config the engine runs with.
type settings struct {
	pixelSize      int32
	widthInPixels  int32
	heightInPixels int32
	targetFPS      float64
	background     math.Pixel
	exitKey        core.Keycap
	logLevel       core.LogLevel
}

func (c *ApplicationConfig) settings() (settings, error) {
	var s settings
	if c.TargetFPS <= 0 {
		return s, &core.InputError{Param: "target_fps", Value: c.TargetFPS, Reason: "must be positive"}
	}
	if c.StartWidth <= 0 || c.StartHeight <= 0 {
		return s, &core.InputError{Param: "window size", Value: fmt.Sprintf("%dx%d", c.StartWidth, c.StartHeight), Reason: "must be positive"}
	}
	if c.FontPath != "" && c.FontSize <= 0 {
		return s, &core.InputError{Param: "font_size", Value: c.FontSize, Reason: "must be positive"}
	}
	exitKey, err := core.ParseKeycap(c.ExitKey)
	if err != nil {
		return s, &core.InputError{Param: "exit_key", Value: c.ExitKey, Reason: err.Error()}
	}
	level, err := core.ParseLogLevel(c.LogLevel)
	if err != nil {
		return s, &core.InputError{Param: "log_level", Value: c.LogLevel, Reason: err.Error()}
	}

	s.pixelSize = math.Clamp(c.PixelSize, 1, min(c.StartWidth, c.StartHeight))
	s.widthInPixels = c.StartWidth / s.pixelSize
	s.heightInPixels = c.StartHeight / s.pixelSize
	s.targetFPS = c.TargetFPS
	s.background = math.NewPixel(c.Background)
	s.exitKey = exitKey
	s.logLevel = level
	return s, nil
}
