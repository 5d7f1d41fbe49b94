package config

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Canvas CanvasConfig `mapstructure:"canvas"`
	Labels LabelsConfig `mapstructure:"labels"`
	Window WindowConfig `mapstructure:"window"`
	Log    LogConfig    `mapstructure:"log"`
}

// CanvasConfig holds raster and pen settings.
type CanvasConfig struct {
	Width       int     `mapstructure:"width"`
	Height      int     `mapstructure:"height"`
	LineWidth   float64 `mapstructure:"line_width"`
	StrokeColor string  `mapstructure:"stroke_color"`
	EraserSize  int     `mapstructure:"eraser_size"`
}

// LabelsConfig holds where new text labels appear and what they say.
type LabelsConfig struct {
	DefaultText string `mapstructure:"default_text"`
	DefaultX    int    `mapstructure:"default_x"`
	DefaultY    int    `mapstructure:"default_y"`
}

type WindowConfig struct {
	Title string `mapstructure:"title"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
}

// Load reads configuration from file and env. Env var overrides use prefix
// LOCALDRAWER_. An explicit path (or LOCALDRAWER_CONFIG) must exist; the
// default location is optional.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("canvas.width", 800)
	v.SetDefault("canvas.height", 600)
	v.SetDefault("canvas.line_width", 2.0)
	v.SetDefault("canvas.stroke_color", "#000000")
	v.SetDefault("canvas.eraser_size", 20)
	v.SetDefault("labels.default_text", "Your text here")
	v.SetDefault("labels.default_x", 100)
	v.SetDefault("labels.default_y", 100)
	v.SetDefault("window.title", "Local Drawer")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")

	if path == "" {
		path = os.Getenv("LOCALDRAWER_CONFIG")
	}
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.AddConfigPath(filepath.Join(os.Getenv("HOME"), ".config", "localdrawer"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("LOCALDRAWER")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if path != "" || !errors.As(err, &notFound) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}

// Validate rejects settings the canvas cannot work with.
func (c Config) Validate() error {
	if c.Canvas.Width <= 0 || c.Canvas.Height <= 0 {
		return fmt.Errorf("canvas size %dx%d must be positive", c.Canvas.Width, c.Canvas.Height)
	}
	if c.Canvas.LineWidth <= 0 {
		return fmt.Errorf("canvas line width %v must be positive", c.Canvas.LineWidth)
	}
	if c.Canvas.EraserSize <= 0 {
		return fmt.Errorf("eraser size %d must be positive", c.Canvas.EraserSize)
	}
	if !validHexColor(c.Canvas.StrokeColor) {
		return fmt.Errorf("stroke color %q is not a hex color", c.Canvas.StrokeColor)
	}
	var level slog.Level
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return fmt.Errorf("log level: %w", err)
	}
	return nil
}

func validHexColor(s string) bool {
	s = strings.TrimPrefix(s, "#")
	switch len(s) {
	case 3, 4, 6, 8:
	default:
		return false
	}
	for _, r := range s {
		isDigit := r >= '0' && r <= '9'
		isLower := r >= 'a' && r <= 'f'
		isUpper := r >= 'A' && r <= 'F'
		if !isDigit && !isLower && !isUpper {
			return false
		}
	}
	return true
}
