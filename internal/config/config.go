package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/viper"
)

// Package config loads the presentation settings for the demo: the two
// swatch colors and the terminal program options. Values come from
// defaults, an optional TOML file, and COLORBOX_ env overrides.

// Config holds application configuration.
type Config struct {
	UI UIConfig `mapstructure:"ui"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	BlueColor    string `mapstructure:"blue_color"`
	RedColor     string `mapstructure:"red_color"`
	AltScreen    bool   `mapstructure:"alt_screen"`
	MouseEnabled bool   `mapstructure:"mouse_enabled"`
}

// Load reads configuration from file and env. Env var overrides use prefix COLORBOX_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("ui.blue_color", "#1E66F5")
	v.SetDefault("ui.red_color", "#D20F39")
	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse_enabled", true)

	v.SetConfigType("toml")

	cfgPath := os.Getenv("COLORBOX_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else if dir, err := os.UserConfigDir(); err == nil {
		v.AddConfigPath(filepath.Join(dir, "colorbox"))
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("COLORBOX")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present
	_ = v.ReadInConfig()

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	if err := c.validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

func (c Config) validate() error {
	for name, value := range map[string]string{
		"ui.blue_color": c.UI.BlueColor,
		"ui.red_color":  c.UI.RedColor,
	} {
		if _, err := colorful.Hex(value); err != nil {
			return fmt.Errorf("invalid hex color for %s (%q): %w", name, value, err)
		}
	}
	return nil
}
