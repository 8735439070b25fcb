package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	UI      UIConfig            `mapstructure:"ui"`
	Content ContentConfig       `mapstructure:"content"`
	Log     LogConfig           `mapstructure:"log"`
	Keys    map[string][]string `mapstructure:"keys"`
}

// UIConfig holds terminal settings.
type UIConfig struct {
	AltScreen     bool   `mapstructure:"alt_screen"`
	Mouse         bool   `mapstructure:"mouse"`
	MarkdownStyle string `mapstructure:"markdown_style"`
}

// ContentConfig selects where decks come from. An empty Dir uses the decks
// built into the binary; Watch only applies to Dir.
type ContentConfig struct {
	Dir   string `mapstructure:"dir"`
	Watch bool   `mapstructure:"watch"`
}

// LogConfig holds log file settings. No file means no logging.
type LogConfig struct {
	File  string `mapstructure:"file"`
	Level string `mapstructure:"level"`
}

// DefaultPath is $HOME/.config/plslides/config.toml.
func DefaultPath() string {
	return filepath.Join(os.Getenv("HOME"), ".config", "plslides", "config.toml")
}

// Load reads the TOML file at path over the defaults. A missing file is not an
// error; an unreadable or malformed one is.
func Load(path string) (Config, error) {
	v := viper.New()

	v.SetDefault("ui.alt_screen", true)
	v.SetDefault("ui.mouse", true)
	v.SetDefault("ui.markdown_style", "auto")
	v.SetDefault("content.dir", "")
	v.SetDefault("content.watch", false)
	v.SetDefault("log.file", "")
	v.SetDefault("log.level", "info")

	v.SetConfigType("toml")
	v.SetConfigFile(path)

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) && !errors.Is(err, os.ErrNotExist) {
			return Config{}, fmt.Errorf("read config %s: %w", path, err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	return c, nil
}
