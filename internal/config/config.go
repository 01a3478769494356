// Package config loads colorsay settings from flags, environment variables
// and .env files.
//
// Priority (highest to lowest): flags > environment > .env > defaults.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"

	"colorsay/internal/chatcolor"
	"colorsay/internal/logger"
)

// EnvPrefix prefixes every environment variable colorsay reads.
const EnvPrefix = "COLORSAY"

// Keys understood by Load.
const (
	KeyName     = "name"
	KeyPalette  = "palette"
	KeyUser     = "user"
	KeyLogLevel = "log-level"
	KeyLogFile  = "log-file"
	KeyTestMode = "test-mode"
	KeyNoColor  = "no-color"
)

// Config holds the resolved settings.
type Config struct {
	// Name is the plugin name shown in chat tags.
	Name string
	// PaletteFile is an optional YAML palette replacing the default one.
	PaletteFile string
	// User is the display name of the local console session.
	User     string
	LogLevel string
	LogFile  string
	TestMode bool
	NoColor  bool
}

// SetDefaults registers the default values on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault(KeyName, "ColorSay")
	v.SetDefault(KeyPalette, "")
	v.SetDefault(KeyUser, "console")
	v.SetDefault(KeyLogLevel, "")
	v.SetDefault(KeyLogFile, "")
	v.SetDefault(KeyTestMode, false)
	v.SetDefault(KeyNoColor, false)
}

// LoadDotEnv loads variables from the given .env files into the process
// environment without overriding variables that are already set. Missing
// files are skipped.
func LoadDotEnv(paths ...string) error {
	for _, path := range paths {
		if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
			continue
		}
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load %s: %w", path, err)
		}
		logger.Debug("Loaded env file", "path", path)
	}
	return nil
}

// Load resolves the configuration from v, which should already have its
// flags bound.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cfg := &Config{
		Name:        v.GetString(KeyName),
		PaletteFile: v.GetString(KeyPalette),
		User:        v.GetString(KeyUser),
		LogLevel:    v.GetString(KeyLogLevel),
		LogFile:     v.GetString(KeyLogFile),
		TestMode:    v.GetBool(KeyTestMode),
		NoColor:     v.GetBool(KeyNoColor),
	}

	if strings.TrimSpace(cfg.Name) == "" {
		return nil, fmt.Errorf("%s must not be empty", KeyName)
	}
	return cfg, nil
}

// Palette returns the configured palette. Test mode seeds its random source
// so color tags are reproducible.
func (c *Config) Palette() (*chatcolor.Table, error) {
	var options []chatcolor.Option
	if c.TestMode {
		options = append(options, chatcolor.WithSeed(1))
	}

	if c.PaletteFile == "" {
		return chatcolor.Default(options...), nil
	}
	return chatcolor.LoadPalette(c.PaletteFile, options...)
}
