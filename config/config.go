package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/BurntSushi/toml"
)

// Config represents the assembler's tunable limits and output behavior.
type Config struct {
	// Limits settings
	Limits struct {
		MaxLineLength  int `toml:"max_line_length"`
		MaxLabelLength int `toml:"max_label_length"`
		ImageCapacity  int `toml:"image_capacity"`
		ICInit         int `toml:"ic_init"`
	} `toml:"limits"`

	// Macro settings
	Macro struct {
		LineCap     int `toml:"line_cap"`
		BucketCount int `toml:"bucket_count"`
	} `toml:"macro"`

	// Output settings
	Output struct {
		Dir              string `toml:"dir"`
		KeepExpanded     bool   `toml:"keep_expanded"`
		WarnUnusedExtern bool   `toml:"warn_unused_extern"`
	} `toml:"output"`
}

// DefaultConfig returns a configuration with the values required by the
// specification's constants (IC_INIT=100, MAX_LINE_LENGTH=80, label
// length <= 31, image capacity >= 1200).
func DefaultConfig() *Config {
	cfg := &Config{}

	cfg.Limits.MaxLineLength = 80
	cfg.Limits.MaxLabelLength = 31
	cfg.Limits.ImageCapacity = 1200
	cfg.Limits.ICInit = 100

	cfg.Macro.LineCap = 82
	cfg.Macro.BucketCount = 100

	cfg.Output.Dir = ""
	cfg.Output.KeepExpanded = true
	cfg.Output.WarnUnusedExtern = true

	return cfg
}

// GetConfigPath returns the platform-specific config file path.
func GetConfigPath() string {
	var configDir string

	switch runtime.GOOS {
	case "windows":
		// Windows: %APPDATA%\asm24\config.toml
		configDir = os.Getenv("APPDATA")
		if configDir == "" {
			configDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		configDir = filepath.Join(configDir, "asm24")

	case "darwin", "linux":
		// macOS/Linux: ~/.config/asm24/config.toml
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "config.toml"
		}
		configDir = filepath.Join(homeDir, ".config", "asm24")

	default:
		return "config.toml"
	}

	if err := os.MkdirAll(configDir, 0750); err != nil {
		return "config.toml"
	}

	return filepath.Join(configDir, "config.toml")
}

// GetLogPath returns the platform-specific log directory path.
func GetLogPath() string {
	var logDir string

	switch runtime.GOOS {
	case "windows":
		logDir = os.Getenv("APPDATA")
		if logDir == "" {
			logDir = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
		logDir = filepath.Join(logDir, "asm24", "logs")

	case "darwin", "linux":
		homeDir, err := os.UserHomeDir()
		if err != nil {
			return "logs"
		}
		logDir = filepath.Join(homeDir, ".local", "share", "asm24", "logs")

	default:
		return "logs"
	}

	if err := os.MkdirAll(logDir, 0750); err != nil {
		return "logs"
	}

	return logDir
}

// Load loads configuration from the default config file.
func Load() (*Config, error) {
	return LoadFrom(GetConfigPath())
}

// LoadFrom loads configuration from the specified file. A missing file is
// not an error: the defaults are returned unchanged.
func LoadFrom(path string) (*Config, error) {
	cfg := DefaultConfig()

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return cfg, nil
	}

	if _, err := toml.DecodeFile(path, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}

	return cfg, nil
}

// Save saves configuration to the default config file.
func (c *Config) Save() error {
	return c.SaveTo(GetConfigPath())
}

// SaveTo saves configuration to the specified file.
func (c *Config) SaveTo(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0750); err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	f, err := os.Create(path) // #nosec G304 -- user config file path
	if err != nil {
		return fmt.Errorf("failed to create config file: %w", err)
	}
	defer func() {
		if closeErr := f.Close(); closeErr != nil && err == nil {
			err = fmt.Errorf("failed to close config file: %w", closeErr)
		}
	}()

	encoder := toml.NewEncoder(f)
	if err := encoder.Encode(c); err != nil {
		return fmt.Errorf("failed to encode config: %w", err)
	}

	return nil
}
