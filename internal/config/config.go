package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// Config holds application configuration.
type Config struct {
	Storage StorageConfig
	History HistoryConfig
	UI      UIConfig
	Log     LogConfig
}

// StorageConfig selects where the list is kept.
type StorageConfig struct {
	Backend string // "file" | "sqlite"
	Dir     string
}

// HistoryConfig bounds the undo log.
type HistoryConfig struct {
	MaxSnapshots int `mapstructure:"max_snapshots"`
}

// UIConfig holds presentation settings.
type UIConfig struct {
	Theme string
}

// LogConfig holds logging settings. An empty File means stderr for one-shot
// commands and no logging for the interactive list.
type LogConfig struct {
	Level string
	File  string
}

func homeDir() string {
	if h, err := os.UserHomeDir(); err == nil {
		return h
	}
	return os.Getenv("HOME")
}

func configDir() string {
	if x := os.Getenv("XDG_CONFIG_HOME"); x != "" {
		return filepath.Join(x, "todo")
	}
	return filepath.Join(homeDir(), ".config", "todo")
}

// Load reads configuration from file and env. Env var overrides use prefix TODO_.
func Load() (Config, error) {
	v := viper.New()

	// default values
	v.SetDefault("storage.backend", "file")
	v.SetDefault("storage.dir", filepath.Join(homeDir(), ".local", "share", "todo"))
	v.SetDefault("history.max_snapshots", 100)
	v.SetDefault("ui.theme", "classic")
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "")

	v.SetConfigType("toml")

	cfgPath := os.Getenv("TODO_CONFIG")
	if cfgPath != "" {
		v.SetConfigFile(cfgPath)
	} else {
		v.AddConfigPath(configDir())
		v.SetConfigName("config")
	}

	v.SetEnvPrefix("TODO")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	// read config file if present; one that exists but does not parse is reported
	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound && fileExists(v.ConfigFileUsed()) {
			return Config{}, fmt.Errorf("read config: %w", err)
		}
	}

	var c Config
	if err := v.Unmarshal(&c); err != nil {
		return Config{}, fmt.Errorf("unmarshal config: %w", err)
	}
	c.Storage.Backend = strings.ToLower(strings.TrimSpace(c.Storage.Backend))
	return c, nil
}

func fileExists(p string) bool {
	if p == "" {
		return false
	}
	_, err := os.Stat(p)
	return err == nil
}
