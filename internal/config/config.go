// Package config loads axwm's configuration once at process start
// (spec.md §6: config is read-only at launch, no hot-reload) via
// github.com/spf13/viper, mirroring the teacher's $AIOS_*-prefixed
// environment binding in cmd/aios-desktop/main.go.
package config

import (
	"fmt"
	"os"

	"github.com/spf13/viper"
)

const envPrefix = "AXWM"

// Config is the fully-resolved configuration axwmd reads once at startup.
type Config struct {
	SocketPath        string `mapstructure:"socket_path"`
	HTTPAddr          string `mapstructure:"http_addr"`
	LogLevel          string `mapstructure:"log_level"`
	WorkspacePad      int    `mapstructure:"workspace_padding"`
	ContainerPad      int    `mapstructure:"container_padding"`
	MouseFollowsFocus bool   `mapstructure:"mouse_follows_focus"`

	// Ignore lists application identifiers (bundle id or name) that axwmd
	// never manages — comparable to komorebi's ignore-rules, but scoped to
	// whole applications rather than per-window conditions.
	Ignore []string `mapstructure:"ignore"`

	// Displays maps a monitor serial to its preferred workspace count and
	// starting layout. It is loaded here; nothing else in axwmd reads it.
	Displays []DisplayPreference `mapstructure:"displays"`

	Rules []Rule `mapstructure:"rules"`
}

// DisplayPreference pins a physical monitor (identified by its stable
// serial, not its OS-assigned index, which can change across reboots) to
// a starting workspace count and default layout name.
type DisplayPreference struct {
	Serial         string `mapstructure:"serial"`
	WorkspaceCount int    `mapstructure:"workspace_count"`
	DefaultLayout  string `mapstructure:"default_layout"`
}

func defaults() Config {
	return Config{
		SocketPath:   defaultSocketPath(),
		HTTPAddr:     ":7070",
		LogLevel:     "info",
		WorkspacePad: 10,
		ContainerPad: 5,
	}
}

func defaultSocketPath() string {
	dir := os.Getenv(envPrefix + "_CONFIG_HOME")
	if dir == "" {
		home, err := os.UserHomeDir()
		if err == nil {
			dir = home + "/.config/axwm"
		} else {
			dir = "/tmp/axwm"
		}
	}
	return dir + "/axwm.sock"
}

// Load resolves Config from (in ascending priority) built-in defaults, a
// config file discovered on the search path, and AXWM_-prefixed
// environment variables.
func Load() (Config, error) {
	v := viper.New()
	cfg := defaults()

	v.SetConfigName("axwm")
	v.SetConfigType("yaml")
	if dir := os.Getenv(envPrefix + "_CONFIG_HOME"); dir != "" {
		v.AddConfigPath(dir)
	}
	if home, err := os.UserHomeDir(); err == nil {
		v.AddConfigPath(home + "/.config/axwm")
	}
	v.AddConfigPath(".")

	v.SetEnvPrefix(envPrefix)
	v.AutomaticEnv()

	v.SetDefault("socket_path", cfg.SocketPath)
	v.SetDefault("http_addr", cfg.HTTPAddr)
	v.SetDefault("log_level", cfg.LogLevel)
	v.SetDefault("workspace_padding", cfg.WorkspacePad)
	v.SetDefault("container_padding", cfg.ContainerPad)
	v.SetDefault("mouse_follows_focus", cfg.MouseFollowsFocus)

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return Config{}, fmt.Errorf("config: reading config file: %w", err)
		}
	}

	if err := v.Unmarshal(&cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshaling: %w", err)
	}
	return cfg, nil
}
