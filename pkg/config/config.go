// Package config loads runtime configuration with defaults -> YAML file
// -> environment -> CLI flag precedence, via viper.
package config

import (
	"fmt"
	"strings"

	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// Config is the top-level runtime configuration.
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Render  RenderConfig  `mapstructure:"render"`
	Log     LogConfig     `mapstructure:"log"`
	Debug   DebugConfig   `mapstructure:"debug"`
}

type ServerConfig struct {
	Address  string `mapstructure:"address"`
	Username string `mapstructure:"username"`
}

type RenderConfig struct {
	ViewDistance int     `mapstructure:"view_distance"`
	FovDegrees   float64 `mapstructure:"fov_degrees"`
}

type LogConfig struct {
	Level string `mapstructure:"level"`
	File  string `mapstructure:"file"`
}

type DebugConfig struct {
	BridgeEnabled bool   `mapstructure:"bridge_enabled"`
	BridgeAddr    string `mapstructure:"bridge_addr"`
}

// Load reads configuration from configPath (if non-empty and present),
// then GYRA_-prefixed environment variables, then flags, in that
// increasing order of precedence.
func Load(configPath string, flags *pflag.FlagSet) (*Config, error) {
	v := viper.New()
	setDefaults(v)

	if configPath != "" {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
				return nil, fmt.Errorf("config: read %s: %w", configPath, err)
			}
		}
	}

	v.SetEnvPrefix("gyra")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if flags != nil {
		if err := v.BindPFlags(flags); err != nil {
			return nil, fmt.Errorf("config: bind flags: %w", err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("config: unmarshal: %w", err)
	}
	return &cfg, nil
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.address", "")
	v.SetDefault("server.username", "")
	v.SetDefault("render.view_distance", 2)
	v.SetDefault("render.fov_degrees", 90.0)
	v.SetDefault("log.level", "info")
	v.SetDefault("log.file", "gyra.log")
	v.SetDefault("debug.bridge_enabled", false)
	v.SetDefault("debug.bridge_addr", "127.0.0.1:9292")
}
