package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

const (
	KeyStore    = "store"
	KeyPrefix   = "prefix"
	KeyLogLevel = "log_level"
	KeyPort     = "port"

	// EnvPrefix is prepended to every environment variable, e.g. SCOREKEEPER_STORE
	EnvPrefix = "SCOREKEEPER"
)

// Config holds the scorekeeper configuration.
type Config struct {
	// Store is the dsn passed to kv.Open
	Store string `mapstructure:"store"`
	// Prefix namespaces every key the tracker writes
	Prefix   string `mapstructure:"prefix"`
	LogLevel string `mapstructure:"log_level"`
	Port     int    `mapstructure:"port"`
}

// New returns a viper instance with defaults set and environment lookup enabled.
func New() *viper.Viper {
	v := viper.New()
	v.SetDefault(KeyStore, "memory://")
	v.SetDefault(KeyPrefix, "")
	v.SetDefault(KeyLogLevel, "info")
	v.SetDefault(KeyPort, 9090)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))
	v.AutomaticEnv()
	return v
}

// Load reads file into v when it is set, otherwise looks for an optional
// scorekeeper.yaml in the working directory, and decodes the result.
func Load(v *viper.Viper, file string) (*Config, error) {
	if file != "" {
		v.SetConfigFile(file)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("failed to read config file %s: %w", file, err)
		}
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("scorekeeper")
		if err := v.ReadInConfig(); err != nil {
			var notFound viper.ConfigFileNotFoundError
			if !errors.As(err, &notFound) {
				return nil, fmt.Errorf("failed to read config: %w", err)
			}
		}
	}

	cfg := &Config{}
	if err := v.Unmarshal(cfg); err != nil {
		return nil, fmt.Errorf("unable to decode config: %w", err)
	}
	if cfg.Store == "" {
		return nil, errors.New("store must not be empty")
	}
	return cfg, nil
}
