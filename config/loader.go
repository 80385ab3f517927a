package config

import (
	"errors"
	"os"
	"strings"

	"github.com/ansel1/merry"
	"github.com/spf13/viper"
)

const (
	configName      = ".climidx"
	configType      = "yaml"
	envPrefix       = "CLIMIDX"
	envKeySeparator = "_"
)

// LoadConfig reads configPath, or .climidx.yaml from CWD and $HOME when
// configPath is empty. A missing file is not an error.
func LoadConfig(configPath string) (*Config, error) {
	v := viper.New()

	applyDefaults(v)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", envKeySeparator))
	v.AutomaticEnv()

	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
		if home, err := os.UserHomeDir(); err == nil {
			v.AddConfigPath(home)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, merry.Prepend(err, "read config").WithValue("path", configPath)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, merry.Prepend(err, "unmarshal config")
	}

	if err := cfg.Validate(); err != nil {
		return nil, merry.Prepend(err, "validate config")
	}
	return &cfg, nil
}

func applyDefaults(v *viper.Viper) {
	v.SetDefault("workers", DefaultWorkers)
	v.SetDefault("rows_per_task", DefaultRowsPerTask)
	v.SetDefault("logging.level", DefaultLogLevel)
	v.SetDefault("logging.development", false)
	v.SetDefault("metrics.enabled", DefaultMetricsEnabled)
	v.SetDefault("metrics.namespace", DefaultMetricsNamespace)
}
