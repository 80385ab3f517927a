// Package config holds the engine configuration shared by the grid dispatcher,
// the logger and the metrics collector.
package config

import (
	"runtime"

	"github.com/uyouii/climate-indices/common"
)

const (
	DefaultWorkers          = 0 // 0 means runtime.NumCPU()
	DefaultRowsPerTask      = 0 // 0 means one contiguous block of rows per worker
	DefaultLogLevel         = "info"
	DefaultMetricsEnabled   = true
	DefaultMetricsNamespace = "climidx"
)

type Config struct {
	Workers     int           `mapstructure:"workers"`
	RowsPerTask int           `mapstructure:"rows_per_task"`
	Logging     LoggingConfig `mapstructure:"logging"`
	Metrics     MetricsConfig `mapstructure:"metrics"`
}

type LoggingConfig struct {
	Level       string `mapstructure:"level"`
	Development bool   `mapstructure:"development"`
}

type MetricsConfig struct {
	Enabled   bool   `mapstructure:"enabled"`
	Namespace string `mapstructure:"namespace"`
}

func Default() *Config {
	return &Config{
		Workers:     DefaultWorkers,
		RowsPerTask: DefaultRowsPerTask,
		Logging: LoggingConfig{
			Level: DefaultLogLevel,
		},
		Metrics: MetricsConfig{
			Enabled:   DefaultMetricsEnabled,
			Namespace: DefaultMetricsNamespace,
		},
	}
}

func (c *Config) Validate() error {
	if c.Workers < 0 {
		return common.ErrorInvalidValue.WithMessage("workers must not be negative").
			WithValue("workers", c.Workers)
	}
	if c.RowsPerTask < 0 {
		return common.ErrorInvalidValue.WithMessage("rows_per_task must not be negative").
			WithValue("rows_per_task", c.RowsPerTask)
	}
	switch c.Logging.Level {
	case "debug", "info", "warn", "error", "dpanic", "panic", "fatal":
	default:
		return common.ErrorInvalidValue.WithMessage("unknown log level").
			WithValue("level", c.Logging.Level)
	}
	return nil
}

// EffectiveWorkers resolves the configured worker count.
func (c *Config) EffectiveWorkers() int {
	if c == nil || c.Workers == 0 {
		return runtime.NumCPU()
	}
	return c.Workers
}
