// Package metrics exposes prometheus collectors describing grid dispatches.
// A nil *Collector is valid and records nothing.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/uyouii/climate-indices/config"
)

const kernelLabel = "kernel"

type Collector struct {
	cells          *prometheus.CounterVec
	eventsNotFound *prometheus.CounterVec
	errors         *prometheus.CounterVec
	duration       *prometheus.HistogramVec
}

// NewCollector creates the collectors and registers them on reg.
func NewCollector(reg prometheus.Registerer, namespace string) (*Collector, error) {
	c := &Collector{
		cells: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "cells_total",
			Help:      "Number of grid cells reduced, by kernel.",
		}, []string{kernelLabel}),
		eventsNotFound: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "events_not_found_total",
			Help:      "Cells for which an event-reporting kernel found no event.",
		}, []string{kernelLabel}),
		errors: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dispatch_errors_total",
			Help:      "Failed grid dispatches, by kernel.",
		}, []string{kernelLabel}),
		duration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "dispatch_duration_seconds",
			Help:      "Wall time of a whole grid dispatch, by kernel.",
			Buckets:   prometheus.ExponentialBuckets(0.001, 4, 10),
		}, []string{kernelLabel}),
	}

	for _, collector := range []prometheus.Collector{c.cells, c.eventsNotFound, c.errors, c.duration} {
		if err := reg.Register(collector); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// NewCollectorFromConfig returns a nil collector when metrics are disabled,
// otherwise a collector registered on reg under cfg.Namespace.
func NewCollectorFromConfig(reg prometheus.Registerer, cfg config.MetricsConfig) (*Collector, error) {
	if !cfg.Enabled {
		return nil, nil
	}
	namespace := cfg.Namespace
	if namespace == "" {
		namespace = config.DefaultMetricsNamespace
	}
	return NewCollector(reg, namespace)
}

func (c *Collector) AddCells(kernel string, n int) {
	if c == nil {
		return
	}
	c.cells.WithLabelValues(kernel).Add(float64(n))
}

func (c *Collector) AddEventsNotFound(kernel string, n int) {
	if c == nil || n == 0 {
		return
	}
	c.eventsNotFound.WithLabelValues(kernel).Add(float64(n))
}

func (c *Collector) IncErrors(kernel string) {
	if c == nil {
		return
	}
	c.errors.WithLabelValues(kernel).Inc()
}

func (c *Collector) ObserveDuration(kernel string, d time.Duration) {
	if c == nil {
		return
	}
	c.duration.WithLabelValues(kernel).Observe(d.Seconds())
}
