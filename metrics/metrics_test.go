package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/climate-indices/config"
)

const testKernel = "max_run"

func TestCollector(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollector(reg, "test")
	require.NoError(t, err)

	c.AddCells(testKernel, 12)
	c.AddCells(testKernel, 3)
	c.AddEventsNotFound(testKernel, 2)
	c.AddEventsNotFound(testKernel, 0)
	c.IncErrors(testKernel)
	c.ObserveDuration(testKernel, 5*time.Millisecond)

	assert.Equal(t, 15.0, testutil.ToFloat64(c.cells.WithLabelValues(testKernel)))
	assert.Equal(t, 2.0, testutil.ToFloat64(c.eventsNotFound.WithLabelValues(testKernel)))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.errors.WithLabelValues(testKernel)))
	assert.Equal(t, 1, testutil.CollectAndCount(c.duration))
}

func TestCollectorDuplicateRegistration(t *testing.T) {
	reg := prometheus.NewRegistry()
	_, err := NewCollector(reg, "dup")
	require.NoError(t, err)

	_, err = NewCollector(reg, "dup")
	assert.Error(t, err)
}

func TestNilCollector(t *testing.T) {
	var c *Collector
	assert.NotPanics(t, func() {
		c.AddCells(testKernel, 1)
		c.AddEventsNotFound(testKernel, 1)
		c.IncErrors(testKernel)
		c.ObserveDuration(testKernel, time.Second)
	})
}

func TestNewCollectorFromConfig(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollectorFromConfig(reg, config.MetricsConfig{Enabled: true, Namespace: "cfg"})
	require.NoError(t, err)
	require.NotNil(t, c)

	c.AddCells(testKernel, 4)
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, "cfg_cells_total", families[0].GetName())
}

func TestNewCollectorFromConfigDefaultNamespace(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollectorFromConfig(reg, config.MetricsConfig{Enabled: true})
	require.NoError(t, err)

	c.IncErrors(testKernel)
	families, err := reg.Gather()
	require.NoError(t, err)
	require.Len(t, families, 1)
	assert.Equal(t, config.DefaultMetricsNamespace+"_dispatch_errors_total", families[0].GetName())
}

func TestNewCollectorFromConfigDisabled(t *testing.T) {
	reg := prometheus.NewRegistry()
	c, err := NewCollectorFromConfig(reg, config.MetricsConfig{Enabled: false, Namespace: "off"})
	require.NoError(t, err)
	assert.Nil(t, c)

	families, err := reg.Gather()
	require.NoError(t, err)
	assert.Empty(t, families)
}
