// Package grid fans the per-cell kernels out over every (i, j) cell of a
// (T, I, J) grid and collects the results into 2D output grids.
package grid

import (
	"context"
	"sync/atomic"
	"time"

	"github.com/ansel1/merry"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/config"
	"github.com/uyouii/climate-indices/metrics"
	"github.com/uyouii/climate-indices/model"
	"github.com/uyouii/climate-indices/utils"
)

// Result holds the output of one dispatch. Events is nil for kernels that
// do not locate an event.
type Result struct {
	Values *model.OutputGrid
	Events *model.EventGrid
}

type Option func(*Dispatcher)

func WithMetrics(c *metrics.Collector) Option {
	return func(d *Dispatcher) {
		d.metrics = c
	}
}

func WithWorkers(n int) Option {
	return func(d *Dispatcher) {
		d.workers = n
	}
}

// Dispatcher is safe for concurrent use, it holds no per-call state.
type Dispatcher struct {
	workers     int
	rowsPerTask int
	metrics     *metrics.Collector
}

func NewDispatcher(cfg *config.Config, opts ...Option) *Dispatcher {
	if cfg == nil {
		cfg = config.Default()
	}
	d := &Dispatcher{
		workers:     cfg.EffectiveWorkers(),
		rowsPerTask: cfg.RowsPerTask,
	}
	for _, opt := range opts {
		opt(d)
	}
	if d.workers < 1 {
		d.workers = 1
	}
	// anything below 1 means one block of rows per worker
	if d.rowsPerTask < 0 {
		d.rowsPerTask = 0
	}
	return d
}

// NewInstrumentedDispatcher is NewDispatcher with a collector built from
// cfg.Metrics and registered on reg. Disabled metrics record nothing.
func NewInstrumentedDispatcher(cfg *config.Config, reg prometheus.Registerer, opts ...Option) (*Dispatcher, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	collector, err := metrics.NewCollectorFromConfig(reg, cfg.Metrics)
	if err != nil {
		return nil, err
	}
	return NewDispatcher(cfg, append([]Option{WithMetrics(collector)}, opts...)...), nil
}

func (d *Dispatcher) Workers() int {
	return d.workers
}

type cellKernel func(series model.Series) (model.Result, error)

type dispatchJob struct {
	kernel     string
	grid       *model.Grid
	validate   func() error
	withEvents bool
	reduce     cellKernel
}

func (d *Dispatcher) dispatch(ctx context.Context, dj dispatchJob) (*Result, error) {
	logger := utils.GetLogger(ctx).With(zap.String("kernel", dj.kernel))

	// nothing is computed unless the grid and the parameters are valid
	if err := dj.grid.Validate(); err != nil {
		logger.Error("invalid grid", zap.Error(err))
		d.metrics.IncErrors(dj.kernel)
		return nil, err
	}
	if err := dj.validate(); err != nil {
		logger.Error("invalid parameters", zap.Error(err))
		d.metrics.IncErrors(dj.kernel)
		return nil, err
	}

	begin := time.Now()
	g := dj.grid
	res := &Result{Values: model.NewOutputGrid(g.SizeI, g.SizeJ)}
	if dj.withEvents {
		res.Events = model.NewEventGrid(g.SizeI, g.SizeJ)
	}

	rows := d.rowsPerTask
	if rows < 1 {
		rows = utils.CeilDiv(g.SizeI, d.workers)
	}

	var notFound atomic.Int64
	eg, egCtx := errgroup.WithContext(ctx)
	eg.SetLimit(d.workers)
	for lo := 0; lo < g.SizeI; lo += rows {
		lo, hi := lo, utils.IntMin(lo+rows, g.SizeI)
		eg.Go(func() error {
			missed, err := reduceRows(egCtx, dj, lo, hi, res)
			notFound.Add(int64(missed))
			return err
		})
	}
	if err := eg.Wait(); err != nil {
		logger.Error("grid dispatch failed", zap.Error(err))
		d.metrics.IncErrors(dj.kernel)
		return nil, err
	}

	elapsed := time.Since(begin)
	d.metrics.AddCells(dj.kernel, g.CellCount())
	d.metrics.AddEventsNotFound(dj.kernel, int(notFound.Load()))
	d.metrics.ObserveDuration(dj.kernel, elapsed)

	logger.Debug("grid dispatched",
		zap.String("shape", g.ShapeString()),
		zap.Int("workers", d.workers),
		zap.Int("rows_per_task", rows),
		zap.Int64("events_not_found", notFound.Load()),
		zap.Duration("elapsed", elapsed))
	return res, nil
}

// reduceRows fills rows [lo, hi) of res. Workers own disjoint row ranges so
// no locking is needed.
func reduceRows(ctx context.Context, dj dispatchJob, lo, hi int, res *Result) (missed int, err error) {
	defer func() {
		if r := recover(); r != nil {
			utils.GetLogger(ctx).Error("reduceRows recover panic error!", zap.Any("err", r),
				zap.String("kernel", dj.kernel), zap.Int("row_lo", lo), zap.Int("row_hi", hi),
				zap.String("panic info", utils.GetPanicInfo()))
			err = common.ErrorKernelPanic.WithValue("kernel", dj.kernel).WithValue("panic", r)
		}
	}()

	g := dj.grid
	for i := lo; i < hi; i++ {
		if err := ctx.Err(); err != nil {
			return missed, err
		}
		for j := 0; j < g.SizeJ; j++ {
			cell, err := dj.reduce(g.Series(i, j))
			if err != nil {
				return missed, merry.Wrap(err).WithValue("i", i).WithValue("j", j)
			}

			k := i*g.SizeJ + j
			res.Values.Values[k] = cell.Value
			if res.Events != nil {
				res.Events.Set(k, cell.Event)
				if !cell.Event.Found() {
					missed++
				}
			}
		}
	}
	return missed, nil
}
