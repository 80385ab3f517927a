package grid

import (
	"context"

	"github.com/uyouii/climate-indices/model"
	"github.com/uyouii/climate-indices/percentile"
	"github.com/uyouii/climate-indices/runlen"
	"github.com/uyouii/climate-indices/stat"
	"github.com/uyouii/climate-indices/window"
)

const (
	KernelMaxRun              = "max_run"
	KernelCountEvents         = "count_events"
	KernelGrowingSeasonLength = "growing_season_length"
	KernelSpellDuration       = "spell_duration"
	KernelWindowExtreme       = "window_extreme"
	KernelPercentile          = "percentile"
	KernelSimpleStat          = "simple_stat"
)

// MaxRun computes the longest run per cell (CSU, CFD, CDD, CWD). Events
// bound the first longest run.
func (d *Dispatcher) MaxRun(ctx context.Context, g *model.Grid, p runlen.Params) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:     KernelMaxRun,
		grid:       g,
		validate:   p.Validate,
		withEvents: true,
		reduce: func(s model.Series) (model.Result, error) {
			return runlen.MaxRun(s, p)
		},
	})
}

// CountEvents counts qualifying days per cell. Events bound the first and
// last qualifying day.
func (d *Dispatcher) CountEvents(ctx context.Context, g *model.Grid, p runlen.Params) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:     KernelCountEvents,
		grid:       g,
		validate:   p.Validate,
		withEvents: true,
		reduce: func(s model.Series) (model.Result, error) {
			return runlen.CountEvents(s, p)
		},
	})
}

// GrowingSeasonLength computes GSL per cell. Events hold the season start
// and end indices.
func (d *Dispatcher) GrowingSeasonLength(ctx context.Context, g *model.Grid, p runlen.GSLParams) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:     KernelGrowingSeasonLength,
		grid:       g,
		validate:   p.Validate,
		withEvents: true,
		reduce: func(s model.Series) (model.Result, error) {
			return runlen.GrowingSeasonLength(s, p)
		},
	})
}

// SpellDuration computes WSDI / CSDI per cell from a binary grid.
func (d *Dispatcher) SpellDuration(ctx context.Context, g *model.Grid, p runlen.SpellParams) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:     KernelSpellDuration,
		grid:       g,
		validate:   p.Validate,
		withEvents: true,
		reduce: func(s model.Series) (model.Result, error) {
			return runlen.SpellDuration(s, p)
		},
	})
}

// WindowExtreme computes the best window sum or mean per cell (RX5day).
// Only the strict mode reports events.
func (d *Dispatcher) WindowExtreme(ctx context.Context, g *model.Grid, p window.Params) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel: KernelWindowExtreme,
		grid:   g,
		validate: func() error {
			return p.Validate(g.SizeT)
		},
		withEvents: p.Mode == model.WindowStrict,
		reduce: func(s model.Series) (model.Result, error) {
			return window.Extreme(s, p)
		},
	})
}

// Percentile computes one percentile per cell.
func (d *Dispatcher) Percentile(ctx context.Context, g *model.Grid, p percentile.Params) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:   KernelPercentile,
		grid:     g,
		validate: p.Validate,
		reduce: func(s model.Series) (model.Result, error) {
			return percentile.Percentile(s, p)
		},
	})
}

// SimpleStat computes min, max, mean or sum per cell (TX, TXx, PRCPTOT...).
// Only min and max report events, the day the extremum is first reached.
func (d *Dispatcher) SimpleStat(ctx context.Context, g *model.Grid, p stat.Params) (*Result, error) {
	return d.dispatch(ctx, dispatchJob{
		kernel:     KernelSimpleStat,
		grid:       g,
		validate:   p.Validate,
		withEvents: p.Reduction.Locates(),
		reduce: func(s model.Series) (model.Result, error) {
			return stat.SimpleStat(s, p)
		},
	})
}
