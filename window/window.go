// Package window finds the fixed-width window with the largest or smallest
// sum (or mean) along a cell's time axis, as used by RX5day style indices.
package window

import (
	"gonum.org/v1/gonum/floats"

	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/model"
)

type Params struct {
	Width     int
	FillValue float32
	Stat      model.StatMode
	Extreme   model.ExtremeMode
	Mode      model.WindowMode
}

// Validate checks p against a time axis of length sizeT.
func (p Params) Validate(sizeT int) error {
	if !p.Stat.Valid() {
		return common.ErrorInvalidMode.WithValue("stat_mode", int(p.Stat))
	}
	if !p.Extreme.Valid() {
		return common.ErrorInvalidMode.WithValue("extreme_mode", int(p.Extreme))
	}
	if !p.Mode.Valid() {
		return common.ErrorInvalidMode.WithValue("window_mode", int(p.Mode))
	}
	if p.Width < 1 || p.Width > sizeT {
		return common.ErrorWindowWidth.WithValue("width", p.Width).WithValue("size_t", sizeT)
	}
	return nil
}

// Extreme scans every window of p.Width consecutive samples and returns the
// best one according to p.Extreme. Ties keep the earliest window.
//
// In legacy mode fill samples count as zero and no event is reported. In
// strict mode windows holding a fill sample are skipped, the event spans the
// best window, and the fill value is returned when no window qualifies.
func Extreme(series model.Series, p Params) (model.Result, error) {
	if err := p.Validate(series.Len()); err != nil {
		return model.Result{}, err
	}
	if series.AllEqual(p.FillValue) {
		return model.FillResult(p.FillValue), nil
	}

	var res model.Result
	if p.Mode == model.WindowLegacy {
		res = legacyExtreme(series, p)
	} else {
		var found bool
		res, found = strictExtreme(series, p)
		if !found {
			return model.FillResult(p.FillValue), nil
		}
	}

	if p.Stat == model.StatMean {
		res.Value /= float64(p.Width)
	}
	return res, nil
}

func legacyExtreme(series model.Series, p Params) model.Result {
	value := func(t int) float64 {
		v := series.At(t)
		if v == p.FillValue {
			return 0
		}
		return float64(v)
	}

	sum := 0.0
	for t := 0; t < p.Width; t++ {
		sum += value(t)
	}
	best := sum

	for start := 1; start+p.Width <= series.Len(); start++ {
		sum += value(start+p.Width-1) - value(start-1)
		if p.Extreme.Better(sum, best) {
			best = sum
		}
	}
	return model.Result{Value: best, Event: model.NoEvent}
}

func strictExtreme(series model.Series, p Params) (model.Result, bool) {
	buf := make([]float64, p.Width)
	best, bestStart := 0.0, -1

	for start := 0; start+p.Width <= series.Len(); start++ {
		fillAt := -1
		for k := 0; k < p.Width; k++ {
			v := series.At(start + k)
			if v == p.FillValue {
				fillAt = k
				break
			}
			buf[k] = float64(v)
		}
		if fillAt >= 0 {
			// every window up to start+fillAt holds the same fill sample
			start += fillAt
			continue
		}

		sum := floats.Sum(buf)
		if bestStart < 0 || p.Extreme.Better(sum, best) {
			best = sum
			bestStart = start
		}
	}

	if bestStart < 0 {
		return model.Result{}, false
	}
	return model.Result{
		Value: best,
		Event: model.Event{Start: bestStart, End: bestStart + p.Width - 1},
	}, true
}
