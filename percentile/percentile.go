// Package percentile computes per-cell percentiles over the non-fill samples
// of a time series with either linear or Hyndman & Fan (type 8)
// interpolation.
package percentile

import (
	"math"
	"sync"

	"github.com/wangjohn/quickselect"
	"gonum.org/v1/gonum/floats"

	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/model"
)

const defaultSampleCap = 366

// sample buffers are reused across cells so peak memory stays at one
// buffer per worker
var samplePool = sync.Pool{
	New: func() any {
		buf := make([]float64, 0, defaultSampleCap)
		return &buf
	},
}

type Params struct {
	// in the open interval (0, 100)
	Percentile    float64
	FillValue     float32
	Interpolation model.Interpolation
}

func (p Params) Validate() error {
	if !p.Interpolation.Valid() {
		return common.ErrorInvalidMode.WithValue("interpolation", int(p.Interpolation))
	}
	if math.IsNaN(p.Percentile) || p.Percentile <= 0 || p.Percentile >= 100 {
		return common.ErrorInvalidPercentile.WithValue("percentile", p.Percentile)
	}
	return nil
}

// Percentile returns the p.Percentile-th percentile of the samples that
// differ from the fill value. No sample gives the fill value, a single
// sample is returned as is.
func Percentile(series model.Series, p Params) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}

	bufp := samplePool.Get().(*[]float64)
	samples := series.AppendTo((*bufp)[:0], p.FillValue)
	defer func() {
		*bufp = samples[:0]
		samplePool.Put(bufp)
	}()

	switch len(samples) {
	case 0:
		return model.FillResult(p.FillValue), nil
	case 1:
		return model.Result{Value: samples[0], Event: model.NoEvent}, nil
	}

	var value float64
	switch p.Interpolation {
	case model.InterpolationLinear:
		value = linear(samples, p.Percentile/100)
	case model.InterpolationHyndmanFan:
		value = hyndmanFan(samples, p.Percentile/100)
	}
	return model.Result{Value: value, Event: model.NoEvent}, nil
}

// linear interpolates between the order statistics around q*(n-1).
func linear(samples []float64, q float64) float64 {
	n := len(samples)
	pos := q * float64(n-1)
	i := int(math.Floor(pos))
	if i >= n-1 {
		return floats.Max(samples)
	}
	lo, hi := orderStats(samples, i)
	return lo + (pos-float64(i))*(hi-lo)
}

// hyndmanFan implements the median-unbiased estimator: the 1-based position
// n*q + (1+q)/3, clamped to the sample range.
func hyndmanFan(samples []float64, q float64) float64 {
	n := len(samples)
	pos := float64(n)*q + (1+q)/3
	j := int(math.Floor(pos))
	if j < 1 {
		return floats.Min(samples)
	}
	if j >= n {
		return floats.Max(samples)
	}
	lo, hi := orderStats(samples, j-1)
	return lo + (pos-float64(j))*(hi-lo)
}

// orderStats returns the k-th and (k+1)-th smallest samples (0-based),
// k+2 <= len(samples). samples is reordered in place.
func orderStats(samples []float64, k int) (float64, float64) {
	length := k + 2
	if length < len(samples) {
		_ = quickselect.Float64QuickSelect(samples, length)
	}

	top, secondTop := math.Inf(-1), math.Inf(-1)
	for _, v := range samples[:length] {
		if v > top {
			secondTop = top
			top = v
		} else if v > secondTop {
			secondTop = v
		}
	}
	return secondTop, top
}
