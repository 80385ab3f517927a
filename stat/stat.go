// Package stat holds the plain per-cell reductions behind TG, TX, TN, TXx,
// TNx, TXn, TNn, PRCPTOT and SD.
package stat

import (
	"math"

	"gonum.org/v1/gonum/floats"

	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/model"
)

type Params struct {
	Reduction model.Reduction
	FillValue float32
	// samples are multiplied by Coef before masking, 0 means 1
	Coef float64
	// Operator 0 disables masking. Otherwise only samples satisfying
	// `sample*Coef <Operator> Threshold` are reduced.
	Operator  model.Operator
	Threshold float32
}

func (p Params) Validate() error {
	if !p.Reduction.Valid() {
		return common.ErrorInvalidMode.WithValue("reduction", int(p.Reduction))
	}
	if p.Operator != 0 && !p.Operator.Valid() {
		return common.ErrorInvalidOperator.WithValue("operator", int(p.Operator))
	}
	if math.IsNaN(p.Coef) || math.IsInf(p.Coef, 0) {
		return common.ErrorInvalidArgument.WithMessage("coefficient must be finite").
			WithValue("coef", p.Coef)
	}
	return nil
}

func (p Params) coef() float64 {
	if p.Coef == 0 {
		return 1
	}
	return p.Coef
}

// SimpleStat reduces the non-fill samples of series, after masking, with
// p.Reduction. Min and max report the first sample reaching the extremum as
// a single-day event. The fill value is returned when no sample is left.
func SimpleStat(series model.Series, p Params) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}

	coef := p.coef()
	values := make([]float64, 0, series.Len())
	index := make([]int, 0, series.Len())
	for t := 0; t < series.Len(); t++ {
		v := series.At(t)
		if v == p.FillValue {
			continue
		}
		scaled := float64(v) * coef
		if p.Operator != 0 && !p.Operator.Compare(float32(scaled), p.Threshold) {
			continue
		}
		values = append(values, scaled)
		index = append(index, t)
	}
	if len(values) == 0 {
		return model.FillResult(p.FillValue), nil
	}

	switch p.Reduction {
	case model.ReduceMin:
		return located(values, index, floats.MinIdx(values)), nil
	case model.ReduceMax:
		return located(values, index, floats.MaxIdx(values)), nil
	case model.ReduceMean:
		return model.Result{Value: floats.Sum(values) / float64(len(values)), Event: model.NoEvent}, nil
	}
	return model.Result{Value: floats.Sum(values), Event: model.NoEvent}, nil
}

func located(values []float64, index []int, k int) model.Result {
	t := index[k]
	return model.Result{Value: values[k], Event: model.Event{Start: t, End: t}}
}
