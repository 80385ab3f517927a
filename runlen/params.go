package runlen

import (
	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/model"
)

// Params configures MaxRun and CountEvents.
type Params struct {
	Threshold float32
	FillValue float32
	Operator  model.Operator
}

func (p Params) Validate() error {
	if !p.Operator.Valid() {
		return common.ErrorInvalidOperator.WithValue("operator", int(p.Operator))
	}
	return nil
}

// matches reports whether v is a real observation satisfying the comparison.
func (p Params) matches(v float32) bool {
	return v != p.FillValue && p.Operator.Compare(v, p.Threshold)
}

type GSLParams struct {
	Threshold float32
	FillValue float32
	// index of the first day of the second half of the year, 181 (182 in
	// leap years) for a complete calendar year
	MidYearIndex int
}

func (p GSLParams) Validate() error {
	if p.MidYearIndex < 0 {
		return common.ErrorInvalidArgument.WithMessage("mid-year index must not be negative").
			WithValue("mid_year_index", p.MidYearIndex)
	}
	return nil
}

// SpellParams configures SpellDuration. The input series is binary, 1 marks
// a day beyond the percentile threshold.
type SpellParams struct {
	FillValue float32
	MinLength int
}

func (p SpellParams) Validate() error {
	if p.MinLength < 1 {
		return common.ErrorInvalidArgument.WithMessage("spell length must be positive").
			WithValue("min_length", p.MinLength)
	}
	return nil
}
