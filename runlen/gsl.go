package runlen

import "github.com/uyouii/climate-indices/model"

// GrowingSeasonLength computes the ECA&D GSL index: the number of days
// between T1, the start of the first 6-day run above the threshold, and
// T2, the start of the first 6-day run below it at or after the mid-year
// index. The fill value is returned when either run is missing or T2 does
// not come after T1.
func GrowingSeasonLength(series model.Series, p GSLParams) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}

	warm := func(v float32) bool {
		return v != p.FillValue && v > p.Threshold
	}
	cold := func(v float32) bool {
		return v != p.FillValue && v < p.Threshold
	}

	t1 := firstRun(series, 0, GSLSequenceLength, warm)
	if t1 < 0 {
		return model.FillResult(p.FillValue), nil
	}
	t2 := firstRun(series, p.MidYearIndex, GSLSequenceLength, cold)
	if t2 < 0 || t1 >= t2 {
		return model.FillResult(p.FillValue), nil
	}

	return model.Result{
		Value: float64(t2 - t1),
		Event: model.Event{Start: t1, End: t2},
	}, nil
}
