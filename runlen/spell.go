package runlen

import "github.com/uyouii/climate-indices/model"

// SpellDuration sums the lengths of every spell of at least MinLength
// consecutive 1 samples (WSDI / CSDI). A virtual 0 past the end of the
// series closes a spell touching the last sample. The event spans the start
// of the first counted spell and the end of the last one.
func SpellDuration(series model.Series, p SpellParams) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}
	if series.AllEqual(p.FillValue) {
		return model.FillResult(p.FillValue), nil
	}

	n := series.Len()
	total, run := 0, 0
	event := model.NoEvent

	for t := 0; t < n; t++ {
		if series.At(t) != 1 {
			run = 0
			continue
		}
		run++

		next := float32(0)
		if t+1 < n {
			next = series.At(t + 1)
		}
		if run >= p.MinLength && next != 1 {
			total += run
			if !event.Found() {
				event.Start = t - run + 1
			}
			event.End = t
		}
	}

	return model.Result{Value: float64(total), Event: event}, nil
}
