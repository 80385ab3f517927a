package runlen

import "github.com/uyouii/climate-indices/model"

// MaxRun returns the length of the longest run of consecutive samples
// satisfying the comparison, along with its bounds. When several runs share
// the maximal length the first one is reported. A fill sample always breaks
// a run.
//
// A series made only of fill values yields the fill value and no event.
func MaxRun(series model.Series, p Params) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}
	if series.AllEqual(p.FillValue) {
		return model.FillResult(p.FillValue), nil
	}

	best, run, start := 0, 0, 0
	event := model.NoEvent
	prevMatched := false

	for t := 0; t < series.Len(); t++ {
		matched := p.matches(series.At(t))
		if matched {
			if prevMatched {
				run++
			} else {
				run = 1
				start = t
			}
		} else {
			run = 0
		}

		// strict > keeps the first of equally long runs
		if run > best {
			best = run
			event = model.Event{Start: start, End: start + best - 1}
		}
		prevMatched = matched
	}

	return model.Result{Value: float64(best), Event: event}, nil
}

// CountEvents counts the samples satisfying the comparison. The event spans
// the first and the last qualifying sample.
func CountEvents(series model.Series, p Params) (model.Result, error) {
	if err := p.Validate(); err != nil {
		return model.Result{}, err
	}
	if series.AllEqual(p.FillValue) {
		return model.FillResult(p.FillValue), nil
	}

	count := 0
	event := model.NoEvent
	for t := 0; t < series.Len(); t++ {
		if !p.matches(series.At(t)) {
			continue
		}
		if count == 0 {
			event.Start = t
		}
		event.End = t
		count++
	}
	return model.Result{Value: float64(count), Event: event}, nil
}

// firstRun returns the start of the first run of `length` consecutive
// matching samples at or after `from`, or -1. It stops as soon as the run is
// complete.
func firstRun(series model.Series, from, length int, match func(float32) bool) int {
	run := 0
	for t := from; t < series.Len(); t++ {
		if match(series.At(t)) {
			run++
		} else {
			run = 0
		}
		if run == length {
			return t - length + 1
		}
	}
	return -1
}
