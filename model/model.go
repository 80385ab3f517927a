package model

import "fmt"

// Event bounds a detected run, window or season on the time axis.
type Event struct {
	Start int
	End   int
}

var NoEvent = Event{Start: -1, End: -1}

func (e Event) Found() bool {
	return e.Start >= 0
}

func (e Event) String() string {
	if !e.Found() {
		return "none"
	}
	return fmt.Sprintf("[%d,%d]", e.Start, e.End)
}

// Result is what every per-cell kernel produces.
type Result struct {
	Value float64
	Event Event
}

// FillResult is returned for degenerate cells.
func FillResult(fillValue float32) Result {
	return Result{Value: float64(fillValue), Event: NoEvent}
}
