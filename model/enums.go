package model

import (
	"fmt"

	"github.com/uyouii/climate-indices/common"
)

// Operator is the comparison applied between a sample and a threshold.
type Operator int

const (
	OperatorGreater Operator = iota + 1
	OperatorGreaterEqual
	OperatorLess
	OperatorLessEqual
	OperatorEqual
)

var operatorCodes = map[Operator]string{
	OperatorGreater:      "gt",
	OperatorGreaterEqual: "get",
	OperatorLess:         "lt",
	OperatorLessEqual:    "let",
	OperatorEqual:        "e",
}

func (o Operator) String() string {
	if code, ok := operatorCodes[o]; ok {
		return code
	}
	return fmt.Sprintf("Operator(%d)", int(o))
}

func (o Operator) Valid() bool {
	_, ok := operatorCodes[o]
	return ok
}

// Compare evaluates `v <op> threshold`. It panics on an invalid operator,
// callers validate first.
func (o Operator) Compare(v, threshold float32) bool {
	switch o {
	case OperatorGreater:
		return v > threshold
	case OperatorGreaterEqual:
		return v >= threshold
	case OperatorLess:
		return v < threshold
	case OperatorLessEqual:
		return v <= threshold
	case OperatorEqual:
		return v == threshold
	}
	panic(fmt.Sprintf("model: invalid operator %d", int(o)))
}

// ParseOperator accepts the icclim codes "gt", "get", "lt", "let", "e".
func ParseOperator(code string) (Operator, error) {
	for op, c := range operatorCodes {
		if c == code {
			return op, nil
		}
	}
	return 0, common.ErrorInvalidOperator.WithValue("operator", code)
}

// Interpolation selects the order-statistic formula of the percentile engine.
type Interpolation int

const (
	InterpolationLinear Interpolation = iota + 1
	InterpolationHyndmanFan
)

func (m Interpolation) String() string {
	switch m {
	case InterpolationLinear:
		return "linear"
	case InterpolationHyndmanFan:
		return "hyndman_fan"
	}
	return fmt.Sprintf("Interpolation(%d)", int(m))
}

func (m Interpolation) Valid() bool {
	return m == InterpolationLinear || m == InterpolationHyndmanFan
}

func ParseInterpolation(code string) (Interpolation, error) {
	switch code {
	case "linear":
		return InterpolationLinear, nil
	case "hyndman_fan":
		return InterpolationHyndmanFan, nil
	}
	return 0, common.ErrorInvalidMode.WithValue("interpolation", code)
}

// StatMode is the statistic reported for a window: its sum or its mean.
type StatMode int

const (
	StatSum StatMode = iota + 1
	StatMean
)

func (m StatMode) String() string {
	switch m {
	case StatSum:
		return "sum"
	case StatMean:
		return "mean"
	}
	return fmt.Sprintf("StatMode(%d)", int(m))
}

func (m StatMode) Valid() bool {
	return m == StatSum || m == StatMean
}

func ParseStatMode(code string) (StatMode, error) {
	switch code {
	case "sum":
		return StatSum, nil
	case "mean":
		return StatMean, nil
	}
	return 0, common.ErrorInvalidMode.WithValue("stat_mode", code)
}

// ExtremeMode picks the largest or the smallest window.
type ExtremeMode int

const (
	ExtremeMax ExtremeMode = iota + 1
	ExtremeMin
)

func (m ExtremeMode) String() string {
	switch m {
	case ExtremeMax:
		return "max"
	case ExtremeMin:
		return "min"
	}
	return fmt.Sprintf("ExtremeMode(%d)", int(m))
}

func (m ExtremeMode) Valid() bool {
	return m == ExtremeMax || m == ExtremeMin
}

// Better reports whether candidate strictly beats best, so ties keep the
// earlier window.
func (m ExtremeMode) Better(candidate, best float64) bool {
	if m == ExtremeMin {
		return candidate < best
	}
	return candidate > best
}

func ParseExtremeMode(code string) (ExtremeMode, error) {
	switch code {
	case "max":
		return ExtremeMax, nil
	case "min":
		return ExtremeMin, nil
	}
	return 0, common.ErrorInvalidMode.WithValue("extreme_mode", code)
}

// WindowMode selects how fill values inside a window are treated.
//
// WindowLegacy replaces fill samples with zero and keeps a running sum, it
// reports no event index. WindowStrict skips any window holding a fill
// sample and reports where the best window starts.
type WindowMode int

const (
	WindowLegacy WindowMode = iota + 1
	WindowStrict
)

func (m WindowMode) String() string {
	switch m {
	case WindowLegacy:
		return "legacy"
	case WindowStrict:
		return "strict"
	}
	return fmt.Sprintf("WindowMode(%d)", int(m))
}

func (m WindowMode) Valid() bool {
	return m == WindowLegacy || m == WindowStrict
}

func ParseWindowMode(code string) (WindowMode, error) {
	switch code {
	case "legacy":
		return WindowLegacy, nil
	case "strict":
		return WindowStrict, nil
	}
	return 0, common.ErrorInvalidMode.WithValue("window_mode", code)
}

// Reduction is the statistic SimpleStat computes over a cell.
type Reduction int

const (
	ReduceMin Reduction = iota + 1
	ReduceMax
	ReduceMean
	ReduceSum
)

var reductionCodes = map[Reduction]string{
	ReduceMin:  "min",
	ReduceMax:  "max",
	ReduceMean: "mean",
	ReduceSum:  "sum",
}

func (r Reduction) String() string {
	if code, ok := reductionCodes[r]; ok {
		return code
	}
	return fmt.Sprintf("Reduction(%d)", int(r))
}

func (r Reduction) Valid() bool {
	_, ok := reductionCodes[r]
	return ok
}

// Locates reports whether the reduction picks one sample, so it has an
// event index.
func (r Reduction) Locates() bool {
	return r == ReduceMin || r == ReduceMax
}

func ParseReduction(code string) (Reduction, error) {
	for r, c := range reductionCodes {
		if c == code {
			return r, nil
		}
	}
	return 0, common.ErrorInvalidMode.WithValue("reduction", code)
}
