package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/climate-indices/common"
)

func TestParseOperator(t *testing.T) {
	for code, want := range map[string]Operator{
		"gt":  OperatorGreater,
		"get": OperatorGreaterEqual,
		"lt":  OperatorLess,
		"let": OperatorLessEqual,
		"e":   OperatorEqual,
	} {
		op, err := ParseOperator(code)
		require.NoError(t, err)
		assert.Equal(t, want, op)
		assert.Equal(t, code, op.String())
		assert.True(t, op.Valid())
	}

	_, err := ParseOperator("ge")
	assert.ErrorIs(t, err, common.ErrorInvalidOperator)
	assert.True(t, common.IsInvalidArgument(err))
	assert.False(t, Operator(0).Valid())
}

func TestOperatorCompare(t *testing.T) {
	tests := []struct {
		op   Operator
		v    float32
		want bool
	}{
		{op: OperatorGreater, v: 2, want: false},
		{op: OperatorGreater, v: 3, want: true},
		{op: OperatorGreaterEqual, v: 2, want: true},
		{op: OperatorLess, v: 2, want: false},
		{op: OperatorLess, v: 1, want: true},
		{op: OperatorLessEqual, v: 2, want: true},
		{op: OperatorEqual, v: 2, want: true},
		{op: OperatorEqual, v: 2.5, want: false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, tt.op.Compare(tt.v, 2), "%s %v", tt.op, tt.v)
	}

	assert.Panics(t, func() { Operator(17).Compare(1, 2) })
}

func TestParseModes(t *testing.T) {
	interp, err := ParseInterpolation("hyndman_fan")
	require.NoError(t, err)
	assert.Equal(t, InterpolationHyndmanFan, interp)
	interp, err = ParseInterpolation("linear")
	require.NoError(t, err)
	assert.Equal(t, "linear", interp.String())

	stat, err := ParseStatMode("mean")
	require.NoError(t, err)
	assert.Equal(t, StatMean, stat)

	extreme, err := ParseExtremeMode("min")
	require.NoError(t, err)
	assert.Equal(t, ExtremeMin, extreme)
	assert.True(t, extreme.Better(1, 2))
	assert.False(t, ExtremeMax.Better(2, 2))

	mode, err := ParseWindowMode("legacy")
	require.NoError(t, err)
	assert.Equal(t, WindowLegacy, mode)

	for code, want := range map[string]Reduction{
		"min":  ReduceMin,
		"max":  ReduceMax,
		"mean": ReduceMean,
		"sum":  ReduceSum,
	} {
		r, err := ParseReduction(code)
		require.NoError(t, err)
		assert.Equal(t, want, r)
		assert.Equal(t, code, r.String())
		assert.Equal(t, want == ReduceMin || want == ReduceMax, r.Locates())
	}
	assert.False(t, Reduction(0).Valid())

	for _, parse := range []func(string) error{
		func(s string) error { _, err := ParseReduction(s); return err },
		func(s string) error { _, err := ParseInterpolation(s); return err },
		func(s string) error { _, err := ParseStatMode(s); return err },
		func(s string) error { _, err := ParseExtremeMode(s); return err },
		func(s string) error { _, err := ParseWindowMode(s); return err },
	} {
		err := parse("nearest")
		assert.ErrorIs(t, err, common.ErrorInvalidMode)
		assert.True(t, common.IsInvalidArgument(err))
	}
}
