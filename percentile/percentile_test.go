package percentile

import (
	"math"
	"math/rand"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/uyouii/climate-indices/common"
	"github.com/uyouii/climate-indices/model"
)

const testFill float32 = 1e20

func compute(t *testing.T, values []float32, pct float64, interp model.Interpolation) model.Result {
	t.Helper()
	res, err := Percentile(model.SliceSeries(values), Params{
		Percentile:    pct,
		FillValue:     testFill,
		Interpolation: interp,
	})
	require.NoError(t, err)
	return res
}

// sortedLinear and sortedHyndmanFan apply the formulas to a fully sorted
// copy, as a reference for the selection based implementation.
func sortedLinear(values []float64, q float64) float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	pos := q * float64(len(s)-1)
	i := int(pos)
	if i >= len(s)-1 {
		return s[len(s)-1]
	}
	return s[i] + (pos-float64(i))*(s[i+1]-s[i])
}

func sortedHyndmanFan(values []float64, q float64) float64 {
	s := append([]float64(nil), values...)
	sort.Float64s(s)
	n := len(s)
	pos := float64(n)*q + (1+q)/3
	j := int(math.Floor(pos))
	switch {
	case j < 1:
		return s[0]
	case j >= n:
		return s[n-1]
	}
	return s[j-1] + (pos-float64(j))*(s[j]-s[j-1])
}

func TestPercentileKnownValues(t *testing.T) {
	tests := []struct {
		name   string
		values []float32
		pct    float64
		interp model.Interpolation
		want   float64
	}{
		{name: "linear median", values: []float32{1, 2, 3, 4, 5}, pct: 50, interp: model.InterpolationLinear, want: 3},
		{name: "linear unsorted", values: []float32{5, 3, 1, 4, 2}, pct: 50, interp: model.InterpolationLinear, want: 3},
		{name: "linear fraction", values: []float32{1, 2, 3, 4}, pct: 50, interp: model.InterpolationLinear, want: 2.5},
		{name: "linear p90", values: []float32{10, 20, 30, 40, 50}, pct: 90, interp: model.InterpolationLinear, want: 46},
		{name: "hyndman median", values: []float32{1, 2, 3, 4, 5}, pct: 50, interp: model.InterpolationHyndmanFan, want: 3},
		{name: "hyndman even median", values: []float32{4, 1, 3, 2}, pct: 50, interp: model.InterpolationHyndmanFan, want: 2.5},
		// pos = 10*0.9 + 1.9/3 = 9.6333, j = 9
		{
			name:   "hyndman p90",
			values: []float32{1, 2, 3, 4, 5, 6, 7, 8, 9, 10},
			pct:    90,
			interp: model.InterpolationHyndmanFan,
			want:   9 + (10*0.9+1.9/3-9)*(10-9),
		},
		{name: "hyndman low clamp", values: []float32{7, 3}, pct: 10, interp: model.InterpolationHyndmanFan, want: 3},
		{name: "hyndman high clamp", values: []float32{7, 3}, pct: 99, interp: model.InterpolationHyndmanFan, want: 7},
		{name: "duplicates", values: []float32{2, 2, 2, 2}, pct: 75, interp: model.InterpolationLinear, want: 2},
		{name: "fill skipped", values: []float32{testFill, 1, testFill, 2, 3}, pct: 50, interp: model.InterpolationLinear, want: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res := compute(t, tt.values, tt.pct, tt.interp)
			assert.InDelta(t, tt.want, res.Value, 1e-9)
			assert.Equal(t, model.NoEvent, res.Event)
		})
	}
}

func TestPercentileSingleSample(t *testing.T) {
	for _, interp := range []model.Interpolation{model.InterpolationLinear, model.InterpolationHyndmanFan} {
		for _, pct := range []float64{0.1, 10, 50, 90, 99.9} {
			res := compute(t, []float32{testFill, 4.5, testFill}, pct, interp)
			assert.Equal(t, 4.5, res.Value)
		}
	}
}

func TestPercentileAllFill(t *testing.T) {
	res := compute(t, []float32{testFill, testFill}, 50, model.InterpolationHyndmanFan)
	assert.Equal(t, float64(testFill), res.Value)
	assert.Equal(t, model.NoEvent, res.Event)
}

func TestPercentileMatchesSortedReference(t *testing.T) {
	rng := rand.New(rand.NewSource(7))

	for round := 0; round < 200; round++ {
		n := 2 + rng.Intn(60)
		values := make([]float32, n)
		ref := make([]float64, n)
		for i := range values {
			// small integer range so ties are frequent
			values[i] = float32(rng.Intn(20))
			ref[i] = float64(values[i])
		}
		pct := 0.5 + rng.Float64()*99

		lin := compute(t, values, pct, model.InterpolationLinear)
		assert.InDelta(t, sortedLinear(ref, pct/100), lin.Value, 1e-9, "linear n=%d p=%v", n, pct)

		hf := compute(t, values, pct, model.InterpolationHyndmanFan)
		assert.InDelta(t, sortedHyndmanFan(ref, pct/100), hf.Value, 1e-9, "hyndman n=%d p=%v", n, pct)
	}
}

func TestPercentileDoesNotMutateInput(t *testing.T) {
	values := []float32{5, 1, 4, 2, 3}
	compute(t, values, 30, model.InterpolationLinear)
	assert.Equal(t, []float32{5, 1, 4, 2, 3}, values)
}

func TestPercentileInvalidParams(t *testing.T) {
	tests := []struct {
		name   string
		params Params
		target error
	}{
		{name: "zero", params: Params{Percentile: 0, Interpolation: model.InterpolationLinear}, target: common.ErrorInvalidPercentile},
		{name: "hundred", params: Params{Percentile: 100, Interpolation: model.InterpolationLinear}, target: common.ErrorInvalidPercentile},
		{name: "nan", params: Params{Percentile: math.NaN(), Interpolation: model.InterpolationLinear}, target: common.ErrorInvalidPercentile},
		{name: "interpolation", params: Params{Percentile: 50}, target: common.ErrorInvalidMode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Percentile(model.SliceSeries([]float32{1, 2}), tt.params)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.target)
			assert.True(t, common.IsInvalidArgument(err))
		})
	}
}
