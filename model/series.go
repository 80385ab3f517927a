package model

// Series is a read-only view of one cell's time axis. The zero value is an
// empty series.
type Series struct {
	data   []float32
	offset int
	stride int
	n      int
}

// SliceSeries wraps a contiguous slice.
func SliceSeries(values []float32) Series {
	return Series{data: values, stride: 1, n: len(values)}
}

func (s Series) Len() int {
	return s.n
}

func (s Series) At(t int) float32 {
	return s.data[s.offset+t*s.stride]
}

// AllEqual reports whether every sample equals v. An empty series reports true.
func (s Series) AllEqual(v float32) bool {
	for t := 0; t < s.n; t++ {
		if s.At(t) != v {
			return false
		}
	}
	return true
}

// AppendTo appends the samples that differ from skip to dst.
func (s Series) AppendTo(dst []float64, skip float32) []float64 {
	for t := 0; t < s.n; t++ {
		if v := s.At(t); v != skip {
			dst = append(dst, float64(v))
		}
	}
	return dst
}
