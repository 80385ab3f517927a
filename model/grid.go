package model

import (
	"fmt"
	"math"

	"github.com/uyouii/climate-indices/common"
)

// MaxSizeT is the longest time axis whose indices fit an EventGrid.
const MaxSizeT = math.MaxInt32

// Grid is a read-only (T, I, J) block of observations, row-major with J
// varying fastest, then I, then T.
type Grid struct {
	Data      []float32
	SizeT     int
	SizeI     int
	SizeJ     int
	FillValue float32
}

func NewGrid(data []float32, sizeT, sizeI, sizeJ int, fillValue float32) (*Grid, error) {
	g := &Grid{
		Data:      data,
		SizeT:     sizeT,
		SizeI:     sizeI,
		SizeJ:     sizeJ,
		FillValue: fillValue,
	}
	if err := g.Validate(); err != nil {
		return nil, err
	}
	return g, nil
}

func (g *Grid) Validate() error {
	if g == nil {
		return common.ErrorDimensionMismatch.WithMessage("nil grid")
	}
	if g.SizeT <= 0 || g.SizeI <= 0 || g.SizeJ <= 0 {
		return common.ErrorDimensionMismatch.
			WithValue("shape", g.ShapeString()).
			WithMessage("grid dimensions must be positive")
	}
	// event grids store time indices as int32
	if g.SizeT > MaxSizeT {
		return common.ErrorDimensionMismatch.
			WithValue("shape", g.ShapeString()).
			WithMessage("time axis too long")
	}
	if len(g.Data) != g.SizeT*g.SizeI*g.SizeJ {
		return common.ErrorDimensionMismatch.
			WithValue("shape", g.ShapeString()).
			WithValue("len", len(g.Data))
	}
	return nil
}

// Offset maps (t, i, j) into Data. No bounds checking.
func (g *Grid) Offset(t, i, j int) int {
	return t*g.SizeI*g.SizeJ + i*g.SizeJ + j
}

func (g *Grid) At(t, i, j int) float32 {
	return g.Data[g.Offset(t, i, j)]
}

// Series returns the time series of cell (i, j) without copying.
func (g *Grid) Series(i, j int) Series {
	return Series{
		data:   g.Data,
		offset: g.Offset(0, i, j),
		stride: g.SizeI * g.SizeJ,
		n:      g.SizeT,
	}
}

func (g *Grid) CellCount() int {
	return g.SizeI * g.SizeJ
}

func (g *Grid) ShapeString() string {
	return fmt.Sprintf("(%d,%d,%d)", g.SizeT, g.SizeI, g.SizeJ)
}

// OutputGrid holds one value per (i, j) cell.
type OutputGrid struct {
	SizeI  int
	SizeJ  int
	Values []float64
}

func NewOutputGrid(sizeI, sizeJ int) *OutputGrid {
	return &OutputGrid{
		SizeI:  sizeI,
		SizeJ:  sizeJ,
		Values: make([]float64, sizeI*sizeJ),
	}
}

func (o *OutputGrid) At(i, j int) float64 {
	return o.Values[i*o.SizeJ+j]
}

// EventGrid records, per cell, the time indices bounding the detected event.
// -1 means no event was found. Indices are int32, Grid.Validate caps SizeT
// at MaxSizeT so they never truncate.
type EventGrid struct {
	SizeI int
	SizeJ int
	Start []int32
	End   []int32
}

func NewEventGrid(sizeI, sizeJ int) *EventGrid {
	return &EventGrid{
		SizeI: sizeI,
		SizeJ: sizeJ,
		Start: make([]int32, sizeI*sizeJ),
		End:   make([]int32, sizeI*sizeJ),
	}
}

func (e *EventGrid) At(i, j int) Event {
	k := i*e.SizeJ + j
	return Event{Start: int(e.Start[k]), End: int(e.End[k])}
}

func (e *EventGrid) Set(k int, event Event) {
	e.Start[k] = int32(event.Start)
	e.End[k] = int32(event.End)
}
