// Package window models iteration windows over tensors: how a shared set of
// logical axis indices is walked in fixed-size vector steps, which memory
// each tensor exposes to that walk, and how the walk is cut into
// 4-dimensional slices for kernel dispatch.
package window

import "github.com/born-ml/seam/internal/tensor"

// MaxDims is the number of axes an iteration window carries. Tensors are
// capped at tensor.MaxDimensions; the extra window axes exist so collapsed
// windows and slice iteration keep working uniformly.
const MaxDims = 6

// Named window axes.
const (
	DimX = 0
	DimY = 1
	DimZ = 2
	DimW = 3
)

// Dimension is one axis of an iteration window: indices Start, Start+Step,
// ... strictly below End.
type Dimension struct {
	Start int
	End   int
	Step  int
}

// NumIterations returns how many steps the axis performs.
func (d Dimension) NumIterations() int {
	if d.Step <= 0 {
		return 1
	}
	return (d.End - d.Start + d.Step - 1) / d.Step
}

// Window is an iteration window over up to MaxDims axes. It is a plain
// value; copies are independent.
type Window struct {
	dims [MaxDims]Dimension
}

// Dim returns axis d of the window.
func (w Window) Dim(d int) Dimension {
	return w.dims[d]
}

// Set overwrites axis d of the window.
func (w *Window) Set(d int, dim Dimension) {
	w.dims[d] = dim
}

// X returns the fastest-varying axis.
func (w Window) X() Dimension { return w.dims[DimX] }

// Y returns the second axis.
func (w Window) Y() Dimension { return w.dims[DimY] }

// Z returns the third axis.
func (w Window) Z() Dimension { return w.dims[DimZ] }

// NumIterationsTotal returns the total number of iteration points.
func (w Window) NumIterationsTotal() int {
	n := 1
	for d := 0; d < MaxDims; d++ {
		n *= w.dims[d].NumIterations()
	}
	return n
}

// Contains reports whether sub is a valid restriction of w: every axis of
// sub stays inside the corresponding axis of w and keeps its step.
func (w Window) Contains(sub Window) bool {
	for d := 0; d < MaxDims; d++ {
		if sub.dims[d].Start < w.dims[d].Start || sub.dims[d].End > w.dims[d].End {
			return false
		}
		if sub.dims[d].Step != w.dims[d].Step {
			return false
		}
	}
	return true
}

// CeilToMultiple rounds v up to the next multiple of m.
func CeilToMultiple(v, m int) int {
	return (v + m - 1) / m * m
}

// CalculateMaxWindow computes the maximal iteration window for a tensor,
// stepping by stepX along the width axis (rounded up so the last vector
// chunk is still issued) and by one element on every other axis.
func CalculateMaxWindow(info *tensor.Info, stepX int) Window {
	var w Window
	w.dims[DimX] = Dimension{Start: 0, End: CeilToMultiple(info.Dimension(0), stepX), Step: stepX}
	for d := 1; d < MaxDims; d++ {
		w.dims[d] = Dimension{Start: 0, End: info.Dimension(d), Step: 1}
	}
	return w
}

// Collapse folds every axis from first upward into axis first, as long as
// the axes are collapsible (zero start, unit step). Folding stops at the
// first axis that cannot be collapsed; remaining axes are kept as-is.
func (w Window) Collapse(first int) Window {
	c := w
	merged := 1
	d := first
	for ; d < MaxDims; d++ {
		dim := w.dims[d]
		if dim.Start != 0 || dim.Step != 1 {
			break
		}
		merged *= dim.NumIterations()
	}
	if d == first {
		return c
	}
	c.dims[first] = Dimension{Start: 0, End: merged, Step: 1}
	for i := first + 1; i < d; i++ {
		c.dims[i] = Dimension{Start: 0, End: 1, Step: 1}
	}
	return c
}

// FirstSlice4D returns the first 4-dimensional slice of the window: axes
// 0..3 in full, every higher axis pinned to a single step at its start.
func (w Window) FirstSlice4D() Window {
	slice := w
	for d := DimW + 1; d < MaxDims; d++ {
		dim := w.dims[d]
		step := dim.Step
		if step <= 0 {
			step = 1
		}
		slice.dims[d] = Dimension{Start: dim.Start, End: dim.Start + step, Step: step}
	}
	return slice
}

// SlideSlice4D advances slice to the next 4D slice of w, odometer-style over
// the axes above DimW. It returns false once the window is exhausted.
func (w Window) SlideSlice4D(slice *Window) bool {
	for d := DimW + 1; d < MaxDims; d++ {
		dim := slice.dims[d]
		step := dim.Step
		if step <= 0 {
			step = 1
		}
		next := dim.Start + step
		if next < w.dims[d].End {
			slice.dims[d] = Dimension{Start: next, End: next + step, Step: step}
			return true
		}
		slice.dims[d] = Dimension{Start: w.dims[d].Start, End: w.dims[d].Start + step, Step: step}
	}
	return false
}
