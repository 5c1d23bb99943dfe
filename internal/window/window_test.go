package window

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seam/internal/tensor"
)

func TestCalculateMaxWindowRoundsWidthUp(t *testing.T) {
	info, err := tensor.NewInfo(tensor.Shape{10, 4, 3}, tensor.Float32)
	require.NoError(t, err)

	win := CalculateMaxWindow(info, 8)

	assert.Equal(t, Dimension{Start: 0, End: 16, Step: 8}, win.X())
	assert.Equal(t, Dimension{Start: 0, End: 4, Step: 1}, win.Y())
	assert.Equal(t, Dimension{Start: 0, End: 3, Step: 1}, win.Z())
	assert.Equal(t, Dimension{Start: 0, End: 1, Step: 1}, win.Dim(DimW))
	assert.Equal(t, 2, win.X().NumIterations())
}

func TestCalculateMaxWindowExactMultiple(t *testing.T) {
	info, err := tensor.NewInfo(tensor.Shape{16, 2}, tensor.Float32)
	require.NoError(t, err)

	win := CalculateMaxWindow(info, 8)
	assert.Equal(t, 16, win.X().End)
}

func TestCollapseFoldsTrailingAxes(t *testing.T) {
	info, err := tensor.NewInfo(tensor.Shape{8, 4, 3, 2}, tensor.Float32)
	require.NoError(t, err)

	win := CalculateMaxWindow(info, 8)
	collapsed := win.Collapse(DimZ)

	assert.Equal(t, win.X(), collapsed.X())
	assert.Equal(t, win.Y(), collapsed.Y())
	assert.Equal(t, Dimension{Start: 0, End: 6, Step: 1}, collapsed.Z())
	assert.Equal(t, Dimension{Start: 0, End: 1, Step: 1}, collapsed.Dim(DimW))
	assert.Equal(t, win.NumIterationsTotal(), collapsed.NumIterationsTotal())
}

func TestCollapseStopsAtNonCollapsibleAxis(t *testing.T) {
	var win Window
	win.Set(DimX, Dimension{Start: 0, End: 8, Step: 8})
	win.Set(DimY, Dimension{Start: 0, End: 4, Step: 1})
	win.Set(DimZ, Dimension{Start: 2, End: 5, Step: 1}) // nonzero start
	win.Set(DimW, Dimension{Start: 0, End: 2, Step: 1})

	collapsed := win.Collapse(DimZ)
	assert.Equal(t, win, collapsed)
}

func TestContains(t *testing.T) {
	var win Window
	win.Set(DimX, Dimension{Start: 0, End: 16, Step: 8})
	win.Set(DimY, Dimension{Start: 0, End: 4, Step: 1})
	for d := DimZ; d < MaxDims; d++ {
		win.Set(d, Dimension{Start: 0, End: 1, Step: 1})
	}

	sub := win
	sub.Set(DimY, Dimension{Start: 2, End: 4, Step: 1})
	assert.True(t, win.Contains(sub))
	assert.True(t, win.Contains(win))

	escaped := win
	escaped.Set(DimX, Dimension{Start: 0, End: 24, Step: 8})
	assert.False(t, win.Contains(escaped))

	restepped := win
	restepped.Set(DimX, Dimension{Start: 0, End: 16, Step: 4})
	assert.False(t, win.Contains(restepped))
}

func TestSlice4DIterationCoversHigherAxes(t *testing.T) {
	var win Window
	win.Set(DimX, Dimension{Start: 0, End: 8, Step: 8})
	for d := DimY; d <= DimW; d++ {
		win.Set(d, Dimension{Start: 0, End: 2, Step: 1})
	}
	win.Set(4, Dimension{Start: 0, End: 3, Step: 1})
	win.Set(5, Dimension{Start: 0, End: 2, Step: 1})

	slices := 0
	for slice, ok := win.FirstSlice4D(), true; ok; ok = win.SlideSlice4D(&slice) {
		assert.Equal(t, win.X(), slice.X())
		assert.Equal(t, 1, slice.Dim(4).NumIterations())
		assert.Equal(t, 1, slice.Dim(5).NumIterations())
		slices++
	}
	assert.Equal(t, 6, slices)
}

func TestSlice4DSingleSliceWindow(t *testing.T) {
	var win Window
	win.Set(DimX, Dimension{Start: 0, End: 8, Step: 8})
	for d := DimY; d < MaxDims; d++ {
		win.Set(d, Dimension{Start: 0, End: 1, Step: 1})
	}

	slice := win.FirstSlice4D()
	assert.Equal(t, win.X(), slice.X())
	assert.False(t, win.SlideSlice4D(&slice))
}

func TestCeilToMultiple(t *testing.T) {
	assert.Equal(t, 16, CeilToMultiple(10, 8))
	assert.Equal(t, 8, CeilToMultiple(8, 8))
	assert.Equal(t, 0, CeilToMultiple(0, 8))
	assert.Equal(t, 8, CeilToMultiple(1, 8))
}
