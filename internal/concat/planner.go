package concat

import (
	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

// VectorWidth is the number of elements the compute kernel processes per
// step along the width axis.
const VectorWidth = 8

// planWindow computes the iteration window for concatenating in0 and in1
// into out. The window is sized to the output: its true width may exceed
// the sum of the inputs, and the step count must cover all of it.
//
// input0 is scanned from 0 up to its width rounded up to the vector width.
// input1 starts mid-chunk, so its access window is shifted left by
// input0's misalignment and extended right by whatever residual makes the
// combined scan tile the output's rounded-up width exactly.
//
// The planner has no side effects and may be called repeatedly on clones.
func planWindow(in0, in1, out *tensor.Info) (window.Window, error) {
	win := window.CalculateMaxWindow(out, VectorWidth)

	in0Access := window.StaticAccess{
		Info: in0,
		EndX: window.CeilToMultiple(in0.Dimension(0), VectorWidth),
		EndY: in0.Dimension(1),
	}
	in1Access := window.StaticAccess{
		Info:   in1,
		StartX: -(in0.Dimension(0) % VectorWidth),
		EndX:   in1.Dimension(0) + input1RightPadding(in0, in1, out),
		EndY:   in1.Dimension(1),
	}
	outAccess := window.HorizontalAccess{Info: out, Size: VectorWidth}

	if window.UpdateWindowAndPadding(win, in0Access, in1Access, outAccess) {
		return window.Window{}, ErrInsufficientPadding
	}

	return win.Collapse(window.DimZ), nil
}

// input1RightPadding is the residual padding on input1's right edge needed
// so the combined scan tiles the output's rounded-up width. Computed from
// the declared widths; the result is normalized into [0, VectorWidth).
func input1RightPadding(in0, in1, out *tensor.Info) int {
	r := (window.CeilToMultiple(out.Dimension(0), VectorWidth) -
		in0.Dimension(0) - in1.Dimension(0)) % VectorWidth
	if r < 0 {
		r += VectorWidth
	}
	return r
}
