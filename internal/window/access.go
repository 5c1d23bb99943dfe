package window

import "github.com/born-ml/seam/internal/tensor"

// Access describes the memory one tensor exposes to an iteration window. An
// access fits when every element it can touch lies inside the tensor's
// allocation: the logical shape plus the padding the buffer declares.
type Access interface {
	Fits(win Window) bool
}

// StaticAccess is a fixed rectangle of element coordinates, independent of
// the window position. Negative starts reach into left/top padding; ends
// beyond the shape reach into right/bottom padding.
type StaticAccess struct {
	Info   *tensor.Info
	StartX int
	StartY int
	EndX   int
	EndY   int
}

// Fits reports whether the rectangle stays inside the declared allocation.
func (a StaticAccess) Fits(Window) bool {
	p := a.Info.Padding()
	if a.StartX < -p.Left || a.EndX > a.Info.Dimension(0)+p.Right {
		return false
	}
	if a.StartY < -p.Top || a.EndY > a.Info.Dimension(1)+p.Bottom {
		return false
	}
	return true
}

// HorizontalAccess reads or writes Size consecutive elements starting at
// Offset from each window position along the width axis.
type HorizontalAccess struct {
	Info   *tensor.Info
	Offset int
	Size   int
}

// Fits reports whether every vector step of the window stays inside the
// declared allocation.
func (a HorizontalAccess) Fits(win Window) bool {
	p := a.Info.Padding()
	x := win.X()
	startX := x.Start + a.Offset
	lastX := x.Start + (x.NumIterations()-1)*x.Step + a.Offset
	if startX < -p.Left || lastX+a.Size > a.Info.Dimension(0)+p.Right {
		return false
	}
	y := win.Y()
	if y.Start < -p.Top || y.End > a.Info.Dimension(1)+p.Bottom {
		return false
	}
	return true
}

// UpdateWindowAndPadding merges the tensors' access windows with the
// iteration window. It returns true when any access would need the window
// (or the tensor's padding) to change, which the caller treats as a
// padding-insufficiency failure: declared padding is never grown here.
func UpdateWindowAndPadding(win Window, accesses ...Access) bool {
	changed := false
	for _, a := range accesses {
		if !a.Fits(win) {
			changed = true
		}
	}
	return changed
}
