// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package window provides the public iteration-window API of the seam
// concatenation core.
package window

import (
	"github.com/born-ml/seam/internal/window"
)

// MaxDims is the number of axes an iteration window carries.
const MaxDims = window.MaxDims

// Named window axes.
const (
	DimX = window.DimX
	DimY = window.DimY
	DimZ = window.DimZ
	DimW = window.DimW
)

// Dimension is one axis of an iteration window.
type Dimension = window.Dimension

// Window is an iteration window over up to MaxDims axes.
type Window = window.Window

// CeilToMultiple rounds v up to the next multiple of m.
func CeilToMultiple(v, m int) int {
	return window.CeilToMultiple(v, m)
}
