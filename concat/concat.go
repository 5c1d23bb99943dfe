// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package concat provides the public API for pairwise width-axis tensor
// concatenation.
//
// The lifecycle is validate, configure once, execute many times:
//
//	op := concat.NewWidthConcat()
//	if err := concat.Validate(backend.Capabilities(), in0.Info(), in1.Info(), out.Info()); err != nil {
//		return err
//	}
//	op.Configure(backend, in0.Info(), in1.Info(), out.Info())
//	err := op.Run(concat.Pack{Input0: in0, Input1: in1, Output: out}, op.Window(), backend)
package concat

import (
	"github.com/born-ml/seam/internal/concat"
	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/tensor"
)

// VectorWidth is the number of elements processed per compute step along
// the width axis.
const VectorWidth = concat.VectorWidth

// KernelName identifies the pairwise width-concatenation kernel.
const KernelName = concat.KernelName

// Validation failures; match with errors.Is.
var (
	ErrNilDescriptor       = concat.ErrNilDescriptor
	ErrUnsupportedDataType = concat.ErrUnsupportedDataType
	ErrUnknownDataType     = concat.ErrUnknownDataType
	ErrDataTypeMismatch    = concat.ErrDataTypeMismatch
	ErrWidthOverflow       = concat.ErrWidthOverflow
	ErrDimensionMismatch   = concat.ErrDimensionMismatch
	ErrTooManyDimensions   = concat.ErrTooManyDimensions
	ErrInsufficientPadding = concat.ErrInsufficientPadding
)

// Pack bundles the live tensors of one execution.
type Pack = concat.Pack

// WidthConcat concatenates two tensors along the width axis into a
// pre-allocated output.
type WidthConcat = concat.WidthConcat

// NewWidthConcat returns an unconfigured operation.
func NewWidthConcat() *WidthConcat {
	return concat.NewWidthConcat()
}

// Validate checks that in0 and in1 can be concatenated along the width axis
// into out on a device with the given capabilities. It is pure and safe to
// call before committing to a configuration.
func Validate(caps kernel.Capabilities, in0, in1, out *tensor.Info) error {
	return concat.Validate(caps, in0, in1, out)
}
