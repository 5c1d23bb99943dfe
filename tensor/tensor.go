// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides the public descriptor and host-buffer API of the
// seam concatenation core.
//
// A tensor taking part in an operation is described by an Info: logical
// shape, element data type, optional affine quantization parameters and the
// padding its allocation declares. Raw pairs a descriptor with one padded
// host allocation.
//
// Example:
//
//	in0, _ := tensor.NewRawWithPadding(tensor.Shape{5, 4, 1}, tensor.Float32,
//		tensor.PaddingSize{Right: 3})
package tensor

import (
	"github.com/born-ml/seam/internal/tensor"
)

// Type aliases for public API

// DataType represents the underlying data type of a tensor.
type DataType = tensor.DataType

// Data type constants.
const (
	Unknown  DataType = tensor.Unknown
	Float32  DataType = tensor.Float32
	Float16  DataType = tensor.Float16
	Int32    DataType = tensor.Int32
	Uint8    DataType = tensor.Uint8
	Int8     DataType = tensor.Int8
	QAsymmU8 DataType = tensor.QAsymmU8
	QAsymmS8 DataType = tensor.QAsymmS8
)

// MaxDimensions is the highest tensor dimensionality the core supports.
const MaxDimensions = tensor.MaxDimensions

// Shape represents the dimensions of a tensor, fastest-varying axis first.
type Shape = tensor.Shape

// QuantizationInfo holds affine quantization parameters:
// real = Scale * (quantized - Offset).
type QuantizationInfo = tensor.QuantizationInfo

// PaddingSize describes allocation padding around the logical extent.
type PaddingSize = tensor.PaddingSize

// ValidRegion is the logically meaningful sub-extent of an allocation.
type ValidRegion = tensor.ValidRegion

// Info is a tensor descriptor.
type Info = tensor.Info

// Raw is a host tensor: descriptor plus padded allocation.
type Raw = tensor.Raw

// NewInfo creates a descriptor with no padding.
func NewInfo(shape Shape, dtype DataType) (*Info, error) {
	return tensor.NewInfo(shape, dtype)
}

// NewRaw allocates a host tensor without padding.
func NewRaw(shape Shape, dtype DataType) (*Raw, error) {
	return tensor.NewRaw(shape, dtype)
}

// NewRawWithPadding allocates a host tensor with declared padding.
func NewRawWithPadding(shape Shape, dtype DataType, padding PaddingSize) (*Raw, error) {
	return tensor.NewRawWithPadding(shape, dtype, padding)
}

// NewRawFromInfo allocates a host tensor for an existing descriptor.
func NewRawFromInfo(info *Info) *Raw {
	return tensor.NewRawFromInfo(info)
}
