package tensor

import "fmt"

// PaddingSize describes the padding, in elements, around a tensor's logical
// extent: Left/Right along the width axis, Top/Bottom along the height axis.
// Padding is part of the allocation, never of the logical shape.
type PaddingSize struct {
	Left   int
	Right  int
	Top    int
	Bottom int
}

// ValidRegion is the logically meaningful sub-extent of a tensor's
// allocation, anchored at Anchor (per-axis start coordinates).
type ValidRegion struct {
	Anchor []int
	Shape  Shape
}

// Info is the descriptor of a tensor taking part in an operation: logical
// shape, element type, optional quantization parameters and the declared
// padding of its allocation. Descriptors are plain values; Clone yields an
// independent copy for dry-run planning.
type Info struct {
	shape   Shape
	dtype   DataType
	qinfo   QuantizationInfo
	padding PaddingSize
	valid   ValidRegion
}

// NewInfo creates a descriptor with no padding and a valid region covering
// the full shape.
func NewInfo(shape Shape, dtype DataType) (*Info, error) {
	if err := shape.Validate(); err != nil {
		return nil, fmt.Errorf("invalid shape: %w", err)
	}
	return &Info{
		shape: shape.Clone(),
		dtype: dtype,
		valid: ValidRegion{Anchor: make([]int, len(shape)), Shape: shape.Clone()},
	}, nil
}

// Shape returns the tensor's logical shape.
func (i *Info) Shape() Shape {
	return i.shape
}

// DataType returns the tensor's element type.
func (i *Info) DataType() DataType {
	return i.dtype
}

// ElementSize returns the byte size of one element.
func (i *Info) ElementSize() int {
	return i.dtype.Size()
}

// NumDimensions returns the logical dimensionality.
func (i *Info) NumDimensions() int {
	return len(i.shape)
}

// Dimension returns the extent along axis d, or 1 beyond the shape.
func (i *Info) Dimension(d int) int {
	return i.shape.Dimension(d)
}

// Quantization returns the tensor's affine quantization parameters.
// The zero value means "not quantized".
func (i *Info) Quantization() QuantizationInfo {
	return i.qinfo
}

// SetQuantization attaches affine quantization parameters.
func (i *Info) SetQuantization(q QuantizationInfo) {
	i.qinfo = q
}

// Padding returns the declared allocation padding.
func (i *Info) Padding() PaddingSize {
	return i.padding
}

// SetPadding declares the allocation padding. It describes what the buffer
// actually provides; planning never grows it.
func (i *Info) SetPadding(p PaddingSize) {
	i.padding = p
}

// ValidRegion returns the logically meaningful sub-extent.
func (i *Info) ValidRegion() ValidRegion {
	return i.valid
}

// SetValidRegion overwrites the valid region.
func (i *Info) SetValidRegion(v ValidRegion) {
	i.valid = v
}

// PaddedDimension returns the allocated extent along axis d, padding
// included.
func (i *Info) PaddedDimension(d int) int {
	switch d {
	case 0:
		return i.padding.Left + i.Dimension(0) + i.padding.Right
	case 1:
		return i.padding.Top + i.Dimension(1) + i.padding.Bottom
	default:
		return i.Dimension(d)
	}
}

// StridesInBytes returns the per-axis byte strides of the allocation,
// padding included, for all MaxDimensions axes.
func (i *Info) StridesInBytes() [MaxDimensions]int {
	var strides [MaxDimensions]int
	strides[0] = i.ElementSize()
	for d := 1; d < MaxDimensions; d++ {
		strides[d] = strides[d-1] * i.PaddedDimension(d-1)
	}
	return strides
}

// OffsetFirstElementInBytes returns the byte offset of the logical (0,0,...)
// element inside the padded allocation.
func (i *Info) OffsetFirstElementInBytes() int {
	strides := i.StridesInBytes()
	return i.padding.Top*strides[1] + i.padding.Left*strides[0]
}

// TotalSizeInBytes returns the full allocation size, padding included.
func (i *Info) TotalSizeInBytes() int {
	strides := i.StridesInBytes()
	return strides[MaxDimensions-1] * i.PaddedDimension(MaxDimensions-1)
}

// Clone returns an independent copy of the descriptor.
func (i *Info) Clone() *Info {
	c := *i
	c.shape = i.shape.Clone()
	c.valid = ValidRegion{Anchor: append([]int(nil), i.valid.Anchor...), Shape: i.valid.Shape.Clone()}
	return &c
}
