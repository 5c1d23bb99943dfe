package concat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/tensor"
)

func newInfo(t *testing.T, shape tensor.Shape, dt tensor.DataType, pad tensor.PaddingSize) *tensor.Info {
	t.Helper()
	info, err := tensor.NewInfo(shape, dt)
	require.NoError(t, err)
	info.SetPadding(pad)
	return info
}

// concatTriple builds fully padded descriptors for concatenating a w0 x h and
// a w1 x h tensor into a (w0+w1) x h output.
func concatTriple(t *testing.T, w0, w1, h int, dt tensor.DataType) (in0, in1, out *tensor.Info) {
	t.Helper()
	outW := w0 + w1
	residual := (ceilVec(outW) - w0 - w1) % VectorWidth
	if residual < 0 {
		residual += VectorWidth
	}
	in0 = newInfo(t, tensor.Shape{w0, h}, dt,
		tensor.PaddingSize{Right: ceilVec(w0) - w0})
	in1 = newInfo(t, tensor.Shape{w1, h}, dt,
		tensor.PaddingSize{Left: w0 % VectorWidth, Right: residual})
	out = newInfo(t, tensor.Shape{outW, h}, dt,
		tensor.PaddingSize{Right: ceilVec(outW) - outW})
	return in0, in1, out
}

// ceilVec rounds v up to the vector width.
func ceilVec(v int) int {
	return (v + VectorWidth - 1) / VectorWidth * VectorWidth
}

func TestValidateAccepts(t *testing.T) {
	caps := kernel.Capabilities{}

	in0, in1, out := concatTriple(t, 5, 5, 4, tensor.Float32)
	assert.NoError(t, Validate(caps, in0, in1, out))

	// aligned widths need no padding at all
	in0 = newInfo(t, tensor.Shape{8, 4}, tensor.Float32, tensor.PaddingSize{})
	in1 = newInfo(t, tensor.Shape{8, 4}, tensor.Float32, tensor.PaddingSize{})
	out = newInfo(t, tensor.Shape{16, 4}, tensor.Float32, tensor.PaddingSize{})
	assert.NoError(t, Validate(caps, in0, in1, out))
}

func TestValidateAcceptsFourDimensions(t *testing.T) {
	in0 := newInfo(t, tensor.Shape{8, 2, 3, 2}, tensor.Float32, tensor.PaddingSize{})
	in1 := newInfo(t, tensor.Shape{8, 2, 3, 2}, tensor.Float32, tensor.PaddingSize{})
	out := newInfo(t, tensor.Shape{16, 2, 3, 2}, tensor.Float32, tensor.PaddingSize{})
	assert.NoError(t, Validate(kernel.Capabilities{}, in0, in1, out))
}

func TestValidateNilDescriptor(t *testing.T) {
	in0, in1, out := concatTriple(t, 5, 5, 4, tensor.Float32)
	caps := kernel.Capabilities{}

	assert.ErrorIs(t, Validate(caps, nil, in1, out), ErrNilDescriptor)
	assert.ErrorIs(t, Validate(caps, in0, nil, out), ErrNilDescriptor)
	assert.ErrorIs(t, Validate(caps, in0, in1, nil), ErrNilDescriptor)
}

func TestValidateFloat16NeedsCapability(t *testing.T) {
	in0, in1, out := concatTriple(t, 8, 8, 4, tensor.Float16)

	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrUnsupportedDataType)
	assert.NoError(t, Validate(kernel.Capabilities{FP16: true}, in0, in1, out))
}

func TestValidateUnknownDataType(t *testing.T) {
	in0, in1, out := concatTriple(t, 8, 8, 4, tensor.Unknown)
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrUnknownDataType)
}

func TestValidateDataTypeMismatch(t *testing.T) {
	in0, _, out := concatTriple(t, 8, 8, 4, tensor.Float32)
	in1 := newInfo(t, tensor.Shape{8, 4}, tensor.Uint8, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrDataTypeMismatch)

	in0b, in1b, _ := concatTriple(t, 8, 8, 4, tensor.Float32)
	outb := newInfo(t, tensor.Shape{16, 4}, tensor.Int32, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0b, in1b, outb), ErrDataTypeMismatch)
}

func TestValidateWidthOverflow(t *testing.T) {
	in0 := newInfo(t, tensor.Shape{8, 4}, tensor.Float32, tensor.PaddingSize{})
	in1 := newInfo(t, tensor.Shape{9, 4}, tensor.Float32, tensor.PaddingSize{})
	out := newInfo(t, tensor.Shape{16, 4}, tensor.Float32, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrWidthOverflow)
}

func TestValidateWiderOutputIsAllowed(t *testing.T) {
	// the output may be wider than the inputs combined; the kernel scans it all
	in0 := newInfo(t, tensor.Shape{8, 4}, tensor.Float32, tensor.PaddingSize{})
	in1 := newInfo(t, tensor.Shape{8, 4}, tensor.Float32,
		tensor.PaddingSize{Right: 8})
	out := newInfo(t, tensor.Shape{24, 4}, tensor.Float32, tensor.PaddingSize{})
	assert.NoError(t, Validate(kernel.Capabilities{}, in0, in1, out))
}

func TestValidateDimensionMismatch(t *testing.T) {
	in0 := newInfo(t, tensor.Shape{8, 4}, tensor.Float32, tensor.PaddingSize{})
	in1 := newInfo(t, tensor.Shape{8, 3}, tensor.Float32, tensor.PaddingSize{})
	out := newInfo(t, tensor.Shape{16, 4}, tensor.Float32, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrDimensionMismatch)

	in0z := newInfo(t, tensor.Shape{8, 4, 2}, tensor.Float32, tensor.PaddingSize{})
	in1z := newInfo(t, tensor.Shape{8, 4, 2}, tensor.Float32, tensor.PaddingSize{})
	outz := newInfo(t, tensor.Shape{16, 4, 3}, tensor.Float32, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0z, in1z, outz), ErrDimensionMismatch)
}

func TestValidateRejectsFiveDimensions(t *testing.T) {
	in0 := newInfo(t, tensor.Shape{8, 2, 2, 2, 2}, tensor.Float32, tensor.PaddingSize{})
	in1 := newInfo(t, tensor.Shape{8, 2, 2, 2, 2}, tensor.Float32, tensor.PaddingSize{})
	out := newInfo(t, tensor.Shape{16, 2, 2, 2, 2}, tensor.Float32, tensor.PaddingSize{})
	assert.ErrorIs(t, Validate(kernel.Capabilities{}, in0, in1, out), ErrTooManyDimensions)
}

func TestValidateInsufficientPadding(t *testing.T) {
	caps := kernel.Capabilities{}

	// output 10 wide: the scan covers [0, 16), so 6 right-padding elements
	// are needed on the output and on input1, and 3 on input0.
	in0 := newInfo(t, tensor.Shape{5, 4}, tensor.Float32, tensor.PaddingSize{Right: 3})
	in1 := newInfo(t, tensor.Shape{5, 4}, tensor.Float32, tensor.PaddingSize{Left: 5, Right: 6})
	out := newInfo(t, tensor.Shape{10, 4}, tensor.Float32, tensor.PaddingSize{Right: 6})
	require.NoError(t, Validate(caps, in0, in1, out))

	short0 := newInfo(t, tensor.Shape{5, 4}, tensor.Float32, tensor.PaddingSize{Right: 2})
	assert.ErrorIs(t, Validate(caps, short0, in1, out), ErrInsufficientPadding)

	short1 := newInfo(t, tensor.Shape{5, 4}, tensor.Float32, tensor.PaddingSize{Left: 4, Right: 6})
	assert.ErrorIs(t, Validate(caps, in0, short1, out), ErrInsufficientPadding)

	shortOut := newInfo(t, tensor.Shape{10, 4}, tensor.Float32, tensor.PaddingSize{Right: 5})
	assert.ErrorIs(t, Validate(caps, in0, in1, shortOut), ErrInsufficientPadding)
}

func TestValidateDoesNotMutateDescriptors(t *testing.T) {
	in0, in1, out := concatTriple(t, 5, 5, 4, tensor.Float32)
	p0, p1, po := in0.Padding(), in1.Padding(), out.Padding()
	v := out.ValidRegion()

	require.NoError(t, Validate(kernel.Capabilities{}, in0, in1, out))

	assert.Equal(t, p0, in0.Padding())
	assert.Equal(t, p1, in1.Padding())
	assert.Equal(t, po, out.Padding())
	assert.Equal(t, v.Shape, out.ValidRegion().Shape)
}
