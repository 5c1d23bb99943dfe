// Package concat implements pairwise concatenation of tensors along the
// width axis on top of an injected compute backend: descriptor validation,
// vector-aligned access-window planning and per-slice kernel dispatch.
package concat

import (
	"errors"
	"fmt"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/metrics"
	"github.com/born-ml/seam/internal/tensor"
)

// Validation failures. Each names the violated condition; callers can match
// with errors.Is.
var (
	ErrNilDescriptor       = errors.New("nil tensor descriptor")
	ErrUnsupportedDataType = errors.New("data type not supported on this device")
	ErrUnknownDataType     = errors.New("unknown data type")
	ErrDataTypeMismatch    = errors.New("mismatching data types")
	ErrWidthOverflow       = errors.New("combined input widths exceed output width")
	ErrDimensionMismatch   = errors.New("mismatching dimensions outside the width axis")
	ErrTooManyDimensions   = errors.New("dimensionality exceeds the supported maximum")
	ErrInsufficientPadding = errors.New("insufficient padding")
)

// Validate checks that in0 and in1 can be concatenated along the width axis
// into out on a device with the given capabilities, including a dry window
// plan on descriptor clones. It is pure: no descriptor is mutated.
func Validate(caps kernel.Capabilities, in0, in1, out *tensor.Info) error {
	if err := validateArguments(caps, in0, in1, out); err != nil {
		return err
	}
	if _, err := planWindow(in0.Clone(), in1.Clone(), out.Clone()); err != nil {
		metrics.ValidationErrors.WithLabelValues("insufficient_padding").Inc()
		return err
	}
	return nil
}

// validateArguments runs the argument checks in order and fails on the first
// violation.
func validateArguments(caps kernel.Capabilities, in0, in1, out *tensor.Info) error {
	if in0 == nil || in1 == nil || out == nil {
		metrics.ValidationErrors.WithLabelValues("nil_descriptor").Inc()
		return ErrNilDescriptor
	}
	if in0.DataType() == tensor.Float16 && !caps.FP16 {
		metrics.ValidationErrors.WithLabelValues("unsupported_data_type").Inc()
		return fmt.Errorf("%w: %s", ErrUnsupportedDataType, in0.DataType())
	}
	if in0.DataType() == tensor.Unknown {
		metrics.ValidationErrors.WithLabelValues("unknown_data_type").Inc()
		return ErrUnknownDataType
	}
	if in0.DataType() != in1.DataType() || in0.DataType() != out.DataType() {
		metrics.ValidationErrors.WithLabelValues("data_type_mismatch").Inc()
		return fmt.Errorf("%w: %s, %s, %s", ErrDataTypeMismatch,
			in0.DataType(), in1.DataType(), out.DataType())
	}
	if in0.Dimension(0)+in1.Dimension(0) > out.Dimension(0) {
		metrics.ValidationErrors.WithLabelValues("width_overflow").Inc()
		return fmt.Errorf("%w: %d + %d > %d", ErrWidthOverflow,
			in0.Dimension(0), in1.Dimension(0), out.Dimension(0))
	}
	for d := 1; d < tensor.MaxDimensions; d++ {
		if in0.Dimension(d) != out.Dimension(d) {
			metrics.ValidationErrors.WithLabelValues("dimension_mismatch").Inc()
			return fmt.Errorf("%w: input0 axis %d is %d, output is %d", ErrDimensionMismatch,
				d, in0.Dimension(d), out.Dimension(d))
		}
		if in1.Dimension(d) != out.Dimension(d) {
			metrics.ValidationErrors.WithLabelValues("dimension_mismatch").Inc()
			return fmt.Errorf("%w: input1 axis %d is %d, output is %d", ErrDimensionMismatch,
				d, in1.Dimension(d), out.Dimension(d))
		}
	}
	if in0.NumDimensions() > tensor.MaxDimensions {
		metrics.ValidationErrors.WithLabelValues("too_many_dimensions").Inc()
		return fmt.Errorf("%w: %d > %d", ErrTooManyDimensions,
			in0.NumDimensions(), tensor.MaxDimensions)
	}
	return nil
}
