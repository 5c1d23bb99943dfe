package kernel

import (
	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

// Kernel is an opaque compiled compute kernel instance. Its parameterization
// is fixed at compile time by the BuildOptions it was requested with.
type Kernel interface {
	Name() string
}

// Capabilities describes what a compute device can execute.
type Capabilities struct {
	// FP16 reports whether half-precision arithmetic is supported.
	FP16 bool
}

// Compiler compiles (or fetches) kernel variants for a device. The core
// never depends on a concrete backend, only on this contract.
type Compiler interface {
	Compile(name string, opts *BuildOptions) (Kernel, error)
	Capabilities() Capabilities
}

// LaunchHint carries an optional launch configuration for one enqueue. The
// zero value lets the backend choose.
type LaunchHint struct {
	WorkgroupSize [3]int
}

// Queue sequences kernel invocations. Enqueue is fire-and-forget from the
// caller's perspective; completion semantics belong to the backend.
type Queue interface {
	Enqueue(k Kernel, args *ArgList, slice window.Window, hint LaunchHint) error
}

// Tensor4DArg is the per-slice argument block of one tensor: its buffer,
// the allocation's byte strides and the byte offset of the slice origin.
type Tensor4DArg struct {
	Tensor  *tensor.Raw
	Strides [tensor.MaxDimensions]int
	Offset  int
}

// ArgList is the ordered argument binding of one kernel invocation: the
// tensors' positional 4D argument blocks followed by trailing scalars.
type ArgList struct {
	Tensors []Tensor4DArg
	Scalars []uint32
}

// Add4DTensor appends a tensor's argument block, with the offset advanced to
// the slice's start coordinates.
func (l *ArgList) Add4DTensor(t *tensor.Raw, slice window.Window) {
	strides := t.Info().StridesInBytes()
	offset := t.Info().OffsetFirstElementInBytes()
	for d := 0; d < tensor.MaxDimensions; d++ {
		offset += slice.Dim(d).Start * strides[d]
	}
	l.Tensors = append(l.Tensors, Tensor4DArg{Tensor: t, Strides: strides, Offset: offset})
}

// AddScalar appends a trailing scalar argument.
func (l *ArgList) AddScalar(v uint32) {
	l.Scalars = append(l.Scalars, v)
}
