// Package cpu implements the reference compute backend: kernels are parsed
// from their build options into plain Go and executed synchronously on host
// memory. It exists to pin down kernel semantics and to back the tests.
package cpu

import (
	"fmt"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/window"
)

// Backend implements kernel.Compiler and kernel.Queue on host memory.
type Backend struct{}

// New creates a new CPU backend.
func New() *Backend {
	return &Backend{}
}

// Name returns the backend name.
func (b *Backend) Name() string {
	return "CPU"
}

// Capabilities reports what this backend can execute. Half precision is not
// implemented.
func (b *Backend) Capabilities() kernel.Capabilities {
	return kernel.Capabilities{}
}

// Compile builds the named kernel from its build options.
func (b *Backend) Compile(name string, opts *kernel.BuildOptions) (kernel.Kernel, error) {
	switch name {
	case "concatenate_width_x2":
		return newConcatWidthKernel(opts)
	default:
		return nil, fmt.Errorf("cpu: unknown kernel %q", name)
	}
}

// Enqueue runs one kernel invocation over a slice. Execution is synchronous;
// an error reports argument-binding problems, never data-dependent failures.
func (b *Backend) Enqueue(k kernel.Kernel, args *kernel.ArgList, slice window.Window, _ kernel.LaunchHint) error {
	ck, ok := k.(*concatWidthKernel)
	if !ok {
		return fmt.Errorf("cpu: kernel %q was not compiled by this backend", k.Name())
	}
	return ck.run(args, slice)
}
