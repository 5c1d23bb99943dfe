package concat

import (
	"fmt"
	"time"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/logger"
	"github.com/born-ml/seam/internal/metrics"
	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

// KernelName identifies the pairwise width-concatenation kernel requested
// from the compiler.
const KernelName = "concatenate_width_x2"

// Pack bundles the live tensors of one execution.
type Pack struct {
	Input0 *tensor.Raw
	Input1 *tensor.Raw
	Output *tensor.Raw
}

// WidthConcat concatenates two tensors along the width axis into a
// pre-allocated output. Configure once, then Run any number of times with
// the same bound parameters and kernel instance.
//
// Configure panics on invalid descriptors: callers are expected to have
// checked them with Validate first, so a failure here is a programming
// error, not a recoverable condition.
type WidthConcat struct {
	kernel     kernel.Kernel
	win        window.Window
	pad0Right  uint32
	pad1Left   uint32
	configID   string
	configured bool
}

// NewWidthConcat returns an unconfigured operation.
func NewWidthConcat() *WidthConcat {
	return &WidthConcat{}
}

// Configure derives the kernel parameterization from the descriptors,
// requests the kernel variant from the compiler, plans the iteration window
// and marks the output's full shape valid. Only the output descriptor is
// mutated.
func (c *WidthConcat) Configure(compiler kernel.Compiler, in0, in1, out *tensor.Info) {
	start := time.Now()

	if in0 == nil || in1 == nil || out == nil {
		panic(fmt.Sprintf("concat: configure: %v", ErrNilDescriptor))
	}
	if err := validateArguments(compiler.Capabilities(), in0, in1, out); err != nil {
		panic(fmt.Sprintf("concat: configure: %v", err))
	}

	w0 := in0.Dimension(0)

	opts := kernel.NewBuildOptions()
	opts.Define("DATA_TYPE", in0.DataType().String())
	opts.DefineInt("VEC_SIZE", VectorWidth)
	opts.DefineInt("DEPTH", in0.Dimension(2))
	opts.DefineInt("INPUT1_WIDTH", w0)
	opts.DefineInt("ELEMENT_SIZE", in0.ElementSize())

	// Inputs in different quantization domains must be rescaled into the
	// output's domain while copying.
	if in0.DataType().IsQuantizedAsymmetric() &&
		tensor.HaveDifferentQuantization(out, in0, in1) {
		iq0 := in0.Quantization()
		iq1 := in1.Quantization()
		oq := out.Quantization()
		opts.DefineFloat("OFFSET_IN1", float32(iq0.Offset))
		opts.DefineFloat("SCALE_IN1", iq0.Scale)
		opts.DefineFloat("OFFSET_IN2", float32(iq1.Offset))
		opts.DefineFloat("SCALE_IN2", iq1.Scale)
		opts.DefineFloat("OFFSET_OUT", float32(oq.Offset))
		opts.DefineFloat("SCALE_OUT", oq.Scale)
	}

	k, err := compiler.Compile(KernelName, opts)
	if err != nil {
		panic(fmt.Sprintf("concat: configure: %v", err))
	}

	win, err := planWindow(in0, in1, out)
	if err != nil {
		panic(fmt.Sprintf("concat: configure: %v", err))
	}

	// The operation always fully populates the output.
	out.SetValidRegion(tensor.ValidRegion{
		Anchor: make([]int, out.NumDimensions()),
		Shape:  out.Shape().Clone(),
	})

	c.kernel = k
	c.win = win
	//nolint:gosec // both paddings are in [0, VectorWidth]
	c.pad0Right = uint32(window.CeilToMultiple(w0, VectorWidth) - w0)
	//nolint:gosec // see above
	c.pad1Left = uint32(w0 % VectorWidth)
	c.configID = fmt.Sprintf("%s_%s_%d_%d_%d_%d", KernelName, in0.DataType(),
		in0.Dimension(0), in0.Dimension(1), in1.Dimension(0), in1.Dimension(1))
	c.configured = true

	metrics.ConfigureDuration.Observe(time.Since(start).Seconds())
	logger.Log.Debug("configured width concat",
		"config_id", c.configID,
		"pad0_right", c.pad0Right,
		"pad1_left", c.pad1Left)
}

// Window returns the configured iteration window.
func (c *WidthConcat) Window() window.Window {
	return c.win
}

// ConfigID returns the variant key of this configuration, used downstream
// for launch-parameter tuning and caching.
func (c *WidthConcat) ConfigID() string {
	return c.configID
}

// Run executes the configured operation over win, which must be a
// restriction of the configured window. Each 4D slice is bound and enqueued
// in order; queue errors are returned unchanged.
func (c *WidthConcat) Run(pack Pack, win window.Window, q kernel.Queue) error {
	if !c.configured {
		panic("concat: Run called on an unconfigured operation")
	}
	if pack.Input0 == nil || pack.Input1 == nil || pack.Output == nil {
		panic(fmt.Sprintf("concat: run: %v", ErrNilDescriptor))
	}
	if !c.win.Contains(win) {
		panic("concat: run window is not a restriction of the configured window")
	}

	slice := win.FirstSlice4D()
	for {
		args := &kernel.ArgList{}
		args.Add4DTensor(pack.Input0, slice)
		args.Add4DTensor(pack.Input1, slice)
		args.Add4DTensor(pack.Output, slice)
		args.AddScalar(c.pad0Right)
		args.AddScalar(c.pad1Left)

		if err := q.Enqueue(c.kernel, args, slice, kernel.LaunchHint{}); err != nil {
			return fmt.Errorf("concat: enqueue: %w", err)
		}
		metrics.SlicesEnqueued.Inc()

		if !win.SlideSlice4D(&slice) {
			return nil
		}
	}
}
