package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

// concatWidthKernel is the host rendition of the concatenate_width_x2
// kernel: per vector chunk of the output width it selects each lane from
// input0 or input1 and optionally rescales quantized values into the
// output's domain.
type concatWidthKernel struct {
	dtype       tensor.DataType
	vecSize     int
	depth       int
	input0Width int
	elementSize int

	rescale   bool
	offsetIn0 float32
	scaleIn0  float32
	offsetIn1 float32
	scaleIn1  float32
	offsetOut float32
	scaleOut  float32
}

func newConcatWidthKernel(opts *kernel.BuildOptions) (*concatWidthKernel, error) {
	name, ok := opts.Lookup("DATA_TYPE")
	if !ok {
		return nil, fmt.Errorf("cpu: concatenate_width_x2: DATA_TYPE not defined")
	}
	dtype := tensor.ParseDataType(name)
	if dtype == tensor.Unknown || dtype == tensor.Float16 {
		return nil, fmt.Errorf("cpu: concatenate_width_x2: unsupported DATA_TYPE %q", name)
	}

	k := &concatWidthKernel{dtype: dtype}
	var err error
	if k.vecSize, err = opts.Int("VEC_SIZE"); err != nil {
		return nil, err
	}
	if k.depth, err = opts.Int("DEPTH"); err != nil {
		return nil, err
	}
	if k.input0Width, err = opts.Int("INPUT1_WIDTH"); err != nil {
		return nil, err
	}
	if k.elementSize, err = opts.Int("ELEMENT_SIZE"); err != nil {
		return nil, err
	}

	if _, ok := opts.Lookup("OFFSET_IN1"); ok {
		k.rescale = true
		fields := []struct {
			name string
			dst  *float32
		}{
			{"OFFSET_IN1", &k.offsetIn0}, {"SCALE_IN1", &k.scaleIn0},
			{"OFFSET_IN2", &k.offsetIn1}, {"SCALE_IN2", &k.scaleIn1},
			{"OFFSET_OUT", &k.offsetOut}, {"SCALE_OUT", &k.scaleOut},
		}
		for _, f := range fields {
			if *f.dst, err = opts.Float(f.name); err != nil {
				return nil, err
			}
		}
		if !k.dtype.IsQuantizedAsymmetric() {
			return nil, fmt.Errorf("cpu: concatenate_width_x2: rescale requested for %s", k.dtype)
		}
	}

	return k, nil
}

// Name returns the kernel name.
func (k *concatWidthKernel) Name() string {
	return "concatenate_width_x2"
}

// run walks one 4D slice. Vector chunk bases are clamped exactly as the
// device kernel clamps them: whenever a lane selects input0 the chunk base
// equals the output chunk, and input1 lanes resolve to x - input0Width.
// Lanes past the logical output width land in declared padding.
func (k *concatWidthKernel) run(args *kernel.ArgList, slice window.Window) error {
	if len(args.Tensors) != 3 {
		return fmt.Errorf("cpu: concatenate_width_x2: want 3 tensor arguments, got %d", len(args.Tensors))
	}
	if len(args.Scalars) != 2 {
		return fmt.Errorf("cpu: concatenate_width_x2: want 2 scalar arguments, got %d", len(args.Scalars))
	}
	src0, src1, dst := args.Tensors[0], args.Tensors[1], args.Tensors[2]
	pad0Right := int(args.Scalars[0])
	pad1Left := int(args.Scalars[1])
	w0 := k.input0Width

	xd, yd := slice.Dim(window.DimX), slice.Dim(window.DimY)
	zd, wd := slice.Dim(window.DimZ), slice.Dim(window.DimW)

	for wi := 0; wi < wd.NumIterations(); wi++ {
		for zi := 0; zi < zd.NumIterations(); zi++ {
			for yi := 0; yi < yd.NumIterations(); yi++ {
				for xi := 0; xi < xd.NumIterations(); xi++ {
					x := xd.Start + xi*xd.Step
					x1 := min(x, w0+pad0Right-k.vecSize)
					x2 := max(x-w0, -pad1Left)

					for lane := 0; lane < k.vecSize; lane++ {
						gx := x + lane
						var src kernel.Tensor4DArg
						var sx int
						if gx < w0 {
							src, sx = src0, x1+lane
						} else {
							src, sx = src1, x2+lane
						}
						srcOff := argOffset(src, sx-xd.Start, yi, zi, wi)
						dstOff := argOffset(dst, gx-xd.Start, yi, zi, wi)

						if k.rescale {
							inOff, inScale := k.offsetIn0, k.scaleIn0
							if gx >= w0 {
								inOff, inScale = k.offsetIn1, k.scaleIn1
							}
							k.rescaleElement(src.Tensor.Data(), srcOff, dst.Tensor.Data(), dstOff, inOff, inScale)
						} else {
							copy(dst.Tensor.Data()[dstOff:dstOff+k.elementSize],
								src.Tensor.Data()[srcOff:srcOff+k.elementSize])
						}
					}
				}
			}
		}
	}
	return nil
}

// argOffset resolves a byte offset relative to the argument's slice origin.
// rx may be negative (left padding) or beyond the shape (right padding).
func argOffset(arg kernel.Tensor4DArg, rx, ry, rz, rw int) int {
	return arg.Offset + rx*arg.Strides[0] + ry*arg.Strides[1] +
		rz*arg.Strides[2] + rw*arg.Strides[3]
}

// rescaleElement converts one quantized element from an input domain to the
// output domain: round((v - inOffset) * inScale / outScale) + outOffset,
// saturated to the output type.
func (k *concatWidthKernel) rescaleElement(src []byte, srcOff int, dst []byte, dstOff int, inOffset, inScale float32) {
	var v float32
	switch k.dtype {
	case tensor.QAsymmU8:
		v = float32(src[srcOff])
	case tensor.QAsymmS8:
		v = float32(int8(src[srcOff]))
	default:
		panic(fmt.Sprintf("cpu: rescale on non-quantized type %s", k.dtype))
	}

	out := math.Round(float64((v-inOffset)*inScale/k.scaleOut)) + float64(k.offsetOut)

	switch k.dtype {
	case tensor.QAsymmU8:
		dst[dstOff] = uint8(math.Min(255, math.Max(0, out)))
	case tensor.QAsymmS8:
		dst[dstOff] = byte(int8(math.Min(127, math.Max(-128, out))))
	}
}
