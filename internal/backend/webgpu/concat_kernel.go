package webgpu

import (
	"encoding/binary"
	"fmt"

	"github.com/go-webgpu/webgpu/wgpu"

	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/logger"
	"github.com/born-ml/seam/internal/tensor"
	"github.com/born-ml/seam/internal/window"
)

// workgroup tile for the concat shader: 8 chunks by 8 rows per workgroup.
const (
	workgroupX = 8
	workgroupY = 8
)

// concatKernel is a compiled concatenate_width_x2 variant: a compute
// pipeline with the vector width, first input width and depth folded into
// the WGSL source as constants.
type concatKernel struct {
	key      string
	pipeline *wgpu.ComputePipeline
	vecSize  int
	depth    int
}

// Name returns the kernel name.
func (k *concatKernel) Name() string {
	return "concatenate_width_x2"
}

// Compile builds the named kernel from its build options. Only float32 is
// supported on this backend; quantized concatenation stays on the CPU
// reference backend.
func (b *Backend) Compile(name string, opts *kernel.BuildOptions) (kernel.Kernel, error) {
	if name != "concatenate_width_x2" {
		return nil, fmt.Errorf("webgpu: unknown kernel %q", name)
	}
	dtypeName, _ := opts.Lookup("DATA_TYPE")
	if tensor.ParseDataType(dtypeName) != tensor.Float32 {
		return nil, fmt.Errorf("webgpu: only float32 is supported, got %s", dtypeName)
	}
	if _, ok := opts.Lookup("OFFSET_IN1"); ok {
		return nil, fmt.Errorf("webgpu: quantized rescale is not supported")
	}

	vecSize, err := opts.Int("VEC_SIZE")
	if err != nil {
		return nil, err
	}
	depth, err := opts.Int("DEPTH")
	if err != nil {
		return nil, err
	}
	input0Width, err := opts.Int("INPUT1_WIDTH")
	if err != nil {
		return nil, err
	}

	key := name + " " + opts.Key()
	code := concatShaderWGSL(vecSize, input0Width, depth)
	shader := b.compileShader(key, code)
	pipeline := b.getOrCreatePipeline(key, shader)

	return &concatKernel{
		key:      key,
		pipeline: pipeline,
		vecSize:  vecSize,
		depth:    depth,
	}, nil
}

// concatShaderWGSL renders the concat shader with the variant's constants
// folded in. Chunk bases are clamped exactly like the reference kernel so
// no lane ever indexes outside the padded allocations.
func concatShaderWGSL(vecSize, input0Width, depth int) string {
	return fmt.Sprintf(`
@group(0) @binding(0) var<storage, read> src0: array<f32>;
@group(0) @binding(1) var<storage, read> src1: array<f32>;
@group(0) @binding(2) var<storage, read_write> dst: array<f32>;

struct Params {
    src0_offset: u32, src0_sy: u32, src0_sz: u32, src0_sw: u32,
    src1_offset: u32, src1_sy: u32, src1_sz: u32, src1_sw: u32,
    dst_offset: u32,  dst_sy: u32,  dst_sz: u32,  dst_sw: u32,
    x_start: i32, chunks: u32, rows: u32, planes: u32,
    pad0_right: u32, pad1_left: u32,
}
@group(0) @binding(3) var<uniform> params: Params;

const VEC: i32 = %d;
const W0: i32 = %d;
const DEPTH: u32 = %du;

@compute @workgroup_size(%d, %d, 1)
fn main(@builtin(global_invocation_id) gid: vec3<u32>) {
    if (gid.x >= params.chunks || gid.y >= params.rows || gid.z >= params.planes) {
        return;
    }
    let z = i32(gid.z %% DEPTH);
    let w = i32(gid.z / DEPTH);
    let x = params.x_start + i32(gid.x) * VEC;
    let x1 = min(x, W0 + i32(params.pad0_right) - VEC);
    let x2 = max(x - W0, -i32(params.pad1_left));
    let y = i32(gid.y);

    for (var lane: i32 = 0; lane < VEC; lane = lane + 1) {
        let gx = x + lane;
        var v: f32;
        if (gx < W0) {
            let idx = i32(params.src0_offset) + (x1 + lane - params.x_start)
                + y * i32(params.src0_sy) + z * i32(params.src0_sz) + w * i32(params.src0_sw);
            v = src0[u32(idx)];
        } else {
            let idx = i32(params.src1_offset) + (x2 + lane - params.x_start)
                + y * i32(params.src1_sy) + z * i32(params.src1_sz) + w * i32(params.src1_sw);
            v = src1[u32(idx)];
        }
        let out = i32(params.dst_offset) + (gx - params.x_start)
            + y * i32(params.dst_sy) + z * i32(params.dst_sz) + w * i32(params.dst_sw);
        dst[u32(out)] = v;
    }
}
`, vecSize, input0Width, depth, workgroupX, workgroupY)
}

// Enqueue dispatches one compute pass for a slice: uploads the three padded
// allocations, binds the per-slice uniform and copies the output back into
// host memory once the pass is submitted.
func (b *Backend) Enqueue(k kernel.Kernel, args *kernel.ArgList, slice window.Window, hint kernel.LaunchHint) error {
	ck, ok := k.(*concatKernel)
	if !ok {
		return fmt.Errorf("webgpu: kernel %q was not compiled by this backend", k.Name())
	}
	if len(args.Tensors) != 3 || len(args.Scalars) != 2 {
		return fmt.Errorf("webgpu: concatenate_width_x2: malformed argument list")
	}
	if hint.WorkgroupSize != [3]int{} {
		logger.Log.Debug("webgpu: launch hint ignored, workgroup size is folded into the pipeline")
	}

	src0, src1, dst := args.Tensors[0], args.Tensors[1], args.Tensors[2]

	bufSrc0 := b.createBuffer(src0.Tensor.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufSrc0.Release()
	bufSrc1 := b.createBuffer(src1.Tensor.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc)
	defer bufSrc1.Release()
	// The output is uploaded too: lanes outside the run window must keep
	// their previous contents.
	bufDst := b.createBuffer(dst.Tensor.Data(), wgpu.BufferUsageStorage|wgpu.BufferUsageCopySrc|wgpu.BufferUsageCopyDst)
	defer bufDst.Release()

	params, err := sliceParams(args, slice)
	if err != nil {
		return err
	}
	bufParams := b.createUniformBuffer(params)
	defer bufParams.Release()

	bindGroupLayout := ck.pipeline.GetBindGroupLayout(0)
	bindGroup := b.device.CreateBindGroupSimple(bindGroupLayout, []wgpu.BindGroupEntry{
		wgpu.BufferBindingEntry(0, bufSrc0, 0, uint64(len(src0.Tensor.Data()))),
		wgpu.BufferBindingEntry(1, bufSrc1, 0, uint64(len(src1.Tensor.Data()))),
		wgpu.BufferBindingEntry(2, bufDst, 0, uint64(len(dst.Tensor.Data()))),
		wgpu.BufferBindingEntry(3, bufParams, 0, uint64(len(params))),
	})
	defer bindGroup.Release()

	chunks := slice.Dim(window.DimX).NumIterations()
	rows := slice.Dim(window.DimY).NumIterations()
	planes := slice.Dim(window.DimZ).NumIterations() * slice.Dim(window.DimW).NumIterations()

	encoder := b.device.CreateCommandEncoder(nil)
	computePass := encoder.BeginComputePass(nil)
	computePass.SetPipeline(ck.pipeline)
	computePass.SetBindGroup(0, bindGroup, nil)
	//nolint:gosec // iteration counts are non-negative
	computePass.DispatchWorkgroups(
		uint32((chunks+workgroupX-1)/workgroupX),
		uint32((rows+workgroupY-1)/workgroupY),
		uint32(planes))
	computePass.End()

	cmdBuffer := encoder.Finish(nil)
	b.queue.Submit(cmdBuffer)

	result, err := b.readBuffer(bufDst, uint64(len(dst.Tensor.Data())))
	if err != nil {
		return err
	}
	copy(dst.Tensor.Data(), result)

	return nil
}

// sliceParams packs the per-slice uniform: element offsets and strides of
// the three tensors followed by the iteration extents and the two padding
// scalars. All tensors are float32, so byte quantities divide by four.
func sliceParams(args *kernel.ArgList, slice window.Window) ([]byte, error) {
	params := make([]byte, 80)
	pos := 0
	put := func(v uint32) {
		binary.LittleEndian.PutUint32(params[pos:pos+4], v)
		pos += 4
	}

	for _, t := range args.Tensors {
		if t.Offset%4 != 0 {
			return nil, fmt.Errorf("webgpu: misaligned tensor offset %d", t.Offset)
		}
		//nolint:gosec // offsets and strides are non-negative
		put(uint32(t.Offset / 4))
		for d := 1; d < tensor.MaxDimensions; d++ {
			//nolint:gosec // see above
			put(uint32(t.Strides[d] / 4))
		}
	}

	//nolint:gosec // window extents fit in 32 bits
	put(uint32(slice.Dim(window.DimX).Start))
	//nolint:gosec // see above
	put(uint32(slice.Dim(window.DimX).NumIterations()))
	//nolint:gosec // see above
	put(uint32(slice.Dim(window.DimY).NumIterations()))
	//nolint:gosec // see above
	put(uint32(slice.Dim(window.DimZ).NumIterations() * slice.Dim(window.DimW).NumIterations()))
	put(args.Scalars[0])
	put(args.Scalars[1])

	return params, nil
}
