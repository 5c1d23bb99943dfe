package webgpu

import (
	"strings"
	"testing"

	"github.com/born-ml/seam/internal/concat"
	"github.com/born-ml/seam/internal/kernel"
	"github.com/born-ml/seam/internal/tensor"
)

func TestConcatShaderWGSLFoldsConstants(t *testing.T) {
	code := concatShaderWGSL(8, 5, 3)

	for _, want := range []string{
		"const VEC: i32 = 8;",
		"const W0: i32 = 5;",
		"const DEPTH: u32 = 3u;",
		"@workgroup_size(8, 8, 1)",
	} {
		if !strings.Contains(code, want) {
			t.Errorf("shader missing %q", want)
		}
	}
}

func TestCompileRejectsUnsupportedVariants(t *testing.T) {
	b := &Backend{}

	opts := kernel.NewBuildOptions()
	opts.Define("DATA_TYPE", "float32")
	if _, err := b.Compile("transpose", opts); err == nil {
		t.Error("expected an error for an unknown kernel name")
	}

	opts = kernel.NewBuildOptions()
	opts.Define("DATA_TYPE", "qasymmu8")
	if _, err := b.Compile("concatenate_width_x2", opts); err == nil {
		t.Error("expected an error for a quantized data type")
	}

	opts = kernel.NewBuildOptions()
	opts.Define("DATA_TYPE", "float32")
	opts.DefineFloat("OFFSET_IN1", 0)
	if _, err := b.Compile("concatenate_width_x2", opts); err == nil {
		t.Error("expected an error for rescale options")
	}
}

func TestConcatOnDevice(t *testing.T) {
	if !IsAvailable() {
		t.Skip("WebGPU not available")
	}

	b, err := New()
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	defer b.Release()

	const w0, w1, h = 5, 3, 4
	in0, err := tensor.NewRawWithPadding(tensor.Shape{w0, h}, tensor.Float32,
		tensor.PaddingSize{Right: 3})
	if err != nil {
		t.Fatal(err)
	}
	in1, err := tensor.NewRawWithPadding(tensor.Shape{w1, h}, tensor.Float32,
		tensor.PaddingSize{Left: 5})
	if err != nil {
		t.Fatal(err)
	}
	out, err := tensor.NewRaw(tensor.Shape{w0 + w1, h}, tensor.Float32)
	if err != nil {
		t.Fatal(err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w0; x++ {
			in0.SetFloat32(x, y, 0, 0, float32(100*y+x))
		}
		for x := 0; x < w1; x++ {
			in1.SetFloat32(x, y, 0, 0, float32(100*y+50+x))
		}
	}

	if err := concat.Validate(b.Capabilities(), in0.Info(), in1.Info(), out.Info()); err != nil {
		t.Fatalf("Validate: %v", err)
	}
	op := concat.NewWidthConcat()
	op.Configure(b, in0.Info(), in1.Info(), out.Info())
	if err := op.Run(concat.Pack{Input0: in0, Input1: in1, Output: out}, op.Window(), b); err != nil {
		t.Fatalf("Run: %v", err)
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w0+w1; x++ {
			want := float32(100*y + x)
			if x >= w0 {
				want = float32(100*y + 50 + x - w0)
			}
			if got := out.Float32At(x, y, 0, 0); got != want {
				t.Errorf("out(%d,%d): expected %v, got %v", x, y, want, got)
			}
		}
	}
}
