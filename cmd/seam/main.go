// Package main provides the seam CLI.
package main

import (
	"fmt"
	"os"

	"github.com/born-ml/seam/backend/cpu"
	"github.com/born-ml/seam/backend/webgpu"
	"github.com/born-ml/seam/concat"
	"github.com/born-ml/seam/internal/config"
	"github.com/born-ml/seam/internal/logger"
	"github.com/born-ml/seam/kernel"
	"github.com/born-ml/seam/tensor"
)

const version = "v0.1.0-dev"

func main() {
	cfg := config.FromEnv()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "seam: %v\n", err)
		os.Exit(1)
	}
	logger.Setup(cfg.LogLevel, cfg.LogFormat)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version":
			fmt.Printf("seam %s\n", version)
			return
		case "demo":
			if err := demo(cfg); err != nil {
				fmt.Fprintf(os.Stderr, "seam: demo: %v\n", err)
				os.Exit(1)
			}
			return
		}
	}

	fmt.Println("seam - vectorized width-axis tensor concatenation")
	fmt.Printf("Version: %s\n\n", version)
	fmt.Println("Commands:")
	fmt.Println("  version    Show version")
	fmt.Println("  demo       Concatenate two small tensors and print the result")
}

// demo concatenates a 5x2 and a 3x2 float32 tensor into an 8x2 output on
// the configured backend.
func demo(cfg *config.Config) error {
	type backend interface {
		kernel.Compiler
		kernel.Queue
	}

	var b backend
	switch cfg.Backend {
	case "webgpu":
		gpu, err := webgpu.New()
		if err != nil {
			return err
		}
		defer gpu.Release()
		b = gpu
	default:
		b = cpu.New()
	}

	const (
		w0, w1, h = 5, 3, 2
		outW      = w0 + w1
	)

	in0, err := tensor.NewRawWithPadding(tensor.Shape{w0, h}, tensor.Float32,
		tensor.PaddingSize{Right: concat.VectorWidth - w0%concat.VectorWidth})
	if err != nil {
		return err
	}
	in1, err := tensor.NewRawWithPadding(tensor.Shape{w1, h}, tensor.Float32,
		tensor.PaddingSize{Left: w0 % concat.VectorWidth, Right: concat.VectorWidth})
	if err != nil {
		return err
	}
	out, err := tensor.NewRawWithPadding(tensor.Shape{outW, h}, tensor.Float32,
		tensor.PaddingSize{})
	if err != nil {
		return err
	}

	for y := 0; y < h; y++ {
		for x := 0; x < w0; x++ {
			in0.SetFloat32(x, y, 0, 0, float32(100*y+x))
		}
		for x := 0; x < w1; x++ {
			in1.SetFloat32(x, y, 0, 0, float32(100*y+50+x))
		}
	}

	cache := kernel.NewCache(b)
	if err := concat.Validate(cache.Capabilities(), in0.Info(), in1.Info(), out.Info()); err != nil {
		return err
	}

	op := concat.NewWidthConcat()
	op.Configure(cache, in0.Info(), in1.Info(), out.Info())
	if err := op.Run(concat.Pack{Input0: in0, Input1: in1, Output: out}, op.Window(), b); err != nil {
		return err
	}

	fmt.Printf("config: %s\n", op.ConfigID())
	for y := 0; y < h; y++ {
		for x := 0; x < outW; x++ {
			fmt.Printf("%6.1f ", out.Float32At(x, y, 0, 0))
		}
		fmt.Println()
	}
	return nil
}
