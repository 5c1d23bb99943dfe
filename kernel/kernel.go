// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package kernel provides the public compute contracts of the seam
// concatenation core: build options, the compiler and queue interfaces and
// the variant cache.
package kernel

import (
	"github.com/born-ml/seam/internal/kernel"
)

// Kernel is an opaque compiled compute kernel instance.
type Kernel = kernel.Kernel

// Capabilities describes what a compute device can execute.
type Capabilities = kernel.Capabilities

// Compiler compiles (or fetches) kernel variants for a device.
type Compiler = kernel.Compiler

// Queue sequences kernel invocations.
type Queue = kernel.Queue

// LaunchHint carries an optional launch configuration for one enqueue.
type LaunchHint = kernel.LaunchHint

// BuildOptions is the macro-style key/value set a kernel variant is
// compiled with.
type BuildOptions = kernel.BuildOptions

// ArgList is the ordered argument binding of one kernel invocation.
type ArgList = kernel.ArgList

// Tensor4DArg is the per-slice argument block of one tensor.
type Tensor4DArg = kernel.Tensor4DArg

// Cache is a variant cache in front of a Compiler.
type Cache = kernel.Cache

// NewBuildOptions returns an empty option set.
func NewBuildOptions() *BuildOptions {
	return kernel.NewBuildOptions()
}

// NewCache wraps a compiler with a variant cache.
func NewCache(c Compiler) *Cache {
	return kernel.NewCache(c)
}
