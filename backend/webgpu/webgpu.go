// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package webgpu provides the public handle to the WebGPU backend.
package webgpu

import (
	"github.com/born-ml/seam/internal/backend/webgpu"
)

// Backend implements the kernel compiler and queue contracts on a WebGPU
// device.
type Backend = webgpu.Backend

// New creates a new WebGPU backend.
// Returns an error if WebGPU is not available or initialization fails.
func New() (*Backend, error) {
	return webgpu.New()
}

// IsAvailable checks if WebGPU is available on this system.
func IsAvailable() bool {
	return webgpu.IsAvailable()
}
