// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package cpu provides the public handle to the CPU reference backend.
package cpu

import (
	"github.com/born-ml/seam/internal/backend/cpu"
)

// Backend implements the kernel compiler and queue contracts on host
// memory.
type Backend = cpu.Backend

// New creates a new CPU backend.
func New() *Backend {
	return cpu.New()
}
