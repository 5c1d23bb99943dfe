package kernel

import (
	"sync"

	"github.com/born-ml/seam/internal/logger"
	"github.com/born-ml/seam/internal/metrics"
)

// Cache is a variant cache in front of a Compiler: one compiled kernel per
// (name, build options) pair. It implements Compiler itself so callers can
// stack it transparently over any backend.
type Cache struct {
	compiler Compiler

	mu      sync.RWMutex
	kernels map[string]Kernel
}

// NewCache wraps a compiler with a variant cache.
func NewCache(c Compiler) *Cache {
	return &Cache{
		compiler: c,
		kernels:  make(map[string]Kernel),
	}
}

// Compile returns the cached kernel for this name and option set, compiling
// it on first request.
func (c *Cache) Compile(name string, opts *BuildOptions) (Kernel, error) {
	key := name + " " + opts.Key()

	c.mu.RLock()
	if k, exists := c.kernels[key]; exists {
		c.mu.RUnlock()
		metrics.KernelCacheHits.Inc()
		return k, nil
	}
	c.mu.RUnlock()

	k, err := c.compiler.Compile(name, opts)
	if err != nil {
		return nil, err
	}
	metrics.KernelCacheMisses.Inc()
	logger.Log.Debug("compiled kernel variant", "kernel", name, "options", opts.Key())

	c.mu.Lock()
	c.kernels[key] = k
	c.mu.Unlock()

	return k, nil
}

// Capabilities reports the wrapped compiler's device capabilities.
func (c *Cache) Capabilities() Capabilities {
	return c.compiler.Capabilities()
}

// Len returns the number of cached variants.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.kernels)
}
