// Package metrics exposes Prometheus collectors for the concatenation core.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ValidationErrors counts descriptor validation failures by reason.
	ValidationErrors = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "seam_validation_errors_total",
		Help: "Total number of descriptor validation failures",
	}, []string{"reason"})

	// KernelCacheHits counts kernel variants served from the cache.
	KernelCacheHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seam_kernel_cache_hits_total",
		Help: "Kernel requests served from the variant cache",
	})

	// KernelCacheMisses counts kernel variants that had to be compiled.
	KernelCacheMisses = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seam_kernel_cache_misses_total",
		Help: "Kernel requests that triggered a compilation",
	})

	// SlicesEnqueued counts per-slice kernel invocations handed to a queue.
	SlicesEnqueued = promauto.NewCounter(prometheus.CounterOpts{
		Name: "seam_slices_enqueued_total",
		Help: "Kernel slice invocations enqueued",
	})

	// ConfigureDuration observes how long Configure takes.
	ConfigureDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "seam_configure_duration_seconds",
		Help:    "Histogram of concat configure durations",
		Buckets: prometheus.DefBuckets,
	})
)
