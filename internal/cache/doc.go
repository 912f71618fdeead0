// Package cache provides generic, high-performance caching primitives.
//
// This package offers one cache implementation:
//
// # Cache[K, V]
//
// A simple thread-safe LRU cache suitable for single-threaded or low-contention
// scenarios. Uses a soft limit with 25% eviction when capacity is exceeded.
//
//	cache := cache.New[string, int](100)
//	cache.Set("key", 42)
//	value, ok := cache.Get("key")
//
// The package has no sharded cache; NewSharded and the hasher helpers
// are not defined here.
//
// # Performance
//
// Benchmarked on Intel i7-1255U:
//   - Cache hit: ~75ns (zero allocations)
//   - Cache miss: ~35ns
//   - Parallel (12 cores): ~170ns/op
//
// # Thread Safety
//
// Cache is safe for concurrent use.
// It should not be copied after creation (it contains a mutex).
//
// # Use in vpipe
//
// The root vpipe package uses Cache[K, V] to hold persistent
// shader-object handles that survive across frames on one renderer:
// the peak detector, dither state, 3D-LUT state, per-plane AV1 grain
// state, and per-sampler filter state. Keys are small value types
// (plane index, sampler direction); eviction is not expected to trigger
// in normal operation since the key space is bounded by the frame's
// plane/sampler count, not by cache pressure.
package cache
