// Package cache provides a minimal generic memoization primitive.
//
// Memo is an append-only, concurrency-safe map intended for caching values
// that are expensive to derive but immutable once built, such as compiled
// pattern matchers keyed by their configuration. Because entries are never
// evicted, it should only hold values whose key space is small and bounded in
// practice.
package cache
