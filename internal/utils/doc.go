// Package utils provides shared low-level helpers used throughout the parley
// internals. It covers the HTTP request helper for synchronous JSON round-trips
// with LLM provider APIs, generic pointer and string utilities, and a simple
// elapsed-time timer.
//
// Key entry points: [DoPostSync] for synchronous JSON round-trips,
// [ParseStringAs] for decoding model output into typed values with automatic
// JSON repair, [Ptr] for converting values to pointers, and [Timer] for
// measuring latency.
package utils
