// Package testutil provides deterministic random input generators for
// tests and benchmarks.
package testutil
