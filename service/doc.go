// Package service wraps the grid, search and maze packages for request
// driven callers. It validates request sizes, builds a fresh grid per
// call, and records logs, Prometheus metrics and OpenTelemetry spans.
//
// The core packages stay silent and allocation-local; everything
// observable about a request happens here.
package service
