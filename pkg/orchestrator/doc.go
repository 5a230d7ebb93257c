// Package orchestrator wires the loader, parser, model builder, and framework
// generators into a single pipeline, providing dependency injection friendly
// helpers for consumers that prefer one entry point.
package orchestrator
