// Package harness runs YAML-described scenarios against the engine and
// compares the resulting state against golden snapshots.
//
// A scenario is a flat list of operations with optional expected errors.
// The harness wires a deterministic ID generator and clock, so the final
// state serializes identically on every run and golden files stay stable.
package harness
