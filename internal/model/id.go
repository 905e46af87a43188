package model

import (
	"fmt"

	"github.com/google/uuid"
)

// IDKind selects the entity prefix for generated IDs.
type IDKind string

const (
	IDKindStock IDKind = "s"
	IDKindMenu  IDKind = "m"
	IDKindSale  IDKind = "sl"
)

// IDGenerator assigns unique IDs to new records.
// Implemented by UUIDGenerator (production) and SequenceGenerator (tests).
type IDGenerator interface {
	NewID(kind IDKind) string
}

// UUIDGenerator generates time-sortable UUIDv7 IDs with an entity prefix.
//
// UUIDv7 embeds a timestamp in the most significant bits, so IDs sort by
// creation time, which keeps listings stable without extra bookkeeping.
//
// Thread-safety: stateless and safe for concurrent use.
type UUIDGenerator struct{}

// NewID returns a prefixed UUIDv7, e.g. "s_0190d4a2-....".
// Panics if UUID generation fails (should never happen in practice).
func (UUIDGenerator) NewID(kind IDKind) string {
	return string(kind) + "_" + uuid.Must(uuid.NewV7()).String()
}

// SequenceGenerator returns short sequential IDs ("s1", "m1", "sl1", ...)
// with an independent counter per kind. Deterministic output makes it the
// generator of choice for tests and golden snapshots.
//
// Not safe for concurrent use; the engine is single-writer.
type SequenceGenerator struct {
	counters map[IDKind]int
}

// NewSequenceGenerator creates a generator with all counters at zero.
func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: make(map[IDKind]int)}
}

// NewID returns the next ID for the kind, e.g. "s1", then "s2".
func (g *SequenceGenerator) NewID(kind IDKind) string {
	g.counters[kind]++
	return fmt.Sprintf("%s%d", kind, g.counters[kind])
}
