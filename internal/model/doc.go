// Package model defines the core records tracked by the engine: stock
// items, menu items with their recipes, and the append-only sale log.
//
// The JSON shape of these types IS the snapshot wire format. Field tags
// are stable and must not change without a snapshot migration.
package model
