// Package store persists engine state snapshots in a SQLite-backed
// key-value blob store.
//
// One row per namespace: the full {stock, menu, sales} state serialized as
// a single JSON blob, replaced wholesale on every save. The engine treats
// storage as a fire-and-forget collaborator; a missing or malformed blob is
// reported as absent so callers fall back to the seed dataset instead of
// failing startup.
package store
