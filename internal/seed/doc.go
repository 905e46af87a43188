// Package seed loads seed datasets authored in CUE.
//
// The embedded default dataset is a small coffee-bar inventory with two
// menu items. Operators can point the CLI at their own .cue file; the
// loader enforces the same referential rules as the engine (valid
// categories and units, positive recipe quantities, ingredient references
// resolving to seeded stock) so a reset never installs inconsistent state.
package seed
