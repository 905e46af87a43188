// Package engine implements the inventory/recipe/sale consistency engine.
//
// The Engine is a single-writer state container over three collections:
// the stock ledger, the menu catalog, and the append-only sale log. Every
// operation runs to completion before the next, validates fully before
// mutating, and leaves state untouched on any rejection (strong exception
// safety). After each successful mutation the configured save hook receives
// a snapshot of the new state; persistence failures are logged, never
// surfaced to the caller.
//
// The two cross-collection rules live here as well:
//
//   - recording a sale aggregates ingredient demand across the whole cart,
//     validates every stock item, and only then deducts — all or nothing;
//   - deleting a stock item prunes every recipe line that references it in
//     the same logical step, so dangling references never persist.
package engine
