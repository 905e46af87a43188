// Package report derives read-only views from the sale log: lifetime
// ingredient consumption, sale counts, and the downloadable CSV report.
//
// Consumption reuses the engine's demand aggregation rule, run across the
// whole log instead of a single cart. Sale lines whose menu item no longer
// resolves contribute nothing and render as "Deleted Item".
package report
