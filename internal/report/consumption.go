package report

import (
	"github.com/tdsretail/stockroom/internal/engine"
	"github.com/tdsretail/stockroom/internal/model"
)

// LifetimeConsumption computes total consumed quantity per stock item
// across every sale in the log: sum of (recipe quantity x cart quantity)
// for every sale line whose menu item still resolves.
func LifetimeConsumption(state model.State) map[string]float64 {
	usage := make(map[string]float64)
	for _, sale := range state.Sales {
		for id, qty := range engine.AggregateDemand(state.Menu, sale.Items) {
			usage[id] += qty
		}
	}
	return usage
}

// CountSince returns how many sales have a timestamp at or after the given
// unix-millisecond instant. The log is append-only and timestamp-ordered,
// but this scans linearly - log sizes here never justify more.
func CountSince(sales []model.Sale, sinceMillis int64) int {
	n := 0
	for _, s := range sales {
		if s.Timestamp >= sinceMillis {
			n++
		}
	}
	return n
}
