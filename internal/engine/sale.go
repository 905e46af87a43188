package engine

import (
	"sort"

	"github.com/tdsretail/stockroom/internal/model"
)

// AggregateDemand computes total required quantity per stock item for a
// set of cart lines against a menu. Contributions are summed across
// duplicate ingredient lines within one recipe and across the same stock
// item appearing in several menu items. Lines whose menu item does not
// resolve contribute nothing — a cart can only reference listed items in
// normal operation, and defensive resolution must not fail.
//
// This single aggregation rule serves both sale validation (one cart) and
// lifetime consumption reporting (the whole sale log).
func AggregateDemand(menu []model.MenuItem, lines []model.SaleLine) map[string]float64 {
	demand := make(map[string]float64)
	for _, line := range lines {
		var recipe []model.RecipeIngredient
		for i := range menu {
			if menu[i].ID == line.MenuItemID {
				recipe = menu[i].Ingredients
				break
			}
		}
		for _, ing := range recipe {
			demand[ing.StockItemID] += ing.Quantity * line.Quantity
		}
	}
	return demand
}

// RecordSale validates a cart against available stock and, only if every
// demanded quantity is covered, deducts inventory and appends an immutable
// sale record.
//
// Two phases: compute aggregate demand, check every stock item, then commit
// in one step. If ANY item is short, the engine returns
// InsufficientStockError naming all deficient items, deducts nothing, and
// appends nothing. Inventory can never be left partially fulfilled or
// negative, even for carts whose recipes overlap ingredients.
func (e *Engine) RecordSale(lines []model.SaleLine) (model.Sale, error) {
	if len(lines) == 0 {
		return model.Sale{}, newValidationError("cart", "must not be empty")
	}
	for _, line := range lines {
		if line.Quantity <= 0 {
			return model.Sale{}, newValidationError("cart", "quantity for %s must be positive", line.MenuItemID)
		}
	}

	demand := AggregateDemand(e.state.Menu, lines)

	// Phase one: validate the whole demand map before touching anything.
	var shortages []Shortage
	for i := range e.state.Stock {
		required, ok := demand[e.state.Stock[i].ID]
		if !ok {
			continue
		}
		if e.state.Stock[i].RemainingQuantity < required {
			shortages = append(shortages, Shortage{
				StockItemID: e.state.Stock[i].ID,
				Name:        e.state.Stock[i].Name,
				Required:    required,
				Available:   e.state.Stock[i].RemainingQuantity,
			})
		}
	}
	// Demand for a stock item missing from the ledger entirely cannot be
	// satisfied. The delete cascade makes this unreachable in practice, but
	// the check keeps the all-or-nothing guarantee airtight.
	var orphaned []string
	for id := range demand {
		if _, ok := e.state.FindStock(id); !ok {
			orphaned = append(orphaned, id)
		}
	}
	sort.Strings(orphaned)
	for _, id := range orphaned {
		shortages = append(shortages, Shortage{
			StockItemID: id,
			Name:        id,
			Required:    demand[id],
			Available:   0,
		})
	}

	if len(shortages) > 0 {
		e.log.Warn("sale rejected: insufficient stock", "deficient_items", len(shortages))
		return model.Sale{}, &InsufficientStockError{Shortages: shortages}
	}

	// Phase two: commit. No intermediate state is observable; execution is
	// single-threaded and nothing below can fail.
	for i := range e.state.Stock {
		if required, ok := demand[e.state.Stock[i].ID]; ok {
			e.state.Stock[i].RemainingQuantity -= required
		}
	}

	sale := model.Sale{
		ID:        e.ids.NewID(model.IDKindSale),
		Timestamp: e.clock.NextMillis(),
		Items:     make([]model.SaleLine, len(lines)),
	}
	copy(sale.Items, lines)
	e.state.Sales = append(e.state.Sales, sale)

	e.log.Info("sale recorded", "id", sale.ID, "lines", len(lines), "stock_items_deducted", len(demand))
	e.persist()
	return sale.Clone(), nil
}
