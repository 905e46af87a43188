package engine

import "github.com/tdsretail/stockroom/internal/model"

// AddStockItem creates a stock item and appends it to the ledger.
// The unit defaults from the category when empty; an explicit unit is kept
// as given and never re-validated against the category afterwards.
func (e *Engine) AddStockItem(name string, category model.Category, unit model.Unit, initialQuantity, alertThreshold float64) (model.StockItem, error) {
	name = model.NormalizeName(name)
	if name == "" {
		return model.StockItem{}, newValidationError("name", "must not be empty")
	}
	if !category.Valid() {
		return model.StockItem{}, newValidationError("category", "unknown category %q", category)
	}
	if unit == "" {
		unit = model.DefaultUnit(category)
	} else if !unit.Valid() {
		return model.StockItem{}, newValidationError("unit", "unknown unit %q", unit)
	}
	if initialQuantity < 0 {
		return model.StockItem{}, newValidationError("initialQuantity", "must not be negative")
	}
	if alertThreshold < 0 {
		return model.StockItem{}, newValidationError("alertThreshold", "must not be negative")
	}

	item := model.StockItem{
		ID:                e.ids.NewID(model.IDKindStock),
		Name:              name,
		Category:          category,
		Unit:              unit,
		RemainingQuantity: initialQuantity,
		AlertThreshold:    alertThreshold,
	}
	e.state.Stock = append(e.state.Stock, item)

	e.log.Info("stock item added", "id", item.ID, "name", item.Name, "quantity", item.RemainingQuantity)
	e.persist()
	return item, nil
}

// AdjustStockQuantity adds delta (positive or negative) to the item's
// remaining quantity, clamped at a floor of zero. A delta that would drive
// the value negative lands exactly at zero; the excess is absorbed
// silently. That is policy, not an error.
func (e *Engine) AdjustStockQuantity(id string, delta float64) (model.StockItem, error) {
	for i := range e.state.Stock {
		if e.state.Stock[i].ID != id {
			continue
		}
		next := e.state.Stock[i].RemainingQuantity + delta
		if next < 0 {
			next = 0
		}
		e.state.Stock[i].RemainingQuantity = next

		item := e.state.Stock[i]
		e.log.Info("stock quantity adjusted", "id", id, "delta", delta, "remaining", next)
		e.persist()
		return item, nil
	}
	return model.StockItem{}, &NotFoundError{Kind: "stock item", ID: id}
}

// RemoveStockItem deletes the stock item and, in the same logical step,
// prunes every recipe line referencing it from the catalog. Either both
// happen or neither does; no code path deletes the item while leaving a
// dangling reference behind.
//
// A menu item whose recipe becomes empty is kept: it stays addressable but
// will fail validation on its next re-save. Historical sales are untouched.
func (e *Engine) RemoveStockItem(id string) error {
	idx := -1
	for i := range e.state.Stock {
		if e.state.Stock[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return &NotFoundError{Kind: "stock item", ID: id}
	}

	e.state.Stock = append(e.state.Stock[:idx], e.state.Stock[idx+1:]...)
	pruned := e.pruneIngredient(id)

	e.log.Info("stock item removed", "id", id, "recipes_pruned", pruned)
	e.persist()
	return nil
}

// pruneIngredient removes every recipe line referencing the stock item,
// preserving the order of the remaining lines. Returns the number of menu
// items touched.
func (e *Engine) pruneIngredient(stockItemID string) int {
	touched := 0
	for i := range e.state.Menu {
		kept := e.state.Menu[i].Ingredients[:0]
		for _, ing := range e.state.Menu[i].Ingredients {
			if ing.StockItemID != stockItemID {
				kept = append(kept, ing)
			}
		}
		if len(kept) != len(e.state.Menu[i].Ingredients) {
			touched++
		}
		e.state.Menu[i].Ingredients = kept
	}
	return touched
}
