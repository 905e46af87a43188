package model

// StockItem is an inventory-tracked ingredient.
//
// INVARIANT: RemainingQuantity >= 0 at all times. The engine clamps
// adjustments at zero rather than erroring; a quantity below zero is never
// observable, even transiently.
type StockItem struct {
	ID                string   `json:"id"`
	Name              string   `json:"name"`
	Category          Category `json:"type"`
	Unit              Unit     `json:"unit"`
	RemainingQuantity float64  `json:"remainingQuantity"`
	AlertThreshold    float64  `json:"alertThreshold"`
}

// LowStock reports whether the item has fallen to or below its alert
// threshold.
func (s StockItem) LowStock() bool {
	return s.RemainingQuantity <= s.AlertThreshold
}

// RecipeIngredient is one line of a recipe. Unit is copied from the
// referenced stock item at authoring time and is not re-derived afterwards.
// Duplicate lines referencing the same stock item are legal and are summed
// at demand-aggregation time, never merged in storage.
type RecipeIngredient struct {
	StockItemID string  `json:"stockItemId"`
	Quantity    float64 `json:"quantity"`
	Unit        Unit    `json:"unit"`
}

// MenuItem is a sellable product with a fixed recipe.
//
// Ingredients reference stock items by ID only. References may become
// dangling solely through stock-item deletion, which the engine repairs by
// pruning the dangling lines in the same step as the deletion.
type MenuItem struct {
	ID          string             `json:"id"`
	Name        string             `json:"name"`
	ImageURL    string             `json:"imageUrl"`
	IsActive    bool               `json:"isActive"`
	Ingredients []RecipeIngredient `json:"ingredients"`
}

// Clone returns a deep copy of the menu item.
func (m MenuItem) Clone() MenuItem {
	out := m
	out.Ingredients = make([]RecipeIngredient, len(m.Ingredients))
	copy(out.Ingredients, m.Ingredients)
	return out
}

// SaleLine is one (menu item, quantity) pair of a cart.
type SaleLine struct {
	MenuItemID string  `json:"menuItemId"`
	Quantity   float64 `json:"quantity"`
}

// Sale is an immutable record of a completed transaction. The sale log is
// append-only: sales are never mutated or deleted, and they keep their
// MenuItemID values even after the referenced menu item is gone.
type Sale struct {
	ID        string     `json:"id"`
	Timestamp int64      `json:"timestamp"` // unix milliseconds, monotonic per insertion order
	Items     []SaleLine `json:"items"`
}

// Clone returns a deep copy of the sale.
func (s Sale) Clone() Sale {
	out := s
	out.Items = make([]SaleLine, len(s.Items))
	copy(out.Items, s.Items)
	return out
}

// State is the full engine state: the three collections, in insertion
// order. Its JSON encoding is the persistence snapshot format.
type State struct {
	Stock []StockItem `json:"stock"`
	Menu  []MenuItem  `json:"menu"`
	Sales []Sale      `json:"sales"`
}

// Clone returns a deep copy of the state. Read accessors hand out clones so
// callers can never reach into engine-owned slices.
func (st State) Clone() State {
	out := State{
		Stock: make([]StockItem, len(st.Stock)),
		Menu:  make([]MenuItem, 0, len(st.Menu)),
		Sales: make([]Sale, 0, len(st.Sales)),
	}
	copy(out.Stock, st.Stock)
	for _, m := range st.Menu {
		out.Menu = append(out.Menu, m.Clone())
	}
	for _, s := range st.Sales {
		out.Sales = append(out.Sales, s.Clone())
	}
	return out
}

// FindStock returns the stock item with the given ID, or false.
func (st State) FindStock(id string) (StockItem, bool) {
	for _, s := range st.Stock {
		if s.ID == id {
			return s, true
		}
	}
	return StockItem{}, false
}

// FindMenu returns the menu item with the given ID, or false.
func (st State) FindMenu(id string) (MenuItem, bool) {
	for _, m := range st.Menu {
		if m.ID == id {
			return m, true
		}
	}
	return MenuItem{}, false
}
