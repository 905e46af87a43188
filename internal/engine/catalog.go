package engine

import "github.com/tdsretail/stockroom/internal/model"

// MenuItemUpdate carries the fields of a partial menu item update. Nil
// fields are left unchanged; a non-nil Ingredients fully replaces the prior
// list and is validated like a creation.
type MenuItemUpdate struct {
	Name        *string
	ImageURL    *string
	IsActive    *bool
	Ingredients *[]model.RecipeIngredient
}

// AddMenuItem creates a menu item with the given recipe. New items are
// active by default. Every ingredient line must name an existing stock item
// and a positive quantity; an empty unit is copied from the referenced
// stock item's current unit.
func (e *Engine) AddMenuItem(name, imageURL string, ingredients []model.RecipeIngredient) (model.MenuItem, error) {
	name = model.NormalizeName(name)
	if name == "" {
		return model.MenuItem{}, newValidationError("name", "must not be empty")
	}
	recipe, err := e.validateRecipe(ingredients)
	if err != nil {
		return model.MenuItem{}, err
	}

	item := model.MenuItem{
		ID:          e.ids.NewID(model.IDKindMenu),
		Name:        name,
		ImageURL:    imageURL,
		IsActive:    true,
		Ingredients: recipe,
	}
	e.state.Menu = append(e.state.Menu, item)

	e.log.Info("menu item added", "id", item.ID, "name", item.Name, "ingredients", len(recipe))
	e.persist()
	return item.Clone(), nil
}

// UpdateMenuItem merges the provided fields into the existing record.
// Validation runs against a working copy before anything is stored, so a
// rejected update leaves the item untouched.
func (e *Engine) UpdateMenuItem(id string, update MenuItemUpdate) (model.MenuItem, error) {
	idx := -1
	for i := range e.state.Menu {
		if e.state.Menu[i].ID == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return model.MenuItem{}, &NotFoundError{Kind: "menu item", ID: id}
	}

	next := e.state.Menu[idx].Clone()
	if update.Name != nil {
		name := model.NormalizeName(*update.Name)
		if name == "" {
			return model.MenuItem{}, newValidationError("name", "must not be empty")
		}
		next.Name = name
	}
	if update.ImageURL != nil {
		next.ImageURL = *update.ImageURL
	}
	if update.IsActive != nil {
		next.IsActive = *update.IsActive
	}
	if update.Ingredients != nil {
		recipe, err := e.validateRecipe(*update.Ingredients)
		if err != nil {
			return model.MenuItem{}, err
		}
		next.Ingredients = recipe
	}

	e.state.Menu[idx] = next
	e.log.Info("menu item updated", "id", id)
	e.persist()
	return next.Clone(), nil
}

// RemoveMenuItem deletes the menu item outright. Sales keep their own copy
// of the menu item ID, so no cascade is needed; later lookups treat the ID
// as "no longer exists" without erroring.
func (e *Engine) RemoveMenuItem(id string) error {
	for i := range e.state.Menu {
		if e.state.Menu[i].ID != id {
			continue
		}
		e.state.Menu = append(e.state.Menu[:i], e.state.Menu[i+1:]...)
		e.log.Info("menu item removed", "id", id)
		e.persist()
		return nil
	}
	return &NotFoundError{Kind: "menu item", ID: id}
}

// SetMenuItemActive toggles sale eligibility without touching the recipe.
func (e *Engine) SetMenuItemActive(id string, isActive bool) error {
	for i := range e.state.Menu {
		if e.state.Menu[i].ID != id {
			continue
		}
		e.state.Menu[i].IsActive = isActive
		e.log.Info("menu item activity set", "id", id, "active", isActive)
		e.persist()
		return nil
	}
	return &NotFoundError{Kind: "menu item", ID: id}
}

// validateRecipe checks an ingredient list against the creation contract
// and returns a copy with empty units filled from the referenced stock
// items. Duplicate lines for the same stock item are kept as authored;
// they are summed at demand time, never merged here.
func (e *Engine) validateRecipe(ingredients []model.RecipeIngredient) ([]model.RecipeIngredient, error) {
	if len(ingredients) == 0 {
		return nil, newValidationError("ingredients", "recipe must have at least one ingredient")
	}

	out := make([]model.RecipeIngredient, len(ingredients))
	for i, ing := range ingredients {
		if ing.Quantity <= 0 {
			return nil, newValidationError("ingredients", "quantity for %s must be positive", ing.StockItemID)
		}
		stock, ok := e.state.FindStock(ing.StockItemID)
		if !ok {
			return nil, newValidationError("ingredients", "stock item %s does not exist", ing.StockItemID)
		}
		if ing.Unit == "" {
			ing.Unit = stock.Unit
		}
		out[i] = ing
	}
	return out, nil
}
