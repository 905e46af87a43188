package harness

import (
	"fmt"

	"github.com/tdsretail/stockroom/internal/engine"
	"github.com/tdsretail/stockroom/internal/model"
)

// startMillis is the fixed clock origin for scenario runs. Sale timestamps
// count up from here one millisecond per sale.
const startMillis = 1_700_000_000_000

// Run executes a scenario against a fresh engine with deterministic IDs
// and timestamps, and returns the final state. A step failing where
// success was expected (or vice versa, or with the wrong error kind) aborts
// the run.
func Run(sc *Scenario) (model.State, error) {
	e := engine.New(model.State{},
		engine.WithIDGenerator(model.NewSequenceGenerator()),
		engine.WithClock(engine.NewClockAt(startMillis)),
	)

	for i, step := range sc.Steps {
		err := applyStep(e, step)
		if err := checkExpectation(step, err); err != nil {
			return model.State{}, fmt.Errorf("scenario %s: step %d (%s): %w", sc.Name, i, step.Op, err)
		}
	}
	return e.State(), nil
}

func applyStep(e *engine.Engine, step Step) error {
	switch step.Op {
	case "add_stock":
		_, err := e.AddStockItem(step.Name, model.Category(step.Category), model.Unit(step.Unit), step.Quantity, step.Threshold)
		return err

	case "adjust_stock":
		_, err := e.AdjustStockQuantity(step.ID, step.Delta)
		return err

	case "remove_stock":
		return e.RemoveStockItem(step.ID)

	case "add_menu":
		_, err := e.AddMenuItem(step.Name, step.Image, ingredients(step.Ingredients))
		return err

	case "update_menu":
		update := engine.MenuItemUpdate{IsActive: step.Active}
		if step.Name != "" {
			update.Name = &step.Name
		}
		if step.Image != "" {
			update.ImageURL = &step.Image
		}
		if step.Ingredients != nil {
			recipe := ingredients(step.Ingredients)
			update.Ingredients = &recipe
		}
		_, err := e.UpdateMenuItem(step.ID, update)
		return err

	case "remove_menu":
		return e.RemoveMenuItem(step.ID)

	case "set_active":
		active := step.Active != nil && *step.Active
		return e.SetMenuItemActive(step.ID, active)

	case "record_sale":
		lines := make([]model.SaleLine, len(step.Cart))
		for i, c := range step.Cart {
			lines[i] = model.SaleLine{MenuItemID: c.Menu, Quantity: c.Quantity}
		}
		_, err := e.RecordSale(lines)
		return err

	case "reset":
		e.ResetAll()
		return nil
	}
	return fmt.Errorf("unknown op %q", step.Op)
}

func ingredients(specs []IngredientSpec) []model.RecipeIngredient {
	out := make([]model.RecipeIngredient, len(specs))
	for i, s := range specs {
		out[i] = model.RecipeIngredient{
			StockItemID: s.Stock,
			Quantity:    s.Quantity,
			Unit:        model.Unit(s.Unit),
		}
	}
	return out
}

func checkExpectation(step Step, err error) error {
	if step.ExpectError == "" {
		if err != nil {
			return fmt.Errorf("unexpected error: %w", err)
		}
		return nil
	}
	if err == nil {
		return fmt.Errorf("expected %s error, got success", step.ExpectError)
	}

	var matches bool
	switch step.ExpectError {
	case expectValidation:
		matches = engine.IsValidationError(err)
	case expectNotFound:
		matches = engine.IsNotFoundError(err)
	case expectInsufficientStock:
		matches = engine.IsInsufficientStockError(err)
	}
	if !matches {
		return fmt.Errorf("expected %s error, got: %w", step.ExpectError, err)
	}
	return nil
}
