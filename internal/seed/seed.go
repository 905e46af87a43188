package seed

import (
	_ "embed"
	"fmt"
	"os"
	"sync"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"

	"github.com/tdsretail/stockroom/internal/model"
)

//go:embed default.cue
var defaultCUE []byte

var defaultOnce = sync.OnceValue(func() model.State {
	state, err := FromBytes(defaultCUE, "default.cue")
	if err != nil {
		panic(fmt.Sprintf("embedded seed is invalid: %v", err))
	}
	return state
})

// Default returns the embedded default dataset.
// Panics if the embedded file fails validation, which a unit test rules out.
func Default() model.State {
	return defaultOnce().Clone()
}

// FromFile loads and validates a seed dataset from a .cue file.
func FromFile(path string) (model.State, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return model.State{}, fmt.Errorf("read seed file: %w", err)
	}
	return FromBytes(data, path)
}

// FromBytes compiles CUE source into a seed dataset and validates it.
// The filename is used for error positions only.
func FromBytes(data []byte, filename string) (model.State, error) {
	ctx := cuecontext.New()
	value := ctx.CompileBytes(data, cue.Filename(filename))
	if err := value.Err(); err != nil {
		return model.State{}, fmt.Errorf("compile seed: %w", err)
	}

	var state model.State
	if err := value.Decode(&state); err != nil {
		return model.State{}, fmt.Errorf("decode seed: %w", err)
	}
	if state.Stock == nil {
		state.Stock = []model.StockItem{}
	}
	if state.Menu == nil {
		state.Menu = []model.MenuItem{}
	}
	// Seeds never carry sales; the log starts empty.
	state.Sales = []model.Sale{}

	if err := validate(state); err != nil {
		return model.State{}, fmt.Errorf("validate seed: %w", err)
	}
	return state, nil
}

// validate applies the engine's authoring rules to the decoded dataset.
func validate(state model.State) error {
	stockIDs := make(map[string]bool, len(state.Stock))
	for _, s := range state.Stock {
		if s.ID == "" {
			return fmt.Errorf("stock item %q has no id", s.Name)
		}
		if stockIDs[s.ID] {
			return fmt.Errorf("duplicate stock id %q", s.ID)
		}
		stockIDs[s.ID] = true
		if model.NormalizeName(s.Name) == "" {
			return fmt.Errorf("stock item %s has an empty name", s.ID)
		}
		if !s.Category.Valid() {
			return fmt.Errorf("stock item %s: unknown category %q", s.ID, s.Category)
		}
		if !s.Unit.Valid() {
			return fmt.Errorf("stock item %s: unknown unit %q", s.ID, s.Unit)
		}
		if s.RemainingQuantity < 0 || s.AlertThreshold < 0 {
			return fmt.Errorf("stock item %s: negative quantity or threshold", s.ID)
		}
	}

	menuIDs := make(map[string]bool, len(state.Menu))
	for _, m := range state.Menu {
		if m.ID == "" {
			return fmt.Errorf("menu item %q has no id", m.Name)
		}
		if menuIDs[m.ID] {
			return fmt.Errorf("duplicate menu id %q", m.ID)
		}
		menuIDs[m.ID] = true
		if model.NormalizeName(m.Name) == "" {
			return fmt.Errorf("menu item %s has an empty name", m.ID)
		}
		if len(m.Ingredients) == 0 {
			return fmt.Errorf("menu item %s has an empty recipe", m.ID)
		}
		for _, ing := range m.Ingredients {
			if ing.Quantity <= 0 {
				return fmt.Errorf("menu item %s: non-positive quantity for %s", m.ID, ing.StockItemID)
			}
			if !stockIDs[ing.StockItemID] {
				return fmt.Errorf("menu item %s references unknown stock item %s", m.ID, ing.StockItemID)
			}
			if !ing.Unit.Valid() {
				return fmt.Errorf("menu item %s: unknown unit %q for %s", m.ID, ing.Unit, ing.StockItemID)
			}
		}
	}
	return nil
}
