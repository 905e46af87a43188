package harness

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario describes a sequence of engine operations and the errors they
// are expected to produce.
type Scenario struct {
	// Name uniquely identifies the scenario; it doubles as the golden
	// file name.
	Name string `yaml:"name"`

	// Description explains what the scenario validates.
	Description string `yaml:"description,omitempty"`

	// Steps are executed in order against a fresh engine.
	Steps []Step `yaml:"steps"`
}

// Step is one engine operation. Which fields apply depends on Op; unused
// fields are ignored.
type Step struct {
	// Op selects the operation: add_stock, adjust_stock, remove_stock,
	// add_menu, update_menu, remove_menu, set_active, record_sale, reset.
	Op string `yaml:"op"`

	// ID targets an existing record (adjust_stock, remove_stock,
	// update_menu, remove_menu, set_active).
	ID string `yaml:"id,omitempty"`

	// Name and Image apply to add_stock, add_menu and update_menu. For
	// update_menu an empty value means "leave unchanged".
	Name  string `yaml:"name,omitempty"`
	Image string `yaml:"image,omitempty"`

	// Category and Unit apply to add_stock.
	Category string `yaml:"category,omitempty"`
	Unit     string `yaml:"unit,omitempty"`

	// Quantity and Threshold apply to add_stock.
	Quantity  float64 `yaml:"quantity,omitempty"`
	Threshold float64 `yaml:"threshold,omitempty"`

	// Delta applies to adjust_stock.
	Delta float64 `yaml:"delta,omitempty"`

	// Active applies to set_active and update_menu.
	Active *bool `yaml:"active,omitempty"`

	// Ingredients applies to add_menu and update_menu (nil means "leave
	// unchanged" on update).
	Ingredients []IngredientSpec `yaml:"ingredients,omitempty"`

	// Cart applies to record_sale.
	Cart []CartLine `yaml:"cart,omitempty"`

	// ExpectError names the error kind this step must produce:
	// "validation", "not_found" or "insufficient_stock". Empty means the
	// step must succeed.
	ExpectError string `yaml:"expect_error,omitempty"`
}

// IngredientSpec is one recipe line of an add_menu/update_menu step.
type IngredientSpec struct {
	Stock    string  `yaml:"stock"`
	Quantity float64 `yaml:"quantity"`
	Unit     string  `yaml:"unit,omitempty"`
}

// CartLine is one line of a record_sale step.
type CartLine struct {
	Menu     string  `yaml:"menu"`
	Quantity float64 `yaml:"quantity"`
}

// LoadScenario reads and validates a scenario from a YAML file.
func LoadScenario(path string) (*Scenario, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(data, &sc); err != nil {
		return nil, fmt.Errorf("parse scenario %s: %w", path, err)
	}
	if sc.Name == "" {
		return nil, fmt.Errorf("scenario %s: name is required", path)
	}
	if len(sc.Steps) == 0 {
		return nil, fmt.Errorf("scenario %s: steps are required", path)
	}
	for i, step := range sc.Steps {
		if !knownOp(step.Op) {
			return nil, fmt.Errorf("scenario %s: step %d has unknown op %q", path, i, step.Op)
		}
		switch step.ExpectError {
		case "", expectValidation, expectNotFound, expectInsufficientStock:
		default:
			return nil, fmt.Errorf("scenario %s: step %d has unknown expect_error %q", path, i, step.ExpectError)
		}
	}
	return &sc, nil
}

const (
	expectValidation        = "validation"
	expectNotFound          = "not_found"
	expectInsufficientStock = "insufficient_stock"
)

func knownOp(op string) bool {
	switch op {
	case "add_stock", "adjust_stock", "remove_stock",
		"add_menu", "update_menu", "remove_menu", "set_active",
		"record_sale", "reset":
		return true
	}
	return false
}
