package engine

import (
	"errors"
	"fmt"
	"strings"
)

// ValidationError reports malformed input: an empty name, a non-positive
// quantity, an empty recipe, or a reference to a stock item that does not
// exist at authoring time.
type ValidationError struct {
	// Field names the offending input field where one can be singled out.
	Field string

	// Message is a human-readable description.
	Message string
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("invalid %s: %s", e.Field, e.Message)
	}
	return e.Message
}

// NotFoundError reports an operation targeting an ID absent from its
// collection.
type NotFoundError struct {
	// Kind is the entity kind, e.g. "stock item" or "menu item".
	Kind string

	// ID is the missing identifier.
	ID string
}

// Error implements the error interface.
func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Kind, e.ID)
}

// Shortage describes one deficient stock item in a rejected sale.
type Shortage struct {
	StockItemID string  `json:"stockItemId"`
	Name        string  `json:"name"`
	Required    float64 `json:"required"`
	Available   float64 `json:"available"`
}

// Deficit returns how much the demand exceeds availability.
func (s Shortage) Deficit() float64 {
	return s.Required - s.Available
}

// InsufficientStockError reports a sale whose aggregate demand exceeds
// availability. It carries every deficient stock item with its shortfall;
// the ledger is guaranteed unmodified when this error is returned.
type InsufficientStockError struct {
	Shortages []Shortage
}

// Error implements the error interface, naming each deficient item.
func (e *InsufficientStockError) Error() string {
	if len(e.Shortages) == 0 {
		return "insufficient stock"
	}
	parts := make([]string, len(e.Shortages))
	for i, s := range e.Shortages {
		parts[i] = fmt.Sprintf("%s (need %g, have %g)", s.Name, s.Required, s.Available)
	}
	return "insufficient stock for " + strings.Join(parts, ", ")
}

// IsValidationError reports whether err is (or wraps) a ValidationError.
func IsValidationError(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// IsNotFoundError reports whether err is (or wraps) a NotFoundError.
func IsNotFoundError(err error) bool {
	var nf *NotFoundError
	return errors.As(err, &nf)
}

// IsInsufficientStockError reports whether err is (or wraps) an
// InsufficientStockError.
func IsInsufficientStockError(err error) bool {
	var is *InsufficientStockError
	return errors.As(err, &is)
}

func newValidationError(field, format string, args ...any) *ValidationError {
	return &ValidationError{Field: field, Message: fmt.Sprintf(format, args...)}
}
