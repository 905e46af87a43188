package engine

import (
	"log/slog"

	"github.com/tdsretail/stockroom/internal/model"
)

// SaveFunc persists a snapshot of engine state. It is invoked after every
// successful mutation with a deep copy of the new state. The engine does
// not wait on durability semantics beyond the call returning; an error is
// logged and otherwise ignored (fire-and-forget, per the single-session
// crash model).
type SaveFunc func(model.State) error

// Engine is the single-writer state container for the stock ledger, the
// menu catalog, and the sale log.
//
// All mutations follow the same discipline: validate against the current
// state, apply in one step, then fire the save hook. A rejected operation
// leaves the state exactly as it was.
//
// Not safe for concurrent use. The execution model is single-threaded and
// synchronous; callers serialize access.
type Engine struct {
	state model.State
	ids   model.IDGenerator
	clock *Clock
	save  SaveFunc
	seed  model.State // template for ResetAll
	log   *slog.Logger
}

// Option configures an Engine at construction time.
type Option func(*Engine)

// WithIDGenerator overrides the ID generator (tests use a SequenceGenerator
// for deterministic IDs).
func WithIDGenerator(g model.IDGenerator) Option {
	return func(e *Engine) { e.ids = g }
}

// WithClock overrides the sale timestamp clock.
func WithClock(c *Clock) Option {
	return func(e *Engine) { e.clock = c }
}

// WithSaveFunc installs the persistence hook.
func WithSaveFunc(f SaveFunc) Option {
	return func(e *Engine) { e.save = f }
}

// WithSeed sets the dataset ResetAll restores. Defaults to empty
// collections.
func WithSeed(seed model.State) Option {
	return func(e *Engine) { e.seed = seed.Clone() }
}

// WithLogger overrides the default slog logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) { e.log = l }
}

// New creates an Engine owning a deep copy of the initial state.
func New(initial model.State, opts ...Option) *Engine {
	e := &Engine{
		state: initial.Clone(),
		ids:   model.UUIDGenerator{},
		clock: NewClock(),
		log:   slog.Default(),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Stock returns a read-only view (deep copy) of the stock list.
func (e *Engine) Stock() []model.StockItem {
	return e.state.Clone().Stock
}

// Menu returns a read-only view (deep copy) of the menu list.
func (e *Engine) Menu() []model.MenuItem {
	return e.state.Clone().Menu
}

// Sales returns a read-only view (deep copy) of the sale log, in insertion
// order.
func (e *Engine) Sales() []model.Sale {
	return e.state.Clone().Sales
}

// State returns a deep copy of the full state, suitable for reporting and
// persistence.
func (e *Engine) State() model.State {
	return e.state.Clone()
}

// StockItem returns the stock item with the given ID.
func (e *Engine) StockItem(id string) (model.StockItem, error) {
	s, ok := e.state.FindStock(id)
	if !ok {
		return model.StockItem{}, &NotFoundError{Kind: "stock item", ID: id}
	}
	return s, nil
}

// MenuItem returns the menu item with the given ID.
func (e *Engine) MenuItem(id string) (model.MenuItem, error) {
	m, ok := e.state.FindMenu(id)
	if !ok {
		return model.MenuItem{}, &NotFoundError{Kind: "menu item", ID: id}
	}
	return m.Clone(), nil
}

// LowStock returns every stock item at or below its alert threshold, in
// ledger order.
func (e *Engine) LowStock() []model.StockItem {
	var out []model.StockItem
	for _, s := range e.state.Stock {
		if s.LowStock() {
			out = append(out, s)
		}
	}
	return out
}

// ActiveMenu returns the menu items eligible for sale, in catalog order.
func (e *Engine) ActiveMenu() []model.MenuItem {
	var out []model.MenuItem
	for _, m := range e.state.Menu {
		if m.IsActive {
			out = append(out, m.Clone())
		}
	}
	return out
}

// ResetAll replaces all three collections with the configured seed dataset
// and persists immediately.
func (e *Engine) ResetAll() {
	e.state = e.seed.Clone()
	e.log.Info("state reset to seed",
		"stock_items", len(e.state.Stock),
		"menu_items", len(e.state.Menu),
	)
	e.persist()
}

// persist fires the save hook with a snapshot of current state.
// Errors are logged and swallowed: a failed snapshot loses at most the most
// recent mutation on crash, which the execution model accepts.
func (e *Engine) persist() {
	if e.save == nil {
		return
	}
	if err := e.save(e.state.Clone()); err != nil {
		e.log.Error("snapshot save failed", "error", err)
	}
}
