package cli

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/tdsretail/stockroom/internal/config"
	"github.com/tdsretail/stockroom/internal/engine"
	"github.com/tdsretail/stockroom/internal/model"
	"github.com/tdsretail/stockroom/internal/seed"
	"github.com/tdsretail/stockroom/internal/store"
)

// app wires the engine to its collaborators for one CLI invocation: load
// the snapshot (or fall back to the seed), run the command, and let the
// engine's save hook persist after each mutation.
type app struct {
	cfg    config.Config
	store  *store.Store
	engine *engine.Engine
}

func openApp(ctx context.Context) (*app, error) {
	return openAppWithSeed(ctx, nil)
}

// openAppWithSeed is openApp with the baseline overridden; a nil baseline
// means the embedded default seed.
func openAppWithSeed(ctx context.Context, baseline *model.State) (*app, error) {
	cfg := config.Load()
	slog.SetLogLoggerLevel(cfg.LogLevel)

	st, err := store.Open(cfg.DBPath)
	if err != nil {
		return nil, WrapExitError(ExitCommandError, "open snapshot store", err)
	}

	state, ok, err := st.Load(ctx, cfg.Namespace)
	if err != nil {
		st.Close()
		return nil, WrapExitError(ExitCommandError, "load snapshot", err)
	}
	base := seed.Default()
	if baseline != nil {
		base = *baseline
	}
	if !ok {
		state = base
	}

	eng := engine.New(state,
		engine.WithSeed(base),
		engine.WithSaveFunc(func(s model.State) error {
			return st.Save(ctx, cfg.Namespace, s)
		}),
	)

	return &app{cfg: cfg, store: st, engine: eng}, nil
}

func (a *app) Close() error {
	return a.store.Close()
}

// engineError converts an engine rejection into an ExitError. Rejections
// are user errors (exit 1); anything else is a command error.
func engineError(err error) error {
	switch {
	case engine.IsValidationError(err), engine.IsNotFoundError(err), engine.IsInsufficientStockError(err):
		return WrapExitError(ExitFailure, "operation rejected", err)
	default:
		return WrapExitError(ExitCommandError, "operation failed", err)
	}
}

// parseRef parses "id:quantity" pairs used by menu ingredients and carts.
func parseRef(arg string) (string, float64, error) {
	id, rawQty, ok := strings.Cut(arg, ":")
	if !ok || id == "" {
		return "", 0, fmt.Errorf("malformed reference %q: want id:quantity", arg)
	}
	qty, err := strconv.ParseFloat(rawQty, 64)
	if err != nil {
		return "", 0, fmt.Errorf("malformed quantity in %q: %w", arg, err)
	}
	return id, qty, nil
}
