package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/tdsretail/stockroom/internal/engine"
	"github.com/tdsretail/stockroom/internal/model"
)

// cartFile is the YAML shape accepted by --cart.
type cartFile struct {
	Items []cartFileLine `yaml:"items"`
}

type cartFileLine struct {
	Menu     string  `yaml:"menu"`
	Quantity float64 `yaml:"quantity"`
}

func loadCartFile(path string) ([]model.SaleLine, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read cart: %w", err)
	}
	var cart cartFile
	if err := yaml.Unmarshal(data, &cart); err != nil {
		return nil, fmt.Errorf("parse cart %s: %w", path, err)
	}
	lines := make([]model.SaleLine, 0, len(cart.Items))
	for _, item := range cart.Items {
		lines = append(lines, model.SaleLine{MenuItemID: item.Menu, Quantity: item.Quantity})
	}
	return lines, nil
}

// NewSellCommand creates the sell command. The cart comes either from
// positional menuID:quantity pairs or from a YAML file via --cart.
func NewSellCommand(opts *RootOptions) *cobra.Command {
	var cartPath string

	cmd := &cobra.Command{
		Use:   "sell [menuID:quantity ...]",
		Short: "Record a sale, deducting ingredients atomically",
		Long: `Record a sale across one or more menu items.

Demand is aggregated over the whole cart first; if any ingredient
falls short the sale is rejected in full and no stock changes.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if len(args) == 0 && cartPath == "" {
				return NewExitError(ExitCommandError, "nothing to sell: pass menuID:quantity pairs or --cart")
			}
			if len(args) > 0 && cartPath != "" {
				return NewExitError(ExitCommandError, "pass either positional items or --cart, not both")
			}

			var (
				lines []model.SaleLine
				err   error
			)
			if cartPath != "" {
				lines, err = loadCartFile(cartPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "load cart", err)
				}
			} else {
				for _, arg := range args {
					id, qty, perr := parseRef(arg)
					if perr != nil {
						return WrapExitError(ExitCommandError, "parse cart item", perr)
					}
					lines = append(lines, model.SaleLine{MenuItemID: id, Quantity: qty})
				}
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			sale, err := a.engine.RecordSale(lines)
			if err != nil {
				var insufficient *engine.InsufficientStockError
				if errors.As(err, &insufficient) && opts.Format != "json" {
					fmt.Fprintln(cmd.ErrOrStderr(), "sale rejected, short on:")
					for _, s := range insufficient.Shortages {
						fmt.Fprintf(cmd.ErrOrStderr(), "\t%s (%s): need %s, have %s\n",
							s.Name, s.StockItemID, formatQty(s.Required), formatQty(s.Available))
					}
					return NewExitError(ExitFailure, "insufficient stock")
				}
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(sale)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "recorded %s (%d line(s))\n", sale.ID, len(sale.Items))
			return nil
		},
	}

	cmd.Flags().StringVar(&cartPath, "cart", "", "YAML cart file instead of positional items")
	return cmd
}
