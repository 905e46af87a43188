package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/tdsretail/stockroom/internal/model"
)

// NewStockCommand creates the stock command group: list, add, adjust,
// remove.
func NewStockCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "stock",
		Short: "Manage the ingredient ledger",
	}
	cmd.AddCommand(newStockListCommand(opts))
	cmd.AddCommand(newStockAddCommand(opts))
	cmd.AddCommand(newStockAdjustCommand(opts))
	cmd.AddCommand(newStockRemoveCommand(opts))
	return cmd
}

func newStockListCommand(opts *RootOptions) *cobra.Command {
	var lowOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stock items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.engine.Stock()
			if lowOnly {
				items = a.engine.LowStock()
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no stock items")
				return nil
			}
			for _, s := range items {
				marker := ""
				if s.LowStock() {
					marker = "  LOW"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s %s (alert at %s)%s\n",
					s.ID, s.Name, formatQty(s.RemainingQuantity), s.Unit, formatQty(s.AlertThreshold), marker)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&lowOnly, "low", false, "only items at or below their alert threshold")
	return cmd
}

func newStockAddCommand(opts *RootOptions) *cobra.Command {
	var (
		name      string
		category  string
		unit      string
		quantity  float64
		threshold float64
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a stock item",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.engine.AddStockItem(name, model.Category(category), model.Unit(unit), quantity, threshold)
			if err != nil {
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "added %s (%s)\n", item.ID, item.Name)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name (required)")
	cmd.Flags().StringVar(&category, "category", "", "category: "+joinCategories()+" (required)")
	cmd.Flags().StringVar(&unit, "unit", "", "unit label; defaults from the category")
	cmd.Flags().Float64Var(&quantity, "quantity", 0, "initial quantity")
	cmd.Flags().Float64Var(&threshold, "threshold", 0, "low-stock alert threshold")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("category")
	return cmd
}

func newStockAdjustCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "adjust ID DELTA",
		Short: "Adjust a stock item's remaining quantity (clamped at zero)",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			delta, err := strconv.ParseFloat(args[1], 64)
			if err != nil {
				return WrapExitError(ExitCommandError, "parse delta", err)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.engine.AdjustStockQuantity(args[0], delta)
			if err != nil {
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s now at %s %s\n", item.ID, formatQty(item.RemainingQuantity), item.Unit)
			return nil
		},
	}
	return cmd
}

func newStockRemoveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a stock item, pruning it from every recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.RemoveStockItem(args[0]); err != nil {
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(map[string]string{"removed": args[0]})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "removed %s\n", args[0])
			return nil
		},
	}
	return cmd
}

func joinCategories() string {
	parts := make([]string, len(model.Categories))
	for i, c := range model.Categories {
		parts[i] = string(c)
	}
	return strings.Join(parts, "|")
}

func formatQty(q float64) string {
	return strconv.FormatFloat(q, 'f', -1, 64)
}
