package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdsretail/stockroom/internal/engine"
	"github.com/tdsretail/stockroom/internal/model"
)

// NewMenuCommand creates the menu command group: list, add, update,
// remove, enable, disable.
func NewMenuCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "menu",
		Short: "Manage menu items and their recipes",
	}
	cmd.AddCommand(newMenuListCommand(opts))
	cmd.AddCommand(newMenuAddCommand(opts))
	cmd.AddCommand(newMenuUpdateCommand(opts))
	cmd.AddCommand(newMenuRemoveCommand(opts))
	cmd.AddCommand(newMenuActiveCommand(opts, "enable", true))
	cmd.AddCommand(newMenuActiveCommand(opts, "disable", false))
	return cmd
}

func newMenuListCommand(opts *RootOptions) *cobra.Command {
	var activeOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List menu items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			items := a.engine.Menu()
			if activeOnly {
				items = a.engine.ActiveMenu()
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(items)
			}
			if len(items) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "no menu items")
				return nil
			}
			for _, m := range items {
				status := "active"
				if !m.IsActive {
					status = "inactive"
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s\t%s\t%s\n", m.ID, m.Name, status)
				for _, ing := range m.Ingredients {
					fmt.Fprintf(cmd.OutOrStdout(), "\t%s x %s %s\n", ing.StockItemID, formatQty(ing.Quantity), ing.Unit)
				}
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&activeOnly, "active", false, "only items eligible for sale")
	return cmd
}

// parseIngredients converts repeated --ingredient id:qty flags into recipe
// lines. Units are left empty; the engine copies them from the referenced
// stock items.
func parseIngredients(specs []string) ([]model.RecipeIngredient, error) {
	out := make([]model.RecipeIngredient, 0, len(specs))
	for _, spec := range specs {
		id, qty, err := parseRef(spec)
		if err != nil {
			return nil, err
		}
		out = append(out, model.RecipeIngredient{StockItemID: id, Quantity: qty})
	}
	return out, nil
}

func newMenuAddCommand(opts *RootOptions) *cobra.Command {
	var (
		name        string
		image       string
		ingredients []string
	)

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a menu item with its recipe",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			recipe, err := parseIngredients(ingredients)
			if err != nil {
				return WrapExitError(ExitCommandError, "parse ingredients", err)
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.engine.AddMenuItem(name, image, recipe)
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
	cmd.Flags().StringVar(&image, "image", "", "image reference")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "recipe line as stockID:quantity (repeatable, required)")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("ingredient")
	return cmd
}

func newMenuUpdateCommand(opts *RootOptions) *cobra.Command {
	var (
		name        string
		image       string
		active      bool
		ingredients []string
	)

	cmd := &cobra.Command{
		Use:   "update ID",
		Short: "Update a menu item; --ingredient flags replace the whole recipe",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			update := engine.MenuItemUpdate{}
			if cmd.Flags().Changed("name") {
				update.Name = &name
			}
			if cmd.Flags().Changed("image") {
				update.ImageURL = &image
			}
			if cmd.Flags().Changed("active") {
				update.IsActive = &active
			}
			if cmd.Flags().Changed("ingredient") {
				recipe, err := parseIngredients(ingredients)
				if err != nil {
					return WrapExitError(ExitCommandError, "parse ingredients", err)
				}
				update.Ingredients = &recipe
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			item, err := a.engine.UpdateMenuItem(args[0], update)
			if err != nil {
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(item)
			}
			fmt.Fprintf(cmd.OutOrStdout(), "updated %s\n", item.ID)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "display name")
	cmd.Flags().StringVar(&image, "image", "", "image reference")
	cmd.Flags().BoolVar(&active, "active", true, "sale eligibility")
	cmd.Flags().StringArrayVar(&ingredients, "ingredient", nil, "recipe line as stockID:quantity (repeatable)")
	return cmd
}

func newMenuRemoveCommand(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "remove ID",
		Short: "Remove a menu item (historical sales keep its ID)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.RemoveMenuItem(args[0]); err != nil {
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

func newMenuActiveCommand(opts *RootOptions, use string, active bool) *cobra.Command {
	short := "Mark a menu item as eligible for sale"
	if !active {
		short = "Exclude a menu item from sale without touching its recipe"
	}

	cmd := &cobra.Command{
		Use:   use + " ID",
		Short: short,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			if err := a.engine.SetMenuItemActive(args[0], active); err != nil {
				return engineError(err)
			}

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(map[string]any{"id": args[0], "isActive": active})
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %sd\n", args[0], use)
			return nil
		},
	}
	return cmd
}
