package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/tdsretail/stockroom/internal/model"
	"github.com/tdsretail/stockroom/internal/seed"
)

// NewResetCommand creates the reset command, which discards the current
// state and restores the seed dataset.
func NewResetCommand(opts *RootOptions) *cobra.Command {
	var (
		seedPath string
		yes      bool
	)

	cmd := &cobra.Command{
		Use:   "reset",
		Short: "Discard all stock, menu and sales data and restore the seed",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !yes {
				return NewExitError(ExitCommandError, "reset discards all data; re-run with --yes to confirm")
			}

			var baseline *model.State
			if seedPath != "" {
				custom, err := seed.FromFile(seedPath)
				if err != nil {
					return WrapExitError(ExitCommandError, "load seed", err)
				}
				baseline = &custom
			}

			a, err := openAppWithSeed(cmd.Context(), baseline)
			if err != nil {
				return err
			}
			defer a.Close()

			a.engine.ResetAll()

			f := &OutputFormatter{Format: opts.Format, Writer: cmd.OutOrStdout(), Verbose: opts.Verbose}
			if opts.Format == "json" {
				return f.Success(a.engine.State())
			}
			fmt.Fprintln(cmd.OutOrStdout(), "state reset to seed")
			return nil
		},
	}

	cmd.Flags().StringVar(&seedPath, "seed", "", "CUE seed file to restore instead of the built-in dataset")
	cmd.Flags().BoolVar(&yes, "yes", false, "confirm the reset")
	return cmd
}
