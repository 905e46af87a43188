package cli

import (
	"bytes"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/tdsretail/stockroom/internal/report"
)

// NewReportCommand creates the report command, which emits the sales log
// and inventory status with lifetime consumption as CSV.
func NewReportCommand(opts *RootOptions) *cobra.Command {
	var outPath string

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Export a CSV report of sales and inventory consumption",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			var buf bytes.Buffer
			if err := report.WriteCSV(&buf, a.engine.State(), time.Now()); err != nil {
				return WrapExitError(ExitCommandError, "build report", err)
			}

			if outPath == "" {
				_, err := cmd.OutOrStdout().Write(buf.Bytes())
				return err
			}
			if err := os.WriteFile(outPath, buf.Bytes(), 0o644); err != nil {
				return WrapExitError(ExitCommandError, "write report", err)
			}
			if opts.Format != "json" {
				fmt.Fprintf(cmd.OutOrStdout(), "wrote %s\n", outPath)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&outPath, "out", "o", "", "write the report to a file instead of stdout")
	return cmd
}
