package cli

import (
	"context"
	"fmt"
	"io"

	"tutor-booking/internal/infra/google"

	"github.com/spf13/cobra"
)

func NewInitSheetCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "init-sheet",
		Short: "Write the header row of the bookings sheet",
		Long: `Write the 17 column headers to row 1 of SHEET_NAME in SPREADSHEET_ID.
Existing headers are overwritten; booking rows are untouched.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var ledger *google.LedgerStore
			return withApp(cmd.Context(), rootOpts, func(ctx context.Context) error {
				if err := ledger.InitializeHeaders(ctx); err != nil {
					return err
				}
				out := map[string]any{"initialized": true, "columns": len(google.LedgerHeaders)}
				return write(cmd.OutOrStdout(), rootOpts.Format, out, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "sheet headers initialized (%d columns)\n", len(google.LedgerHeaders))
					return err
				})
			}, &ledger)
		},
	}
}
