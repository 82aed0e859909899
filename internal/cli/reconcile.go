package cli

import (
	"context"
	"fmt"
	"io"

	"tutor-booking/internal/usecase/reconcile"

	"github.com/spf13/cobra"
)

func NewReconcileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "reconcile",
		Short: "Run one calendar reconciliation cycle",
		Long: `Poll every tutor calendar once and assign sessions that a tutor
claimed since the last cycle. Without DB_DSN the attendee snapshots start
empty, so every claimed session in the lookback window is treated as new.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			var svc *reconcile.Service
			return withApp(cmd.Context(), rootOpts, func(ctx context.Context) error {
				report := svc.RunCycle(ctx)
				if err := write(cmd.OutOrStdout(), rootOpts.Format, report, func(w io.Writer) error {
					_, err := fmt.Fprintf(w, "calendars=%d events=%d assigned=%d failures=%d\n",
						report.Calendars, report.Events, report.Assigned, report.Failures)
					return err
				}); err != nil {
					return err
				}
				if report.Failures > 0 {
					return fmt.Errorf("%d reconciliation failures", report.Failures)
				}
				return nil
			}, &svc)
		},
	}
}
