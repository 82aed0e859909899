package cli

import (
	"fmt"
	"io"
	"text/tabwriter"

	"tutor-booking/internal/domain/booking"
	"tutor-booking/internal/usecase/queries"

	"github.com/spf13/cobra"
)

type priceLine struct {
	ClassSize string `json:"classSize"`
	Duration  string `json:"duration"`
	Total     string `json:"total"`
	PerPerson string `json:"perPerson"`
}

func NewPriceCommand(rootOpts *RootOptions) *cobra.Command {
	var size, duration string
	var all bool

	cmd := &cobra.Command{
		Use:   "price",
		Short: "Quote the price of a session",
		Long: `Quote the total and per-person price of a session.

Unknown sizes are priced as Solo and unknown durations as 1 hour, the same
fallback the booking form uses. --all prints the full price grid.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			q := queries.NewBookingQueries(nil, booking.NewDefaultPriceCalculator())

			var lines []priceLine
			if all {
				for _, s := range booking.ClassSizes() {
					for _, d := range booking.Durations() {
						lines = append(lines, toPriceLine(q.QuotePrice(string(s), string(d))))
					}
				}
			} else {
				lines = append(lines, toPriceLine(q.QuotePrice(size, duration)))
			}

			return write(cmd.OutOrStdout(), rootOpts.Format, lines, func(w io.Writer) error {
				tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
				fmt.Fprintln(tw, "SIZE\tDURATION\tTOTAL\tPER PERSON")
				for _, l := range lines {
					fmt.Fprintf(tw, "%s\t%s\t%s\t%s\n", l.ClassSize, l.Duration, l.Total, l.PerPerson)
				}
				return tw.Flush()
			})
		},
	}

	cmd.Flags().StringVar(&size, "size", string(booking.SizeSolo), "class size (Solo|Duo|Trio|Quadrio)")
	cmd.Flags().StringVar(&duration, "duration", string(booking.DurationOneHour), "class duration (\"1 hour\", \"1.5 hours\", \"2 hours\", \"2.5 hours\")")
	cmd.Flags().BoolVar(&all, "all", false, "print every size and duration")

	return cmd
}

func toPriceLine(q queries.Quote) priceLine {
	return priceLine{
		ClassSize: q.Size.String(),
		Duration:  q.Duration.String(),
		Total:     q.Price.String(),
		PerPerson: booking.PerPerson(q.Price, q.Size).String(),
	}
}
