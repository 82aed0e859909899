package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"

	"tutor-booking/internal/pkg/config"

	"github.com/spf13/cobra"
)

type RootOptions struct {
	Format string // "json" | "text"

	// LoadConfig reads the environment. Tests replace it.
	LoadConfig func() (config.Config, error)
}

var ValidFormats = []string{"text", "json"}

func NewRootCommand() *cobra.Command {
	return NewRootCommandWithOptions(&RootOptions{LoadConfig: config.LoadConfig})
}

func NewRootCommandWithOptions(opts *RootOptions) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tutorctl",
		Short: "Operate the tutoring booking service",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return fmt.Errorf("invalid format %q: must be one of %v", opts.Format, ValidFormats)
			}
			return nil
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	cmd.PersistentFlags().StringVar(&opts.Format, "format", "text", "output format (json|text)")

	cmd.AddCommand(NewPriceCommand(opts))
	cmd.AddCommand(NewTokenCommand(opts))
	cmd.AddCommand(NewInitSheetCommand(opts))
	cmd.AddCommand(NewReconcileCommand(opts))

	return cmd
}

// write renders v as indented JSON or hands the writer to text.
func write(w io.Writer, format string, v any, text func(io.Writer) error) error {
	if format == "json" {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	}
	return text(w)
}
