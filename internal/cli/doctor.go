package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/wire"
)

// DoctorCmd returns the doctor command for ordinal validation
func DoctorCmd() *cobra.Command {
	var fix bool

	cmd := &cobra.Command{
		Use:   "doctor",
		Short: "Check that every ordered collection is densely numbered",
		Long: `Check columns, activities, categories and tags for gaps, duplicates or
negative ordinals within each partition.

With --fix every collection is renumbered in one transaction, keeping the
current relative order, and then checked again.

Examples:
  banban doctor          # Exit code 1 when ordinals are inconsistent
  banban doctor --fix    # Renumber and re-check`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := context.Background()
			board := wire.BoardAdapter()

			if fix {
				if err := board.Repair(ctx); err != nil {
					return err
				}
			}
			return board.Check(ctx)
		},
	}

	cmd.Flags().BoolVar(&fix, "fix", false, "Renumber inconsistent collections")
	return cmd
}
