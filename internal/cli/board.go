package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/wire"
)

// BoardCmd returns the board command
func BoardCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "board",
		Short: "Show the whole board",
		Long:  `Show every column with its activities in order, then the stash and the tags.`,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.BoardAdapter().Show(context.Background())
		},
	}
}
