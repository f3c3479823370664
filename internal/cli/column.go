package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/wire"
)

// ColumnCmd returns the column command
func ColumnCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "column",
		Short: "Manage board columns",
		Long:  `Create, rename, reorder and delete the columns of the board.`,
	}

	cmd.AddCommand(columnCreateCmd())
	cmd.AddCommand(columnRenameCmd())
	cmd.AddCommand(columnMoveCmd())
	cmd.AddCommand(columnDeleteCmd())
	cmd.AddCommand(columnListCmd())

	return cmd
}

func columnCreateCmd() *cobra.Command {
	var ord int

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a column",
		Long: `Create a column. Without --ordinal it is appended at the right edge.

Examples:
  banban column create Review
  banban column create Backlog --ordinal 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ColumnAdapter().Create(context.Background(), args[0], optionalOrdinal(cmd, "ordinal", ord))
		},
	}

	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Position to insert at (0-based)")
	return cmd
}

func columnRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [column-id] [name]",
		Short: "Rename a column",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("column", args[0])
			if err != nil {
				return err
			}
			return wire.ColumnAdapter().Rename(context.Background(), id, args[1])
		},
	}
}

func columnMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [column-id] [ordinal]",
		Short: "Move a column to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("column", args[0])
			if err != nil {
				return err
			}
			ord, err := parseOrdinal(args[1])
			if err != nil {
				return err
			}
			return wire.ColumnAdapter().Move(context.Background(), id, ord)
		},
	}
}

func columnDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [column-id]",
		Short: "Delete a column, moving its activities to the stash",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("column", args[0])
			if err != nil {
				return err
			}
			return wire.ColumnAdapter().Delete(context.Background(), id)
		},
	}
}

func columnListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List columns in board order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ColumnAdapter().List(context.Background())
		},
	}
}
