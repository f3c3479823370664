package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/wire"
)

// CategoryCmd returns the category command
func CategoryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "category",
		Short: "Manage tag categories",
		Long:  `Create, rename, reorder and delete tag categories.`,
	}

	cmd.AddCommand(categoryCreateCmd())
	cmd.AddCommand(categoryRenameCmd())
	cmd.AddCommand(categoryMoveCmd())
	cmd.AddCommand(categoryDeleteCmd())
	cmd.AddCommand(categoryListCmd())

	return cmd
}

func categoryCreateCmd() *cobra.Command {
	var ord int

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a category",
		Long: `Create a category. Without --ordinal it is appended at the end.

Examples:
  banban category create Effort
  banban category create Owner --ordinal 0`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CategoryAdapter().Create(context.Background(), args[0], optionalOrdinal(cmd, "ordinal", ord))
		},
	}

	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Position to insert at (0-based)")
	return cmd
}

func categoryRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [category-id] [name]",
		Short: "Rename a category",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			return wire.CategoryAdapter().Rename(context.Background(), id, args[1])
		},
	}
}

func categoryMoveCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "move [category-id] [ordinal]",
		Short: "Move a category to another position",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			ord, err := parseOrdinal(args[1])
			if err != nil {
				return err
			}
			return wire.CategoryAdapter().Move(context.Background(), id, ord)
		},
	}
}

func categoryDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [category-id]",
		Short: "Delete a category, leaving its tags uncategorized",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("category", args[0])
			if err != nil {
				return err
			}
			return wire.CategoryAdapter().Delete(context.Background(), id)
		},
	}
}

func categoryListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List categories in order",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.CategoryAdapter().List(context.Background())
		},
	}
}
