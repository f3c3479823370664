package cli

import (
	"context"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/wire"
)

// TagCmd returns the tag command
func TagCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tag",
		Short: "Manage tags (coloured labels grouped in categories)",
	}

	cmd.AddCommand(tagCreateCmd())
	cmd.AddCommand(tagRenameCmd())
	cmd.AddCommand(tagRecolorCmd())
	cmd.AddCommand(tagMoveCmd())
	cmd.AddCommand(tagDeleteCmd())
	cmd.AddCommand(tagListCmd())

	return cmd
}

func tagCreateCmd() *cobra.Command {
	var categoryID int64
	var color string
	var ord int

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create a tag",
		Long: `Create a tag in a category, or uncategorized when --category is 0 or omitted.
Without --color a colour is derived from the name.

Examples:
  banban tag create urgent --category 1 --color FF0000
  banban tag create fun`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TagAdapter().Create(context.Background(), primary.CreateTagRequest{
				Name:       args[0],
				CategoryID: parentOf(categoryID),
				Color:      color,
				Ordinal:    optionalOrdinal(cmd, "ordinal", ord),
			})
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Category ID (0 for uncategorized)")
	cmd.Flags().StringVar(&color, "color", "", "Colour as six hex digits, e.g. 00FF88")
	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Position to insert at (0-based)")
	return cmd
}

func tagRenameCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "rename [tag-id] [name]",
		Short: "Rename a tag",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag", args[0])
			if err != nil {
				return err
			}
			return wire.TagAdapter().Rename(context.Background(), id, args[1])
		},
	}
}

func tagRecolorCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "recolor [tag-id] [color]",
		Short: "Change a tag's colour",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag", args[0])
			if err != nil {
				return err
			}
			return wire.TagAdapter().Recolor(context.Background(), id, args[1])
		},
	}
}

func tagMoveCmd() *cobra.Command {
	var categoryID int64
	var uncategorized bool
	var ord int

	cmd := &cobra.Command{
		Use:   "move [tag-id]",
		Short: "Reorder a tag or move it to another category",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag", args[0])
			if err != nil {
				return err
			}
			return wire.TagAdapter().Move(context.Background(), primary.MoveRequest{
				ID:        id,
				Partition: optionalParent(cmd, "category", categoryID, uncategorized),
				Ordinal:   optionalOrdinal(cmd, "ordinal", ord),
			})
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Target category ID (0 for uncategorized)")
	cmd.Flags().BoolVar(&uncategorized, "uncategorized", false, "Move out of any category")
	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Target position (0-based)")
	cmd.MarkFlagsMutuallyExclusive("category", "uncategorized")
	return cmd
}

func tagDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [tag-id]",
		Short: "Delete a tag (removes it from all activities)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("tag", args[0])
			if err != nil {
				return err
			}
			return wire.TagAdapter().Delete(context.Background(), id)
		},
	}
}

func tagListCmd() *cobra.Command {
	var categoryID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the tags of a category, or the uncategorized ones",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.TagAdapter().List(context.Background(), parentOf(categoryID))
		},
	}

	cmd.Flags().Int64Var(&categoryID, "category", 0, "Category ID (0 for uncategorized)")
	return cmd
}
