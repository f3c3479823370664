package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/ports/primary"
	"github.com/example/banban/internal/wire"
)

// ActivityCmd returns the activity command
func ActivityCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "activity",
		Aliases: []string{"act"},
		Short:   "Manage activities (cards on the board)",
		Long: `Create, edit, move and tag activities.

An activity lives in a column or, when it belongs to no column, in the stash.`,
	}

	cmd.AddCommand(activityCreateCmd())
	cmd.AddCommand(activityShowCmd())
	cmd.AddCommand(activityUpdateCmd())
	cmd.AddCommand(activityMoveCmd())
	cmd.AddCommand(activityDeleteCmd())
	cmd.AddCommand(activityListCmd())
	cmd.AddCommand(activityTagCmd())
	cmd.AddCommand(activityUntagCmd())

	return cmd
}

func activityCreateCmd() *cobra.Command {
	var columnID int64
	var body string
	var ord int

	cmd := &cobra.Command{
		Use:   "create [name]",
		Short: "Create an activity",
		Long: `Create an activity in a column, or in the stash when --column is 0 or omitted.
Without --ordinal the activity is appended to the bottom.

Examples:
  banban activity create "Buy milk" --column 1
  banban activity create "Call plumber" --column 1 --ordinal 0
  banban activity create "Someday: learn banjo"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ActivityAdapter().Create(context.Background(), primary.CreateActivityRequest{
				Name:     args[0],
				Body:     body,
				ColumnID: parentOf(columnID),
				Ordinal:  optionalOrdinal(cmd, "ordinal", ord),
			})
		},
	}

	cmd.Flags().Int64VarP(&columnID, "column", "c", 0, "Column ID (0 for the stash)")
	cmd.Flags().StringVarP(&body, "body", "b", "", "Activity body")
	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Position to insert at (0-based)")
	return cmd
}

func activityShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show [activity-id]",
		Short: "Show activity details",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("activity", args[0])
			if err != nil {
				return err
			}
			return wire.ActivityAdapter().Show(context.Background(), id)
		},
	}
}

func activityUpdateCmd() *cobra.Command {
	var name, body string

	cmd := &cobra.Command{
		Use:   "update [activity-id]",
		Short: "Update an activity's name or body",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("activity", args[0])
			if err != nil {
				return err
			}
			var newName, newBody *string
			if cmd.Flags().Changed("name") {
				newName = &name
			}
			if cmd.Flags().Changed("body") {
				newBody = &body
			}
			if newName == nil && newBody == nil {
				return fmt.Errorf("nothing to update: pass --name or --body")
			}
			return wire.ActivityAdapter().Update(context.Background(), id, newName, newBody)
		},
	}

	cmd.Flags().StringVarP(&name, "name", "n", "", "New name")
	cmd.Flags().StringVarP(&body, "body", "b", "", "New body")
	return cmd
}

func activityMoveCmd() *cobra.Command {
	var columnID int64
	var stash bool
	var ord int

	cmd := &cobra.Command{
		Use:   "move [activity-id]",
		Short: "Move an activity within or across columns",
		Long: `Move an activity. With only --ordinal it moves within its column; with
--column or --stash it moves there, to the bottom unless --ordinal is given.

Examples:
  banban activity move 4 --ordinal 0
  banban activity move 4 --column 2
  banban activity move 4 --column 2 --ordinal 1
  banban activity move 4 --stash`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("activity", args[0])
			if err != nil {
				return err
			}
			return wire.ActivityAdapter().Move(context.Background(), primary.MoveRequest{
				ID:        id,
				Partition: optionalParent(cmd, "column", columnID, stash),
				Ordinal:   optionalOrdinal(cmd, "ordinal", ord),
			})
		},
	}

	cmd.Flags().Int64VarP(&columnID, "column", "c", 0, "Target column ID (0 for the stash)")
	cmd.Flags().BoolVar(&stash, "stash", false, "Move to the stash")
	cmd.Flags().IntVarP(&ord, "ordinal", "o", 0, "Target position (0-based)")
	cmd.MarkFlagsMutuallyExclusive("column", "stash")
	return cmd
}

func activityDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete [activity-id]",
		Short: "Delete an activity",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID("activity", args[0])
			if err != nil {
				return err
			}
			return wire.ActivityAdapter().Delete(context.Background(), id)
		},
	}
}

func activityListCmd() *cobra.Command {
	var columnID int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List the activities of a column, or the stash",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return wire.ActivityAdapter().List(context.Background(), parentOf(columnID))
		},
	}

	cmd.Flags().Int64VarP(&columnID, "column", "c", 0, "Column ID (0 for the stash)")
	return cmd
}

func activityTagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "tag [activity-id] [tag-id]",
		Short: "Attach a tag to an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID, tagID, err := parseActivityTag(args)
			if err != nil {
				return err
			}
			return wire.ActivityAdapter().Tag(context.Background(), activityID, tagID)
		},
	}
}

func activityUntagCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "untag [activity-id] [tag-id]",
		Short: "Detach a tag from an activity",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			activityID, tagID, err := parseActivityTag(args)
			if err != nil {
				return err
			}
			return wire.ActivityAdapter().Untag(context.Background(), activityID, tagID)
		},
	}
}

func parseActivityTag(args []string) (int64, int64, error) {
	activityID, err := parseID("activity", args[0])
	if err != nil {
		return 0, 0, err
	}
	tagID, err := parseID("tag", args[1])
	if err != nil {
		return 0, 0, err
	}
	return activityID, tagID, nil
}
