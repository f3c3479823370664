package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/example/banban/internal/cli"
	"github.com/example/banban/internal/version"
)

func main() {
	rootCmd := &cobra.Command{
		Use:     "banban",
		Short:   "banban - a personal kanban board",
		Version: version.String(),
		Long: `banban keeps a kanban board of columns and activities, plus tags grouped in
categories, in a local SQLite database. Every collection is ordered by dense
0-based positions that stay consistent across inserts, moves and deletes.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(cli.InitCmd())
	rootCmd.AddCommand(cli.DoctorCmd())
	rootCmd.AddCommand(cli.BoardCmd())

	// Entity commands
	rootCmd.AddCommand(cli.ColumnCmd())
	rootCmd.AddCommand(cli.ActivityCmd())
	rootCmd.AddCommand(cli.CategoryCmd())
	rootCmd.AddCommand(cli.TagCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
