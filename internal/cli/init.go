package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/example/banban/internal/config"
	"github.com/example/banban/internal/db"
)

var done = color.New(color.FgGreen).SprintFunc()

// InitCmd returns the init command
func InitCmd() *cobra.Command {
	var seed bool

	cmd := &cobra.Command{
		Use:   "init",
		Short: "Initialize the banban database",
		Long: `Write the default ~/.banban/config.yaml if it does not exist, then create or
migrate the database the resolved configuration points to.

With --seed an empty database is filled with a small demo board.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			home, err := os.UserHomeDir()
			if err != nil {
				return fmt.Errorf("failed to get home directory: %w", err)
			}
			return runInit(context.Background(), home, seed, cmd.OutOrStdout())
		},
	}

	cmd.Flags().BoolVar(&seed, "seed", false, "Populate an empty database with a demo board")
	return cmd
}

func runInit(ctx context.Context, home string, seed bool, out io.Writer) error {
	cfg, err := config.LoadConfig(home, config.EnvFiles...)
	if err != nil {
		return err
	}

	if _, err := os.Stat(config.Path(home)); errors.Is(err, os.ErrNotExist) {
		if err := config.SaveConfig(home, config.Default(home)); err != nil {
			return err
		}
		fmt.Fprintf(out, "%s Config written to %s\n", done("✓"), config.Path(home))
	}

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		return err
	}
	defer database.Close()

	if err := db.Migrate(ctx, database, nil); err != nil {
		return err
	}
	version, err := db.Version(ctx, database)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "%s Database ready at %s (schema version %d)\n", done("✓"), cfg.DBPath, version)

	if seed {
		if err := db.SeedFixtures(ctx, database); err != nil {
			return fmt.Errorf("failed to seed database: %w", err)
		}
		fmt.Fprintf(out, "%s Demo board seeded\n", done("✓"))
	}

	fmt.Fprintln(out)
	fmt.Fprintln(out, "Next steps:")
	fmt.Fprintln(out, "  banban column create Todo")
	fmt.Fprintln(out, "  banban board")

	return nil
}
