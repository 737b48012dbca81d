package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/heartmarshall/flashcards/internal/adapter/postgres"
)

var migrateCmd = &cobra.Command{
	Use:       "migrate [up|down|status]",
	Short:     "Apply or inspect database migrations",
	Args:      cobra.MatchAll(cobra.MaximumNArgs(1), cobra.OnlyValidArgs),
	ValidArgs: []string{"up", "down", "status"},
	RunE:      runMigrate,
}

func runMigrate(cmd *cobra.Command, args []string) error {
	action := "up"
	if len(args) == 1 {
		action = args[0]
	}

	cfg, logger, err := loadConfig()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), cfg.Import.Timeout)
	defer cancel()

	m, err := postgres.NewMigrator(ctx, cfg.Database.DSN)
	if err != nil {
		return err
	}
	defer m.Close()

	out := cmd.OutOrStdout()
	switch action {
	case "down":
		rolledBack, err := m.Down(ctx)
		if err != nil {
			return err
		}
		if !rolledBack {
			fmt.Fprintln(out, "No migrations to roll back")
			return nil
		}
		okColor.Fprintln(out, "✓ Rolled back one migration")
	case "status":
		status, err := m.Status(ctx)
		if err != nil {
			return err
		}
		for _, st := range status {
			fmt.Fprintf(out, "%-8s %05d %s\n", st.State, st.Source.Version, st.Source.Path)
		}
	default:
		n, err := m.Up(ctx)
		if err != nil {
			return err
		}
		logger.InfoContext(ctx, "migrations applied", slog.Int("count", n))
		okColor.Fprintf(out, "✓ Applied %d migrations\n", n)
	}
	return nil
}
