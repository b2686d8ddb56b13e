package main

import (
	"errors"
	"fmt"
	"os"
	"strconv"

	"dcn-community/internal/config"
	"dcn-community/internal/database"
	"dcn-community/internal/logger"

	"github.com/golang-migrate/migrate/v4"
	"github.com/jmoiron/sqlx"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "migrate",
		Short:         "Manage the DCN community database schema",
		SilenceUsage:  true,
		SilenceErrors: false,
	}
	cmd.AddCommand(newUpCmd(), newDownCmd(), newVersionCmd())
	return cmd
}

func newUpCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sqlx.DB) error {
				return database.MigrateUp(db.DB)
			})
		},
	}
}

func newDownCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "down [steps]",
		Short: "Roll back migrations; all of them when steps is omitted",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			steps := 0
			if len(args) == 1 {
				n, err := strconv.Atoi(args[0])
				if err != nil || n <= 0 {
					return fmt.Errorf("steps must be a positive integer, got %q", args[0])
				}
				steps = n
			}
			return withDB(func(db *sqlx.DB) error {
				if err := database.MigrateDown(db.DB, steps); err != nil {
					return err
				}
				logger.Get().Info("Migrations rolled back", zap.Int("steps", steps))
				return nil
			})
		},
	}
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the applied schema version",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDB(func(db *sqlx.DB) error {
				m, err := database.NewMigrator(db.DB)
				if err != nil {
					return err
				}
				version, dirty, err := m.Version()
				if errors.Is(err, migrate.ErrNilVersion) {
					fmt.Fprintln(cmd.OutOrStdout(), "no migrations applied")
					return nil
				}
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "version %d (dirty=%t)\n", version, dirty)
				return nil
			})
		},
	}
}

// withDB loads configuration, initializes the logger and hands fn an open
// database connection.
func withDB(fn func(db *sqlx.DB) error) error {
	cfg, err := config.LoadConfig()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if err := logger.Initialize(cfg.Logger); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	defer logger.Sync()

	db, err := database.NewPostgresDB(cfg)
	if err != nil {
		return err
	}
	defer db.Close()
	return fn(db)
}
