package main

import (
	"database/sql"
	"fmt"

	"github.com/jbeshir/idea-feed/internal/app"
	"github.com/jbeshir/idea-feed/internal/datasources/mysql"
	"github.com/jbeshir/idea-feed/internal/domain"
	"github.com/spf13/cobra"
)

func newMigrateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage the MySQL schema",
	}

	var steps int
	down := &cobra.Command{
		Use:   "down",
		Short: "Revert migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, func(db *sql.DB) (uint, bool, error) {
				return mysql.RollbackMigrations(db, steps)
			})
		},
	}
	down.Flags().IntVar(&steps, "steps", 1, "number of migrations to revert")

	up := &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withDB(cmd, mysql.RunMigrations)
		},
	}

	cmd.AddCommand(up, down)
	return cmd
}

func withDB(cmd *cobra.Command, migrate func(db *sql.DB) (uint, bool, error)) error {
	ctx := cmd.Context()

	db, err := mysql.Connect(ctx, app.MustGetEnvAsString(ctx, "MYSQL_URI"))
	if err != nil {
		return fmt.Errorf("connecting to MySQL: %w", err)
	}
	defer func() { _ = db.Close() }()

	version, dirty, err := migrate(db)
	if err != nil {
		return err
	}

	logger := domain.LoggerFromContext(ctx)
	logger.InfoContext(ctx, "schema migrated", "version", version, "dirty", dirty)
	return nil
}
