package main

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/spf13/cobra"

	"github.com/DJPeters03/IdleAnimalKingdom/internal/config"
	"github.com/DJPeters03/IdleAnimalKingdom/internal/database"
)

const schemaTimeout = time.Minute

func newSchemaCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "schema",
		Short: "Manage the postgres save schema",
	}

	cmd.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply pending migrations to the database from DB_* settings",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withPool(cmd, func(ctx context.Context, c *schemaConn) error {
					if err := database.Migrate(ctx, c.pool); err != nil {
						return err
					}
					return c.printVersion(ctx)
				})
			},
		},
		&cobra.Command{
			Use:   "version",
			Short: "Print the applied schema version",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, _ []string) error {
				return withPool(cmd, func(ctx context.Context, c *schemaConn) error {
					return c.printVersion(ctx)
				})
			},
		},
	)
	return cmd
}

type schemaConn struct {
	cmd  *cobra.Command
	pool *pgxpool.Pool
}

func (c *schemaConn) printVersion(ctx context.Context) error {
	version, err := database.SchemaVersion(ctx, c.pool)
	if err != nil {
		return err
	}
	color.New(color.FgGreen).Fprintf(c.cmd.OutOrStdout(), "✓ Schema at version %d\n", version)
	return nil
}

func withPool(cmd *cobra.Command, fn func(ctx context.Context, c *schemaConn) error) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(cmd.Context(), schemaTimeout)
	defer cancel()

	pool, err := database.NewPool(ctx, cfg.GetDBConnString(), 2, time.Minute, time.Hour)
	if err != nil {
		return err
	}
	defer pool.Close()

	return fn(ctx, &schemaConn{cmd: cmd, pool: pool})
}
