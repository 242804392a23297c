package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"winsbygroup.com/lunchly/internal/config"
	"winsbygroup.com/lunchly/internal/database"
	"winsbygroup.com/lunchly/internal/postgres"
	"winsbygroup.com/lunchly/internal/sqlite"
)

func newMigrateCommand(root *rootOptions) *cobra.Command {
	var printOnly bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Bring the database schema up to date",
		RunE: func(cmd *cobra.Command, args []string) error {
			if printOnly {
				fmt.Fprint(cmd.OutOrStdout(), schema(root.cfg.DBDriver))
				return nil
			}

			// Open migrates as part of connecting
			db, _, err := database.Open(root.cfg)
			if err != nil {
				return err
			}
			return db.Close()
		},
	}
	cmd.Flags().BoolVar(&printOnly, "print", false, "print the schema SQL for the configured driver and exit")
	return cmd
}

func schema(driver string) string {
	if driver == config.DriverPostgres {
		return postgres.Schema()
	}
	return sqlite.Schema()
}
