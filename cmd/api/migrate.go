package main

import (
	"github.com/spf13/cobra"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply database migrations",
	Long: `Apply the embedded PostgreSQL migrations, creating the categories and
questions tables and the standard categories. SQLite databases are migrated
whenever they are opened.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if cfg.Database.Driver == config.DriverSQLite {
			log.Info().Msg("sqlite schema is applied on open, nothing to migrate")
			return nil
		}
		return database.Migrate(cmd.Context(), database.PostgresDSN(cfg.Database), log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
