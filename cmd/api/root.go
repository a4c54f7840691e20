package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/zizouhuweidi/trivia/internal/config"
	"github.com/zizouhuweidi/trivia/internal/logger"
)

var (
	cfg *config.Config
	log zerolog.Logger
)

var rootCmd = &cobra.Command{
	Use:   "trivia",
	Short: "Trivia question API",
	Long: `Trivia serves categories, paginated questions, search and random quiz
questions over a JSON API. Configuration is read from TRIVIA_* environment
variables and an optional .env file.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		cfg, err = config.Load()
		if err != nil {
			return err
		}
		log = logger.New(cfg.Logging, cfg.Env)
		return nil
	},
	RunE: runServe,
}
