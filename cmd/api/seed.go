package main

import (
	"github.com/spf13/cobra"

	"github.com/zizouhuweidi/trivia/internal/database"
)

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Load the sample questions into an empty database",
	RunE: func(cmd *cobra.Command, args []string) error {
		st, err := openStore(cmd.Context())
		if err != nil {
			return err
		}
		defer st.close()

		n, err := database.Seed(cmd.Context(), st.questions)
		if err != nil {
			return err
		}

		if n == 0 {
			log.Info().Msg("database already holds questions, skipped seeding")
		} else {
			log.Info().Int("questions", n).Msg("seeded sample questions")
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(seedCmd)
}
