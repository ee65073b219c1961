package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/quizview/internal/quizdata"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Validate the question document",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		loader := quizdata.NewLoader(quizdata.NewSource(cfg.Data, cfg.FetchTimeout), nil)
		ctx, cancel := context.WithTimeout(cmd.Context(), cfg.FetchTimeout)
		defer cancel()

		questions, err := loader.Load(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s: %d questions OK\n", loader.Source().Describe(), len(questions))
		return nil
	},
}
