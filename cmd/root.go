package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/quizview/internal/config"
	"github.com/abhisek/quizview/internal/logger"
)

var rootCmd = &cobra.Command{
	Use:          "quizview",
	Short:        "Multiple-choice quiz viewer",
	Long:         "quizview shows a multiple-choice quiz one question at a time, in the terminal or in a browser.",
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

func Execute() error {
	return rootCmd.ExecuteContext(context.Background())
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (default ./config/quizview.yaml)")
	rootCmd.PersistentFlags().String("data", "", `Question document: file path, http(s) URL or "embedded" (overrides QUIZVIEW_DATA)`)
	rootCmd.PersistentFlags().String("log-file", "", "Log file path (overrides QUIZVIEW_LOG_FILE)")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(versionCmd)
}

// loadConfig resolves configuration for cmd, letting its flags override
// the file and environment.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	configFile, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configFile, cmd.Flags())
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, nil
}

// newLogger builds the zap logger for cfg.
func newLogger(cfg *config.Config) (*zap.Logger, error) {
	log, err := logger.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("init logger: %w", err)
	}
	return log, nil
}
