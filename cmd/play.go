package cmd

import (
	"github.com/spf13/cobra"

	"github.com/abhisek/quizview/internal/app"
	"github.com/abhisek/quizview/internal/config"
	"github.com/abhisek/quizview/internal/quizdata"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Take the quiz in the terminal",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runTUI(cmd)
	},
}

// runTUI loads configuration and launches the terminal UI. The UI owns
// the terminal, so logs always go to a file.
func runTUI(cmd *cobra.Command) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Log.File == "" {
		cfg.Log.File = config.DefaultLogFile()
	}

	log, err := newLogger(cfg)
	if err != nil {
		return err
	}
	defer func() { _ = log.Sync() }()

	src := quizdata.NewSource(cfg.Data, cfg.FetchTimeout)
	return app.Run(app.Options{
		Loader: quizdata.NewLoader(src, log),
		Logger: log,
	})
}
