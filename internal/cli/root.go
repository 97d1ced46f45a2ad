package cli

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"alfredoptarigan/resume-skill-ranker/internal/config"
	"alfredoptarigan/resume-skill-ranker/internal/logger"
)

const (
	app = "skillctl"
)

// Actual version can be specified in build command.
var version = "unknown"

type rootOptions struct {
	debug bool
	json  bool

	cfg *config.Config
	log *zap.Logger
}

// NewRootCommand builds the skillctl command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:           app,
		Short:         "skillctl manages the skill vocabulary used by the resume ranker",
		SilenceUsage:  true,
		SilenceErrors: false,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			log, err := logger.New(opts.json, opts.debug)
			if err != nil {
				return err
			}
			opts.log = log
			opts.cfg = config.Load()
			return nil
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			if opts.log != nil {
				_ = opts.log.Sync()
			}
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.debug, "debug", "d", false, "verbose/debug output")
	rootCmd.PersistentFlags().BoolVarP(&opts.json, "json", "j", false, "json format for logging")

	rootCmd.AddCommand(newVersionCommand())
	rootCmd.AddCommand(newVocabularyCommand(opts))

	return rootCmd
}

// Execute executes the root command.
func Execute() error {
	return NewRootCommand().Execute()
}
