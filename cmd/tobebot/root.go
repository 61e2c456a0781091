package main

import (
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/config"
	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/logging"
	"github.com/Code-Monger/ToBeBot/pkg/validator"
)

// NewRootCmd creates the tobebot root command with all subcommands.
func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "tobebot",
		Short:         "tobebot - practice checker for sentences with the verb TO BE",
		Args:          cobra.NoArgs,
		SilenceErrors: true,
		SilenceUsage:  true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "tobebot.yaml", "Path to the YAML configuration file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newCheckCmd(&configPath))
	return root
}

// loadConfig reads and validates the configuration at path.
func loadConfig(path string) (*config.Config, error) {
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// buildValidator constructs the logger, lexicon and validator described by
// cfg.
func buildValidator(cfg *config.Config, logger *zap.Logger) (*validator.Validator, error) {
	lex, err := lexicon.New(cfg.LexiconOptions()...)
	if err != nil {
		return nil, err
	}
	return validator.New(lex, validator.WithLogger(logger)), nil
}

func newLogger(cfg *config.Config) (*zap.Logger, error) {
	return logging.New(cfg.Logging.Level, cfg.Logging.Development)
}
