package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/validator"
)

// errInvalidSentence makes check exit non-zero without printing anything
// beyond the feedback itself.
var errInvalidSentence = errors.New("sentence is not valid")

func newCheckCmd(configPath *string) *cobra.Command {
	var jsonMode bool

	cmd := &cobra.Command{
		Use:   "check [--json] <sentence...>",
		Short: "Validate one sentence and print feedback",
		Long: `Validates a single sentence. All arguments are joined with spaces, so
the sentence may be passed quoted or unquoted:

  tobebot check "She is a doctor."
  tobebot check I am happy.`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(*configPath)
			if err != nil {
				return err
			}
			v, err := buildValidator(cfg, zap.NewNop())
			if err != nil {
				return err
			}
			return runCheck(cmd, v, strings.Join(args, " "), jsonMode)
		},
	}
	cmd.Flags().BoolVar(&jsonMode, "json", false, "Print the raw result as JSON")
	return cmd
}

func runCheck(cmd *cobra.Command, v *validator.Validator, sentence string, jsonMode bool) error {
	result := v.Validate(sentence)

	out := cmd.OutOrStdout()
	if jsonMode {
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result); err != nil {
			return fmt.Errorf("failed to encode result: %w", err)
		}
	} else {
		fmt.Fprintln(out, validator.FormatFeedback(sentence, result))
	}

	if !result.IsValid {
		return errInvalidSentence
	}
	return nil
}
