// Package validator is the single entry point for checking copula sentences.
// It sequences the formatting pipeline, the grammar classifier and the
// correction generator and returns one Result.
package validator

import (
	"fmt"
	"strings"
	"sync"

	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/correction"
	"github.com/Code-Monger/ToBeBot/pkg/grammar"
	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/normalize"
)

// Validator checks sentences against a fixed lexicon. It holds no per-call
// state and is safe for concurrent use.
type Validator struct {
	lex        *lexicon.Lexicon
	pipeline   *normalize.Pipeline
	classifier *grammar.Classifier
	generator  *correction.Generator
	logger     *zap.Logger
}

type config struct {
	logger       *zap.Logger
	pipelineOpts []normalize.Option
}

// Option configures a Validator.
type Option func(*config)

// WithLogger sets the logger. Validation itself only logs at debug level.
func WithLogger(logger *zap.Logger) Option {
	return func(c *config) { c.logger = logger }
}

// WithStopAtFirstFailure reports only the first formatting category that
// fails instead of accumulating all of them.
func WithStopAtFirstFailure() Option {
	return func(c *config) { c.pipelineOpts = append(c.pipelineOpts, normalize.StopAtFirstFailure()) }
}

// New returns a Validator backed by lex.
func New(lex *lexicon.Lexicon, opts ...Option) *Validator {
	c := &config{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(c)
	}
	if c.logger == nil {
		c.logger = zap.NewNop()
	}

	logger := c.logger.Named("validator")
	pipelineOpts := append([]normalize.Option{normalize.WithLogger(logger)}, c.pipelineOpts...)

	return &Validator{
		lex:        lex,
		pipeline:   normalize.New(lex, pipelineOpts...),
		classifier: grammar.NewClassifier(lex),
		generator:  correction.NewGenerator(lex),
		logger:     logger,
	}
}

var (
	defaultOnce      sync.Once
	defaultValidator *Validator
)

// Default returns the process-wide Validator on the default lexicon.
func Default() *Validator {
	defaultOnce.Do(func() {
		defaultValidator = New(lexicon.Default())
	})
	return defaultValidator
}

// ValidateSentence validates sentence with the default Validator.
func ValidateSentence(sentence string) Result {
	return Default().Validate(sentence)
}

// Lexicon returns the lexicon the validator was built with.
func (v *Validator) Lexicon() *lexicon.Lexicon {
	return v.lex
}

// CheckFormat runs only the formatting pipeline. The result type is either
// FormattingErrors or ValidFormat.
func (v *Validator) CheckFormat(sentence string) Result {
	outcome := v.pipeline.Run(sentence)
	if !outcome.Passed {
		return Result{
			IsValid:           false,
			Type:              FormattingErrors,
			Errors:            outcome.Errors,
			Corrections:       fmt.Sprintf(`Try: "%s"`, outcome.Corrected),
			CorrectedSentence: outcome.Corrected,
		}
	}
	return Result{IsValid: true, Type: ValidFormat, CorrectedSentence: outcome.Working}
}

// Validate checks one sentence. It never fails: every problem is reported
// through Result.Errors.
func (v *Validator) Validate(sentence string) Result {
	trimmed := strings.TrimSpace(sentence)

	format := v.CheckFormat(trimmed)
	if !format.IsValid {
		v.logger.Debug("Sentence has formatting errors", zap.Int("errors", len(format.Errors)))
		return format
	}

	verdict := v.classifier.Classify(trimmed)
	if verdict.Matched {
		return Result{IsValid: true, Type: ResultType(verdict.Mood)}
	}

	if len(verdict.Errors) == 0 {
		return Result{IsValid: true, Type: Valid}
	}

	v.logger.Debug("Sentence has grammar errors", zap.Int("errors", len(verdict.Errors)))
	suggestion := v.generator.Generate(trimmed)
	return Result{
		IsValid:           false,
		Type:              Invalid,
		Errors:            verdict.Errors,
		Corrections:       suggestion.Text,
		CorrectedSentence: suggestion.Corrected,
	}
}
