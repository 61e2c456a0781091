// Package normalize runs the ordered formatting passes that decide whether a
// sentence is well-formed enough to classify. Each pass reads the working
// copy left by the previous one and may replace it.
package normalize

import (
	"strings"

	"go.uber.org/zap"

	"github.com/Code-Monger/ToBeBot/pkg/lexicon"
	"github.com/Code-Monger/ToBeBot/pkg/patterns"
)

// Pass is one check-and-correct step. Apply returns the new working copy and
// the errors found; a pass that finds nothing returns its input unchanged.
type Pass struct {
	Name  string
	Apply func(sentence string) (string, []string)
}

// Outcome is the result of running every pass over a sentence.
type Outcome struct {
	// Passed is true when no pass reported an error.
	Passed bool
	// Errors in detection order.
	Errors []string
	// Working is the copy as left by the last pass that ran.
	Working string
	// Corrected is Working with the missing-article suggestion applied.
	Corrected string
	// FailedPasses names the passes that reported errors.
	FailedPasses []string
}

// Pipeline folds a sentence through its passes.
type Pipeline struct {
	lex         *lexicon.Lexicon
	passes      []Pass
	stopAtFirst bool
	logger      *zap.Logger
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// StopAtFirstFailure ends the fold after the first pass that reports an
// error, so only that category is reported.
func StopAtFirstFailure() Option {
	return func(p *Pipeline) { p.stopAtFirst = true }
}

// WithLogger sets the logger used for per-pass debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(p *Pipeline) {
		if logger != nil {
			p.logger = logger
		}
	}
}

// New builds the standard six-pass pipeline.
func New(lex *lexicon.Lexicon, opts ...Option) *Pipeline {
	p := &Pipeline{
		lex:    lex,
		passes: StandardPasses(lex),
		logger: zap.NewNop(),
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// Passes returns the passes in the order they run.
func (p *Pipeline) Passes() []Pass {
	return append([]Pass(nil), p.passes...)
}

// Run trims the sentence and folds it through the passes.
func (p *Pipeline) Run(sentence string) Outcome {
	working := strings.TrimSpace(sentence)
	var out Outcome

	for _, pass := range p.passes {
		next, errs := pass.Apply(working)
		working = next
		if len(errs) == 0 {
			continue
		}

		p.logger.Debug("Formatting pass reported errors",
			zap.String("pass", pass.Name),
			zap.Int("errors", len(errs)))
		out.Errors = append(out.Errors, errs...)
		out.FailedPasses = append(out.FailedPasses, pass.Name)
		if p.stopAtFirst {
			break
		}
	}

	out.Passed = len(out.Errors) == 0
	out.Working = working
	out.Corrected = working
	for _, name := range out.FailedPasses {
		if name == PassArticle {
			out.Corrected = patterns.InsertArticle(working, p.lex)
		}
	}
	return out
}
