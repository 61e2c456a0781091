package validator

import "github.com/Code-Monger/ToBeBot/pkg/patterns"

// ResultType classifies a validation result. Callers branch on it.
type ResultType string

const (
	PresentAffirmative   = ResultType(patterns.PresentAffirmative)
	PresentNegative      = ResultType(patterns.PresentNegative)
	PresentInterrogative = ResultType(patterns.PresentInterrogative)
	PastAffirmative      = ResultType(patterns.PastAffirmative)
	PastNegative         = ResultType(patterns.PastNegative)
	PastInterrogative    = ResultType(patterns.PastInterrogative)

	Valid            ResultType = "valid"
	Invalid          ResultType = "invalid"
	FormattingErrors ResultType = "formatting_errors"
	ValidFormat      ResultType = "valid_format"
)

// IsMood reports whether t names one of the six copula moods.
func (t ResultType) IsMood() bool {
	switch t {
	case PresentAffirmative, PresentNegative, PresentInterrogative,
		PastAffirmative, PastNegative, PastInterrogative:
		return true
	}
	return false
}

// Result is the outcome of validating one sentence.
type Result struct {
	IsValid           bool       `json:"isValid"`
	Type              ResultType `json:"type"`
	Errors            []string   `json:"errors,omitempty"`
	Corrections       string     `json:"corrections,omitempty"`
	CorrectedSentence string     `json:"correctedSentence,omitempty"`
}
