package validator

import (
	"fmt"
	"strings"

	"github.com/Code-Monger/ToBeBot/pkg/patterns"
)

// AgreementReminder summarises which copula goes with which pronoun.
const AgreementReminder = "Remember: Use 'am' with 'I', 'is' with he/she/it, 'are' with you/we/they (present). " +
	"Use 'was' with I/he/she/it, 'were' with you/we/they (past)."

// FormatFeedback renders a result as the practice-mode reply shown to a
// learner who wrote sentence.
func FormatFeedback(sentence string, result Result) string {
	var b strings.Builder

	if result.IsValid {
		if result.Type.IsMood() {
			fmt.Fprintf(&b, "✅ Correct sentence in %s!", patterns.Mood(result.Type).Label())
		} else {
			b.WriteString("✅ Correct sentence!")
		}
		return b.String()
	}

	b.WriteString("❌ Invalid sentence.")

	if len(result.Errors) > 0 {
		b.WriteString("\n\n📝 Issues found:")
		for i, e := range result.Errors {
			fmt.Fprintf(&b, "\n%d. %s", i+1, e)
		}
	}

	if result.Corrections != "" {
		fmt.Fprintf(&b, "\n\n💡 %s", result.Corrections)
	}

	if result.CorrectedSentence != "" && result.CorrectedSentence != strings.TrimSpace(sentence) {
		fmt.Fprintf(&b, "\n\n✏️ Corrected version: \"%s\"", result.CorrectedSentence)
	}

	if result.Type == Invalid {
		b.WriteString("\n\n📚 " + AgreementReminder)
	}

	return b.String()
}
