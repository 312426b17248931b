package analyzer

import (
	"regexp"
	"strings"
)

// Patterns that strip the non-essential portions of a play so the
// readability computation only sees spoken lines.
var (
	// Act and scene headers, stage directions, and line numbers.
	nonEssentialRE = regexp.MustCompile(`(?i)(ACT [IVX]+\.|Scene [IVX]+\.|\[.*?\]|\d+\.|SCENE\.)`)

	// Speaker names introducing a block of lines.
	speakerRE = regexp.MustCompile(`(?m)^  [A-Za-z]+\.`)

	// Runs of line breaks.
	eolRE = regexp.MustCompile(`[\r\n]+`)
)

// StripNonEssentialPortions removes act and scene headers, stage
// directions, line numbers and speaker names from a play, collapses
// excessive line breaks, and trims surrounding whitespace.
func StripNonEssentialPortions(play string) string {
	stripped := nonEssentialRE.ReplaceAllString(play, "")
	stripped = speakerRE.ReplaceAllString(stripped, "")
	stripped = eolRE.ReplaceAllString(stripped, "\n")
	return strings.TrimSpace(stripped)
}
