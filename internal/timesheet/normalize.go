// Package timesheet turns attendance-portal text into per-day results.
package timesheet

import (
	"regexp"
	"strings"
)

// Web pages paste as U+00A0 and other Unicode spaces; they count as blanks.
var horizontalSpace = regexp.MustCompile(`[\t\p{Zs}]+`)

// Normalize unifies line endings to \n, collapses runs of tabs and Unicode
// spaces to a single ASCII space and trims the result. Normalizing twice is a no-op.
func Normalize(text string) string {
	text = strings.ReplaceAll(text, "\r\n", "\n")
	text = strings.ReplaceAll(text, "\r", "\n")
	text = horizontalSpace.ReplaceAllString(text, " ")
	return strings.TrimSpace(text)
}
