package timesheet

import (
	"regexp"
	"strings"
)

const (
	weekdayAlt = `(Mon|Tue|Wed|Thu|Fri|Sat|Sun)`
	monthAlt   = `(Jan|Feb|Mar|Apr|May|Jun|Jul|Aug|Sep|Oct|Nov|Dec)`
)

var (
	// dayHeaderAnywhere finds day headers inside a whole paste.
	dayHeaderAnywhere = regexp.MustCompile(`(?i)` + weekdayAlt + `,?\s+\d{1,2}\s+` + monthAlt)
	// dayHeaderLine captures weekday, day of month and month at line start.
	dayHeaderLine = regexp.MustCompile(`(?i)^` + weekdayAlt + `,?\s+(\d{1,2})\s+` + monthAlt)

	blankLine     = regexp.MustCompile(`\n\s*\n`)
	plannedShift  = regexp.MustCompile(`(?i)Planned Shift\s*:\s*(\d{1,2}:\d{2})\s*-\s*(\d{1,2}:\d{2})`)
	weekdayPrefix = regexp.MustCompile(`(?i)^` + weekdayAlt)
	shiftLabel    = regexp.MustCompile(`(?i)Planned Shift`)
	durationLine  = regexp.MustCompile(`(?i)^\d+h\s+\d+m$`)
	topupMarker   = regexp.MustCompile(`(?i)Total TopUp|Click here to Apply`)
	portingMarker = regexp.MustCompile(`(?i)Data porting`)
	locationCode  = regexp.MustCompile(`(?i)^[A-Z]{2,4}-[A-Z]{2,4}$`)
)

// Placeholders the portal prints when it has no data for a day.
const (
	noHoursPlaceholder = "-- h -- m"
	noTimePlaceholder  = "-- : ---- : --"
	portingNotice      = "Data porting"
)

// noiseLine reports whether a line is known not to carry a login or logout.
// The predicates are checked in order and the first hit wins.
type noiseLine func(line string) bool

var noisePredicates = []noiseLine{
	weekdayPrefix.MatchString,
	shiftLabel.MatchString,
	durationLine.MatchString,
	topupMarker.MatchString,
	portingMarker.MatchString,
	func(line string) bool { return strings.Contains(line, "--") },
	locationCode.MatchString,
}

func isNoise(line string) bool {
	for _, p := range noisePredicates {
		if p(line) {
			return true
		}
	}
	return false
}

func hasMissingData(block string) bool {
	return strings.Contains(block, noHoursPlaceholder) ||
		strings.Contains(block, noTimePlaceholder) ||
		strings.Contains(block, portingNotice)
}

// titleAbbrev turns "MON" or "mon" into "Mon".
func titleAbbrev(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + strings.ToLower(s[1:])
}
