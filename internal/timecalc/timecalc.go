package timecalc

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

// MinutesPerDay is the number of clock minutes between two midnights.
const MinutesPerDay = 24 * 60

var (
	meridiemSuffix = regexp.MustCompile(`(?i)(AM|PM)[\s\p{Zs}]*$`)
	clock12        = regexp.MustCompile(`(?i)^(\d{1,2})[:.](\d{2})[\s\p{Zs}]*(AM|PM)\b`)
	clock24        = regexp.MustCompile(`^(\d{1,2})[:.](\d{2})$`)
)

// ParseClock converts a portal time token such as "08:05 PM", "8.05pm PUN"
// or "20:05" into minutes since midnight. ok is false when the fragment holds
// no recognizable clock time.
//
// A fragment containing a hyphen but no trailing AM/PM is read as a range
// ("11:00-21:00") and only its first half is parsed.
func ParseClock(s string) (minutes int, ok bool) {
	s = strings.TrimSpace(s)
	if s == "" || strings.Contains(s, "--") {
		return 0, false
	}

	if strings.Contains(s, "-") && !meridiemSuffix.MatchString(s) {
		s, _, _ = strings.Cut(s, "-")
		s = strings.TrimSpace(s)
	}

	if minutes, ok := parseClock12(s); ok {
		return minutes, true
	}

	// Without a meridiem only the first token counts; the rest is usually a
	// location label.
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return 0, false
	}
	m := clock24.FindStringSubmatch(fields[0])
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 23 || mins > 59 {
		return 0, false
	}
	return h*60 + mins, true
}

// parseClock12 reads a leading "H:MM AM" token. Out-of-range values such as
// "13:00 PM" are rejected so the 24-hour rule can try them.
func parseClock12(s string) (int, bool) {
	m := clock12.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	h, _ := strconv.Atoi(m[1])
	mins, _ := strconv.Atoi(m[2])
	if h > 12 || mins > 59 {
		return 0, false
	}
	switch strings.ToUpper(m[3]) {
	case "PM":
		if h != 12 {
			h += 12
		}
	case "AM":
		if h == 12 {
			h = 0
		}
	}
	return h*60 + mins, true
}

// FormatClock12 renders minutes since midnight as "hh:mm AM". Values of a
// full day or more get a " (next day)" suffix; nil renders as "--:--".
func FormatClock12(minutes *int) string {
	if minutes == nil {
		return "--:--"
	}
	total := *minutes
	nextDay := total >= MinutesPerDay
	if nextDay {
		total %= MinutesPerDay
	}

	h := total / 60
	m := total % 60
	period := "AM"
	if h >= 12 {
		period = "PM"
	}
	switch {
	case h == 0:
		h = 12
	case h > 12:
		h -= 12
	}

	out := fmt.Sprintf("%02d:%02d %s", h, m, period)
	if nextDay {
		out += " (next day)"
	}
	return out
}

// FormatDuration formats minutes as "7h 05m"; nil renders as "-- h -- m".
func FormatDuration(minutes *int) string {
	if minutes == nil {
		return "-- h -- m"
	}
	return fmt.Sprintf("%dh %02dm", *minutes/60, *minutes%60)
}

// Duration returns the minutes between login and logout. A logout earlier
// than the login is taken to fall on the next day. ok is false when either
// end is missing.
func Duration(login, logout *int) (minutes int, ok bool) {
	if login == nil || logout == nil {
		return 0, false
	}
	end := *logout
	if end < *login {
		end += MinutesPerDay
	}
	return end - *login, true
}
