package timesheet

import (
	"fmt"
	"strings"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
)

// Summary aggregates top-up figures over a week of results.
type Summary struct {
	TotalTopupMinutes int `json:"total_topup_minutes"`
	DaysNeedingTopup  int `json:"days_needing_topup"`
}

// Summarize totals the top-up length of every day that needs one.
func Summarize(days []model.DayResult) Summary {
	var s Summary
	for _, d := range days {
		if d.NeedsTopup() {
			s.TotalTopupMinutes += d.TopupLength
			s.DaysNeedingTopup++
		}
	}
	return s
}

// Window formats a day's top-up as "08:07 PM → 12:38 AM (next day)".
func Window(d model.DayResult) string {
	return fmt.Sprintf("%s → %s", timecalc.FormatClock12(d.TopupStart), timecalc.FormatClock12(d.TopupEnd))
}

// ExportLines returns "<day>: <start> → <end>" for each day needing a top-up.
func ExportLines(days []model.DayResult) []string {
	var lines []string
	for _, d := range days {
		if d.NeedsTopup() {
			lines = append(lines, d.DayHeader+": "+Window(d))
		}
	}
	return lines
}

// ExportText joins ExportLines with newlines.
func ExportText(days []model.DayResult) string {
	return strings.Join(ExportLines(days), "\n")
}
