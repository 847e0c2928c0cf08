package timesheet_test

import (
	"testing"

	"github.com/Tiliavir/topup/internal/timesheet"
)

func TestSummarize(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		wantTotal int
		wantDays  int
	}{
		{"sample 1", timesheet.Sample1, 90, 3},
		{"sample 2", timesheet.Sample2, 410, 2},
		{"empty", "", 0, 0},
	}
	for _, tt := range tests {
		s := timesheet.Summarize(timesheet.Parse(tt.raw, timesheet.DefaultConfig()))
		if s.TotalTopupMinutes != tt.wantTotal || s.DaysNeedingTopup != tt.wantDays {
			t.Errorf("%s: Summarize = %+v, want %d minutes over %d days", tt.name, s, tt.wantTotal, tt.wantDays)
		}
	}
}

func TestExportText(t *testing.T) {
	days := timesheet.Parse(timesheet.Sample2, timesheet.DefaultConfig())
	want := "Tue, 02 Dec: 08:07 PM → 12:38 AM (next day)\n" +
		"Wed, 03 Dec: 08:09 PM → 10:30 PM"
	if got := timesheet.ExportText(days); got != want {
		t.Errorf("ExportText =\n%s\nwant\n%s", got, want)
	}

	if got := timesheet.ExportText(nil); got != "" {
		t.Errorf("ExportText(nil) = %q, want empty", got)
	}
}
