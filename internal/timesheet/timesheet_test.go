package timesheet_test

import (
	"testing"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
	"github.com/Tiliavir/topup/internal/timesheet"
)

func TestParseSample1(t *testing.T) {
	days := timesheet.Parse(timesheet.Sample1, timesheet.DefaultConfig())
	if len(days) != 5 {
		t.Fatalf("Parse returned %d days, want 5", len(days))
	}

	if days[0].DayHeader != "Mon, 27 Oct" || days[0].Status != model.StatusMissing {
		t.Errorf("day 1 = %q %q, want Mon, 27 Oct missing", days[0].DayHeader, days[0].Status)
	}

	tue := days[1]
	if tue.DayHeader != "Tue, 28 Oct" || tue.Status != model.StatusNoTopup {
		t.Errorf("day 2 = %q %q, want Tue, 28 Oct no-topup", tue.DayHeader, tue.Status)
	}
	if tue.WorkedMinutes == nil || *tue.WorkedMinutes != 646 {
		t.Errorf("day 2 worked = %v, want 646", tue.WorkedMinutes)
	}
	if tue.PlannedShift == nil || *tue.PlannedShift != "11:00-21:00" {
		t.Errorf("day 2 planned shift = %v", tue.PlannedShift)
	}

	wantLength := []int{0, 0, 60, 13, 17}
	for i, d := range days {
		if d.TopupLength != wantLength[i] {
			t.Errorf("%s top-up length = %d, want %d", d.DayHeader, d.TopupLength, wantLength[i])
		}
	}
}

func TestParseSample2(t *testing.T) {
	days := timesheet.Parse(timesheet.Sample2, timesheet.DefaultConfig())
	if len(days) != 5 {
		t.Fatalf("Parse returned %d days, want 5", len(days))
	}

	wantStatus := []model.Status{
		model.StatusNoTopup,
		model.StatusNeedsTopup,
		model.StatusNeedsTopup,
		model.StatusMissing,
		model.StatusMissing,
	}
	for i, d := range days {
		if d.Status != wantStatus[i] {
			t.Errorf("%s status = %q, want %q", d.DayHeader, d.Status, wantStatus[i])
		}
	}

	tue := days[1]
	if tue.DayHeader != "Tue, 02 Dec" {
		t.Fatalf("day 2 header = %q", tue.DayHeader)
	}
	if *tue.WorkedMinutes != 330 || *tue.TopupStart != 1207 || *tue.TopupEnd != 1478 || tue.TopupLength != 270 {
		t.Errorf("day 2 = worked %d, top-up %d..%d (%d)", *tue.WorkedMinutes, *tue.TopupStart, *tue.TopupEnd, tue.TopupLength)
	}
	if got := timecalc.FormatClock12(tue.TopupStart); got != "08:07 PM" {
		t.Errorf("top-up start = %q, want 08:07 PM", got)
	}
	if got := timecalc.FormatClock12(tue.TopupEnd); got != "12:38 AM (next day)" {
		t.Errorf("top-up end = %q, want 12:38 AM (next day)", got)
	}
	if tue.Logins[0] != "02:36 PM" || tue.Logouts[0] != "08:06 PM" {
		t.Errorf("day 2 punches = %v / %v", tue.Logins, tue.Logouts)
	}
}

func TestParseOddPunches(t *testing.T) {
	days := timesheet.Parse("Mon, 01 Dec\n09:59 AM\nPUN-CDC", timesheet.DefaultConfig())
	if len(days) != 1 {
		t.Fatalf("Parse returned %d days, want 1", len(days))
	}
	if days[0].Status != model.StatusError || len(days[0].Logins) == 0 || len(days[0].Logouts) != 0 {
		t.Errorf("odd punches = %+v", days[0])
	}
}

func TestParseNothingRecognizable(t *testing.T) {
	for _, raw := range []string{"", "   \r\n\t", "just some text", "09:00 AM\n05:00 PM\n\nhello"} {
		if days := timesheet.Parse(raw, timesheet.DefaultConfig()); len(days) != 0 {
			t.Errorf("Parse(%q) = %d days, want 0", raw, len(days))
		}
	}
}

func TestParseDropsLeadingNoise(t *testing.T) {
	raw := "Attendance for week 49\n\nMon, 01 Dec\n09:59 AM\n08:08 PM"
	days := timesheet.Parse(raw, timesheet.DefaultConfig())
	if len(days) != 1 || days[0].Status != model.StatusNoTopup {
		t.Errorf("Parse = %+v", days)
	}
}

func TestParseNonBreakingSpaces(t *testing.T) {
	tests := []struct {
		name string
		raw  string
	}{
		{"in clock times", "Tue, 28 Oct\n09:19\u00a0AM\nPUN-CDC\n08:05\u00a0PM\nPUN-CDC"},
		{"in header", "Tue,\u00a028\u00a0Oct\n09:19 AM\n08:05 PM"},
		{"narrow spaces", "Tue,\u202f28\u2009Oct\n09:19\u202fAM\u00a0\n\u00a008:05\u00a0PM"},
	}
	for _, tt := range tests {
		days := timesheet.Parse(tt.raw, timesheet.DefaultConfig())
		if len(days) != 1 {
			t.Fatalf("%s: Parse returned %d days, want 1", tt.name, len(days))
		}
		d := days[0]
		if d.DayHeader != "Tue, 28 Oct" {
			t.Errorf("%s: header = %q", tt.name, d.DayHeader)
		}
		if d.Status != model.StatusNoTopup || d.WorkedMinutes == nil || *d.WorkedMinutes != 646 {
			t.Errorf("%s: status = %q, worked = %v, want no-topup 646", tt.name, d.Status, d.WorkedMinutes)
		}
	}
}
