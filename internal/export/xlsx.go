// Package export writes top-up windows to spreadsheet files.
package export

import (
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
	"github.com/Tiliavir/topup/internal/timesheet"
)

// SheetName is the worksheet holding one row per day.
const SheetName = "Top-ups"

var columns = []string{"Day", "Planned Shift", "Status", "Worked", "Top-up Start", "Top-up End", "Top-up Length"}

// WriteXLSX writes one row per day plus the weekly totals to w.
func WriteXLSX(w io.Writer, days []model.DayResult) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("naming sheet: %w", err)
	}

	if err := setRow(f, 1, toAny(columns)); err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return fmt.Errorf("creating header style: %w", err)
	}
	if err := f.SetRowStyle(SheetName, 1, 1, bold); err != nil {
		return fmt.Errorf("styling header: %w", err)
	}

	for i, d := range days {
		shift := ""
		if d.PlannedShift != nil {
			shift = *d.PlannedShift
		}
		row := []any{
			d.DayHeader,
			shift,
			string(d.Status),
			timecalc.FormatDuration(d.WorkedMinutes),
			"",
			"",
			"",
		}
		if d.NeedsTopup() {
			length := d.TopupLength
			row[4] = timecalc.FormatClock12(d.TopupStart)
			row[5] = timecalc.FormatClock12(d.TopupEnd)
			row[6] = timecalc.FormatDuration(&length)
		}
		if err := setRow(f, i+2, row); err != nil {
			return err
		}
	}

	s := timesheet.Summarize(days)
	total := s.TotalTopupMinutes
	next := len(days) + 3
	if err := setRow(f, next, []any{"Total Top-up this week", timecalc.FormatDuration(&total)}); err != nil {
		return err
	}
	if err := setRow(f, next+1, []any{"Days needing top-up", s.DaysNeedingTopup}); err != nil {
		return err
	}

	if err := f.SetColWidth(SheetName, "A", "G", 18); err != nil {
		return fmt.Errorf("sizing columns: %w", err)
	}
	if err := f.Write(w); err != nil {
		return fmt.Errorf("writing workbook: %w", err)
	}
	return nil
}

func setRow(f *excelize.File, row int, values []any) error {
	cell, err := excelize.CoordinatesToCellName(1, row)
	if err != nil {
		return err
	}
	if err := f.SetSheetRow(SheetName, cell, &values); err != nil {
		return fmt.Errorf("writing row %d: %w", row, err)
	}
	return nil
}

func toAny(ss []string) []any {
	out := make([]any, len(ss))
	for i, s := range ss {
		out[i] = s
	}
	return out
}
