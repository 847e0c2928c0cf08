// Package render prints processed days as cards, Markdown, CSV or JSON.
package render

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/timecalc"
	"github.com/Tiliavir/topup/internal/timesheet"
)

// Report is everything a renderer needs for one run.
type Report struct {
	Timezone        string            `json:"timezone"`
	RequiredMinutes int               `json:"required_minutes"`
	Days            []model.DayResult `json:"days"`
	Summary         timesheet.Summary `json:"summary"`
}

// NewReport summarizes days for rendering.
func NewReport(days []model.DayResult, cfg timesheet.Config, timezone string) Report {
	return Report{
		Timezone:        timezone,
		RequiredMinutes: cfg.RequiredMinutes,
		Days:            days,
		Summary:         timesheet.Summarize(days),
	}
}

var (
	headerStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	topupStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#52C41A"))
	cardStyle    = lipgloss.NewStyle().Padding(0, 1).Border(lipgloss.RoundedBorder(), true)
	summaryStyle = cardStyle.BorderForeground(lipgloss.Color("#C89A3A"))
)

var borderColors = map[model.Status]lipgloss.Color{
	model.StatusMissing:    lipgloss.Color("#FF4D4F"),
	model.StatusError:      lipgloss.Color("#FF4D4F"),
	model.StatusNoTopup:    lipgloss.Color("#4A4A4A"),
	model.StatusNeedsTopup: lipgloss.Color("#C89A3A"),
}

// StatusMessage is the one-line verdict shown on a day card.
func StatusMessage(d model.DayResult) string {
	switch d.Status {
	case model.StatusMissing:
		return "Data porting / missing"
	case model.StatusError:
		return "Unable to parse — check format"
	case model.StatusNoTopup:
		return "No top-up required — skipped"
	case model.StatusNeedsTopup:
		return "Top-up: " + timesheet.Window(d)
	}
	return string(d.Status)
}

// Card renders a single day as a bordered box.
func Card(d model.DayResult) string {
	lines := []string{headerStyle.Render(d.DayHeader)}
	if d.PlannedShift != nil {
		lines = append(lines, mutedStyle.Render("Planned Shift: "+*d.PlannedShift))
	}
	if len(d.Logins) > 0 {
		lines = append(lines, "Login: "+strings.Join(d.Logins, " "))
	}
	if len(d.Logouts) > 0 {
		lines = append(lines, "Logout: "+strings.Join(d.Logouts, " "))
	}
	if d.WorkedMinutes != nil {
		lines = append(lines, "Worked: "+timecalc.FormatDuration(d.WorkedMinutes))
	}

	msg := StatusMessage(d)
	switch d.Status {
	case model.StatusMissing, model.StatusError:
		lines = append(lines, errorStyle.Render(msg))
	case model.StatusNoTopup:
		lines = append(lines, okStyle.Render(msg))
	case model.StatusNeedsTopup:
		length := d.TopupLength
		lines = append(lines,
			topupStyle.Render(msg),
			"Top-up length: "+timecalc.FormatDuration(&length))
	}

	style := cardStyle
	if c, ok := borderColors[d.Status]; ok {
		style = style.BorderForeground(c)
	}
	return style.Render(strings.Join(lines, "\n"))
}

// Text writes every day card followed by the weekly summary box.
func Text(w io.Writer, r Report) error {
	blocks := make([]string, 0, len(r.Days)+1)
	for _, d := range r.Days {
		blocks = append(blocks, Card(d))
	}

	total := r.Summary.TotalTopupMinutes
	summary := []string{
		fmt.Sprintf("Total Top-up this week  %s", timecalc.FormatDuration(&total)),
		fmt.Sprintf("Days needing top-up     %d", r.Summary.DaysNeedingTopup),
	}
	if r.Timezone != "" {
		summary = append(summary, mutedStyle.Render("Times in "+r.Timezone))
	}
	blocks = append(blocks, summaryStyle.Render(strings.Join(summary, "\n")))

	_, err := fmt.Fprintln(w, lipgloss.JoinVertical(lipgloss.Left, blocks...))
	return err
}

// Markdown writes one section per day and a summary table.
func Markdown(w io.Writer, r Report) error {
	var b strings.Builder
	for _, d := range r.Days {
		fmt.Fprintf(&b, "## %s\n\n", d.DayHeader)
		if d.PlannedShift != nil {
			fmt.Fprintf(&b, "- Planned shift: %s\n", *d.PlannedShift)
		}
		if len(d.Logins) > 0 {
			fmt.Fprintf(&b, "- Login: %s\n", strings.Join(d.Logins, ", "))
		}
		if len(d.Logouts) > 0 {
			fmt.Fprintf(&b, "- Logout: %s\n", strings.Join(d.Logouts, ", "))
		}
		if d.WorkedMinutes != nil {
			fmt.Fprintf(&b, "- Worked: %s\n", timecalc.FormatDuration(d.WorkedMinutes))
		}
		fmt.Fprintf(&b, "- %s\n", StatusMessage(d))
		if d.NeedsTopup() {
			length := d.TopupLength
			fmt.Fprintf(&b, "- Top-up length: %s\n", timecalc.FormatDuration(&length))
		}
		b.WriteString("\n")
	}

	total := r.Summary.TotalTopupMinutes
	b.WriteString("| Summary | |\n|---|---|\n")
	fmt.Fprintf(&b, "| Total Top-up this week | %s |\n", timecalc.FormatDuration(&total))
	fmt.Fprintf(&b, "| Days needing top-up | %d |\n", r.Summary.DaysNeedingTopup)

	_, err := io.WriteString(w, b.String())
	return err
}

// CSV writes one row per day.
func CSV(w io.Writer, r Report) error {
	var b strings.Builder
	b.WriteString("day,planned_shift,status,worked_minutes,topup_start,topup_end,topup_length\n")
	for _, d := range r.Days {
		shift := ""
		if d.PlannedShift != nil {
			shift = *d.PlannedShift
		}
		worked := ""
		if d.WorkedMinutes != nil {
			worked = fmt.Sprint(*d.WorkedMinutes)
		}
		start, end := "", ""
		if d.TopupStart != nil {
			start = timecalc.FormatClock12(d.TopupStart)
		}
		if d.TopupEnd != nil {
			end = timecalc.FormatClock12(d.TopupEnd)
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%d\n",
			CSVEscape(d.DayHeader),
			CSVEscape(shift),
			d.Status,
			worked,
			CSVEscape(start),
			CSVEscape(end),
			d.TopupLength,
		)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// JSON writes the report as indented JSON.
func JSON(w io.Writer, r Report) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding JSON: %w", err)
	}
	_, err = fmt.Fprintln(w, string(data))
	return err
}

// CSVEscape wraps a field in quotes if it contains a comma, quote, or newline.
func CSVEscape(s string) string {
	if !strings.ContainsAny(s, ",\"\n\r") {
		return s
	}
	// Escape internal double quotes by doubling them.
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
