package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/export"
	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/render"
	"github.com/Tiliavir/topup/internal/timecalc"
	"github.com/Tiliavir/topup/internal/timesheet"
)

var (
	exportFormat string
	exportOut    string
)

var exportCmd = &cobra.Command{
	Use:   "export [file]",
	Short: "Export the top-up windows of a week",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	exportCmd.Flags().StringVar(&exportFormat, "format", "txt", "Output format: txt, csv, json, xlsx")
	exportCmd.Flags().StringVar(&exportOut, "out", "", "Write to this file instead of stdout (required for xlsx)")
	addInputFlags(exportCmd)
}

// topupWindow is one exported top-up.
type topupWindow struct {
	Day           string `json:"day"`
	Start         string `json:"start"`
	End           string `json:"end"`
	LengthMinutes int    `json:"length_minutes"`
}

func runExport(cmd *cobra.Command, args []string) error {
	mustCheckFormat(exportFormat, exportFormats)
	if exportFormat == "xlsx" && exportOut == "" {
		fmt.Fprintln(os.Stderr, "--out is required for xlsx export")
		os.Exit(1)
	}

	cfg := loadConfig()
	raw := readInput(cmd, args, cfg)
	days := mustComputeDays(raw, processorConfig(cfg))

	var err error
	if exportOut != "" {
		err = writeExportFile(exportOut, days, exportFormat)
	} else {
		err = writeExport(cmd.OutOrStdout(), days, exportFormat)
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return nil
}

// writeExportFile writes the export to path. A failed write leaves no file
// behind.
func writeExportFile(path string, days []model.DayResult, format string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := writeExport(f, days, format); err != nil {
		f.Close()
		os.Remove(path)
		return err
	}
	if err := f.Close(); err != nil {
		os.Remove(path)
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return nil
}

func writeExport(w io.Writer, days []model.DayResult, format string) error {
	switch format {
	case "xlsx":
		return export.WriteXLSX(w, days)
	case "json":
		windows := topupWindows(days)
		data, err := json.MarshalIndent(windows, "", "  ")
		if err != nil {
			return fmt.Errorf("error encoding JSON: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	case "csv":
		var b strings.Builder
		b.WriteString("day,start,end,length_minutes\n")
		for _, tw := range topupWindows(days) {
			fmt.Fprintf(&b, "%s,%s,%s,%d\n",
				render.CSVEscape(tw.Day),
				render.CSVEscape(tw.Start),
				render.CSVEscape(tw.End),
				tw.LengthMinutes,
			)
		}
		_, err := io.WriteString(w, b.String())
		return err
	case "txt":
		text := timesheet.ExportText(days)
		if text == "" {
			return nil
		}
		_, err := fmt.Fprintln(w, text)
		return err
	default:
		return fmt.Errorf("unknown format %q (want txt, csv, json or xlsx)", format)
	}
}

func topupWindows(days []model.DayResult) []topupWindow {
	windows := []topupWindow{}
	for _, d := range days {
		if !d.NeedsTopup() {
			continue
		}
		windows = append(windows, topupWindow{
			Day:           d.DayHeader,
			Start:         timecalc.FormatClock12(d.TopupStart),
			End:           timecalc.FormatClock12(d.TopupEnd),
			LengthMinutes: d.TopupLength,
		})
	}
	return windows
}
