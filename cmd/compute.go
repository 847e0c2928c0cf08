package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/atotto/clipboard"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/render"
	"github.com/Tiliavir/topup/internal/timesheet"
)

var (
	computeFormat string
	computeCopy   bool
)

var computeCmd = &cobra.Command{
	Use:   "compute [file]",
	Short: "Compute worked hours and top-up windows",
	Long: `Parse a week of portal text and print one card per day with the hours
worked and, for short days, the top-up window. Reads stdin when no file or
portal URL is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runCompute,
}

func init() {
	computeCmd.Flags().StringVar(&computeFormat, "format", "text", "Output format: text, md, csv, json")
	computeCmd.Flags().BoolVar(&computeCopy, "copy", false, "Copy all top-up windows to the clipboard")
	addInputFlags(computeCmd)
}

func runCompute(cmd *cobra.Command, args []string) error {
	mustCheckFormat(computeFormat, reportFormats)
	cfg := loadConfig()
	raw := readInput(cmd, args, cfg)

	pcfg := processorConfig(cfg)
	days := mustComputeDays(raw, pcfg)

	report := render.NewReport(days, pcfg, cfg.Timezone)
	if err := writeReport(cmd.OutOrStdout(), report, computeFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}

	if computeCopy {
		copyTopups(days)
	}
	return nil
}

func writeReport(w io.Writer, r render.Report, format string) error {
	switch format {
	case "md":
		return render.Markdown(w, r)
	case "csv":
		return render.CSV(w, r)
	case "json":
		return render.JSON(w, r)
	case "text":
		return render.Text(w, r)
	default:
		return fmt.Errorf("unknown format %q (want text, md, csv or json)", format)
	}
}

// copyTopups puts the export lines on the system clipboard.
func copyTopups(days []model.DayResult) {
	text := timesheet.ExportText(days)
	if text == "" {
		fmt.Fprintln(os.Stderr, "No top-up windows to copy.")
		return
	}
	if err := clipboard.WriteAll(text); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not copy to clipboard: %v\n", err)
		return
	}
	fmt.Fprintln(os.Stderr, "All top-up windows copied to clipboard!")
}
