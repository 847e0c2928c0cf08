package cmd

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/render"
	"github.com/Tiliavir/topup/internal/tui"
)

var pasteSample int

var pasteCmd = &cobra.Command{
	Use:   "paste",
	Short: "Paste a week interactively and compute top-ups",
	Args:  cobra.NoArgs,
	RunE:  runPaste,
}

func init() {
	pasteCmd.Flags().StringVar(&computeFormat, "format", "text", "Output format: text, md, csv, json")
	pasteCmd.Flags().BoolVar(&computeCopy, "copy", false, "Copy all top-up windows to the clipboard")
	pasteCmd.Flags().IntVar(&pasteSample, "sample", 0, "Prefill the box with sample 1 or 2")
	pasteCmd.Flags().IntVar(&inputHours, "hours", 0, "Required hours per day (defaults to required_hours)")
}

func runPaste(cmd *cobra.Command, args []string) error {
	mustCheckFormat(computeFormat, reportFormats)
	cfg := loadConfig()

	initial := ""
	if pasteSample != 0 {
		s, err := sampleText(pasteSample)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		initial = s
	}

	m := tui.NewPaste(initial)
	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "paste box failed: %v\n", err)
		os.Exit(2)
	}
	if !m.Submitted() {
		return nil
	}

	pcfg := processorConfig(cfg)
	days := mustComputeDays(m.Value(), pcfg)
	if err := writeReport(cmd.OutOrStdout(), render.NewReport(days, pcfg, cfg.Timezone), computeFormat); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	if computeCopy {
		copyTopups(days)
	}
	return nil
}
