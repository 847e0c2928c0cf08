package cmd

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/timesheet"
)

var sampleCmd = &cobra.Command{
	Use:   "sample [1|2]",
	Short: "Print a sample week of portal text",
	Long: `Print one of the bundled sample weeks, e.g.

  topup sample 2 | topup compute`,
	Args: cobra.MaximumNArgs(1),
	RunE: runSample,
}

func runSample(cmd *cobra.Command, args []string) error {
	n := 1
	if len(args) == 1 {
		v, err := strconv.Atoi(args[0])
		if err != nil {
			return fmt.Errorf("invalid sample %q: %w", args[0], err)
		}
		n = v
	}
	text, err := sampleText(n)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), text)
	return nil
}

func sampleText(n int) (string, error) {
	if n < 1 || n > len(timesheet.Samples) {
		return "", fmt.Errorf("no sample %d (choose 1 to %d)", n, len(timesheet.Samples))
	}
	return timesheet.Samples[n-1], nil
}
