package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Tiliavir/topup/internal/config"
	"github.com/Tiliavir/topup/internal/model"
	"github.com/Tiliavir/topup/internal/source"
	"github.com/Tiliavir/topup/internal/timesheet"
)

var (
	errEmptyInput = errors.New("Please paste your timestamps first!")
	errNoDays     = errors.New("No valid day data found. Please check your format.")
)

var (
	reportFormats = []string{"text", "md", "csv", "json"}
	exportFormats = []string{"txt", "csv", "json", "xlsx"}
)

var (
	inputURL   string
	inputToken string
	inputHTML  bool
	inputHours int
)

// addInputFlags registers the flags shared by every command that parses a
// timesheet.
func addInputFlags(c *cobra.Command) {
	c.Flags().StringVar(&inputURL, "url", "", "Fetch the timesheet from this portal URL")
	c.Flags().StringVar(&inputToken, "token", "", "Bearer token for --url (defaults to portal.token)")
	c.Flags().BoolVar(&inputHTML, "html", false, "Treat the input as an HTML page")
	c.Flags().IntVar(&inputHours, "hours", 0, "Required hours per day (defaults to required_hours)")
}

// checkFormat rejects a --format value outside allowed.
func checkFormat(format string, allowed []string) error {
	if slices.Contains(allowed, format) {
		return nil
	}
	return fmt.Errorf("unknown format %q (want %s)", format, strings.Join(allowed, ", "))
}

// mustCheckFormat is checkFormat for command handlers: a bad value exits 1
// before any input is read.
func mustCheckFormat(format string, allowed []string) {
	if err := checkFormat(format, allowed); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// readInput loads raw timesheet text from the portal, a file argument or stdin.
func readInput(c *cobra.Command, args []string, cfg config.Config) string {
	opts := source.Options{
		URL:   inputURL,
		Token: inputToken,
		HTML:  inputHTML,
	}
	if len(args) > 0 {
		opts.Path = args[0]
	} else if opts.URL == "" {
		opts.URL = cfg.Portal.URL
	}
	if opts.Token == "" {
		opts.Token = cfg.Portal.Token
	}

	ctx := c.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	raw, err := source.Read(ctx, opts, c.InOrStdin())
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	return raw
}

// processorConfig applies the --hours override to the configured quota.
func processorConfig(cfg config.Config) timesheet.Config {
	pcfg := cfg.Processor()
	if inputHours > 0 {
		pcfg.RequiredMinutes = inputHours * 60
	}
	return pcfg
}

// computeDays parses raw text, reporting blank input and text without any
// recognizable day as errors.
func computeDays(raw string, pcfg timesheet.Config) ([]model.DayResult, error) {
	if strings.TrimSpace(raw) == "" {
		return nil, errEmptyInput
	}
	days := timesheet.Parse(raw, pcfg)
	if len(days) == 0 {
		return nil, errNoDays
	}
	return days, nil
}

// mustComputeDays is computeDays for command handlers: input problems exit 1.
func mustComputeDays(raw string, pcfg timesheet.Config) []model.DayResult {
	days, err := computeDays(raw, pcfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	return days
}
