package cli

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/tautology-checker/src/checker"
	"github.com/spf13/cobra"
)

var batchCmd = &cobra.Command{
	Use:   "batch [file]",
	Short: "Check one expression per line from a file or stdin",
	Long: `Check one expression per line from a file, or from stdin when no file or "-" is given.
Blank lines and lines starting with '#' are ignored.

When history-file is set in the config the verdicts are merged into it.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var input io.Reader = cmd.InOrStdin()
		if len(args) == 1 && args[0] != "-" {
			f, err := os.Open(args[0])
			if err != nil {
				return fmt.Errorf("failed to open %s: %w", args[0], err)
			}
			defer f.Close()
			input = f
		}

		c, err := newChecker(loadedConfig)
		if err != nil {
			return err
		}

		report, err := c.CheckLines(cmd.Context(), input, parseOptions(loadedConfig)...)
		if err != nil {
			return err
		}

		if err := printReport(cmd.OutOrStdout(), report); err != nil {
			return err
		}

		if loadedConfig.HistoryFile != "" {
			if err := loadedConfig.MergeVerdicts(report.Verdicts()); err != nil {
				return fmt.Errorf("failed to save verdicts: %w", err)
			}
			slog.Info("Saved verdicts", "file", loadedConfig.HistoryFile)
		}

		if report.HasInvalid() {
			return fmt.Errorf("%d expressions could not be checked", len(report.Invalid))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(batchCmd)
}

func printReport(w io.Writer, report *checker.Report) error {
	sections := []struct {
		title string
		lines map[string][]int
	}{
		{"Tautologies", report.Tautologies},
		{"Contradictions", report.Contradictions},
		{"Contingent", report.Contingent},
	}
	for _, section := range sections {
		if len(section.lines) == 0 {
			continue
		}
		fmt.Fprintf(w, "%s:\n", section.title)
		for _, expression := range checker.Sorted(section.lines) {
			fmt.Fprintf(w, "  %s (line %v)\n", expression, section.lines[expression])
		}
	}

	if report.HasInvalid() {
		fmt.Fprintln(w, "Invalid:")
		for _, expression := range checker.Sorted(report.Invalid) {
			fmt.Fprintf(w, "  %s: %s\n", expression, report.Invalid[expression])
		}
	}

	summary, err := report.Summary()
	if err != nil {
		return fmt.Errorf("failed to summarize report: %w", err)
	}
	fmt.Fprintf(w, "Checked %d expressions, %d invalid. Variables per expression: mean %.2f, median %.1f, max %.0f\n",
		summary.Checked, summary.Invalid, summary.MeanVariables, summary.MedianVariables, summary.MaxVariables)
	return nil
}
