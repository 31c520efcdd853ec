package cli

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/eriklarko/tautology-checker/src/environment"
	"github.com/eriklarko/tautology-checker/src/tui"
	"github.com/spf13/cobra"
)

var forceInteractive bool

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "Check expressions typed at the terminal",
	RunE: func(cmd *cobra.Command, args []string) error {
		if forceInteractive {
			environment.ForceSetIsInteractive(true)
		}
		if !environment.IsInteractive() {
			return errors.New("stdin is not a terminal, use the batch command or --force")
		}

		c, err := newChecker(loadedConfig)
		if err != nil {
			return err
		}

		ui := tui.New()
		ui.SetInput(cmd.InOrStdin())
		ui.SetOutput(cmd.OutOrStdout())

		report, err := ui.Run(cmd.Context(), c, parseOptions(loadedConfig)...)
		if err != nil {
			return err
		}

		verdicts := report.Verdicts()
		if loadedConfig.HistoryFile == "" || len(verdicts) == 0 {
			return nil
		}

		save, err := ui.AskForever("Save %d verdicts to %s? [y/N]: ", len(verdicts), loadedConfig.HistoryFile)
		if err != nil {
			return err
		}
		if !save {
			return nil
		}
		if err := loadedConfig.MergeVerdicts(verdicts); err != nil {
			return fmt.Errorf("failed to save verdicts: %w", err)
		}
		slog.Info("Saved verdicts", "file", loadedConfig.HistoryFile)
		return nil
	},
}

func init() {
	replCmd.Flags().BoolVar(&forceInteractive, "force", false, "start even when stdin is not a terminal")
	rootCmd.AddCommand(replCmd)
}
