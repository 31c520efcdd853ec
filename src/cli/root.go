package cli

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	"github.com/eriklarko/tautology-checker/src/checker"
	"github.com/eriklarko/tautology-checker/src/config"
	"github.com/spf13/cobra"
)

var (
	cfgFile      string
	verbose      bool
	legacyDepth  bool
	workers      int
	loadedConfig *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "taut",
	Short: "Decide whether propositional formulas are tautologies or contradictions",
	Long: `taut parses fully parenthesized propositional formulas over the variables A-Z
and checks them against every assignment of their variables.

Operators:
  ^  and        v  or        >  implies
  =  iff        +  xor       !  not

Example:
  taut check '((A>B)=((!B)>(!A)))'`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(cmd.ErrOrStderr())

		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		loadedConfig = cfg
		return nil
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: ./"+config.DefaultPath+" when present)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVar(&legacyDepth, "legacy-depth-tracking", false, "never decrease nesting depth while looking for the top-level operator")
	rootCmd.PersistentFlags().IntVarP(&workers, "workers", "w", 1, "goroutines used to enumerate assignments, 0 means one per CPU")
}

func setupLogging(w io.Writer) {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})))
}

// loadConfig reads the config file and applies flags given on the command
// line on top of it.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	path := cfgFile
	if path == "" {
		path = config.DefaultPath
	}

	cfg, err := config.LoadConfig(path)
	switch {
	case errors.Is(err, os.ErrNotExist) && cfgFile == "":
		cfg = config.Default()
	case err != nil:
		return nil, fmt.Errorf("failed to load config: %w", err)
	default:
		slog.Debug("Loaded config", "path", path)
	}

	flags := cmd.Flags()
	if flags.Changed("legacy-depth-tracking") {
		cfg.LegacyDepthTracking = legacyDepth
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newChecker(cfg *config.Config) (*checker.Checker, error) {
	return checker.New(cfg.CacheSize, checker.WithWorkers(cfg.EffectiveWorkers()))
}

func parseOptions(cfg *config.Config) []boolexpr.ParseOption {
	if cfg.LegacyDepthTracking {
		return []boolexpr.ParseOption{boolexpr.WithLegacyDepthTracking()}
	}
	return nil
}
