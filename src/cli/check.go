package cli

import (
	"fmt"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	"github.com/eriklarko/tautology-checker/src/checker"
	"github.com/spf13/cobra"
)

// crossCheck is set when the binary is built with a second decision
// procedure, see z3.go.
var crossCheck func(node boolexpr.Node, verdict checker.Verdict) error

var checkCmd = &cobra.Command{
	Use:   "check <expression>...",
	Short: "Check the given expressions",
	Example: `  taut check '(Av!A)' '(A^!A)'
  taut check --legacy-depth-tracking '(Av(B^C))'`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := newChecker(loadedConfig)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		failed := 0
		for _, expression := range args {
			node, err := boolexpr.New(expression, parseOptions(loadedConfig)...)
			if err == nil && node == nil {
				err = boolexpr.ErrEmptyExpression
			}
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expression, err)
				continue
			}

			verdict, err := c.Check(cmd.Context(), node)
			if err != nil {
				failed++
				fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expression, err)
				continue
			}
			if crossCheck != nil {
				if err := crossCheck(node, verdict); err != nil {
					failed++
					fmt.Fprintf(cmd.ErrOrStderr(), "%s: %v\n", expression, err)
					continue
				}
			}
			fmt.Fprintf(out, "%s: %s\n", expression, verdict.Describe())
		}

		if failed > 0 {
			return fmt.Errorf("%d of %d expressions could not be checked", failed, len(args))
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
