//go:build z3

package cli

import (
	"fmt"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	"github.com/eriklarko/tautology-checker/src/checker"
	"github.com/eriklarko/tautology-checker/src/z3check"
)

var useZ3 bool

func init() {
	checkCmd.Flags().BoolVar(&useZ3, "z3", false, "also decide every expression with the Z3 solver and fail when the answers differ")
	crossCheck = func(node boolexpr.Node, verdict checker.Verdict) error {
		if !useZ3 {
			return nil
		}
		return compareWithZ3(z3check.New(), node, verdict)
	}
}

func compareWithZ3(solver *z3check.Solver, node boolexpr.Node, verdict checker.Verdict) error {
	tautology, err := solver.IsTautology(node)
	if err != nil {
		return fmt.Errorf("z3 failed: %w", err)
	}
	contradiction, err := solver.IsContradiction(node)
	if err != nil {
		return fmt.Errorf("z3 failed: %w", err)
	}

	if tautology != verdict.Tautology || contradiction != verdict.Contradiction {
		return fmt.Errorf("z3 disagrees: enumeration says %s, z3 says tautology=%t contradiction=%t",
			verdict.Kind(), tautology, contradiction)
	}
	return nil
}
