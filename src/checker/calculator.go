package checker

import (
	"context"
	"fmt"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
)

var defaultChecker = &Checker{workers: 1}

// Calculator owns at most one expression tree and answers tautology and
// contradiction queries about it. Copies made with Clone or Assign never
// share nodes with their source.
type Calculator struct {
	root    boolexpr.Node
	checker *Checker
}

// NewCalculator parses expression and takes ownership of the resulting tree.
// An empty expression yields an empty calculator.
func NewCalculator(expression string, opts ...boolexpr.ParseOption) (*Calculator, error) {
	root, err := boolexpr.New(expression, opts...)
	if err != nil {
		return nil, err
	}
	return &Calculator{root: root, checker: defaultChecker}, nil
}

// WithChecker makes the calculator run its queries on c.
func (calc *Calculator) WithChecker(c *Checker) *Calculator {
	calc.checker = c
	return calc
}

// Root returns the owned tree, nil if the calculator is empty.
func (calc *Calculator) Root() boolexpr.Node {
	return calc.root
}

func (calc *Calculator) Empty() bool {
	return calc.root == nil
}

// Clone returns a calculator owning a deep copy of the tree.
func (calc *Calculator) Clone() *Calculator {
	clone := &Calculator{checker: calc.checker}
	if calc.root != nil {
		clone.root = calc.root.Clone()
	}
	return clone
}

// Assign releases the current tree and replaces it with a deep copy of
// other's.
func (calc *Calculator) Assign(other *Calculator) {
	if calc == other {
		return
	}
	calc.Reset()
	if other.root != nil {
		calc.root = other.root.Clone()
	}
}

// Take moves the tree into a new calculator and leaves calc empty.
func (calc *Calculator) Take() *Calculator {
	moved := &Calculator{root: calc.root, checker: calc.checker}
	calc.root = nil
	return moved
}

// MoveFrom releases the current tree and takes over other's, leaving other
// empty.
func (calc *Calculator) MoveFrom(other *Calculator) {
	if calc == other {
		return
	}
	calc.root = other.root
	other.root = nil
}

// Reset releases the owned tree.
func (calc *Calculator) Reset() {
	calc.root = nil
}

func (calc *Calculator) IsTautology() (bool, error) {
	if calc.root == nil {
		return false, boolexpr.ErrEmptyExpression
	}
	return calc.checker.IsTautology(context.Background(), calc.root)
}

func (calc *Calculator) IsContradiction() (bool, error) {
	if calc.root == nil {
		return false, boolexpr.ErrEmptyExpression
	}
	return calc.checker.IsContradiction(context.Background(), calc.root)
}

// Check runs both queries and returns the full verdict.
func (calc *Calculator) Check(ctx context.Context) (Verdict, error) {
	if calc.root == nil {
		return Verdict{}, boolexpr.ErrEmptyExpression
	}
	return calc.checker.Check(ctx, calc.root)
}

func (calc *Calculator) String() string {
	if calc.root == nil {
		return "<empty>"
	}
	return fmt.Sprint(calc.root)
}
