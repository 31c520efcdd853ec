//go:build z3

package z3check

import (
	"fmt"

	"github.com/aclements/go-z3/z3"
	"github.com/eriklarko/tautology-checker/src/boolexpr"
)

type Solver struct {
	ctx    *z3.Context
	solver *z3.Solver
}

func New() *Solver {
	ctx := z3.NewContext(z3.NewContextConfig())
	return &Solver{
		ctx:    ctx,
		solver: z3.NewSolver(ctx),
	}
}

// IsTautology reports whether the negation of node is unsatisfiable.
func (s *Solver) IsTautology(node boolexpr.Node) (bool, error) {
	formula, err := s.convert(node)
	if err != nil {
		return false, err
	}
	sat, err := s.satisfiable(formula.Not())
	return !sat, err
}

// IsContradiction reports whether node is unsatisfiable.
func (s *Solver) IsContradiction(node boolexpr.Node) (bool, error) {
	formula, err := s.convert(node)
	if err != nil {
		return false, err
	}
	sat, err := s.satisfiable(formula)
	return !sat, err
}

func (s *Solver) satisfiable(formula z3.Bool) (bool, error) {
	s.solver.Reset()
	s.solver.Assert(formula)

	sat, err := s.solver.Check()
	if err != nil {
		return false, fmt.Errorf("z3 could not decide the formula: %w", err)
	}
	return sat, nil
}

// convert mirrors boolexpr's evaluation rules: unknown operators are false
// and letters outside A-Z are an error.
func (s *Solver) convert(node boolexpr.Node) (z3.Bool, error) {
	switch n := node.(type) {
	case nil:
		return z3.Bool{}, boolexpr.ErrEmptyExpression
	case *boolexpr.Variable:
		if !boolexpr.IsValidLetter(n.Letter()) {
			return z3.Bool{}, boolexpr.NewInvalidCharacterError(n.Letter())
		}
		return s.ctx.BoolConst(string(n.Letter())), nil
	case *boolexpr.Unary:
		if n.Op() != boolexpr.NOT {
			return s.ctx.FromBool(false), nil
		}
		child, err := s.convert(n.Child())
		if err != nil {
			return z3.Bool{}, err
		}
		return child.Not(), nil
	case *boolexpr.Binary:
		left, err := s.convert(n.Left())
		if err != nil {
			return z3.Bool{}, err
		}
		right, err := s.convert(n.Right())
		if err != nil {
			return z3.Bool{}, err
		}
		switch n.Op() {
		case boolexpr.AND:
			return left.And(right), nil
		case boolexpr.OR:
			return left.Or(right), nil
		case boolexpr.IMPLIES:
			return left.Implies(right), nil
		case boolexpr.IFF:
			return left.Iff(right), nil
		case boolexpr.XOR:
			return left.Xor(right), nil
		}
		return s.ctx.FromBool(false), nil
	}
	return z3.Bool{}, fmt.Errorf("unsupported node %T", node)
}
