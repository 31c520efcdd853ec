package checker

import (
	"fmt"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
)

type Kind string

const (
	KindTautology     Kind = "tautology"
	KindContradiction Kind = "contradiction"
	KindContingent    Kind = "contingent"
)

// ParseKind is the inverse of Kind.String.
func ParseKind(s string) (Kind, error) {
	switch k := Kind(s); k {
	case KindTautology, KindContradiction, KindContingent:
		return k, nil
	}
	return "", fmt.Errorf("unknown verdict '%s'", s)
}

func (k Kind) String() string {
	return string(k)
}

// Verdict is the outcome of checking one expression.
type Verdict struct {
	Tautology     bool
	Contradiction bool

	// the letters that were enumerated
	Variables boolexpr.VariableSet
	// number of evaluations performed
	Evaluated uint64

	// an assignment making the expression true, nil for contradictions
	Satisfying *boolexpr.Assignment
	// an assignment making the expression false, nil for tautologies
	Falsifying *boolexpr.Assignment
}

func (v Verdict) Kind() Kind {
	switch {
	case v.Tautology:
		return KindTautology
	case v.Contradiction:
		return KindContradiction
	default:
		return KindContingent
	}
}

// Describe renders the verdict with its witnesses, e.g.
// "contingent (true at A=1, false at A=0)".
func (v Verdict) Describe() string {
	switch v.Kind() {
	case KindTautology:
		return fmt.Sprintf("%s over %s", KindTautology, v.Variables)
	case KindContradiction:
		return fmt.Sprintf("%s over %s", KindContradiction, v.Variables)
	}
	return fmt.Sprintf("%s (true at %s, false at %s)",
		KindContingent,
		v.Satisfying.Format(v.Variables),
		v.Falsifying.Format(v.Variables),
	)
}
