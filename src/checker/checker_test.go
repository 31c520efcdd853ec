package checker

import (
	"context"
	"testing"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsTautology(t *testing.T) {
	tests := map[string]bool{
		"A":                     false,
		"(Av!A)":                true,
		"(Av(!A))":              true,
		"(A>A)":                 true,
		"(A=A)":                 true,
		"(A+A)":                 false,
		"(A^!A)":                false,
		"(A>B)":                 false,
		"((A>B)v(B>A))":         true,
		"((A>B)=((!B)>(!A)))":   true,
		"(((A>B)^(B>C))>(A>C))": true,
		"(!(A^(!A)))":           true,
	}

	c := newChecker(t, 0)
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			result, err := c.IsTautology(context.Background(), parse(t, expression))
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestIsContradiction(t *testing.T) {
	tests := map[string]bool{
		"A":             false,
		"(A^!A)":        true,
		"(A+A)":         true,
		"(!(A=A))":      true,
		"(Av!A)":        false,
		"((A^B)^(!A))":  true,
		"((AvB)^(!A))":  false,
		"(!((A>B)vA))":  true,
		"((A=B)^(A+B))": true,
	}

	c := newChecker(t, 0)
	for expression, expected := range tests {
		t.Run(expression, func(t *testing.T) {
			result, err := c.IsContradiction(context.Background(), parse(t, expression))
			require.NoError(t, err)
			assert.Equal(t, expected, result)
		})
	}
}

func TestSingleLetters(t *testing.T) {
	c := newChecker(t, 0)
	for ch := byte('A'); ch <= 'Z'; ch++ {
		node := parse(t, string(ch))
		require.IsType(t, &boolexpr.Variable{}, node)

		verdict, err := c.Check(context.Background(), node)
		require.NoError(t, err)
		assert.False(t, verdict.Tautology, string(ch))
		assert.False(t, verdict.Contradiction, string(ch))
		assert.Equal(t, KindContingent, verdict.Kind())
	}
}

func TestCheck(t *testing.T) {
	c := newChecker(t, 0)

	t.Run("witnesses", func(t *testing.T) {
		node := parse(t, "((A^B)>(CvA))")
		verdict, err := c.Check(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, KindTautology, verdict.Kind())
		assert.Nil(t, verdict.Falsifying)
		require.NotNil(t, verdict.Satisfying)

		node = parse(t, "((A^B)>C)")
		verdict, err = c.Check(context.Background(), node)
		require.NoError(t, err)
		require.Equal(t, KindContingent, verdict.Kind())

		value, err := node.Evaluate(*verdict.Satisfying)
		require.NoError(t, err)
		assert.True(t, value)

		value, err = node.Evaluate(*verdict.Falsifying)
		require.NoError(t, err)
		assert.False(t, value)

		assert.Equal(t, "contingent (true at A=0 B=0 C=0, false at A=1 B=1 C=0)", verdict.Describe())
	})

	t.Run("contradiction", func(t *testing.T) {
		verdict, err := c.Check(context.Background(), parse(t, "(A^!A)"))
		require.NoError(t, err)
		assert.Equal(t, KindContradiction, verdict.Kind())
		assert.Nil(t, verdict.Satisfying)
		assert.Equal(t, "contradiction over {A}", verdict.Describe())
	})

	t.Run("empty", func(t *testing.T) {
		_, err := c.Check(context.Background(), nil)
		assert.ErrorIs(t, err, boolexpr.ErrEmptyExpression)

		_, err = c.IsTautology(context.Background(), nil)
		assert.ErrorIs(t, err, boolexpr.ErrEmptyExpression)
	})
}

func TestEnumerationSize(t *testing.T) {
	tests := []string{
		"(Av!A)",
		"((A>B)v(B>A))",
		"((A^A)v(!A))",
		"(((A>B)^(B>C))>(A>C))",
		"((((Av!A)vB)vC)v(Dv(E^F)))",
	}

	for _, expression := range tests {
		t.Run(expression, func(t *testing.T) {
			node := parse(t, expression)

			// a tautology never finds a falsifying assignment, so every
			// assignment gets evaluated exactly once
			found, evaluated, err := findSequential(context.Background(), node, false, 0, 1<<node.VariableCount())
			require.NoError(t, err)
			assert.Nil(t, found)
			assert.Equal(t, uint64(1)<<node.Variables().Len(), evaluated)
		})
	}
}

func TestShortCircuit(t *testing.T) {
	c := newChecker(t, 0)
	node := parse(t, "(A^(B^(C^D)))")

	// the all-false assignment comes first and already falsifies
	found, evaluated, err := c.find(context.Background(), node, false)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uint64(1), evaluated)

	// the only satisfying assignment is the last one
	found, evaluated, err = c.find(context.Background(), node, true)
	require.NoError(t, err)
	require.NotNil(t, found)
	assert.Equal(t, uint64(16), evaluated)
}

func TestParallel(t *testing.T) {
	// 12 variables, 4096 assignments
	tautology := wide(boolexpr.NewBinary(boolexpr.OR,
		boolexpr.NewVariable('A'),
		boolexpr.NewUnary(boolexpr.NOT, boolexpr.NewVariable('A')),
	), boolexpr.OR, "BCDEFGHIJKL")
	contradiction := wide(boolexpr.NewBinary(boolexpr.AND,
		boolexpr.NewVariable('A'),
		boolexpr.NewUnary(boolexpr.NOT, boolexpr.NewVariable('A')),
	), boolexpr.AND, "BCDEFGHIJKL")
	contingent := wide(boolexpr.NewVariable('A'), boolexpr.AND, "BCDEFGHIJKL")

	sequential := newChecker(t, 0)
	parallel := newChecker(t, 0, WithWorkers(4))

	for name, node := range map[string]boolexpr.Node{
		"tautology":     tautology,
		"contradiction": contradiction,
		"contingent":    contingent,
	} {
		t.Run(name, func(t *testing.T) {
			require.Equal(t, 12, node.VariableCount())

			want, err := sequential.Check(context.Background(), node)
			require.NoError(t, err)
			got, err := parallel.Check(context.Background(), node)
			require.NoError(t, err)

			assert.Equal(t, want.Kind(), got.Kind())
			assert.Equal(t, name, got.Kind().String())
			if got.Satisfying != nil {
				value, err := node.Evaluate(*got.Satisfying)
				require.NoError(t, err)
				assert.True(t, value)
			}
			if got.Falsifying != nil {
				value, err := node.Evaluate(*got.Falsifying)
				require.NoError(t, err)
				assert.False(t, value)
			}
		})
	}

	t.Run("tautology evaluates everything once", func(t *testing.T) {
		found, evaluated, err := parallel.find(context.Background(), tautology, false)
		require.NoError(t, err)
		assert.Nil(t, found)
		assert.Equal(t, uint64(4096), evaluated)
	})

	t.Run("evaluation errors propagate", func(t *testing.T) {
		node := boolexpr.NewBinary(boolexpr.OR, contingent, boolexpr.NewVariable('?'))
		_, err := parallel.IsTautology(context.Background(), node)
		assert.ErrorIs(t, err, boolexpr.ErrInvalidCharacter)
	})
}

func TestCancellation(t *testing.T) {
	// 20 variables, about a million assignments
	node := wide(boolexpr.NewBinary(boolexpr.OR,
		boolexpr.NewVariable('A'),
		boolexpr.NewUnary(boolexpr.NOT, boolexpr.NewVariable('A')),
	), boolexpr.OR, "BCDEFGHIJKLMNOPQRST")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	for name, c := range map[string]*Checker{
		"sequential": newChecker(t, 0),
		"parallel":   newChecker(t, 0, WithWorkers(8)),
	} {
		t.Run(name, func(t *testing.T) {
			_, err := c.IsTautology(ctx, node)
			assert.ErrorIs(t, err, context.Canceled)
		})
	}
}

func TestCache(t *testing.T) {
	c := newChecker(t, 4)
	node := parse(t, "((A>B)v(B>A))")

	first, err := c.Check(context.Background(), node)
	require.NoError(t, err)
	assert.Equal(t, 1, c.cache.Len())

	// a structurally equal tree hits the same entry
	second, err := c.Check(context.Background(), parse(t, "((A>B)v(B>A))"))
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, c.cache.Len())

	isTautology, err := c.IsTautology(context.Background(), node.Clone())
	require.NoError(t, err)
	assert.True(t, isTautology)
}

func TestSubtreesBuildNewTrees(t *testing.T) {
	c := newChecker(t, 4)
	contradiction := parse(t, "(A^(!A))").(*boolexpr.Binary)

	verdict, err := c.Check(context.Background(), contradiction)
	require.NoError(t, err)
	assert.Equal(t, KindContradiction, verdict.Kind())

	// replacing a side means building a new tree, with its own variables
	// and cache entry
	replaced := boolexpr.NewBinary(contradiction.Op(), contradiction.Left().Clone(), boolexpr.NewVariable('Z'))
	verdict, err = c.Check(context.Background(), replaced)
	require.NoError(t, err)
	assert.Equal(t, KindContingent, verdict.Kind())
	assert.Equal(t, boolexpr.NewVariableSet('A', 'Z'), verdict.Variables)
	assert.Equal(t, 2, c.cache.Len())

	verdict, err = c.Check(context.Background(), contradiction)
	require.NoError(t, err)
	assert.Equal(t, KindContradiction, verdict.Kind())
}

func TestInvalidCharacterPropagates(t *testing.T) {
	c := newChecker(t, 0)

	_, err := c.IsTautology(context.Background(), parse(t, "(Av1)"))
	assert.ErrorIs(t, err, boolexpr.ErrInvalidCharacter)

	_, err = c.IsContradiction(context.Background(), parse(t, "1"))
	assert.ErrorIs(t, err, boolexpr.ErrInvalidCharacter)
}

func newChecker(t *testing.T, cacheSize int, opts ...Option) *Checker {
	t.Helper()

	c, err := New(cacheSize, opts...)
	require.NoError(t, err)
	return c
}

func parse(t *testing.T, expression string) boolexpr.Node {
	t.Helper()

	node, err := boolexpr.New(expression)
	require.NoError(t, err)
	require.NotNil(t, node)
	return node
}

// wide combines seed with one variable per letter using op.
func wide(seed boolexpr.Node, op boolexpr.Operator, letters string) boolexpr.Node {
	node := seed
	for i := 0; i < len(letters); i++ {
		node = boolexpr.NewBinary(op, node, boolexpr.NewVariable(letters[i]))
	}
	return node
}
