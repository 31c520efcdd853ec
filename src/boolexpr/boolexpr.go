package boolexpr

import (
	"fmt"
	"strings"
)

type Operator byte

const (
	AND     Operator = '^'
	OR      Operator = 'v'
	IMPLIES Operator = '>'
	IFF     Operator = '='
	XOR     Operator = '+'
	NOT     Operator = '!'
)

func isOperator(ch byte) bool {
	switch Operator(ch) {
	case AND, OR, IMPLIES, IFF, XOR, NOT:
		return true
	}
	return false
}

func (o Operator) String() string {
	return string(o)
}

// Node is one vertex of an expression tree. The only implementations are
// *Variable, *Unary and *Binary.
//
// A node owns its children exclusively and never changes after construction,
// so evaluating a tree from several goroutines at once is safe.
type Node interface {
	// Evaluate returns the value of the subtree under the given assignment.
	Evaluate(interpretation Assignment) (bool, error)
	// Clone returns a deep copy that shares nothing with the receiver.
	Clone() Node
	// Variables is the set of letters that occur in the subtree.
	Variables() VariableSet
	// VariableCount is the number of distinct letters in Variables.
	VariableCount() int
	// Fingerprint is a structural hash; equal trees have equal fingerprints.
	Fingerprint() uint64
	String() string

	writeTo(b *strings.Builder)
}

// New creates a new expression tree based on the given fully parenthesized
// input string. An empty string yields a nil node and no error.
// Example usage:
//
//	tree, err := boolexpr.New("((A>B)v(B>A))")
//	if err != nil {
//		log.Fatalf("failed to build expression tree: %v", err)
//	}
//	fmt.Println(tree.Variables()) // Output: {A,B}
func New(expression string, opts ...ParseOption) (Node, error) {
	root, err := Parse(expression, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build expression tree for '%s': %w", expression, err)
	}
	return root, nil
}
