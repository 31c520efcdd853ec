package boolexpr

import (
	"encoding/binary"
	"strings"

	"github.com/cespare/xxhash/v2"
)

const (
	kindVariable = 'V'
	kindUnary    = 'U'
	kindBinary   = 'B'
)

/*
 *  Variable
 */

type Variable struct {
	letter byte

	variables   VariableSet
	fingerprint uint64
}

// NewVariable creates a leaf for the given letter. A character outside A-Z is
// accepted here and reported by Evaluate.
func NewVariable(ch byte) *Variable {
	return &Variable{
		letter:      ch,
		variables:   NewVariableSet(ch),
		fingerprint: xxhash.Sum64([]byte{kindVariable, ch}),
	}
}

func (v *Variable) Evaluate(interpretation Assignment) (bool, error) {
	return interpretation.Get(v.letter)
}

func (v *Variable) Clone() Node {
	c := *v
	return &c
}

func (v *Variable) Letter() byte           { return v.letter }
func (v *Variable) Variables() VariableSet { return v.variables }
func (v *Variable) VariableCount() int     { return v.variables.Len() }
func (v *Variable) Fingerprint() uint64    { return v.fingerprint }
func (v *Variable) String() string         { return string(v.letter) }

func (v *Variable) writeTo(b *strings.Builder) {
	b.WriteByte(v.letter)
}

/*
 *  Unary
 */

type Unary struct {
	op    Operator
	child Node

	variables   VariableSet
	fingerprint uint64
}

// NewUnary takes ownership of child, which must not be nil.
func NewUnary(op Operator, child Node) *Unary {
	return &Unary{
		op:          op,
		child:       child,
		variables:   child.Variables(),
		fingerprint: fingerprintOf(kindUnary, op, child),
	}
}

// Evaluate negates the child. Any operator other than NOT evaluates to false.
func (u *Unary) Evaluate(interpretation Assignment) (bool, error) {
	if u.op != NOT {
		return false, nil
	}
	v, err := u.child.Evaluate(interpretation)
	if err != nil {
		return false, err
	}
	return !v, nil
}

func (u *Unary) Clone() Node {
	return &Unary{
		op:          u.op,
		child:       u.child.Clone(),
		variables:   u.variables,
		fingerprint: u.fingerprint,
	}
}

func (u *Unary) Op() Operator           { return u.op }
func (u *Unary) Child() Node            { return u.child }
func (u *Unary) Variables() VariableSet { return u.variables }
func (u *Unary) VariableCount() int     { return u.variables.Len() }
func (u *Unary) Fingerprint() uint64    { return u.fingerprint }

func (u *Unary) String() string {
	var b strings.Builder
	u.writeTo(&b)
	return b.String()
}

func (u *Unary) writeTo(b *strings.Builder) {
	b.WriteByte('(')
	b.WriteByte(byte(u.op))
	u.child.writeTo(b)
	b.WriteByte(')')
}

/*
 *  Binary
 */

type Binary struct {
	op    Operator
	left  Node
	right Node

	variables   VariableSet
	fingerprint uint64
}

// NewBinary takes ownership of left and right, neither of which may be nil.
func NewBinary(op Operator, left, right Node) *Binary {
	return &Binary{
		op:          op,
		left:        left,
		right:       right,
		variables:   left.Variables().Union(right.Variables()),
		fingerprint: fingerprintOf(kindBinary, op, left, right),
	}
}

// Evaluate applies the connective. Both sides are always evaluated so an
// invalid letter on either side is reported. An unknown operator evaluates to
// false.
func (b *Binary) Evaluate(interpretation Assignment) (bool, error) {
	left, err := b.left.Evaluate(interpretation)
	if err != nil {
		return false, err
	}
	right, err := b.right.Evaluate(interpretation)
	if err != nil {
		return false, err
	}

	switch b.op {
	case OR:
		return left || right, nil
	case AND:
		return left && right, nil
	case IMPLIES:
		return !left || right, nil
	case IFF:
		return left == right, nil
	case XOR:
		return left != right, nil
	default:
		return false, nil
	}
}

func (b *Binary) Clone() Node {
	return &Binary{
		op:          b.op,
		left:        b.left.Clone(),
		right:       b.right.Clone(),
		variables:   b.variables,
		fingerprint: b.fingerprint,
	}
}

func (b *Binary) Op() Operator           { return b.op }
func (b *Binary) Left() Node             { return b.left }
func (b *Binary) Right() Node            { return b.right }
func (b *Binary) Variables() VariableSet { return b.variables }
func (b *Binary) VariableCount() int     { return b.variables.Len() }
func (b *Binary) Fingerprint() uint64    { return b.fingerprint }

func (b *Binary) String() string {
	var sb strings.Builder
	b.writeTo(&sb)
	return sb.String()
}

func (b *Binary) writeTo(sb *strings.Builder) {
	sb.WriteByte('(')
	b.left.writeTo(sb)
	sb.WriteByte(byte(b.op))
	b.right.writeTo(sb)
	sb.WriteByte(')')
}

func fingerprintOf(kind byte, op Operator, children ...Node) uint64 {
	h := xxhash.New()
	h.Write([]byte{kind, byte(op)})
	raw := make([]byte, 8)
	for _, child := range children {
		binary.BigEndian.PutUint64(raw, child.Fingerprint())
		h.Write(raw)
	}
	return h.Sum64()
}
