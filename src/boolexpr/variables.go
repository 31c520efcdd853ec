package boolexpr

import (
	"math/bits"
	"strings"
)

// VariableSet is a set of variable letters, bit i standing for 'A'+i.
type VariableSet uint32

// NewVariableSet returns the set of the given letters. Characters outside A-Z
// are ignored.
func NewVariableSet(letters ...byte) VariableSet {
	var s VariableSet
	for _, ch := range letters {
		s = s.With(ch)
	}
	return s
}

func (s VariableSet) Has(ch byte) bool {
	if !IsValidLetter(ch) {
		return false
	}
	return s&(1<<(ch-'A')) != 0
}

// With returns a copy of the set that also contains ch.
func (s VariableSet) With(ch byte) VariableSet {
	if !IsValidLetter(ch) {
		return s
	}
	return s | 1<<(ch-'A')
}

func (s VariableSet) Union(other VariableSet) VariableSet {
	return s | other
}

// Len is the number of letters in the set.
func (s VariableSet) Len() int {
	return bits.OnesCount32(uint32(s))
}

// Letters returns the members in ascending order.
func (s VariableSet) Letters() []byte {
	letters := make([]byte, 0, s.Len())
	for i := byte(0); i < LetterCount; i++ {
		if s&(1<<i) != 0 {
			letters = append(letters, 'A'+i)
		}
	}
	return letters
}

func (s VariableSet) String() string {
	var sb strings.Builder
	sb.WriteByte('{')
	for i, ch := range s.Letters() {
		if i > 0 {
			sb.WriteByte(',')
		}
		sb.WriteByte(ch)
	}
	sb.WriteByte('}')
	return sb.String()
}
