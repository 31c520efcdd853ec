package boolexpr

import (
	"iter"
	"strings"
)

// LetterCount is the number of variable letters, A through Z.
const LetterCount = 26

// Assignment maps every variable letter to a truth value. The zero value has
// every letter set to false.
type Assignment struct {
	values [LetterCount]bool
}

func IsValidLetter(ch byte) bool {
	return 'A' <= ch && ch <= 'Z'
}

// FromNumber distributes the bits of number over the letters in active, in
// ascending letter order: bit 0 goes to the lowest active letter, bit 1 to
// the next one and so on. Letters outside active stay false.
//
// For k active letters this is a bijection between [0, 2^k) and the
// assignments over those letters.
func FromNumber(number uint64, active VariableSet) Assignment {
	var result Assignment
	for i := 0; i < LetterCount; i++ {
		if active&(1<<i) == 0 {
			continue
		}
		result.values[i] = number&1 == 1
		number >>= 1
	}
	return result
}

func (a Assignment) Get(ch byte) (bool, error) {
	if !IsValidLetter(ch) {
		return false, NewInvalidCharacterError(ch)
	}
	return a.values[ch-'A'], nil
}

func (a *Assignment) Set(ch byte, value bool) error {
	if !IsValidLetter(ch) {
		return NewInvalidCharacterError(ch)
	}
	a.values[ch-'A'] = value
	return nil
}

// Format renders the values of the given letters, e.g. "A=1 B=0".
func (a Assignment) Format(vars VariableSet) string {
	var sb strings.Builder
	for i, ch := range vars.Letters() {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteByte(ch)
		sb.WriteByte('=')
		if a.values[ch-'A'] {
			sb.WriteByte('1')
		} else {
			sb.WriteByte('0')
		}
	}
	return sb.String()
}

// Assignments yields every assignment over vars together with the number it
// was built from, in ascending order. There are exactly 2^vars.Len() of them.
func Assignments(vars VariableSet) iter.Seq2[uint64, Assignment] {
	total := uint64(1) << vars.Len()
	return func(yield func(uint64, Assignment) bool) {
		for n := uint64(0); n < total; n++ {
			if !yield(n, FromNumber(n, vars)) {
				return
			}
		}
	}
}
