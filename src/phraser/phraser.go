package phraser

import (
	"fmt"
	"math/rand/v2"
)

// Phraser varies the wording of a repeated message. The first phrase is used
// first and only once; after that the others are used in shuffled rounds, so
// none repeats before all of them have been seen.
//
// Usage:
//
//	messages := phraser.New([]string{
//		"error: %v",
//		"that did not work: %v",
//	})
//	fmt.Println(messages.Get(err))
type Phraser struct {
	first string
	rest  []string
	next  int

	started bool
	rng     *rand.Rand
}

func New(phrases []string) *Phraser {
	return NewWithRand(phrases, rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())))
}

// NewWithRand is New with a fixed source of randomness.
func NewWithRand(phrases []string, rng *rand.Rand) *Phraser {
	p := &Phraser{rng: rng}
	if len(phrases) > 0 {
		p.first = phrases[0]
		// copied so shuffling never touches the caller's slice
		p.rest = append([]string(nil), phrases[1:]...)
		p.next = len(p.rest)
	} else {
		p.started = true
	}
	return p
}

// Get returns the next phrase formatted with formatArgs, or "" when there
// are no phrases.
func (p *Phraser) Get(formatArgs ...any) string {
	if !p.started {
		p.started = true
		return fmt.Sprintf(p.first, formatArgs...)
	}
	if len(p.rest) == 0 {
		if p.first == "" {
			return ""
		}
		return fmt.Sprintf(p.first, formatArgs...)
	}

	if p.next >= len(p.rest) {
		p.rng.Shuffle(len(p.rest), func(i, j int) {
			p.rest[i], p.rest[j] = p.rest[j], p.rest[i]
		})
		p.next = 0
	}
	phrase := p.rest[p.next]
	p.next++
	return fmt.Sprintf(phrase, formatArgs...)
}
