package phraser_test

import (
	"math/rand/v2"
	"testing"

	"github.com/eriklarko/tautology-checker/src/phraser"
	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPhraser_Get(t *testing.T) {
	phrases := []string{"1", "2", "3", "4", "5", "6"}

	t.Run("first call returns first phrase", func(t *testing.T) {
		p := phraser.New(phrases)

		assert.Equal(t, "1", p.Get())
	})

	t.Run("all phrases are seen", func(t *testing.T) {
		p := phraser.New(phrases)

		seen := make(map[string]bool)
		for range phrases {
			seen[p.Get()] = true
		}

		assert.ElementsMatch(t, phrases, lo.Keys(seen))
	})

	t.Run("no repeats within a round", func(t *testing.T) {
		p := phraser.NewWithRand(phrases, rand.New(rand.NewPCG(1, 2)))
		p.Get()

		for round := 0; round < 10; round++ {
			seen := make(map[string]bool)
			for range phrases[1:] {
				seen[p.Get()] = true
			}
			assert.ElementsMatch(t, phrases[1:], lo.Keys(seen), "round %d", round)
		}
	})

	t.Run("even distribution", func(t *testing.T) {
		p := phraser.New(phrases)

		seen := make(map[string]int)
		for i := 0; i < len(phrases)*100; i++ {
			seen[p.Get()]++
		}
		t.Logf("Times seen each phrase: %v", seen)

		assert.Equal(t, 1, seen[phrases[0]], "first phrase should be seen once")

		delete(seen, phrases[0])
		counts := lo.Map(lo.Values(seen), func(timesSeen int, _ int) float64 {
			return float64(timesSeen)
		})
		variance, err := stats.Variance(counts)
		require.NoError(t, err)
		assert.Less(t, variance, 1.0)
	})

	t.Run("caller's slice is left alone", func(t *testing.T) {
		input := []string{"1", "2", "3", "4"}
		p := phraser.New(input)
		for i := 0; i < 20; i++ {
			p.Get()
		}

		assert.Equal(t, []string{"1", "2", "3", "4"}, input)
	})

	t.Run("handles empty phrases", func(t *testing.T) {
		p := phraser.New([]string{})

		assert.Equal(t, "", p.Get())
		assert.Equal(t, "", p.Get())
	})

	t.Run("handles single phrase", func(t *testing.T) {
		p := phraser.New([]string{"Only phrase"})

		seen := make(map[string]int)
		for i := 0; i < 100; i++ {
			seen[p.Get()]++
		}

		assert.Equal(t, map[string]int{"Only phrase": 100}, seen)
	})
}

func TestPhraser_Get_FormatArgs(t *testing.T) {
	t.Run("only one phrase", func(t *testing.T) {
		p := phraser.New([]string{"foo %s"})

		assert.Equal(t, "foo bar", p.Get("bar"))
	})

	t.Run("multiple phrases", func(t *testing.T) {
		phrases := []string{"foo %s", "bar %s"}
		p := phraser.New(phrases)

		seen := make(map[string]bool)
		for range phrases {
			seen[p.Get("baz")] = true
		}
		assert.ElementsMatch(t, []string{"foo baz", "bar baz"}, lo.Keys(seen))
	})
}
