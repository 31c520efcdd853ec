package checker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"sync/atomic"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	lru "github.com/hashicorp/golang-lru/v2"
	"golang.org/x/sync/errgroup"
)

// how many assignments a worker evaluates between context checks
const cancelCheckInterval = 1 << 10

// chunks smaller than this are not worth a goroutine
const minChunkSize = 1 << 8

var errFound = errors.New("found")

type Checker struct {
	workers int
	cache   *lru.Cache[uint64, Verdict]
}

type Option func(*Checker)

// WithWorkers spreads the enumeration of assignments over n goroutines.
// n <= 1 keeps everything on the calling goroutine.
func WithWorkers(n int) Option {
	return func(c *Checker) {
		c.workers = n
	}
}

// New creates a Checker. cacheSize is the number of verdicts remembered by
// tree fingerprint; 0 disables the cache.
// Usage:
//
//	c, err := checker.New(128, checker.WithWorkers(runtime.NumCPU()))
//	...
//	isTautology, err := c.IsTautology(ctx, node)
func New(cacheSize int, opts ...Option) (*Checker, error) {
	c := &Checker{workers: 1}
	for _, opt := range opts {
		opt(c)
	}

	if cacheSize > 0 {
		cache, err := lru.New[uint64, Verdict](cacheSize)
		if err != nil {
			return nil, fmt.Errorf("failed to create verdict cache: %w", err)
		}
		c.cache = cache
	}

	return c, nil
}

// IsTautology reports whether node evaluates to true under every assignment
// of its variables. It stops at the first assignment that yields false.
func (c *Checker) IsTautology(ctx context.Context, node boolexpr.Node) (bool, error) {
	if v, ok := c.cached(node); ok {
		return v.Tautology, nil
	}

	falsifying, _, err := c.find(ctx, node, false)
	if err != nil {
		return false, err
	}
	return falsifying == nil, nil
}

// IsContradiction reports whether node evaluates to false under every
// assignment of its variables. It stops at the first assignment that yields
// true.
func (c *Checker) IsContradiction(ctx context.Context, node boolexpr.Node) (bool, error) {
	if v, ok := c.cached(node); ok {
		return v.Contradiction, nil
	}

	satisfying, _, err := c.find(ctx, node, true)
	if err != nil {
		return false, err
	}
	return satisfying == nil, nil
}

// Satisfiable reports whether some assignment makes node true.
func (c *Checker) Satisfiable(ctx context.Context, node boolexpr.Node) (bool, error) {
	contradiction, err := c.IsContradiction(ctx, node)
	if err != nil {
		return false, err
	}
	return !contradiction, nil
}

// Check answers both questions at once and keeps a witness for each side.
func (c *Checker) Check(ctx context.Context, node boolexpr.Node) (Verdict, error) {
	if node == nil {
		return Verdict{}, boolexpr.ErrEmptyExpression
	}
	if v, ok := c.cached(node); ok {
		slog.Debug("verdict cache hit", "expression", node)
		return v, nil
	}

	falsifying, evaluatedFalse, err := c.find(ctx, node, false)
	if err != nil {
		return Verdict{}, err
	}
	satisfying, evaluatedTrue, err := c.find(ctx, node, true)
	if err != nil {
		return Verdict{}, err
	}

	verdict := Verdict{
		Tautology:     falsifying == nil,
		Contradiction: satisfying == nil,
		Variables:     node.Variables(),
		Evaluated:     evaluatedFalse + evaluatedTrue,
		Satisfying:    satisfying,
		Falsifying:    falsifying,
	}
	if c.cache != nil {
		c.cache.Add(node.Fingerprint(), verdict)
	}

	slog.Debug("checked expression",
		"expression", node,
		"variables", verdict.Variables,
		"evaluated", verdict.Evaluated,
		"kind", verdict.Kind(),
	)
	return verdict, nil
}

func (c *Checker) cached(node boolexpr.Node) (Verdict, bool) {
	if c.cache == nil || node == nil {
		return Verdict{}, false
	}
	return c.cache.Get(node.Fingerprint())
}

// find looks for an assignment under which node evaluates to want. It
// returns nil when there is none, together with how many assignments were
// evaluated.
func (c *Checker) find(ctx context.Context, node boolexpr.Node, want bool) (*boolexpr.Assignment, uint64, error) {
	if node == nil {
		return nil, 0, boolexpr.ErrEmptyExpression
	}

	vars := node.Variables()
	total := uint64(1) << vars.Len()
	workers := c.workers
	if uint64(workers) > total/minChunkSize {
		workers = int(total / minChunkSize)
	}
	if workers <= 1 {
		return findSequential(ctx, node, want, 0, total)
	}
	return findParallel(ctx, node, want, total, workers)
}

// findSequential scans the numbers [from, to) in order.
func findSequential(ctx context.Context, node boolexpr.Node, want bool, from, to uint64) (*boolexpr.Assignment, uint64, error) {
	vars := node.Variables()
	var evaluated uint64
	for n := from; n < to; n++ {
		if evaluated%cancelCheckInterval == cancelCheckInterval-1 {
			if err := ctx.Err(); err != nil {
				return nil, evaluated, err
			}
		}

		interpretation := boolexpr.FromNumber(n, vars)
		value, err := node.Evaluate(interpretation)
		evaluated++
		if err != nil {
			return nil, evaluated, fmt.Errorf("failed to evaluate %s under %s: %w", node, interpretation.Format(vars), err)
		}
		if value == want {
			return &interpretation, evaluated, nil
		}
	}
	return nil, evaluated, nil
}

// findParallel splits [0, total) into one contiguous chunk per worker. The
// first worker to find a match cancels the rest, so the witness is not
// necessarily the lowest numbered one.
func findParallel(ctx context.Context, node boolexpr.Node, want bool, total uint64, workers int) (*boolexpr.Assignment, uint64, error) {
	var (
		mu        sync.Mutex
		found     *boolexpr.Assignment
		evaluated atomic.Uint64
	)

	eg, egCtx := errgroup.WithContext(ctx)
	chunk := (total + uint64(workers) - 1) / uint64(workers)
	for from := uint64(0); from < total; from += chunk {
		to := min(from+chunk, total)
		eg.Go(func() error {
			match, n, err := findSequential(egCtx, node, want, from, to)
			evaluated.Add(n)
			if err != nil {
				return err
			}
			if match != nil {
				mu.Lock()
				if found == nil {
					found = match
				}
				mu.Unlock()
				return errFound
			}
			return nil
		})
	}

	err := eg.Wait()
	if err != nil && !errors.Is(err, errFound) {
		return nil, evaluated.Load(), err
	}
	return found, evaluated.Load(), nil
}
