package checker

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
)

// CheckLines reads one expression per line from r and checks each of them.
// Lines may be of any length. Blank lines and lines starting with '#' are
// skipped. Expressions that fail to parse or evaluate end up in
// Report.Invalid; only read errors and cancellation abort the batch.
func (c *Checker) CheckLines(ctx context.Context, r io.Reader, opts ...boolexpr.ParseOption) (*Report, error) {
	report := &Report{}

	reader := bufio.NewReader(r)
	for line := 1; ; line++ {
		text, readErr := reader.ReadString('\n')
		if readErr != nil && !errors.Is(readErr, io.EOF) {
			return report, fmt.Errorf("failed to read expressions: %w", readErr)
		}
		if readErr != nil && text == "" {
			return report, nil
		}

		expression := strings.TrimSpace(text)
		if expression == "" || strings.HasPrefix(expression, "#") {
			continue
		}

		verdict, err := c.checkExpression(ctx, expression, opts...)
		if ctx.Err() != nil {
			return report, ctx.Err()
		}
		if err != nil {
			slog.Warn("Skipping invalid expression", "line", line, "expression", expression, "error", err)
			report.RecordInvalid(expression, err)
			continue
		}
		report.RecordVerdict(expression, line, verdict)
	}
}

func (c *Checker) checkExpression(ctx context.Context, expression string, opts ...boolexpr.ParseOption) (Verdict, error) {
	node, err := boolexpr.New(expression, opts...)
	if err != nil {
		return Verdict{}, err
	}
	return c.Check(ctx, node)
}
