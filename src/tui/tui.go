package tui

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/eriklarko/tautology-checker/src/boolexpr"
	"github.com/eriklarko/tautology-checker/src/checker"
	"github.com/eriklarko/tautology-checker/src/phraser"
)

const help = `Enter a fully parenthesized expression over the variables A-Z, e.g. ((A>B)v(B>A)).
Operators: ^ and, v or, > implies, = iff, + xor, ! not.
Type "quit" to leave.
`

var errorPhrases = []string{
	"error: %v",
	"that did not work: %v",
	"could not check that one: %v",
	"try again, %v",
}

type TUI struct {
	input  *bufio.Reader
	output io.Writer

	errorPhraser *phraser.Phraser
}

func New() *TUI {
	return &TUI{
		input:        bufio.NewReader(os.Stdin),
		output:       os.Stdout,
		errorPhraser: phraser.New(errorPhrases),
	}
}

func (t *TUI) SetInput(input io.Reader) {
	t.input = bufio.NewReader(input)
}

func (t *TUI) SetOutput(output io.Writer) {
	t.output = output
}

// readLine returns the next line without its line ending. io.EOF is only
// returned when there is nothing left to read.
func (t *TUI) readLine() (string, error) {
	line, err := t.input.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}
	return strings.TrimSpace(line), nil
}

// AskForever repeats the question until it gets a yes or no answer. An empty
// answer or the end of input means no.
func (t *TUI) AskForever(question string, a ...any) (bool, error) {
	for {
		fmt.Fprintf(t.output, question, a...)
		response, err := t.readLine()
		if errors.Is(err, io.EOF) {
			return false, nil
		}
		if err != nil {
			return false, fmt.Errorf("failed to read user input: %w", err)
		}

		switch strings.ToLower(response) {
		case "y", "yes":
			return true, nil
		case "n", "no", "":
			return false, nil
		}
	}
}

// Run reads expressions until the input ends or the user quits, printing a
// verdict for each one. Every checked expression is recorded in the returned
// report.
func (t *TUI) Run(ctx context.Context, c *checker.Checker, opts ...boolexpr.ParseOption) (*checker.Report, error) {
	report := &checker.Report{}
	fmt.Fprint(t.output, help)

	for n := 1; ; n++ {
		if err := ctx.Err(); err != nil {
			return report, err
		}

		fmt.Fprint(t.output, "> ")
		line, err := t.readLine()
		if errors.Is(err, io.EOF) {
			fmt.Fprintln(t.output)
			return report, nil
		}
		if err != nil {
			return report, fmt.Errorf("failed to read expression: %w", err)
		}

		switch strings.ToLower(line) {
		case "":
			continue
		case "quit", "exit":
			return report, nil
		case "help", "?":
			fmt.Fprint(t.output, help)
			continue
		}

		node, err := boolexpr.New(line, opts...)
		if err != nil {
			report.RecordInvalid(line, err)
			fmt.Fprintln(t.output, t.errorPhraser.Get(err))
			continue
		}
		verdict, err := c.Check(ctx, node)
		if err != nil {
			report.RecordInvalid(line, err)
			fmt.Fprintln(t.output, t.errorPhraser.Get(err))
			continue
		}

		report.RecordVerdict(line, n, verdict)
		fmt.Fprintf(t.output, "%s: %s\n", node, verdict.Describe())
	}
}
