package checker

import (
	"slices"

	"github.com/montanaflynn/stats"
	"github.com/samber/lo"
)

// Report collects verdicts for a batch of expressions. Every map goes from
// the expression text to the line numbers it appeared on.
type Report struct {
	Tautologies    map[string][]int
	Contradictions map[string][]int
	Contingent     map[string][]int

	// expression -> error message
	Invalid map[string]string

	variableCounts []float64
}

func (r *Report) RecordVerdict(expression string, line int, verdict Verdict) {
	switch verdict.Kind() {
	case KindTautology:
		r.Tautologies = record(r.Tautologies, expression, line)
	case KindContradiction:
		r.Contradictions = record(r.Contradictions, expression, line)
	default:
		r.Contingent = record(r.Contingent, expression, line)
	}
	r.variableCounts = append(r.variableCounts, float64(verdict.Variables.Len()))
}

// RecordInvalid records an expression that could not be parsed or evaluated.
func (r *Report) RecordInvalid(expression string, err error) {
	if r.Invalid == nil {
		r.Invalid = make(map[string]string)
	}
	r.Invalid[expression] = err.Error()
}

func (r *Report) HasInvalid() bool {
	return len(r.Invalid) > 0
}

// Verdicts flattens the report into expression -> kind, the shape stored in
// the history file.
func (r *Report) Verdicts() map[string]Kind {
	verdicts := make(map[string]Kind)
	for expression := range r.Tautologies {
		verdicts[expression] = KindTautology
	}
	for expression := range r.Contradictions {
		verdicts[expression] = KindContradiction
	}
	for expression := range r.Contingent {
		verdicts[expression] = KindContingent
	}
	return verdicts
}

// Sorted returns the expressions of one of the report's maps in a stable
// order.
func Sorted[V any](m map[string]V) []string {
	keys := lo.Keys(m)
	slices.Sort(keys)
	return keys
}

type Summary struct {
	Checked int
	Invalid int

	MeanVariables   float64
	MedianVariables float64
	MaxVariables    float64
}

// Summary computes statistics over the recorded verdicts. Invalid
// expressions are counted but do not contribute to the variable statistics.
func (r *Report) Summary() (Summary, error) {
	summary := Summary{
		Checked: len(r.variableCounts),
		Invalid: len(r.Invalid),
	}
	if len(r.variableCounts) == 0 {
		return summary, nil
	}

	var err error
	if summary.MeanVariables, err = stats.Mean(r.variableCounts); err != nil {
		return summary, err
	}
	if summary.MedianVariables, err = stats.Median(r.variableCounts); err != nil {
		return summary, err
	}
	if summary.MaxVariables, err = stats.Max(r.variableCounts); err != nil {
		return summary, err
	}
	return summary, nil
}

func record(m map[string][]int, expression string, line int) map[string][]int {
	if m == nil {
		m = make(map[string][]int)
	}
	m[expression] = append(m[expression], line)
	return m
}
