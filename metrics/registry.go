// Package metrics implements the fixed scorer registry used by the
// experiment toolkit, along with the metric family sets that the
// configuration layer consults when deciding which metrics are acceptable
// for a given prediction target.
package metrics

import (
	"sort"

	"github.com/gomlab/gomlab/pkg/errors"
)

// ScoreFunc scores predictions against true values. Classification scorers
// operate in index space; regression scorers on raw values.
type ScoreFunc func(yTrue, yPred []float64) (float64, error)

// Set is an unordered collection of metric names.
type Set map[string]struct{}

// NewSet builds a Set from names.
func NewSet(names ...string) Set {
	s := make(Set, len(names))
	for _, n := range names {
		s[n] = struct{}{}
	}
	return s
}

// Has reports whether name belongs to the set.
func (s Set) Has(name string) bool {
	_, ok := s[name]
	return ok
}

// Union returns a new set containing the members of s and every other set.
func (s Set) Union(others ...Set) Set {
	out := make(Set, len(s))
	for n := range s {
		out[n] = struct{}{}
	}
	for _, o := range others {
		for n := range o {
			out[n] = struct{}{}
		}
	}
	return out
}

// Sorted returns the members in sorted order.
func (s Set) Sorted() []string {
	out := make([]string, 0, len(s))
	for n := range s {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Metric families. Membership decides which metrics are acceptable for a
// given target type; see learner.AcceptableClassificationMetrics.
var (
	// ClassificationOnlyMetrics are meaningful only for discrete labels.
	ClassificationOnlyMetrics = NewSet(
		"accuracy",
		"balanced_accuracy",
		"f1",
		"precision",
		"recall",
	)

	// RegressionOnlyMetrics are meaningful only for continuous targets.
	RegressionOnlyMetrics = NewSet(
		"r2",
		"neg_mean_squared_error",
		"neg_mean_absolute_error",
		"explained_variance",
	)

	// CorrelationMetrics measure association between numeric vectors.
	CorrelationMetrics = NewSet(
		"pearson",
		"spearman",
		"kendall_tau",
	)

	// UnweightedKappaMetrics measure chance-corrected agreement without
	// regard to ordinal distance between categories.
	UnweightedKappaMetrics = NewSet(
		"unweighted_kappa",
	)

	// WeightedKappaMetrics weight disagreements by ordinal distance. They
	// are only valid when label indices carry ordinal meaning.
	WeightedKappaMetrics = NewSet(
		"linear_weighted_kappa",
		"quadratic_weighted_kappa",
	)
)

// DeprecatedMSE is the retired metric name; its replacement carries the
// negated sign so that higher is always better.
const (
	DeprecatedMSE    = "mean_squared_error"
	ReplacementForMSE = "neg_mean_squared_error"
)

// scorers is the fixed registry. The rest of the module only reads
// membership; nothing mutates it after init.
var scorers = map[string]ScoreFunc{
	"accuracy":          Accuracy,
	"balanced_accuracy": BalancedAccuracy,
	"f1":                F1,
	"precision":         Precision,
	"recall":            Recall,

	"r2":                      R2,
	"neg_mean_squared_error":  NegMeanSquaredError,
	"neg_mean_absolute_error": NegMeanAbsoluteError,
	"explained_variance":      ExplainedVariance,

	"pearson":     Pearson,
	"spearman":    Spearman,
	"kendall_tau": KendallTau,

	"unweighted_kappa":         UnweightedKappa,
	"linear_weighted_kappa":    LinearWeightedKappa,
	"quadratic_weighted_kappa": QuadraticWeightedKappa,
}

// HasMetric reports whether name is in the registry.
func HasMetric(name string) bool {
	_, ok := scorers[name]
	return ok
}

// Names returns every registered metric name, sorted.
func Names() []string {
	out := make([]string, 0, len(scorers))
	for n := range scorers {
		out = append(out, n)
	}
	sort.Strings(out)
	return out
}

// Score looks up the named scorer and applies it.
func Score(name string, yTrue, yPred []float64) (float64, error) {
	fn, ok := scorers[name]
	if !ok {
		return 0, errors.NewNotFoundError("metric", name)
	}
	return fn(yTrue, yPred)
}

// validateInputs performs the shared length checks for scorers.
func validateInputs(op string, yTrue, yPred []float64) error {
	if len(yTrue) == 0 {
		return errors.NewValueError(op, "empty input")
	}
	if len(yTrue) != len(yPred) {
		return errors.NewDimensionError(op, len(yTrue), len(yPred), 0)
	}
	return nil
}
