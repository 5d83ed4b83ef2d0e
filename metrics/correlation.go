package metrics

import (
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"

	"github.com/gomlab/gomlab/pkg/errors"
)

// Correlation scorers. A correlation over a constant vector is undefined;
// those cases raise an UndefinedMetricWarning and score zero rather than
// propagating NaN into experiment summaries.

// Pearson computes the Pearson product-moment correlation.
func Pearson(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("Pearson", yTrue, yPred); err != nil {
		return 0, err
	}
	return guardNaN("pearson", stat.Correlation(yTrue, yPred, nil)), nil
}

// Spearman computes the Spearman rank correlation: Pearson over the rank
// transforms, with ties assigned their average rank.
func Spearman(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("Spearman", yTrue, yPred); err != nil {
		return 0, err
	}
	rTrue := rankData(yTrue)
	rPred := rankData(yPred)
	return guardNaN("spearman", stat.Correlation(rTrue, rPred, nil)), nil
}

// KendallTau computes Kendall's tau rank correlation.
func KendallTau(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("KendallTau", yTrue, yPred); err != nil {
		return 0, err
	}
	return guardNaN("kendall_tau", stat.Kendall(yTrue, yPred, nil)), nil
}

func guardNaN(metric string, v float64) float64 {
	if math.IsNaN(v) {
		errors.Warn(errors.NewUndefinedMetricWarning(metric, "zero variance in input", 0))
		return 0
	}
	return v
}

// rankData returns average ranks (1-based) with ties sharing the mean of the
// rank positions they occupy.
func rankData(xs []float64) []float64 {
	n := len(xs)
	idx := make([]int, n)
	for i := range idx {
		idx[i] = i
	}
	sort.Slice(idx, func(a, b int) bool { return xs[idx[a]] < xs[idx[b]] })

	ranks := make([]float64, n)
	for i := 0; i < n; {
		j := i
		for j+1 < n && xs[idx[j+1]] == xs[idx[i]] {
			j++
		}
		// positions i..j share the average rank
		avg := float64(i+j)/2 + 1
		for k := i; k <= j; k++ {
			ranks[idx[k]] = avg
		}
		i = j + 1
	}
	return ranks
}
