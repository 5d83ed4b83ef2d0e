package metrics

import (
	"math"

	"gonum.org/v1/gonum/stat"

	"github.com/gomlab/gomlab/pkg/errors"
)

// Regression scorers. All of them follow the "higher is better" convention
// so that a single comparison direction works across the registry; error
// metrics are therefore negated.

// NegMeanSquaredError computes the negated mean squared error.
func NegMeanSquaredError(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("NegMeanSquaredError", yTrue, yPred); err != nil {
		return 0, err
	}

	var sum float64
	for i := range yTrue {
		diff := yTrue[i] - yPred[i]
		sum += diff * diff
	}
	return -(sum / float64(len(yTrue))), nil
}

// NegMeanAbsoluteError computes the negated mean absolute error.
func NegMeanAbsoluteError(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("NegMeanAbsoluteError", yTrue, yPred); err != nil {
		return 0, err
	}

	var sum float64
	for i := range yTrue {
		sum += math.Abs(yTrue[i] - yPred[i])
	}
	return -(sum / float64(len(yTrue))), nil
}

// R2 computes the coefficient of determination.
func R2(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("R2", yTrue, yPred); err != nil {
		return 0, err
	}

	yMean := stat.Mean(yTrue, nil)

	var tss, rss float64
	for i := range yTrue {
		tss += (yTrue[i] - yMean) * (yTrue[i] - yMean)
		rss += (yTrue[i] - yPred[i]) * (yTrue[i] - yPred[i])
	}

	if tss == 0 {
		return 0, errors.Newf("R2: total sum of squares is zero (no variance in yTrue)")
	}

	return 1 - rss/tss, nil
}

// ExplainedVariance computes 1 - Var(yTrue - yPred) / Var(yTrue).
func ExplainedVariance(yTrue, yPred []float64) (float64, error) {
	if err := validateInputs("ExplainedVariance", yTrue, yPred); err != nil {
		return 0, err
	}

	n := len(yTrue)
	residuals := make([]float64, n)
	for i := range yTrue {
		residuals[i] = yTrue[i] - yPred[i]
	}

	// Population variances, to match the definition used for rescaling
	// statistics elsewhere in the toolkit.
	varTrue := populationVariance(yTrue)
	varResid := populationVariance(residuals)

	if varTrue == 0 {
		return 0, errors.Newf("ExplainedVariance: no variance in yTrue")
	}

	return 1 - varResid/varTrue, nil
}

func populationVariance(xs []float64) float64 {
	mean := stat.Mean(xs, nil)
	var sum float64
	for _, x := range xs {
		sum += (x - mean) * (x - mean)
	}
	return sum / float64(len(xs))
}
