package metrics

import (
	"math"

	"github.com/gomlab/gomlab/pkg/errors"
)

// Agreement scorers: Cohen's kappa in its unweighted, linear-weighted and
// quadratic-weighted forms. Ratings are expected to be integer-valued (label
// indices); values are rounded before the confusion matrix is built, and the
// matrix spans the full contiguous range between the observed minimum and
// maximum so that ordinal distances are well defined.

type kappaWeight int

const (
	weightNone kappaWeight = iota
	weightLinear
	weightQuadratic
)

// UnweightedKappa computes Cohen's kappa without ordinal weighting.
func UnweightedKappa(yTrue, yPred []float64) (float64, error) {
	return kappa("UnweightedKappa", yTrue, yPred, weightNone)
}

// LinearWeightedKappa computes Cohen's kappa with disagreements weighted by
// absolute ordinal distance.
func LinearWeightedKappa(yTrue, yPred []float64) (float64, error) {
	return kappa("LinearWeightedKappa", yTrue, yPred, weightLinear)
}

// QuadraticWeightedKappa computes Cohen's kappa with disagreements weighted
// by squared ordinal distance.
func QuadraticWeightedKappa(yTrue, yPred []float64) (float64, error) {
	return kappa("QuadraticWeightedKappa", yTrue, yPred, weightQuadratic)
}

func kappa(op string, yTrue, yPred []float64, scheme kappaWeight) (float64, error) {
	if err := validateInputs(op, yTrue, yPred); err != nil {
		return 0, err
	}

	n := len(yTrue)
	trueInts := make([]int, n)
	predInts := make([]int, n)
	minRating := math.MaxInt
	maxRating := math.MinInt
	for i := 0; i < n; i++ {
		trueInts[i] = int(math.Round(yTrue[i]))
		predInts[i] = int(math.Round(yPred[i]))
		for _, v := range [2]int{trueInts[i], predInts[i]} {
			if v < minRating {
				minRating = v
			}
			if v > maxRating {
				maxRating = v
			}
		}
	}

	numRatings := maxRating - minRating + 1
	if numRatings == 1 {
		// Perfect agreement on a single category; kappa is defined as 1
		// by convention here since there is no disagreement to correct.
		return 1, nil
	}

	// Observed contingency matrix.
	observed := make([][]float64, numRatings)
	for i := range observed {
		observed[i] = make([]float64, numRatings)
	}
	for i := 0; i < n; i++ {
		observed[trueInts[i]-minRating][predInts[i]-minRating]++
	}

	// Marginal histograms for the expected matrix.
	histTrue := make([]float64, numRatings)
	histPred := make([]float64, numRatings)
	for i := 0; i < n; i++ {
		histTrue[trueInts[i]-minRating]++
		histPred[predInts[i]-minRating]++
	}

	var numerator, denominator float64
	for i := 0; i < numRatings; i++ {
		for j := 0; j < numRatings; j++ {
			expected := histTrue[i] * histPred[j] / float64(n)

			var w float64
			switch scheme {
			case weightNone:
				if i != j {
					w = 1
				}
			case weightLinear:
				w = math.Abs(float64(i - j))
			case weightQuadratic:
				d := float64(i - j)
				w = d * d
			}

			numerator += w * observed[i][j]
			denominator += w * expected
		}
	}

	if denominator == 0 {
		return 0, errors.NewValueError(op, "expected agreement matrix has zero weight")
	}

	return 1 - numerator/denominator, nil
}
