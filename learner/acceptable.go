package learner

import (
	"fmt"
	"math"
	"strconv"

	"github.com/gomlab/gomlab/metrics"
	"github.com/gomlab/gomlab/pkg/errors"
)

// ContiguousIntsOrFloats checks whether the given labels are contiguous
// integers or contiguous integer-like floats. For example, [1, 2, 3] and
// [4.0, 5.0, 6.0] are both contiguous but [1.1, 1.2, 1.3] is not.
//
// It fails with a ValueError on empty input and a TypeError when any label
// is not numeric.
func ContiguousIntsOrFloats(labels []string) (bool, error) {
	if len(labels) == 0 {
		return false, errors.NewValueError("ContiguousIntsOrFloats", "input cannot be empty")
	}

	values := make([]float64, len(labels))
	for i, label := range labels {
		v, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return false, errors.NewTypeError("ContiguousIntsOrFloats", "numbers", fmt.Sprintf("%q", label))
		}
		values[i] = v
	}

	// All values must be integers or integer-like floats (1.0, 2.0, ...).
	for _, v := range values {
		if math.Mod(v, 1) != 0 {
			return false, nil
		}
	}

	// Successive differences must all be exactly 1.
	for i := 1; i < len(values); i++ {
		if values[i]-values[i-1] != 1 {
			return false, nil
		}
	}

	return true, nil
}

// AcceptableClassificationMetrics returns the set of metrics that are
// acceptable given the sorted unique labels being classified.
//
// Classification-only and unweighted agreement metrics are always
// acceptable. Numeric labels additionally admit correlation metrics, since
// class indices are sorted in label order and rank-based association is
// therefore meaningful. Numerically contiguous labels — ordinal
// classification — further admit weighted agreement metrics, because only
// then does the distance between class indices carry meaning.
func AcceptableClassificationMetrics(labelArray []string) (metrics.Set, error) {
	if len(labelArray) == 0 {
		return nil, errors.NewValueError("AcceptableClassificationMetrics", "label array cannot be empty")
	}

	acceptable := metrics.ClassificationOnlyMetrics.Union(metrics.UnweightedKappaMetrics)

	allNumeric := true
	for _, label := range labelArray {
		if _, err := strconv.ParseFloat(label, 64); err != nil {
			allNumeric = false
			break
		}
	}
	if !allNumeric {
		// String labels: nothing beyond the base set is meaningful.
		return acceptable, nil
	}

	acceptable = acceptable.Union(metrics.CorrelationMetrics)

	contiguous, err := ContiguousIntsOrFloats(labelArray)
	if err != nil {
		return nil, err
	}
	if contiguous {
		acceptable = acceptable.Union(metrics.WeightedKappaMetrics)
	}

	return acceptable, nil
}

// AcceptableRegressionMetrics returns the set of metrics acceptable for
// regression. No label inspection is needed: regression targets are always
// numeric.
func AcceptableRegressionMetrics() metrics.Set {
	return metrics.RegressionOnlyMetrics.Union(
		metrics.UnweightedKappaMetrics,
		metrics.WeightedKappaMetrics,
		metrics.CorrelationMetrics,
	)
}
