// Package neighbors provides the toolkit's built-in classifier.
package neighbors

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/core/model"
	"github.com/gomlab/gomlab/pkg/errors"
)

// NearestCentroid classifies each sample as the class whose training
// centroid it is closest to in Euclidean distance.
type NearestCentroid struct {
	model.BaseEstimator
	Classes   []float64   // sorted class indices seen during fit
	Centroids *mat.Dense  // one row per class, in Classes order
	NFeatures int
}

// NewNearestCentroid creates a new nearest-centroid classifier.
func NewNearestCentroid() *NearestCentroid {
	return &NearestCentroid{}
}

// EstimatorType reports that this model is a classifier.
func (nc *NearestCentroid) EstimatorType() model.EstimatorType {
	return model.TypeClassifier
}

// Fit computes one centroid per class from X and class indices y.
func (nc *NearestCentroid) Fit(X, y mat.Matrix) error {
	r, c := X.Dims()
	ry, cy := y.Dims()

	if r == 0 || c == 0 {
		return errors.NewModelError("NearestCentroid.Fit", "empty data", errors.ErrEmptyData)
	}
	if ry != r {
		return errors.NewDimensionError("NearestCentroid.Fit", r, ry, 0)
	}
	if cy != 1 {
		return errors.NewValueError("NearestCentroid.Fit", "y must be a column vector")
	}

	sums := make(map[float64][]float64)
	counts := make(map[float64]int)
	for i := 0; i < r; i++ {
		label := y.At(i, 0)
		if sums[label] == nil {
			sums[label] = make([]float64, c)
		}
		for j := 0; j < c; j++ {
			sums[label][j] += X.At(i, j)
		}
		counts[label]++
	}

	classes := make([]float64, 0, len(sums))
	for label := range sums {
		classes = append(classes, label)
	}
	sort.Float64s(classes)

	centroids := mat.NewDense(len(classes), c, nil)
	for ci, label := range classes {
		for j := 0; j < c; j++ {
			centroids.Set(ci, j, sums[label][j]/float64(counts[label]))
		}
	}

	nc.Classes = classes
	nc.Centroids = centroids
	nc.NFeatures = c
	nc.SetFitted()

	return nil
}

// Predict assigns each row of X to the class with the nearest centroid.
func (nc *NearestCentroid) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !nc.IsFitted() {
		return nil, errors.NewNotFittedError("NearestCentroid", "Predict")
	}

	r, c := X.Dims()
	if c != nc.NFeatures {
		return nil, errors.NewDimensionError("NearestCentroid.Predict", nc.NFeatures, c, 1)
	}

	predictions := mat.NewDense(r, 1, nil)
	for i := 0; i < r; i++ {
		best := 0
		bestDist := -1.0
		for ci := range nc.Classes {
			var dist float64
			for j := 0; j < c; j++ {
				d := X.At(i, j) - nc.Centroids.At(ci, j)
				dist += d * d
			}
			if bestDist < 0 || dist < bestDist {
				bestDist = dist
				best = ci
			}
		}
		predictions.Set(i, 0, nc.Classes[best])
	}

	return predictions, nil
}

// GetParams returns the model's hyperparameters.
func (nc *NearestCentroid) GetParams() map[string]interface{} {
	return map[string]interface{}{}
}

// String returns a printable representation of the model.
func (nc *NearestCentroid) String() string {
	if !nc.IsFitted() {
		return "NearestCentroid()"
	}
	return fmt.Sprintf("NearestCentroid(n_classes=%d, n_features=%d)", len(nc.Classes), nc.NFeatures)
}
