package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/core/model"
	"github.com/gomlab/gomlab/linear"
	"github.com/gomlab/gomlab/neighbors"
	"github.com/gomlab/gomlab/pkg/errors"
)

// doubler is a stub regressor that predicts twice its single input feature.
type doubler struct {
	model.BaseEstimator
}

func (d *doubler) EstimatorType() model.EstimatorType { return model.TypeRegressor }

func (d *doubler) Fit(X, y mat.Matrix) error {
	d.SetFitted()
	return nil
}

func (d *doubler) Predict(X mat.Matrix) (mat.Matrix, error) {
	rows, _ := X.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		out.Set(i, 0, 2*X.At(i, 0))
	}
	return out, nil
}

func TestRescaledRejectsClassifiers(t *testing.T) {
	_, err := NewRescaledDefault(neighbors.NewNearestCentroid())
	var validationErr *errors.ValidationError
	require.True(t, errors.As(err, &validationErr))
}

func TestRescaledWrapIsIdempotent(t *testing.T) {
	wrapped, err := NewRescaledDefault(linear.NewLinearRegression())
	require.NoError(t, err)

	again, err := NewRescaled(wrapped, false, false)
	require.NoError(t, err)
	assert.Same(t, wrapped, again, "re-wrapping must return the existing wrapper")
	assert.True(t, again.Constrain, "re-wrapping must not change existing flags")
}

func TestRescaledConstrainClampsToTrainingRange(t *testing.T) {
	// y = x exactly, labels spanning [0, 10].
	n := 11
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		y.Set(i, 0, float64(i))
	}

	r, err := NewRescaledDefault(linear.NewLinearRegression())
	require.NoError(t, err)
	require.NoError(t, r.Fit(X, y))

	pred, err := r.Predict(mat.NewDense(2, 1, []float64{15, -3}))
	require.NoError(t, err)

	assert.InDelta(t, 10.0, pred.At(0, 0), 1e-9, "high prediction clamps to the training max")
	assert.InDelta(t, 0.0, pred.At(1, 0), 1e-9, "low prediction clamps to the training min")
}

func TestRescaledAdjustsToLabelDistribution(t *testing.T) {
	// Inner model predicts 2x while the labels are x: the prediction
	// distribution has twice the spread of the label distribution, so
	// rescaling must undo the doubling.
	n := 5
	X := mat.NewDense(n, 1, nil)
	y := mat.NewDense(n, 1, nil)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i+1))
		y.Set(i, 0, float64(i+1))
	}

	r, err := NewRescaled(&doubler{}, false, true)
	require.NoError(t, err)
	require.NoError(t, r.Fit(X, y))

	pred, err := r.Predict(mat.NewDense(1, 1, []float64{6}))
	require.NoError(t, err)
	assert.InDelta(t, 6.0, pred.At(0, 0), 1e-9)
}

func TestRescaledPredictBeforeFit(t *testing.T) {
	r, err := NewRescaledDefault(linear.NewLinearRegression())
	require.NoError(t, err)

	_, err = r.Predict(mat.NewDense(1, 1, []float64{1}))
	var notFitted *errors.NotFittedError
	require.True(t, errors.As(err, &notFitted))
}
