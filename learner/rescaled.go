package learner

import (
	"fmt"
	"sort"

	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/stat"

	"github.com/gomlab/gomlab/core/model"
	"github.com/gomlab/gomlab/pkg/errors"
)

// Rescaled wraps a regressor so that its predictions are adjusted to the
// training-label distribution. At fit time it records the training labels'
// min and max and the mean/SD of both the labels and the model's own
// predictions on the training set; at predict time raw predictions are
// z-scored against the prediction distribution, rescaled to the label
// distribution, and finally clamped into the observed training range.
//
// Each call to Fit fully overwrites the recorded statistics.
type Rescaled struct {
	model.BaseEstimator

	inner model.Estimator

	// Constrain clamps predictions into the observed training label range.
	Constrain bool

	// Rescale applies the z-score adjustment to the label distribution.
	Rescale bool

	yMin     float64
	yMax     float64
	yhatMean float64
	yhatSD   float64
	yMean    float64
	ySD      float64
}

// NewRescaled wraps the given estimator with constrain/rescale behavior. It
// fails with a ValidationError when the estimator is a classifier: rescaling
// floors and ceilings are meaningless for discrete labels. Wrapping an
// already-wrapped estimator returns it unchanged.
func NewRescaled(est model.Estimator, constrain, rescale bool) (*Rescaled, error) {
	if wrapped, ok := est.(*Rescaled); ok {
		return wrapped, nil
	}
	if est.EstimatorType() == model.TypeClassifier {
		return nil, errors.NewValidationError("estimator",
			"classifiers cannot be rescaled; only regressors can", est.EstimatorType())
	}
	return &Rescaled{inner: est, Constrain: constrain, Rescale: rescale}, nil
}

// NewRescaledDefault wraps the estimator with both constrain and rescale
// enabled.
func NewRescaledDefault(est model.Estimator) (*Rescaled, error) {
	return NewRescaled(est, true, true)
}

// EstimatorType reports that the wrapped model is a regressor.
func (r *Rescaled) EstimatorType() model.EstimatorType {
	return model.TypeRegressor
}

// Inner returns the wrapped estimator.
func (r *Rescaled) Inner() model.Estimator {
	return r.inner
}

// Fit trains the wrapped model, then records the training statistics needed
// by Predict: the label min/max when constraining, and the label and
// training-prediction mean/SD when rescaling.
func (r *Rescaled) Fit(X, y mat.Matrix) error {
	if err := r.inner.Fit(X, y); err != nil {
		return err
	}

	rows, _ := y.Dims()
	labels := make([]float64, rows)
	for i := 0; i < rows; i++ {
		labels[i] = y.At(i, 0)
	}

	if r.Constrain {
		r.yMin = labels[0]
		r.yMax = labels[0]
		for _, v := range labels[1:] {
			if v < r.yMin {
				r.yMin = v
			}
			if v > r.yMax {
				r.yMax = v
			}
		}
	}

	if r.Rescale {
		yHatMat, err := r.inner.Predict(X)
		if err != nil {
			return err
		}
		yHat := make([]float64, rows)
		for i := 0; i < rows; i++ {
			yHat[i] = yHatMat.At(i, 0)
		}

		r.yhatMean = stat.Mean(yHat, nil)
		r.yhatSD = stat.PopStdDev(yHat, nil)
		r.yMean = stat.Mean(labels, nil)
		r.ySD = stat.PopStdDev(labels, nil)
	}

	r.SetFitted()
	return nil
}

// Predict gets raw predictions from the wrapped model and adjusts them with
// the recorded statistics. Rescaling runs before constraining so the final
// output always respects the observed training range.
func (r *Rescaled) Predict(X mat.Matrix) (mat.Matrix, error) {
	if !r.IsFitted() {
		return nil, errors.NewNotFittedError("Rescaled", "Predict")
	}

	raw, err := r.inner.Predict(X)
	if err != nil {
		return nil, err
	}

	rows, _ := raw.Dims()
	out := mat.NewDense(rows, 1, nil)
	for i := 0; i < rows; i++ {
		pred := raw.At(i, 0)

		// Constant training predictions have no spread to rescale from.
		if r.Rescale && r.yhatSD != 0 {
			pred = ((pred-r.yhatMean)/r.yhatSD)*r.ySD + r.yMean
		}

		if r.Constrain {
			if pred < r.yMin {
				pred = r.yMin
			}
			if pred > r.yMax {
				pred = r.yMax
			}
		}

		out.Set(i, 0, pred)
	}

	return out, nil
}

// GetParams merges the wrapped model's hyperparameters with the two added
// flags, so the wrapper stays introspectable by generic tooling.
func (r *Rescaled) GetParams() map[string]interface{} {
	params := map[string]interface{}{}
	if pg, ok := r.inner.(model.ParameterGetter); ok {
		for k, v := range pg.GetParams() {
			params[k] = v
		}
	}
	params["constrain"] = r.Constrain
	params["rescale"] = r.Rescale
	return params
}

// ParamNames returns the merged parameter names in sorted order.
func (r *Rescaled) ParamNames() []string {
	params := r.GetParams()
	names := make([]string, 0, len(params))
	for k := range params {
		names = append(names, k)
	}
	sort.Strings(names)
	return names
}

// String returns a printable representation of the wrapper.
func (r *Rescaled) String() string {
	return fmt.Sprintf("Rescaled(%v, constrain=%t, rescale=%t)", r.inner, r.Constrain, r.Rescale)
}
