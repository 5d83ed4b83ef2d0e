package model

import "gonum.org/v1/gonum/mat"

// EstimatorType distinguishes regressors from classifiers. It replaces the
// class-attribute tagging used by Python estimator libraries with an explicit
// method contract.
type EstimatorType string

const (
	// TypeRegressor marks estimators that predict continuous values.
	TypeRegressor EstimatorType = "regressor"
	// TypeClassifier marks estimators that predict discrete class indices.
	TypeClassifier EstimatorType = "classifier"
)

// Typed is implemented by estimators that declare their kind. The rescaling
// wrapper consults it to reject classifiers, and the train-and-score helper
// uses it to choose between index-space and raw-label scoring.
type Typed interface {
	EstimatorType() EstimatorType
}

// Fitter is the interface for trainable models.
type Fitter interface {
	// Fit trains the model on X with targets y (a column vector).
	Fit(X, y mat.Matrix) error
}

// Predictor is the interface for models that can predict.
type Predictor interface {
	// Predict returns predictions for X as a column vector.
	Predict(X mat.Matrix) (mat.Matrix, error)
}

// Estimator is the combined fit/predict contract expected by the learner
// pipeline.
type Estimator interface {
	Fitter
	Predictor
	Typed
}

// ParameterGetter is the interface for models that expose their parameters.
type ParameterGetter interface {
	// GetParams returns the model's hyperparameters.
	GetParams() map[string]interface{}
}
