package model

import "gonum.org/v1/gonum/mat"

// Transformer is the interface for data transformations. Feature-selection
// and densifying stages in a learner pipeline implement this contract.
type Transformer interface {
	// Fit learns any parameters the transformation needs.
	Fit(X mat.Matrix) error

	// Transform applies the transformation.
	Transform(X mat.Matrix) (mat.Matrix, error)

	// FitTransform runs Fit and Transform in one step.
	FitTransform(X mat.Matrix) (mat.Matrix, error)
}
