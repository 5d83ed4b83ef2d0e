package learner

import (
	"fmt"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/pkg/errors"
)

// nonZeroDoer is satisfied by the sparse matrix types (e.g. sparse.CSR),
// which can visit only their stored elements.
type nonZeroDoer interface {
	DoNonZero(fn func(i, j int, v float64))
}

// denseConverter is satisfied by sparse matrix types that can produce a
// dense copy of themselves.
type denseConverter interface {
	ToDense() *mat.Dense
}

// Densifier is a pipeline stage that converts sparse feature matrices to
// dense ones. It is inserted when a later stage needs dense input — for
// example centering with feature means after feature hashing.
type Densifier struct{}

// NewDensifier creates a new Densifier.
func NewDensifier() *Densifier {
	return &Densifier{}
}

// Fit is a no-op; densification has nothing to learn.
func (d *Densifier) Fit(X mat.Matrix) error {
	return nil
}

// Transform returns a dense copy of X, preserving shape and values.
func (d *Densifier) Transform(X mat.Matrix) (mat.Matrix, error) {
	if dc, ok := X.(denseConverter); ok {
		return dc.ToDense(), nil
	}
	return mat.DenseCopyOf(X), nil
}

// FitTransform runs Fit and Transform in one step.
func (d *Densifier) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := d.Fit(X); err != nil {
		return nil, err
	}
	return d.Transform(X)
}

// SelectByMinCount selects features occurring in at least MinCount examples
// of the training data (or a cross-validation training fold). Occurrence
// means a nonzero value in the feature's column.
type SelectByMinCount struct {
	// MinCount is the minimum number of examples a feature must occur in
	// to be kept.
	MinCount int

	// Scores holds the per-feature occurrence counts computed at fit time.
	Scores []int

	fitted bool
}

// NewSelectByMinCount creates a selector with the given threshold. A
// threshold below 1 falls back to the default of 1.
func NewSelectByMinCount(minCount int) *SelectByMinCount {
	if minCount < 1 {
		minCount = 1
	}
	return &SelectByMinCount{MinCount: minCount}
}

// Fit counts, per feature column, the number of examples with a nonzero
// value. Sparse inputs are visited through their stored elements only.
func (s *SelectByMinCount) Fit(X mat.Matrix) error {
	r, c := X.Dims()
	if r == 0 || c == 0 {
		return errors.NewModelError("SelectByMinCount.Fit", "empty data", errors.ErrEmptyData)
	}

	counts := make([]int, c)
	if nz, ok := X.(nonZeroDoer); ok {
		nz.DoNonZero(func(i, j int, v float64) {
			if v != 0 {
				counts[j]++
			}
		})
	} else {
		for i := 0; i < r; i++ {
			for j := 0; j < c; j++ {
				if X.At(i, j) != 0 {
					counts[j]++
				}
			}
		}
	}

	s.Scores = counts
	s.fitted = true
	return nil
}

// SupportMask reports which features to keep: exactly the columns whose
// occurrence count is at least MinCount.
func (s *SelectByMinCount) SupportMask() ([]bool, error) {
	if !s.fitted {
		return nil, errors.NewNotFittedError("SelectByMinCount", "SupportMask")
	}
	mask := make([]bool, len(s.Scores))
	for j, count := range s.Scores {
		mask[j] = count >= s.MinCount
	}
	return mask, nil
}

// Transform keeps only the selected feature columns.
func (s *SelectByMinCount) Transform(X mat.Matrix) (mat.Matrix, error) {
	mask, err := s.SupportMask()
	if err != nil {
		return nil, err
	}

	r, c := X.Dims()
	if c != len(mask) {
		return nil, errors.NewDimensionError("SelectByMinCount.Transform", len(mask), c, 1)
	}

	kept := make([]int, 0, c)
	for j, keep := range mask {
		if keep {
			kept = append(kept, j)
		}
	}
	if len(kept) == 0 {
		return nil, errors.NewValueError("SelectByMinCount.Transform",
			fmt.Sprintf("no features occur in at least %d examples", s.MinCount))
	}

	out := mat.NewDense(r, len(kept), nil)
	for i := 0; i < r; i++ {
		for outJ, j := range kept {
			out.Set(i, outJ, X.At(i, j))
		}
	}
	return out, nil
}

// FitTransform runs Fit and Transform in one step.
func (s *SelectByMinCount) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	if err := s.Fit(X); err != nil {
		return nil, err
	}
	return s.Transform(X)
}

// GetParams returns the selector's hyperparameters.
func (s *SelectByMinCount) GetParams() map[string]interface{} {
	return map[string]interface{}{
		"min_count": s.MinCount,
	}
}

// String returns a printable representation of the selector.
func (s *SelectByMinCount) String() string {
	return fmt.Sprintf("SelectByMinCount(min_count=%d)", s.MinCount)
}
