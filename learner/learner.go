package learner

import (
	"fmt"
	"log/slog"
	"time"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/core/model"
	"github.com/gomlab/gomlab/pkg/errors"
	gomlog "github.com/gomlab/gomlab/pkg/log"
)

// Learner couples an estimator with an optional feature pipeline and, for
// classifiers, the label bookkeeping needed to move between raw string
// labels and the index space the estimator works in.
type Learner struct {
	// Name is the registry name of the underlying estimator.
	Name string

	// LabelList holds the sorted unique training labels of a classifier;
	// class index i corresponds to LabelList[i]. Nil for regressors.
	LabelList []string

	// LabelDict maps a label to its class index. Nil for regressors.
	LabelDict map[string]int

	estimator model.Estimator
	pipeline  *Pipeline
	logger    *slog.Logger
}

// NewLearner creates a learner around the given estimator. The pipeline may
// be nil when no feature transformation is wanted.
func NewLearner(name string, est model.Estimator, pipeline *Pipeline) *Learner {
	return &Learner{Name: name, estimator: est, pipeline: pipeline}
}

// SetLogger attaches a structured logger used to report training progress.
func (l *Learner) SetLogger(logger *slog.Logger) {
	l.logger = logger
}

// Estimator returns the wrapped estimator.
func (l *Learner) Estimator() model.Estimator {
	return l.estimator
}

// Pipeline returns the feature pipeline, or nil when none is configured.
func (l *Learner) Pipeline() *Pipeline {
	return l.pipeline
}

// IsClassifier reports whether the underlying estimator is a classifier.
func (l *Learner) IsClassifier() bool {
	return l.estimator.EstimatorType() == model.TypeClassifier
}

// Train fits the pipeline and the estimator on the feature set. For
// classifiers the sorted unique labels become the label list and the targets
// are the corresponding class indices; for regressors the labels are parsed
// as numbers directly.
func (l *Learner) Train(fs *FeatureSet) error {
	start := time.Now()

	X, err := l.transformForTraining(fs.Features)
	if err != nil {
		return err
	}

	y, err := l.trainingTargets(fs)
	if err != nil {
		return err
	}

	if err := l.estimator.Fit(X, y); err != nil {
		return err
	}

	if l.logger != nil {
		r, c := X.Dims()
		l.logger.Info("training complete",
			slog.String(gomlog.LearnerNameKey, l.Name),
			slog.String(gomlog.OperationKey, gomlog.OperationTrain),
			slog.Int(gomlog.SamplesKey, r),
			slog.Int(gomlog.FeaturesKey, c),
			slog.Int64(gomlog.DurationMsKey, time.Since(start).Milliseconds()),
		)
	}
	return nil
}

func (l *Learner) transformForTraining(X mat.Matrix) (mat.Matrix, error) {
	if l.pipeline == nil {
		return X, nil
	}
	return l.pipeline.FitTransform(X)
}

func (l *Learner) trainingTargets(fs *FeatureSet) (mat.Matrix, error) {
	n := fs.NumSamples()

	if l.IsClassifier() {
		l.LabelList = UniqueLabels(fs.Labels)
		l.LabelDict = make(map[string]int, len(l.LabelList))
		for i, label := range l.LabelList {
			l.LabelDict[label] = i
		}

		y := mat.NewDense(n, 1, nil)
		for i, label := range fs.Labels {
			y.Set(i, 0, float64(l.LabelDict[label]))
		}
		return y, nil
	}

	values, err := fs.NumericLabels()
	if err != nil {
		return nil, err
	}
	return mat.NewDense(n, 1, values), nil
}

// Predict runs the pipeline and estimator on the feature set and returns
// one prediction per example. Classifier predictions are class indices into
// LabelList.
func (l *Learner) Predict(fs *FeatureSet) ([]float64, error) {
	X := fs.Features
	if l.pipeline != nil {
		transformed, err := l.pipeline.Transform(X)
		if err != nil {
			return nil, err
		}
		X = transformed
	}

	pred, err := l.estimator.Predict(X)
	if err != nil {
		return nil, err
	}

	rows, _ := pred.Dims()
	out := make([]float64, rows)
	for i := 0; i < rows; i++ {
		out[i] = pred.At(i, 0)
	}
	return out, nil
}

// PredictLabels maps classifier predictions back to their string labels. It
// fails with a ValidationError when called on a regressor.
func (l *Learner) PredictLabels(fs *FeatureSet) ([]string, error) {
	if !l.IsClassifier() {
		return nil, errors.NewValidationError("learner",
			"label prediction requires a classifier", l.estimator.EstimatorType())
	}

	indices, err := l.Predict(fs)
	if err != nil {
		return nil, err
	}

	labels := make([]string, len(indices))
	for i, v := range indices {
		idx := int(v)
		if idx < 0 || idx >= len(l.LabelList) {
			return nil, errors.NewValueError("Learner.PredictLabels",
				fmt.Sprintf("predicted class index %d out of range [0, %d)", idx, len(l.LabelList)))
		}
		labels[i] = l.LabelList[idx]
	}
	return labels, nil
}
