package learner

import (
	"gonum.org/v1/gonum/stat"

	"github.com/gomlab/gomlab/core/parallel"
	"github.com/gomlab/gomlab/metrics"
	"github.com/gomlab/gomlab/pkg/errors"
)

// TrainAndScore trains the learner on the training set and computes the
// given metric on both the training and the test set. It is the unit of
// work handed to each worker when evaluating many learner/featureset
// combinations in parallel.
//
// For classifiers, both label arrays are mapped into class-index space
// before scoring. Test labels never seen during training are appended to a
// copy of the learner's label dictionary, so scoring a fold cannot mutate
// the trained learner.
func TrainAndScore(l *Learner, train, test *FeatureSet, metric string) (trainScore, testScore float64, err error) {
	if err = l.Train(train); err != nil {
		return 0, 0, err
	}

	trainPred, err := l.Predict(train)
	if err != nil {
		return 0, 0, err
	}
	testPred, err := l.Predict(test)
	if err != nil {
		return 0, 0, err
	}

	var yTrain, yTest []float64
	if l.IsClassifier() {
		dict := extendedLabelDict(l, test.Labels)
		yTrain, err = indexLabels(train.Labels, dict)
		if err != nil {
			return 0, 0, err
		}
		yTest, err = indexLabels(test.Labels, dict)
		if err != nil {
			return 0, 0, err
		}
	} else {
		yTrain, err = train.NumericLabels()
		if err != nil {
			return 0, 0, err
		}
		yTest, err = test.NumericLabels()
		if err != nil {
			return 0, 0, err
		}
	}

	trainScore, err = metrics.Score(metric, yTrain, trainPred)
	if err != nil {
		return 0, 0, err
	}
	testScore, err = metrics.Score(metric, yTest, testPred)
	if err != nil {
		return 0, 0, err
	}
	return trainScore, testScore, nil
}

// extendedLabelDict returns the learner's label dictionary, extended with
// any test labels missing from it. Unseen labels get sequential indices
// after the training classes, in sorted label order. The learner's own
// dictionary is never modified.
func extendedLabelDict(l *Learner, testLabels []string) map[string]int {
	var unseen []string
	for _, label := range UniqueLabels(testLabels) {
		if _, ok := l.LabelDict[label]; !ok {
			unseen = append(unseen, label)
		}
	}
	if len(unseen) == 0 {
		return l.LabelDict
	}

	dict := make(map[string]int, len(l.LabelDict)+len(unseen))
	for label, idx := range l.LabelDict {
		dict[label] = idx
	}
	next := len(l.LabelList)
	for _, label := range unseen {
		dict[label] = next
		next++
	}
	return dict
}

func indexLabels(labels []string, dict map[string]int) ([]float64, error) {
	out := make([]float64, len(labels))
	for i, label := range labels {
		idx, ok := dict[label]
		if !ok {
			return nil, errors.NewNotFoundError("label", label)
		}
		out[i] = float64(idx)
	}
	return out, nil
}

// CVResult holds per-fold train and test scores from a cross-validation
// run.
type CVResult struct {
	TrainScores []float64
	TestScores  []float64
}

// MeanTestScore returns the mean of the per-fold test scores.
func (r *CVResult) MeanTestScore() float64 {
	return stat.Mean(r.TestScores, nil)
}

// StdTestScore returns the sample standard deviation of the per-fold test
// scores.
func (r *CVResult) StdTestScore() float64 {
	if len(r.TestScores) < 2 {
		return 0
	}
	return stat.StdDev(r.TestScores, nil)
}

// CrossValidate evaluates a registered learner over the given folds,
// training and scoring a fresh learner per fold. Folds run concurrently;
// the first error encountered is returned.
func CrossValidate(name string, fs *FeatureSet, folds []CVFold, metric string) (*CVResult, error) {
	result := &CVResult{
		TrainScores: make([]float64, len(folds)),
		TestScores:  make([]float64, len(folds)),
	}
	errs := make([]error, len(folds))

	parallel.Parallelize(len(folds), func(start, end int) {
		for k := start; k < end; k++ {
			errs[k] = runFold(name, fs, folds[k], metric,
				&result.TrainScores[k], &result.TestScores[k])
		}
	})

	for _, err := range errs {
		if err != nil {
			return nil, err
		}
	}
	return result, nil
}

func runFold(name string, fs *FeatureSet, fold CVFold, metric string, trainScore, testScore *float64) (err error) {
	defer errors.Recover(&err, "CrossValidate")

	est, err := New(name)
	if err != nil {
		return err
	}
	l := NewLearner(name, est, nil)

	*trainScore, *testScore, err = TrainAndScore(l, fs.Subset(fold.Train), fs.Subset(fold.Test), metric)
	return err
}
