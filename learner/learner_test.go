package learner

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/pkg/errors"
)

func regressionFeatureSet(t *testing.T) *FeatureSet {
	t.Helper()
	// y = 2x + 1 exactly.
	n := 6
	X := mat.NewDense(n, 1, nil)
	ids := make([]string, n)
	for i := 0; i < n; i++ {
		X.Set(i, 0, float64(i))
		ids[i] = string(rune('a' + i))
	}
	labels := []string{"1", "3", "5", "7", "9", "11"}
	fs, err := NewFeatureSet(ids, labels, X)
	require.NoError(t, err)
	return fs
}

func classificationFeatureSet(t *testing.T) *FeatureSet {
	t.Helper()
	// Two well-separated clusters.
	X := mat.NewDense(6, 2, []float64{
		0, 0,
		0, 1,
		1, 0,
		10, 10,
		10, 11,
		11, 10,
	})
	ids := []string{"a", "b", "c", "d", "e", "f"}
	labels := []string{"cat", "cat", "cat", "dog", "dog", "dog"}
	fs, err := NewFeatureSet(ids, labels, X)
	require.NoError(t, err)
	return fs
}

func TestLearnerTrainPredictRegression(t *testing.T) {
	fs := regressionFeatureSet(t)

	est, err := New("LinearRegression")
	require.NoError(t, err)
	l := NewLearner("LinearRegression", est, nil)
	require.False(t, l.IsClassifier())

	require.NoError(t, l.Train(fs))

	pred, err := l.Predict(fs)
	require.NoError(t, err)
	want, err := fs.NumericLabels()
	require.NoError(t, err)
	for i := range want {
		assert.InDelta(t, want[i], pred[i], 1e-6)
	}
}

func TestLearnerTrainPredictClassification(t *testing.T) {
	fs := classificationFeatureSet(t)

	est, err := New("NearestCentroid")
	require.NoError(t, err)
	l := NewLearner("NearestCentroid", est, nil)
	require.True(t, l.IsClassifier())

	require.NoError(t, l.Train(fs))
	assert.Equal(t, []string{"cat", "dog"}, l.LabelList)
	assert.Equal(t, map[string]int{"cat": 0, "dog": 1}, l.LabelDict)

	labels, err := l.PredictLabels(fs)
	require.NoError(t, err)
	assert.Equal(t, fs.Labels, labels)
}

func TestLearnerWithPipeline(t *testing.T) {
	// Third column never occurs and gets dropped by the selector.
	X := mat.NewDense(4, 3, []float64{
		1, 1, 0,
		2, 2, 0,
		3, 1, 0,
		4, 2, 0,
	})
	fs, err := NewFeatureSet(
		[]string{"a", "b", "c", "d"},
		[]string{"2", "4", "6", "8"},
		X,
	)
	require.NoError(t, err)

	est, err := New("LinearRegression")
	require.NoError(t, err)
	l := NewLearner("LinearRegression", est, NewPipeline(
		PipelineStep{Name: "densify", Transformer: NewDensifier()},
		PipelineStep{Name: "min_count", Transformer: NewSelectByMinCount(1)},
	))

	require.NoError(t, l.Train(fs))
	pred, err := l.Predict(fs)
	require.NoError(t, err)
	assert.InDelta(t, 2.0, pred[0], 1e-6)
	assert.InDelta(t, 8.0, pred[3], 1e-6)
}

func TestRegistry(t *testing.T) {
	names := RegisteredNames()
	assert.Contains(t, names, "LinearRegression")
	assert.Contains(t, names, "RescaledLinearRegression")
	assert.Contains(t, names, "NearestCentroid")

	_, err := New("NoSuchLearner")
	var notFound *errors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func TestLoadCustomLearnerValidation(t *testing.T) {
	err := LoadCustomLearner("", "MyLearner")
	var validationErr *errors.ValidationError
	require.True(t, errors.As(err, &validationErr))

	err = LoadCustomLearner("learner.go", "MyLearner")
	require.True(t, errors.As(err, &validationErr))
}

func TestTrainAndScoreRegression(t *testing.T) {
	fs := regressionFeatureSet(t)
	train := fs.Subset([]int{0, 1, 2, 3})
	test := fs.Subset([]int{4, 5})

	est, err := New("LinearRegression")
	require.NoError(t, err)
	l := NewLearner("LinearRegression", est, nil)

	trainScore, testScore, err := TrainAndScore(l, train, test, "pearson")
	require.NoError(t, err)
	assert.InDelta(t, 1.0, trainScore, 1e-6)
	assert.InDelta(t, 1.0, testScore, 1e-6)
}

func TestTrainAndScoreClassifierUnseenTestLabels(t *testing.T) {
	train := mustFeatureSet(t,
		[]string{"a", "b", "c", "d"},
		[]string{"cat", "cat", "dog", "dog"},
		mat.NewDense(4, 2, []float64{
			0, 0,
			0, 1,
			10, 10,
			10, 11,
		}),
	)
	// "fish" never appears at training time.
	test := mustFeatureSet(t,
		[]string{"e", "f"},
		[]string{"cat", "fish"},
		mat.NewDense(2, 2, []float64{
			0, 0,
			10, 10,
		}),
	)

	est, err := New("NearestCentroid")
	require.NoError(t, err)
	l := NewLearner("NearestCentroid", est, nil)

	_, testScore, err := TrainAndScore(l, train, test, "accuracy")
	require.NoError(t, err)

	// One of the two test examples can be right; "fish" maps to an index
	// the classifier can never predict.
	assert.InDelta(t, 0.5, testScore, 1e-9)

	// Scoring must not leak the unseen label back into the learner.
	assert.Len(t, l.LabelList, 2)
	_, leaked := l.LabelDict["fish"]
	assert.False(t, leaked)
}

func TestCrossValidate(t *testing.T) {
	fs := regressionFeatureSet(t)
	folds := []CVFold{
		{Train: []int{0, 1, 2, 3}, Test: []int{4, 5}},
		{Train: []int{2, 3, 4, 5}, Test: []int{0, 1}},
	}

	result, err := CrossValidate("LinearRegression", fs, folds, "pearson")
	require.NoError(t, err)
	require.Len(t, result.TestScores, 2)
	assert.InDelta(t, 1.0, result.MeanTestScore(), 1e-6)

	_, err = CrossValidate("NoSuchLearner", fs, folds, "pearson")
	var notFound *errors.NotFoundError
	require.True(t, errors.As(err, &notFound))
}

func mustFeatureSet(t *testing.T, ids, labels []string, X mat.Matrix) *FeatureSet {
	t.Helper()
	fs, err := NewFeatureSet(ids, labels, X)
	require.NoError(t, err)
	return fs
}
