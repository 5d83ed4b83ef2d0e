// Package log defines standard attribute keys for experiment operations.
//
// Using these keys consistently keeps experiment logs filterable: every
// record about a learner run carries the same learner/operation/fold
// vocabulary regardless of which package emitted it.
package log

// Learner and operation context.
const (
	// LearnerNameKey identifies the learner type.
	// Examples: "LinearRegression", "RescaledLinearRegression", "NearestCentroid"
	LearnerNameKey = "learner.name"

	// OperationKey specifies the operation being performed.
	// Standard values: "train", "predict", "transform", "score"
	OperationKey = "ml.operation"

	// ComponentKey identifies which package is performing the operation.
	// Examples: "config", "learner", "metrics"
	ComponentKey = "ml.component"

	// OptionNameKey names the configuration option being parsed or validated.
	OptionNameKey = "config.option"
)

// Data shape and partitioning.
const (
	// SamplesKey is the number of examples (rows) in the dataset.
	SamplesKey = "data.samples"

	// FeaturesKey is the number of features (columns) in the dataset.
	FeaturesKey = "data.features"

	// FoldKey identifies the cross-validation fold being processed.
	FoldKey = "cv.fold"

	// KeepSizeKey is the size of the keep-set used by the filtered splitter.
	KeepSizeKey = "cv.keep_size"
)

// Scoring context.
const (
	// MetricKey names the metric used to score predictions.
	MetricKey = "score.metric"

	// TrainScoreKey records the score on the training partition.
	TrainScoreKey = "score.train"

	// TestScoreKey records the score on the test partition.
	TestScoreKey = "score.test"

	// DurationMsKey records the execution time of an operation in milliseconds.
	DurationMsKey = "perf.duration_ms"
)

// Standard operation values.
const (
	OperationTrain     = "train"
	OperationPredict   = "predict"
	OperationTransform = "transform"
	OperationScore     = "score"
)
