// Package gomlab provides the building blocks of a machine-learning
// experiment toolkit for Go: metric validation, cross-validation fold
// handling, estimator adapters and train-and-score helpers.
//
// GomLab offers a scikit-learn-like estimator API so that experiment
// configuration (which metrics, which folds, which learners) stays separate
// from the models themselves.
//
// # Packages
//
//   - config: experiment configuration helpers (metric list parsing, fold
//     file loading, path resolution)
//   - metrics: the scoring function registry and metric families
//   - learner: feature sets, estimator adapters (rescaling, densifying,
//     feature selection), filtered cross-validation and train-and-score
//   - linear, neighbors: built-in estimators
//   - report: learning-curve plotting
//
// # Quick Start
//
// Train a rescaled linear regression and score it on held-out data:
//
//	package main
//
//	import (
//	    "fmt"
//	    "log"
//
//	    "github.com/gomlab/gomlab/learner"
//	)
//
//	func main() {
//	    est, err := learner.New("RescaledLinearRegression")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    l := learner.NewLearner("RescaledLinearRegression", est, nil)
//
//	    trainScore, testScore, err := learner.TrainAndScore(l, train, test, "pearson")
//	    if err != nil {
//	        log.Fatal(err)
//	    }
//	    fmt.Printf("train=%.3f test=%.3f\n", trainScore, testScore)
//	}
//
// Metric names are validated up front, the way experiment config files are
// checked before any training starts:
//
//	names, err := config.ParseAndValidateMetrics(`["pearson", "r2"]`, "objectives", logger)
package gomlab
