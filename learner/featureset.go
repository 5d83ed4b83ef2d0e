// Package learner provides the learner-pipeline utilities of the experiment
// toolkit: feature sets, estimator adapters (rescaling, densifying, feature
// selection), filtered cross-validation splitting, the learner registry and
// the train-and-score helper used for parallel fan-out.
package learner

import (
	"fmt"
	"sort"
	"strconv"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/pkg/errors"
)

// FeatureSet bundles example IDs, raw labels and a feature matrix. Labels
// travel as strings; classifiers map them to indices through the learner's
// label dictionary, regressors parse them as numbers.
type FeatureSet struct {
	IDs      []string
	Labels   []string
	Features mat.Matrix
}

// NewFeatureSet builds a FeatureSet after validating that IDs, labels and
// feature rows line up.
func NewFeatureSet(ids, labels []string, features mat.Matrix) (*FeatureSet, error) {
	r, _ := features.Dims()
	if len(ids) != r {
		return nil, errors.NewDimensionError("NewFeatureSet", r, len(ids), 0)
	}
	if len(labels) != r {
		return nil, errors.NewDimensionError("NewFeatureSet", r, len(labels), 0)
	}
	return &FeatureSet{IDs: ids, Labels: labels, Features: features}, nil
}

// NumSamples returns the number of examples.
func (fs *FeatureSet) NumSamples() int {
	r, _ := fs.Features.Dims()
	return r
}

// NumericLabels parses the labels as float64 values. It fails with a
// TypeError on the first non-numeric label.
func (fs *FeatureSet) NumericLabels() ([]float64, error) {
	out := make([]float64, len(fs.Labels))
	for i, label := range fs.Labels {
		v, err := strconv.ParseFloat(label, 64)
		if err != nil {
			return nil, errors.NewTypeError("FeatureSet.NumericLabels", "numeric label", fmt.Sprintf("%q", label))
		}
		out[i] = v
	}
	return out, nil
}

// Subset returns a new FeatureSet containing only the rows at the given
// indices, in index order. The feature rows are copied.
func (fs *FeatureSet) Subset(indices []int) *FeatureSet {
	_, c := fs.Features.Dims()
	ids := make([]string, len(indices))
	labels := make([]string, len(indices))
	features := mat.NewDense(len(indices), c, nil)
	for row, idx := range indices {
		ids[row] = fs.IDs[idx]
		labels[row] = fs.Labels[idx]
		for j := 0; j < c; j++ {
			features.Set(row, j, fs.Features.At(idx, j))
		}
	}
	return &FeatureSet{IDs: ids, Labels: labels, Features: features}
}

// UniqueLabels returns the distinct labels in sorted order: numerically when
// every label parses as a number, lexicographically otherwise.
func UniqueLabels(labels []string) []string {
	seen := make(map[string]bool, len(labels))
	unique := make([]string, 0, len(labels))
	for _, label := range labels {
		if !seen[label] {
			seen[label] = true
			unique = append(unique, label)
		}
	}
	SortLabels(unique)
	return unique
}

// SortLabels sorts labels in place, numerically when possible so that label
// indices line up with label order for ordinal metrics.
func SortLabels(labels []string) {
	numeric := make([]float64, len(labels))
	allNumeric := true
	for i, label := range labels {
		v, err := strconv.ParseFloat(label, 64)
		if err != nil {
			allNumeric = false
			break
		}
		numeric[i] = v
	}
	if allNumeric {
		sort.Sort(&labelsByValue{labels: labels, values: numeric})
		return
	}
	sort.Strings(labels)
}

type labelsByValue struct {
	labels []string
	values []float64
}

func (s *labelsByValue) Len() int           { return len(s.labels) }
func (s *labelsByValue) Less(i, j int) bool { return s.values[i] < s.values[j] }
func (s *labelsByValue) Swap(i, j int) {
	s.labels[i], s.labels[j] = s.labels[j], s.labels[i]
	s.values[i], s.values[j] = s.values[j], s.values[i]
}
