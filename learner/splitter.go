package learner

import (
	"sort"
	"sync"

	"github.com/gomlab/gomlab/pkg/errors"
)

// CVFold holds the train and test indices of one cross-validation split.
type CVFold struct {
	Train []int
	Test  []int
}

// LeaveOneGroupOut generates one fold per distinct group: the group's
// examples form the test set and everything else forms the train set. Folds
// are emitted in sorted group order for determinism.
type LeaveOneGroupOut struct{}

// Split generates the folds for the given per-example group labels.
func (LeaveOneGroupOut) Split(groups []string) []CVFold {
	byGroup := make(map[string][]int)
	for i, g := range groups {
		byGroup[g] = append(byGroup[g], i)
	}

	names := make([]string, 0, len(byGroup))
	for g := range byGroup {
		names = append(names, g)
	}
	sort.Strings(names)

	folds := make([]CVFold, 0, len(names))
	for _, g := range names {
		test := byGroup[g]
		train := make([]int, 0, len(groups)-len(test))
		for i, other := range groups {
			if other != g {
				train = append(train, i)
			}
		}
		folds = append(folds, CVFold{Train: train, Test: test})
	}
	return folds
}

// FilteredLeaveOneGroupOut is a leave-one-group-out splitter that only
// outputs indices of examples whose IDs are in a prespecified keep-set.
// If filtering actually removes indices, a FoldFilterWarning is raised at
// most once per splitter instance.
type FilteredLeaveOneGroupOut struct {
	logo       LeaveOneGroupOut
	keep       map[string]struct{}
	exampleIDs []string
	warnOnce   sync.Once
}

// NewFilteredLeaveOneGroupOut creates a filtered splitter. keep is the set
// of example IDs to retain; exampleIDs maps row index to example ID.
func NewFilteredLeaveOneGroupOut(keep map[string]struct{}, exampleIDs []string) *FilteredLeaveOneGroupOut {
	return &FilteredLeaveOneGroupOut{keep: keep, exampleIDs: exampleIDs}
}

// KeepSetFromFolds builds the keep-set from the keys of a fold-assignment
// mapping, as loaded by config.LoadCVFolds.
func KeepSetFromFolds(folds map[string]string) map[string]struct{} {
	keep := make(map[string]struct{}, len(folds))
	for id := range folds {
		keep[id] = struct{}{}
	}
	return keep
}

// Split generates the leave-one-group-out folds and post-filters each index
// list to retain only examples in the keep-set.
func (f *FilteredLeaveOneGroupOut) Split(groups []string) []CVFold {
	raw := f.logo.Split(groups)

	out := make([]CVFold, 0, len(raw))
	totalTrainDropped := 0
	totalTestDropped := 0
	for _, fold := range raw {
		train := f.filter(fold.Train)
		test := f.filter(fold.Test)
		totalTrainDropped += len(fold.Train) - len(train)
		totalTestDropped += len(fold.Test) - len(test)
		out = append(out, CVFold{Train: train, Test: test})
	}

	if totalTrainDropped > 0 || totalTestDropped > 0 {
		f.warnOnce.Do(func() {
			errors.Warn(errors.NewFoldFilterWarning(totalTrainDropped, totalTestDropped))
		})
	}

	return out
}

func (f *FilteredLeaveOneGroupOut) filter(indices []int) []int {
	kept := make([]int, 0, len(indices))
	for _, i := range indices {
		if _, ok := f.keep[f.exampleIDs[i]]; ok {
			kept = append(kept, i)
		}
	}
	return kept
}
