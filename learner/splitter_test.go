package learner

import (
	"reflect"
	"testing"

	"github.com/gomlab/gomlab/pkg/errors"
)

func TestLeaveOneGroupOut(t *testing.T) {
	groups := []string{"g2", "g1", "g2", "g1"}
	folds := LeaveOneGroupOut{}.Split(groups)

	if len(folds) != 2 {
		t.Fatalf("expected 2 folds, got %d", len(folds))
	}

	// Folds come out in sorted group order.
	if !reflect.DeepEqual(folds[0].Test, []int{1, 3}) {
		t.Errorf("g1 test indices = %v, want [1 3]", folds[0].Test)
	}
	if !reflect.DeepEqual(folds[0].Train, []int{0, 2}) {
		t.Errorf("g1 train indices = %v, want [0 2]", folds[0].Train)
	}
	if !reflect.DeepEqual(folds[1].Test, []int{0, 2}) {
		t.Errorf("g2 test indices = %v, want [0 2]", folds[1].Test)
	}
}

func TestFilteredLeaveOneGroupOut(t *testing.T) {
	ids := []string{"A", "B", "C", "D"}
	groups := []string{"g1", "g1", "g2", "g2"}
	keep := map[string]struct{}{"A": {}, "C": {}}

	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(nil)

	splitter := NewFilteredLeaveOneGroupOut(keep, ids)
	folds := splitter.Split(groups)

	if len(folds) != 2 {
		t.Fatalf("expected 2 folds, got %d", len(folds))
	}
	if !reflect.DeepEqual(folds[0].Train, []int{2}) || !reflect.DeepEqual(folds[0].Test, []int{0}) {
		t.Errorf("fold g1 = %+v, want train [2] test [0]", folds[0])
	}
	if !reflect.DeepEqual(folds[1].Train, []int{0}) || !reflect.DeepEqual(folds[1].Test, []int{2}) {
		t.Errorf("fold g2 = %+v, want train [0] test [2]", folds[1])
	}

	if len(warnings) != 1 {
		t.Fatalf("expected exactly one warning, got %d", len(warnings))
	}
	var filterWarning *errors.FoldFilterWarning
	if !errors.As(warnings[0], &filterWarning) {
		t.Fatalf("expected FoldFilterWarning, got %T", warnings[0])
	}
	if filterWarning.TrainDropped != 2 || filterWarning.TestDropped != 2 {
		t.Errorf("dropped counts = %d/%d, want 2/2", filterWarning.TrainDropped, filterWarning.TestDropped)
	}

	// Splitting again must not warn a second time.
	splitter.Split(groups)
	if len(warnings) != 1 {
		t.Errorf("warning fired again on second split: %d warnings", len(warnings))
	}
}

func TestFilteredLeaveOneGroupOutNoFiltering(t *testing.T) {
	ids := []string{"A", "B"}
	keep := map[string]struct{}{"A": {}, "B": {}}

	var warnings []error
	errors.SetWarningHandler(func(w error) { warnings = append(warnings, w) })
	defer errors.SetWarningHandler(nil)

	splitter := NewFilteredLeaveOneGroupOut(keep, ids)
	splitter.Split([]string{"g1", "g2"})

	if len(warnings) != 0 {
		t.Errorf("no warning expected when nothing is dropped, got %d", len(warnings))
	}
}

func TestKeepSetFromFolds(t *testing.T) {
	keep := KeepSetFromFolds(map[string]string{"EXAMPLE_1": "0", "EXAMPLE_2": "1"})
	if len(keep) != 2 {
		t.Fatalf("expected 2 entries, got %d", len(keep))
	}
	if _, ok := keep["EXAMPLE_1"]; !ok {
		t.Error("missing EXAMPLE_1")
	}
}
