package learner

import (
	"testing"

	"github.com/gomlab/gomlab/metrics"
	"github.com/gomlab/gomlab/pkg/errors"
)

func TestContiguousIntsOrFloats(t *testing.T) {
	tests := []struct {
		name   string
		labels []string
		want   bool
	}{
		{"contiguous ints", []string{"1", "2", "3"}, true},
		{"contiguous integer floats", []string{"4.0", "5.0", "6.0"}, true},
		{"single label", []string{"7"}, true},
		{"gap", []string{"1", "3", "4"}, false},
		{"non-integer floats", []string{"1.1", "1.2", "1.3"}, false},
		{"descending", []string{"3", "2", "1"}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ContiguousIntsOrFloats(tt.labels)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ContiguousIntsOrFloats(%v) = %v, want %v", tt.labels, got, tt.want)
			}
		})
	}

	t.Run("empty input", func(t *testing.T) {
		_, err := ContiguousIntsOrFloats(nil)
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Fatalf("expected ValueError, got %v", err)
		}
	})

	t.Run("non-numeric label", func(t *testing.T) {
		_, err := ContiguousIntsOrFloats([]string{"1", "dog", "3"})
		var typeErr *errors.TypeError
		if !errors.As(err, &typeErr) {
			t.Fatalf("expected TypeError, got %v", err)
		}
	})
}

func TestAcceptableClassificationMetrics(t *testing.T) {
	base := metrics.ClassificationOnlyMetrics.Union(metrics.UnweightedKappaMetrics)

	t.Run("string labels get only the base set", func(t *testing.T) {
		got, err := AcceptableClassificationMetrics([]string{"cat", "dog"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSameSet(t, got, base)
	})

	t.Run("non-contiguous numeric labels add correlation", func(t *testing.T) {
		got, err := AcceptableClassificationMetrics([]string{"1", "3", "7"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSameSet(t, got, base.Union(metrics.CorrelationMetrics))
	})

	t.Run("contiguous numeric labels add weighted kappa too", func(t *testing.T) {
		got, err := AcceptableClassificationMetrics([]string{"1", "2", "3"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		assertSameSet(t, got, base.Union(metrics.CorrelationMetrics, metrics.WeightedKappaMetrics))
	})

	t.Run("empty label array fails", func(t *testing.T) {
		_, err := AcceptableClassificationMetrics(nil)
		var valueErr *errors.ValueError
		if !errors.As(err, &valueErr) {
			t.Fatalf("expected ValueError, got %v", err)
		}
	})
}

func TestAcceptableRegressionMetrics(t *testing.T) {
	got := AcceptableRegressionMetrics()
	want := metrics.RegressionOnlyMetrics.Union(
		metrics.UnweightedKappaMetrics,
		metrics.WeightedKappaMetrics,
		metrics.CorrelationMetrics,
	)
	assertSameSet(t, got, want)

	if got.Has("accuracy") {
		t.Error("accuracy must not be acceptable for regression")
	}
}

func assertSameSet(t *testing.T, got, want metrics.Set) {
	t.Helper()
	gotNames := got.Sorted()
	wantNames := want.Sorted()
	if len(gotNames) != len(wantNames) {
		t.Fatalf("set size mismatch: got %v, want %v", gotNames, wantNames)
	}
	for i := range gotNames {
		if gotNames[i] != wantNames[i] {
			t.Fatalf("set mismatch: got %v, want %v", gotNames, wantNames)
		}
	}
}
