package neighbors

import (
	"testing"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/core/model"
)

func TestNearestCentroidSeparableClasses(t *testing.T) {
	// Two well separated clusters around (0,0) and (10,10).
	X := mat.NewDense(6, 2, []float64{
		0, 0,
		1, 0,
		0, 1,
		10, 10,
		11, 10,
		10, 11,
	})
	y := mat.NewDense(6, 1, []float64{0, 0, 0, 1, 1, 1})

	nc := NewNearestCentroid()
	if err := nc.Fit(X, y); err != nil {
		t.Fatal(err)
	}

	pred, err := nc.Predict(mat.NewDense(2, 2, []float64{
		0.5, 0.5,
		9, 12,
	}))
	if err != nil {
		t.Fatal(err)
	}
	if pred.At(0, 0) != 0 {
		t.Errorf("point near origin classified as %v, want 0", pred.At(0, 0))
	}
	if pred.At(1, 0) != 1 {
		t.Errorf("point near (10,10) classified as %v, want 1", pred.At(1, 0))
	}
}

func TestNearestCentroidClassesSorted(t *testing.T) {
	X := mat.NewDense(4, 1, []float64{5, 1, 3, 9})
	y := mat.NewDense(4, 1, []float64{2, 0, 1, 2})

	nc := NewNearestCentroid()
	if err := nc.Fit(X, y); err != nil {
		t.Fatal(err)
	}
	want := []float64{0, 1, 2}
	for i, c := range nc.Classes {
		if c != want[i] {
			t.Fatalf("Classes = %v, want %v", nc.Classes, want)
		}
	}
}

func TestNearestCentroidIsClassifier(t *testing.T) {
	if NewNearestCentroid().EstimatorType() != model.TypeClassifier {
		t.Error("NearestCentroid must report TypeClassifier")
	}
}
