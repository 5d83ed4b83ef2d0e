// Package report renders experiment results, currently learning-curve
// plots of train and test scores against training set size.
package report

import (
	"image/color"

	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/gomlab/gomlab/pkg/errors"
)

// LearningCurve holds the averaged scores of a learner trained on
// increasing fractions of the data.
type LearningCurve struct {
	// TrainSizes is the number of training examples at each point.
	TrainSizes []float64

	// TrainScores and TestScores are the mean scores at each point.
	TrainScores []float64
	TestScores  []float64

	// Metric names the score being plotted, used as the Y axis label.
	Metric string
}

// WriteLearningCurvePlot renders the curve to an image file. The format is
// chosen from the path's extension (.png, .svg, .pdf, ...).
func WriteLearningCurvePlot(curve *LearningCurve, title, path string) error {
	n := len(curve.TrainSizes)
	if n == 0 {
		return errors.NewValueError("WriteLearningCurvePlot", "learning curve has no points")
	}
	if len(curve.TrainScores) != n {
		return errors.NewDimensionError("WriteLearningCurvePlot", n, len(curve.TrainScores), 0)
	}
	if len(curve.TestScores) != n {
		return errors.NewDimensionError("WriteLearningCurvePlot", n, len(curve.TestScores), 0)
	}

	p := plot.New()
	p.Title.Text = title
	p.X.Label.Text = "training examples"
	p.Y.Label.Text = curve.Metric
	p.Legend.Top = true

	trainLine, err := plotter.NewLine(curvePoints(curve.TrainSizes, curve.TrainScores))
	if err != nil {
		return errors.Wrap(err, "gomlab: failed to build train score line")
	}
	trainLine.Color = color.RGBA{R: 214, G: 39, B: 40, A: 255}

	testLine, err := plotter.NewLine(curvePoints(curve.TrainSizes, curve.TestScores))
	if err != nil {
		return errors.Wrap(err, "gomlab: failed to build test score line")
	}
	testLine.Color = color.RGBA{R: 31, G: 119, B: 180, A: 255}

	p.Add(trainLine, testLine)
	p.Legend.Add("train", trainLine)
	p.Legend.Add("test", testLine)

	if err := p.Save(6*vg.Inch, 4*vg.Inch, path); err != nil {
		return errors.Wrapf(err, "gomlab: failed to save learning curve to %s", path)
	}
	return nil
}

func curvePoints(xs, ys []float64) plotter.XYs {
	pts := make(plotter.XYs, len(xs))
	for i := range xs {
		pts[i].X = xs[i]
		pts[i].Y = ys[i]
	}
	return pts
}
