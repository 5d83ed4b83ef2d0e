package learner

import (
	"fmt"
	"strings"

	"gonum.org/v1/gonum/mat"

	"github.com/gomlab/gomlab/core/model"
)

// PipelineStep is one named stage of a feature pipeline.
type PipelineStep struct {
	Name        string
	Transformer model.Transformer
}

// Pipeline chains feature transformers in order. It is applied to the
// feature matrix before the estimator sees it, both at train and at predict
// time.
type Pipeline struct {
	Steps []PipelineStep
}

// NewPipeline creates a pipeline from the given steps.
func NewPipeline(steps ...PipelineStep) *Pipeline {
	return &Pipeline{Steps: steps}
}

// FitTransform fits each step on the output of the previous one and returns
// the fully transformed matrix.
func (p *Pipeline) FitTransform(X mat.Matrix) (mat.Matrix, error) {
	out := X
	for _, step := range p.Steps {
		transformed, err := step.Transformer.FitTransform(out)
		if err != nil {
			return nil, err
		}
		out = transformed
	}
	return out, nil
}

// Transform applies the already-fitted steps in order.
func (p *Pipeline) Transform(X mat.Matrix) (mat.Matrix, error) {
	out := X
	for _, step := range p.Steps {
		transformed, err := step.Transformer.Transform(out)
		if err != nil {
			return nil, err
		}
		out = transformed
	}
	return out, nil
}

// String returns a printable representation of the pipeline.
func (p *Pipeline) String() string {
	names := make([]string, len(p.Steps))
	for i, step := range p.Steps {
		names[i] = step.Name
	}
	return fmt.Sprintf("Pipeline(%s)", strings.Join(names, " -> "))
}
