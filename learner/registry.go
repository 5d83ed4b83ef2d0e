package learner

import (
	"fmt"
	"plugin"
	"sort"
	"strings"
	"sync"

	"github.com/gomlab/gomlab/core/model"
	"github.com/gomlab/gomlab/linear"
	"github.com/gomlab/gomlab/neighbors"
	"github.com/gomlab/gomlab/pkg/errors"
)

// Factory constructs a fresh, unfitted estimator.
type Factory func() (model.Estimator, error)

var (
	registryMu sync.RWMutex
	registry   = map[string]Factory{}
)

// Register makes an estimator constructable by name through New. Later
// registrations under the same name replace earlier ones, so custom learners
// can shadow built-ins.
func Register(name string, factory Factory) {
	registryMu.Lock()
	defer registryMu.Unlock()
	registry[name] = factory
}

// New constructs a fresh estimator by registry name.
func New(name string) (model.Estimator, error) {
	registryMu.RLock()
	factory, ok := registry[name]
	registryMu.RUnlock()
	if !ok {
		return nil, errors.NewNotFoundError("learner", name)
	}
	return factory()
}

// RegisteredNames returns the sorted names of all registered estimators.
func RegisteredNames() []string {
	registryMu.RLock()
	defer registryMu.RUnlock()
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// CustomLearnerSymbol is the symbol a custom learner plugin must export: a
// function that registers its estimators via Register.
const CustomLearnerSymbol = "RegisterLearners"

// LoadCustomLearner loads a compiled learner plugin and registers the
// estimators it provides, then confirms the requested learner is available.
// The plugin must be a .so file exporting `func RegisterLearners()`.
func LoadCustomLearner(path, name string) error {
	if path == "" {
		return errors.NewValidationError("custom_learner_path",
			fmt.Sprintf("custom learner path was not set and learner %q was not found", name), path)
	}
	if !strings.HasSuffix(path, ".so") {
		return errors.NewValidationError("custom_learner_path",
			"custom learner path must end in .so", path)
	}

	p, err := plugin.Open(path)
	if err != nil {
		return errors.Wrapf(err, "gomlab: failed to open custom learner plugin %s", path)
	}

	sym, err := p.Lookup(CustomLearnerSymbol)
	if err != nil {
		return errors.Wrapf(err, "gomlab: plugin %s does not export %s", path, CustomLearnerSymbol)
	}

	register, ok := sym.(func())
	if !ok {
		return errors.NewTypeError("LoadCustomLearner", "func()", fmt.Sprintf("%T", sym))
	}
	register()

	registryMu.RLock()
	_, found := registry[name]
	registryMu.RUnlock()
	if !found {
		return errors.NewNotFoundError("learner", name)
	}
	return nil
}

func init() {
	Register("LinearRegression", func() (model.Estimator, error) {
		return linear.NewLinearRegression(), nil
	})
	Register("RescaledLinearRegression", func() (model.Estimator, error) {
		return NewRescaledDefault(linear.NewLinearRegression())
	})
	Register("NearestCentroid", func() (model.Estimator, error) {
		return neighbors.NewNearestCentroid(), nil
	})
}
