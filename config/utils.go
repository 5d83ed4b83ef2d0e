// Package config provides utility functions to parse and validate experiment
// configuration values: metric lists, cross-validation fold files and file
// paths referenced from a configuration directory.
package config

import (
	"encoding/csv"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gomlab/gomlab/metrics"
	"github.com/gomlab/gomlab/pkg/errors"
	"github.com/gomlab/gomlab/pkg/log"
)

// FixJSON normalizes incorrectly formatted quotes and capitalized booleans in
// a JSON-style configuration string. Either quoting style and either boolean
// capitalization are accepted in configuration files.
func FixJSON(jsonString string) string {
	jsonString = strings.ReplaceAll(jsonString, "True", "true")
	jsonString = strings.ReplaceAll(jsonString, "False", "false")
	jsonString = strings.ReplaceAll(jsonString, "'", `"`)
	return jsonString
}

// ParseAndValidateMetrics parses a configuration value containing a list of
// metric names and validates every entry against the scorer registry.
//
// It fails with a TypeError if the value does not parse to a list, and with a
// ValueError if the deprecated mean_squared_error name appears or if any name
// is not a registered metric. The validated list is returned unchanged, order
// preserved.
func ParseAndValidateMetrics(value, optionName string, logger *slog.Logger) ([]string, error) {
	if logger == nil {
		logger = slog.Default()
	}

	var parsed []string
	if err := yaml.Unmarshal([]byte(FixJSON(value)), &parsed); err != nil {
		return nil, errors.NewTypeError(
			fmt.Sprintf("parsing option %q", optionName),
			"list",
			describeYAMLValue(value),
		)
	}
	// A bare scalar also unmarshals into a one-element slice only when it is
	// a flow sequence; "foo" yields an error above, but an empty document
	// yields a nil slice which is not a list either.
	if parsed == nil {
		return nil, errors.NewTypeError(
			fmt.Sprintf("parsing option %q", optionName),
			"list",
			describeYAMLValue(value),
		)
	}

	for _, metric := range parsed {
		if metric == metrics.DeprecatedMSE {
			return nil, errors.NewValueError(
				optionName,
				fmt.Sprintf("the metric %q is no longer supported; please use the metric %q instead",
					metrics.DeprecatedMSE, metrics.ReplacementForMSE),
			)
		}
	}

	var invalid []string
	for _, metric := range parsed {
		if !metrics.HasMetric(metric) {
			invalid = append(invalid, metric)
		}
	}
	if len(invalid) > 0 {
		return nil, errors.NewValueError(
			optionName,
			fmt.Sprintf("invalid metric(s) [%s] specified", errors.FormatList(invalid)),
		)
	}

	logger.Debug("validated metric list",
		log.OptionNameKey, optionName,
		log.ComponentKey, "config",
		"metrics", parsed,
	)
	return parsed, nil
}

// describeYAMLValue reports the shape a config value actually parsed to, for
// error messages.
func describeYAMLValue(value string) string {
	var generic interface{}
	if err := yaml.Unmarshal([]byte(FixJSON(value)), &generic); err != nil {
		return "unparsable text"
	}
	switch generic.(type) {
	case nil:
		return "empty value"
	case string:
		return "string"
	case bool:
		return "bool"
	case int, int64, float64:
		return "number"
	case map[string]interface{}:
		return "mapping"
	case []interface{}:
		return "list"
	default:
		return fmt.Sprintf("%T", generic)
	}
}

// LoadCVFolds loads cross-validation fold assignments from a CSV file with
// two columns (example ID, fold ID) and a header row.
//
// When idsToFloats is set, example IDs are parsed as floating-point numbers
// and stored under their canonical formatting; a non-numeric ID fails with a
// ValueError.
func LoadCVFolds(foldsFile string, idsToFloats bool) (map[string]string, error) {
	f, err := os.Open(foldsFile)
	if err != nil {
		return nil, errors.Wrapf(err, "opening folds file %q", foldsFile)
	}
	defer f.Close()

	reader := csv.NewReader(f)
	rows, err := reader.ReadAll()
	if err != nil {
		return nil, errors.Wrapf(err, "reading folds file %q", foldsFile)
	}
	if len(rows) == 0 {
		return nil, errors.Wrap(errors.ErrEmptyData, "folds file has no header row")
	}

	res := make(map[string]string, len(rows)-1)
	for _, row := range rows[1:] { // discard the header
		if len(row) < 2 {
			return nil, errors.NewValueError("LoadCVFolds",
				fmt.Sprintf("expected two columns, got %d", len(row)))
		}
		id := row[0]
		if idsToFloats {
			v, parseErr := strconv.ParseFloat(id, 64)
			if parseErr != nil {
				return nil, errors.NewValueError("LoadCVFolds",
					fmt.Sprintf("you set ids_to_floats to true, but ID %q could not be converted to float", id))
			}
			id = strconv.FormatFloat(v, 'g', -1, 64)
		}
		res[id] = row[1]
	}

	return res, nil
}

// LocateFile resolves a possibly-relative file path against a configuration
// directory. An empty path is treated as "no file specified" and resolves to
// the empty string. A resolved path that does not exist fails with an error
// wrapping fs.ErrNotExist.
func LocateFile(filePath, configDir string) (string, error) {
	if filePath == "" {
		return "", nil
	}

	pathToCheck := filePath
	if !filepath.IsAbs(pathToCheck) {
		pathToCheck = filepath.Clean(filepath.Join(configDir, filePath))
	}

	if _, err := os.Stat(pathToCheck); err != nil {
		if os.IsNotExist(err) {
			return "", errors.Wrapf(fs.ErrNotExist, "File does not exist: %s", pathToCheck)
		}
		return "", errors.Wrapf(err, "checking %s", pathToCheck)
	}
	return pathToCheck, nil
}

// MungeFeaturesetName joins feature names with '+' in sorted order, producing
// the canonical name of a feature set for reporting.
func MungeFeaturesetName(featureset []string) string {
	sorted := make([]string, len(featureset))
	copy(sorted, featureset)
	sort.Strings(sorted)
	return strings.Join(sorted, "+")
}
