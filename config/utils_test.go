package config

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gomlab/gomlab/pkg/errors"
)

func TestFixJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"single quotes", `['accuracy', 'f1']`, `["accuracy", "f1"]`},
		{"capitalized booleans", `[True, False]`, `[true, false]`},
		{"already normalized", `["pearson"]`, `["pearson"]`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FixJSON(tt.in); got != tt.want {
				t.Errorf("FixJSON(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestParseAndValidateMetrics(t *testing.T) {
	t.Run("valid list preserves order", func(t *testing.T) {
		got, err := ParseAndValidateMetrics(`['pearson', 'accuracy', 'unweighted_kappa']`, "objectives", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"pearson", "accuracy", "unweighted_kappa"}, got)
	})

	t.Run("double quoted list", func(t *testing.T) {
		got, err := ParseAndValidateMetrics(`["f1", "recall"]`, "metrics", nil)
		require.NoError(t, err)
		assert.Equal(t, []string{"f1", "recall"}, got)
	})

	t.Run("not a list", func(t *testing.T) {
		_, err := ParseAndValidateMetrics(`accuracy`, "objectives", nil)
		require.Error(t, err)
		var te *errors.TypeError
		assert.True(t, errors.As(err, &te), "expected TypeError, got %v", err)
	})

	t.Run("mapping is not a list", func(t *testing.T) {
		_, err := ParseAndValidateMetrics(`{'a': 1}`, "objectives", nil)
		require.Error(t, err)
		var te *errors.TypeError
		assert.True(t, errors.As(err, &te))
	})

	t.Run("deprecated metric rejected even among valid names", func(t *testing.T) {
		_, err := ParseAndValidateMetrics(`['accuracy', 'mean_squared_error']`, "objectives", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "neg_mean_squared_error")
	})

	t.Run("all invalid names listed", func(t *testing.T) {
		_, err := ParseAndValidateMetrics(`['bogus1', 'accuracy', 'bogus2']`, "objectives", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "bogus1")
		assert.Contains(t, err.Error(), "bogus2")
		assert.NotContains(t, err.Error(), "accuracy,")
	})
}

func writeFoldsFile(t *testing.T, contents string) string {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "folds.csv")
	require.NoError(t, os.WriteFile(path, []byte(contents), 0o644))
	return path
}

func TestLoadCVFolds(t *testing.T) {
	t.Run("basic mapping", func(t *testing.T) {
		path := writeFoldsFile(t, "id,fold\nEXAMPLE_0,1\nEXAMPLE_1,2\n")
		got, err := LoadCVFolds(path, false)
		require.NoError(t, err)
		want := map[string]string{"EXAMPLE_0": "1", "EXAMPLE_1": "2"}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("LoadCVFolds = %v, want %v", got, want)
		}
	})

	t.Run("ids to floats canonicalizes", func(t *testing.T) {
		path := writeFoldsFile(t, "id,fold\n1.0,a\n2.50,b\n")
		got, err := LoadCVFolds(path, true)
		require.NoError(t, err)
		assert.Equal(t, "a", got["1"])
		assert.Equal(t, "b", got["2.5"])
	})

	t.Run("non numeric id fails when coercing", func(t *testing.T) {
		path := writeFoldsFile(t, "id,fold\nEXAMPLE_0,1\n")
		_, err := LoadCVFolds(path, true)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "EXAMPLE_0")
	})

	t.Run("missing file is an IO error", func(t *testing.T) {
		_, err := LoadCVFolds(filepath.Join(t.TempDir(), "nope.csv"), false)
		require.Error(t, err)
	})
}

func TestLocateFile(t *testing.T) {
	dir := t.TempDir()
	existing := filepath.Join(dir, "train.jsonlines")
	require.NoError(t, os.WriteFile(existing, []byte("{}"), 0o644))

	t.Run("empty path means no file", func(t *testing.T) {
		got, err := LocateFile("", dir)
		require.NoError(t, err)
		assert.Equal(t, "", got)
	})

	t.Run("relative path resolves against config dir", func(t *testing.T) {
		got, err := LocateFile("train.jsonlines", dir)
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("absolute path kept as is", func(t *testing.T) {
		got, err := LocateFile(existing, "/elsewhere")
		require.NoError(t, err)
		assert.Equal(t, existing, got)
	})

	t.Run("missing file fails", func(t *testing.T) {
		_, err := LocateFile("missing.csv", dir)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "File does not exist")
	})
}

func TestMungeFeaturesetName(t *testing.T) {
	got := MungeFeaturesetName([]string{"ngrams", "pos", "length"})
	assert.Equal(t, "length+ngrams+pos", got)
}
