package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cognicore/hebnorm/pkg/hebnorm/analysis"
	"github.com/cognicore/hebnorm/pkg/hebnorm/internalerr"
)

func writeFile(t *testing.T, dir, name, body string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestParseKeepsDefaults(t *testing.T) {
	cfg, err := Parse([]byte("log:\n  level: debug\n"))
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.Log.Level)
	assert.Equal(t, "hebnorm", cfg.Log.Service)
	assert.Equal(t, analysis.DefaultFilters, cfg.Pipeline.Filters)
	assert.Equal(t, analysis.DefaultMaxTokenLength, cfg.Pipeline.MaxTokenLength)
	assert.Equal(t, "hebnorm.db", cfg.Store.Path)
}

func TestParseRejectsInvalid(t *testing.T) {
	cases := map[string]string{
		"negative length": "pipeline:\n  max_token_length: -1\n",
		"duplicate":       "pipeline:\n  filters: [niqqud, niqqud]\n",
		"empty name":      "pipeline:\n  filters: [niqqud, \"\"]\n",
		"stop no file":    "pipeline:\n  filters: [niqqud, stop]\n",
	}
	for name, body := range cases {
		t.Run(name, func(t *testing.T) {
			_, err := Parse([]byte(body))
			assert.ErrorIs(t, err, internalerr.ErrInvalidConfig)
		})
	}

	_, err := Parse([]byte("pipeline: [oops"))
	assert.Error(t, err)
}

func TestLoaderBuildsPipelineWithStopwords(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "stop.yaml", "terms:\n  - של\n  - The\n")
	path := writeFile(t, dir, "hebnorm.yaml", `
pipeline:
  filters: [decompose, niqqud, lowercase, stop, drop_empty]
  max_token_length: 64
  stopwords_file: stop.yaml
store:
  path: /tmp/x.db
`)

	loader := Loader{ConfigPath: path}
	comp, err := loader.Load()
	require.NoError(t, err)

	assert.Equal(t, "/tmp/x.db", comp.Config.Store.Path)
	assert.Contains(t, comp.Registry.Names(), analysis.FilterStop)

	terms, err := comp.Pipeline.Analyze("The ספר שֶׁל דוד")
	require.NoError(t, err)
	require.Len(t, terms, 2)
	assert.Equal(t, "ספר", terms[0].Text)
	assert.Equal(t, 1, terms[0].Position)
	assert.Equal(t, "דוד", terms[1].Text)
	assert.Equal(t, 3, terms[1].Position)
}

func TestLoaderDefaults(t *testing.T) {
	comp, err := (&Loader{}).Load()
	require.NoError(t, err)
	assert.Equal(t, analysis.DefaultFilters, comp.Pipeline.Filters())
}

func TestLoaderErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := (&Loader{ConfigPath: filepath.Join(dir, "missing.yaml")}).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)

	path := writeFile(t, dir, "bad-filter.yaml", "pipeline:\n  filters: [niqqud, soundex]\n")
	_, err = (&Loader{ConfigPath: path}).Load()
	assert.ErrorIs(t, err, internalerr.ErrNotFound)

	path = writeFile(t, dir, "no-stop.yaml", "pipeline:\n  filters: [stop]\n  stopwords_file: nope.yaml\n")
	_, err = (&Loader{ConfigPath: path}).Load()
	assert.ErrorIs(t, err, os.ErrNotExist)
}
