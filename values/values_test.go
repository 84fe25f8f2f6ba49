package values_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/paramstring/values"
)

// writeFile creates a file with content on fs.
func writeFile(
	tb testing.TB,
	fs afero.Fs,
	name string,
	content string,
) string {
	tb.Helper()

	require.NoError(tb, afero.WriteFile(fs, name, []byte(content), 0o600))

	return name
}

func TestLoad_yaml_flattens_nested(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(t, fs, "/v.yaml", `
name: app
db:
  host: localhost
  port: 5432
tags:
  - a
  - b
empty: null
`)

	got, err := values.Load(fs, pa)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"name":    "app",
		"db.host": "localhost",
		"db.port": "5432",
		"tags.0":  "a",
		"tags.1":  "b",
		"empty":   "",
	}, got)
}

func TestLoad_json(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(
		t, fs, "/v.json",
		`{"version": 2, "ratio": 1.5, "flag": true, "nested": {"k": "v"}}`,
	)

	got, err := values.Load(fs, pa)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"version":  "2",
		"ratio":    "1.5",
		"flag":     "true",
		"nested.k": "v",
	}, got)
}

func TestLoad_dotenv(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(
		t, fs, "/prod.env",
		"# comment\nUSER=alice\nGREETING=\"hello world\"\n",
	)

	got, err := values.Load(fs, pa)
	require.NoError(t, err)

	assert.Equal(t, map[string]string{
		"USER":     "alice",
		"GREETING": "hello world",
	}, got)
}

func TestLoad_empty_yaml(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(t, fs, "/empty.yml", "")

	got, err := values.Load(fs, pa)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestLoad_unsupported_extension(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(t, fs, "/v.toml", "a = 1")

	_, err := values.Load(fs, pa)
	require.Error(t, err)
	assert.ErrorIs(t, err, values.ErrUnsupportedFormat)
}

func TestLoad_missing_file(t *testing.T) {
	t.Parallel()

	_, err := values.Load(afero.NewMemMapFs(), "/nope.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading values")
}

func TestLoad_bad_json(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	pa := writeFile(t, fs, "/v.json", "{not json")

	_, err := values.Load(fs, pa)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "decoding /v.json")
}

func TestLoadAll_later_files_win(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	first := writeFile(t, fs, "/a.yaml", "k: one\nonly_a: x\n")
	second := writeFile(t, fs, "/b.env", "k=two\n")

	got, err := values.LoadAll(fs, []string{first, second})
	require.NoError(t, err)

	assert.Equal(t, map[string]string{"k": "two", "only_a": "x"}, got)
}

func TestParseAssignments(t *testing.T) {
	t.Parallel()

	got, err := values.ParseAssignments(
		[]string{"A=1", "B=x=y", "C="},
	)
	require.NoError(t, err)
	assert.Equal(t, map[string]string{"A": "1", "B": "x=y", "C": ""}, got)

	_, err = values.ParseAssignments([]string{"NOEQUALS"})
	require.Error(t, err)
	assert.ErrorIs(t, err, values.ErrBadAssignment)
	assert.Contains(t, err.Error(), "NAME=VALUE")
}
