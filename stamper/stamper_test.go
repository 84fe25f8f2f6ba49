package stamper_test

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/byte4ever/paramstring/paramstring"
	"github.com/byte4ever/paramstring/stamper"
)

// writeTemp creates a file with content on fs and returns
// its path.
func writeTemp(
	tb testing.TB,
	fs afero.Fs,
	name string,
	content string,
) string {
	tb.Helper()

	pa := "/stamps/" + name
	require.NoError(
		tb,
		afero.WriteFile(fs, pa, []byte(content), 0o600),
	)

	return pa
}

var braces = paramstring.WithDelimiters(paramstring.Delimiters{
	Open: "{", Close: "}", Escape: "!",
})

func TestStamp_substitutes_variables(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf := writeTemp(
		t, fs, "status.txt",
		"BUILD_USER alice\nGIT_SHA deadbeef\n",
	)

	got, err := stamper.Stamp(
		fs,
		[]string{sf},
		"deployed by {BUILD_USER} at {GIT_SHA}",
		braces,
	)

	require.NoError(t, err)
	assert.Equal(
		t,
		"deployed by alice at deadbeef",
		got,
	)
}

func TestStamp_missing_variable_renders_empty(t *testing.T) {
	t.Parallel()

	got, err := stamper.Stamp(
		afero.NewMemMapFs(),
		nil,
		"no {SUCH_VAR} here",
		braces,
	)

	require.NoError(t, err)
	assert.Equal(t, "no  here", got)
}

func TestStamp_escaped_placeholder_kept(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf := writeTemp(t, fs, "status.txt", "SHA abc\n")

	got, err := stamper.Stamp(
		fs,
		[]string{sf},
		"!{SHA} is {SHA}",
		braces,
	)

	require.NoError(t, err)
	assert.Equal(t, "{SHA} is abc", got)
}

func TestStamp_custom_delimiters(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf := writeTemp(t, fs, "status.txt", "VER 1.2\n")

	got, err := stamper.Stamp(
		fs,
		[]string{sf},
		"{keep} ${VER}",
		paramstring.WithOpen("${"),
		paramstring.WithClose("}"),
		paramstring.WithEscape("\\"),
	)

	require.NoError(t, err)
	assert.Equal(t, "{keep} 1.2", got)
}

func TestStamp_empty_format(t *testing.T) {
	t.Parallel()

	got, err := stamper.Stamp(afero.NewMemMapFs(), nil, "", braces)

	require.NoError(t, err)
	assert.Equal(t, "", got)
}

func TestStamp_later_file_overrides_earlier(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf1 := writeTemp(
		t, fs, "s1.txt", "VER 1.0\n",
	)
	sf2 := writeTemp(
		t, fs, "s2.txt", "VER 2.0\n",
	)

	got, err := stamper.Stamp(
		fs,
		[]string{sf1, sf2},
		"version={VER}",
		braces,
	)

	require.NoError(t, err)
	assert.Equal(t, "version=2.0", got)
}

func TestStamp_missing_stamp_file(t *testing.T) {
	t.Parallel()

	_, err := stamper.Stamp(
		afero.NewMemMapFs(),
		[]string{"/nonexistent/stamp.txt"},
		"hello",
		braces,
	)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading stamps")
}

func TestStamp_empty_delimiter(t *testing.T) {
	t.Parallel()

	_, err := stamper.Stamp(
		afero.NewMemMapFs(),
		nil,
		"hello",
		paramstring.WithEscape(""),
	)

	require.Error(t, err)
	assert.ErrorIs(t, err, paramstring.ErrEmptyDelimiter)
}

func TestBind_reports_missing(t *testing.T) {
	t.Parallel()

	ps, err := paramstring.New("{a}{b}{c}", braces)
	require.NoError(t, err)

	ps, missing := stamper.Bind(
		ps,
		map[string]string{"b": "B", "unused": "x"},
	)

	assert.Equal(t, []string{"a", "c"}, missing)
	assert.Equal(t, "B", ps.Render())
}

func TestLoadStamps_returns_map(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf := writeTemp(
		t, fs, "status.txt",
		"BUILD_USER alice\nMSG hello world from CI\n",
	)

	stamps, err := stamper.LoadStamps(fs, []string{sf})

	require.NoError(t, err)
	assert.Equal(t, "alice", stamps["BUILD_USER"])
	assert.Equal(t, "hello world from CI", stamps["MSG"])
}

func TestLoadStamps_nil_files(t *testing.T) {
	t.Parallel()

	stamps, err := stamper.LoadStamps(afero.NewMemMapFs(), nil)

	require.NoError(t, err)
	assert.Empty(t, stamps)
}

func TestLoadStamps_skips_malformed_lines(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()

	sf := writeTemp(
		t, fs, "status.txt",
		"GOOD value\nBADLINE\n\nALSO_GOOD val2\n",
	)

	stamps, err := stamper.LoadStamps(fs, []string{sf})

	require.NoError(t, err)
	assert.Len(t, stamps, 2)
	assert.Equal(t, "value", stamps["GOOD"])
	assert.Equal(t, "val2", stamps["ALSO_GOOD"])
}

func FuzzStamp(f *testing.F) {
	f.Add("Hello {name}!", "name", "World")
	f.Add("{a}{b}", "a", "x")
	f.Add("no tags here", "key", "val")
	f.Add("{", "k", "v")
	f.Add("}", "k", "v")
	f.Add("!!{key}", "key", "")
	f.Add("", "key", "val")
	f.Add("{a} and {b}", "a", "{nested}")

	f.Fuzz(func(
		t *testing.T,
		format string,
		key string,
		val string,
	) {
		if key == "" {
			return
		}

		fs := afero.NewMemMapFs()
		sf := "/stamp.txt"

		err := afero.WriteFile(
			fs,
			sf,
			[]byte(key+" "+val+"\n"),
			0o600,
		)
		if err != nil {
			return
		}

		// We only verify it does not panic.
		_, _ = stamper.Stamp( //nolint:errcheck // fuzz: error irrelevant
			fs,
			[]string{sf},
			format,
			braces,
		)
	})
}
