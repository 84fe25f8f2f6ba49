package values

import (
	"bytes"
	"errors"
	"fmt"
	"maps"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/goccy/go-yaml"
	"github.com/joho/godotenv"
	"github.com/spf13/afero"
)

var (
	// ErrUnsupportedFormat is returned for value files whose
	// extension is not .yaml, .yml, .json or .env.
	ErrUnsupportedFormat = errors.New("unsupported value file format")

	// ErrBadAssignment is returned for an assignment without
	// "=".
	ErrBadAssignment = errors.New("assignment must be NAME=VALUE")
)

// Load reads one value file. The decoder is picked from the
// file extension.
func Load(fs afero.Fs, path string) (map[string]string, error) {
	const errCtx = "loading values"

	content, err := afero.ReadFile(fs, path)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	var raw map[string]interface{}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(content, &raw)
	case ".json":
		err = json.Unmarshal(content, &raw)
	case ".env":
		var env map[string]string

		env, err = godotenv.Parse(bytes.NewReader(content))
		if err == nil {
			return env, nil
		}
	default:
		return nil, fmt.Errorf(
			"%s: %s: %w", errCtx, path, ErrUnsupportedFormat,
		)
	}

	if err != nil {
		return nil, fmt.Errorf(
			"%s: decoding %s: %w", errCtx, path, err,
		)
	}

	out := make(map[string]string)

	for key, val := range raw {
		flatten(key, val, out)
	}

	return out, nil
}

// LoadAll reads the files in order and merges them. Keys from
// later files win.
func LoadAll(
	fs afero.Fs,
	paths []string,
) (map[string]string, error) {
	const errCtx = "loading value files"

	merged := make(map[string]string)

	for _, pa := range paths {
		vals, err := Load(fs, pa)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", errCtx, err)
		}

		maps.Copy(merged, vals)
	}

	return merged, nil
}

// ParseAssignments parses NAME=VALUE pairs. The first "="
// separates name from value.
func ParseAssignments(pairs []string) (map[string]string, error) {
	const errCtx = "parsing assignments"

	out := make(map[string]string, len(pairs))

	for _, pair := range pairs {
		name, value, ok := strings.Cut(pair, "=")
		if !ok {
			return nil, fmt.Errorf(
				"%s: %w, got %s", errCtx, ErrBadAssignment, pair,
			)
		}

		out[name] = value
	}

	return out, nil
}

// flatten writes every scalar under node into out, keyed by its
// dotted path.
func flatten(
	prefix string,
	node interface{},
	out map[string]string,
) {
	switch typedVal := node.(type) {
	case map[string]interface{}:
		for key, val := range typedVal {
			flatten(join(prefix, key), val, out)
		}
	case map[interface{}]interface{}:
		for key, val := range typedVal {
			flatten(join(prefix, fmt.Sprint(key)), val, out)
		}
	case []interface{}:
		for idx, val := range typedVal {
			flatten(join(prefix, strconv.Itoa(idx)), val, out)
		}
	case nil:
		out[prefix] = ""
	case string:
		out[prefix] = typedVal
	case float64:
		out[prefix] = strconv.FormatFloat(typedVal, 'f', -1, 64)
	default:
		out[prefix] = fmt.Sprint(typedVal)
	}
}

func join(prefix, key string) string {
	if prefix == "" {
		return key
	}

	return prefix + "." + key
}
