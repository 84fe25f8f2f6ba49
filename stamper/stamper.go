package stamper

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/afero"

	"github.com/byte4ever/paramstring/paramstring"
)

// LoadStamps reads workspace status files and merges them
// into a single map. Each line is "KEY VALUE" with the
// first space as delimiter. Lines without a space are
// silently skipped.
func LoadStamps(
	fs afero.Fs,
	infoFiles []string,
) (map[string]string, error) {
	const errCtx = "loading stamps"

	stamps := make(map[string]string)

	for _, sf := range infoFiles {
		content, err := afero.ReadFile(fs, sf)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		for _, line := range strings.Split(
			string(content), "\n",
		) {
			key, val, ok := strings.Cut(line, " ")
			if ok {
				stamps[key] = val
			}
		}
	}

	return stamps, nil
}

// Bind sets every parameter of ps that has a stamp and
// returns the names that have none.
func Bind(
	ps *paramstring.String,
	stamps map[string]string,
) (*paramstring.String, []string) {
	var missing []string

	vals := make(map[string]any)

	for _, name := range ps.Parsed().Names() {
		val, ok := stamps[name]
		if !ok {
			missing = append(missing, name)
			continue
		}

		vals[name] = val
	}

	// Only template names are bound, so no diagnostics.
	ps, _ = ps.WithParams(vals)

	return ps, missing
}

// Stamp loads workspace status variables from infoFiles and
// renders format with them. format uses the default
// delimiters unless opts override them. Variables without a
// stamp render empty and are logged.
func Stamp(
	fs afero.Fs,
	infoFiles []string,
	format string,
	opts ...paramstring.Option,
) (string, error) {
	const errCtx = "stamping"

	stamps, err := LoadStamps(fs, infoFiles)
	if err != nil {
		return "", fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	ps, err := paramstring.New(format, opts...)
	if err != nil {
		return "", fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	ps, missing := Bind(ps, stamps)

	for _, name := range missing {
		slog.Warn("stamp variable not found", "name", name)
	}

	return ps.Render(), nil
}
