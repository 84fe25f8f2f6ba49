package paramstring

import (
	"fmt"
	"log/slog"
	"slices"
)

// Template is a parsed template. It is immutable and safe for
// concurrent use.
type Template struct {
	source   string
	delims   Delimiters
	segments []Segment
	names    []string
	index    map[string]struct{}
	logger   *slog.Logger
}

// Parse scans source with the delimiters given in opts. Tokens
// not set by an option come from DefaultDelimiters at call time.
func Parse(source string, opts ...Option) (*Template, error) {
	const errCtx = "parsing template"

	cfg := newConfig(opts)

	de := cfg.delimiters(DefaultDelimiters())
	if err := de.Validate(); err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	segments, names := Scan(source, de)

	index := make(map[string]struct{}, len(names))
	for _, name := range names {
		index[name] = struct{}{}
	}

	return &Template{
		source:   source,
		delims:   de,
		segments: segments,
		names:    names,
		index:    index,
		logger:   cfg.logger,
	}, nil
}

// Source returns the template text as passed to Parse.
func (tp *Template) Source() string {
	return tp.source
}

// Delimiters returns the delimiters captured at parse time.
func (tp *Template) Delimiters() Delimiters {
	return tp.delims
}

// Segments returns a copy of the scanned segments.
func (tp *Template) Segments() []Segment {
	return slices.Clone(tp.segments)
}

// Names returns the parameter names in first-occurrence order.
func (tp *Template) Names() []string {
	return slices.Clone(tp.names)
}

// Has reports whether name is a parameter of the template.
func (tp *Template) Has(name string) bool {
	_, ok := tp.index[name]
	return ok
}

// Pieces returns the segments for display, with parameter
// references shown as "@name".
func (tp *Template) Pieces() []string {
	pieces := make([]string, 0, len(tp.segments))

	for _, sg := range tp.segments {
		pieces = append(pieces, sg.String())
	}

	return pieces
}

// Bind returns a bound value with every parameter unset.
func (tp *Template) Bind() *String {
	return &String{
		tpl:      tp,
		bindings: NewBindings(tp.names),
	}
}

func (tp *Template) log() *slog.Logger {
	if tp.logger != nil {
		return tp.logger
	}

	return slog.Default()
}
