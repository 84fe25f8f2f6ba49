package paramstring

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"sync/atomic"

	"github.com/valyala/bytebufferpool"
)

// String is a parsed template together with its parameter
// values. Updates return a new String and leave the receiver
// untouched, so a String can be shared freely.
type String struct {
	tpl      *Template
	bindings Bindings
	rendered atomic.Pointer[string]
}

// New parses source and binds it with every parameter unset.
func New(source string, opts ...Option) (*String, error) {
	tpl, err := Parse(source, opts...)
	if err != nil {
		return nil, err
	}

	return tpl.Bind(), nil
}

// Parsed returns the underlying template.
func (st *String) Parsed() *Template {
	return st.tpl
}

// Template returns the template text.
func (st *String) Template() string {
	return st.tpl.source
}

// Delimiters returns the delimiters the template was parsed
// with.
func (st *String) Delimiters() Delimiters {
	return st.tpl.delims
}

// Pieces returns the template segments with parameter
// references shown as "@name".
func (st *String) Pieces() []string {
	return st.tpl.Pieces()
}

// Param returns the value bound to name. ok is false when the
// parameter is unset or unknown.
func (st *String) Param(name string) (value string, ok bool) {
	return st.bindings.Get(name)
}

// Params returns every parameter with its value; unset
// parameters map to nil.
func (st *String) Params() map[string]*string {
	return st.bindings.Map()
}

// WithParam returns a copy with name bound to value. Unknown
// names leave the receiver unchanged and are reported as a
// diagnostic.
func (st *String) WithParam(
	name string,
	value any,
) (*String, Diagnostics) {
	return st.WithParams(map[string]any{name: value})
}

// WithParams binds every entry of values. Unknown names are
// skipped and reported one diagnostic each, in name order;
// known names still apply.
func (st *String) WithParams(
	values map[string]any,
) (*String, Diagnostics) {
	var diags Diagnostics

	bindings := st.bindings
	changed := false

	for _, name := range slices.Sorted(maps.Keys(values)) {
		next, ok := bindings.With(name, toText(values[name]))
		if !ok {
			st.tpl.log().Warn(
				"unknown parameter",
				"param", name,
			)

			diags = append(diags, unknownParameter(name))

			continue
		}

		bindings = next
		changed = true
	}

	if !changed {
		return st, diags
	}

	return &String{tpl: st.tpl, bindings: bindings}, diags
}

// Render joins the segments, substituting bound values; unset
// parameters render empty. The result is computed once per
// String.
func (st *String) Render() string {
	if out := st.rendered.Load(); out != nil {
		return *out
	}

	bb := bytebufferpool.Get()
	defer bytebufferpool.Put(bb)

	for _, sg := range st.tpl.segments {
		if sg.Kind == Literal {
			_, _ = bb.WriteString(sg.Text)
			continue
		}

		if val, ok := st.bindings.Get(sg.Text); ok {
			_, _ = bb.WriteString(val)
		}
	}

	out := bb.String()
	st.rendered.CompareAndSwap(nil, &out)

	return *st.rendered.Load()
}

// String implements fmt.Stringer.
func (st *String) String() string {
	return st.Render()
}

// WriteTo writes the rendered text to w.
func (st *String) WriteTo(w io.Writer) (int64, error) {
	n, err := io.WriteString(w, st.Render())

	return int64(n), err
}

func toText(value any) string {
	switch val := value.(type) {
	case nil:
		return ""
	case string:
		return val
	case []byte:
		return string(val)
	case fmt.Stringer:
		return val.String()
	default:
		return fmt.Sprint(val)
	}
}
