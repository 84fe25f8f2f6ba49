package paramstring

import "maps"

// Bindings maps every parameter name of a template to an
// optional value. It is never modified in place; With returns
// a new table.
type Bindings struct {
	values map[string]*string
}

// NewBindings returns a table with every name unset.
func NewBindings(names []string) Bindings {
	values := make(map[string]*string, len(names))
	for _, name := range names {
		values[name] = nil
	}

	return Bindings{values: values}
}

// With returns a copy of the table with name set to value. If
// name is not in the table it returns the receiver and false.
func (bi Bindings) With(name, value string) (Bindings, bool) {
	if !bi.Has(name) {
		return bi, false
	}

	values := maps.Clone(bi.values)
	values[name] = &value

	return Bindings{values: values}, true
}

// Get returns the value bound to name. ok is false when name is
// unset or unknown.
func (bi Bindings) Get(name string) (value string, ok bool) {
	ptr := bi.values[name]
	if ptr == nil {
		return "", false
	}

	return *ptr, true
}

// Has reports whether name belongs to the table.
func (bi Bindings) Has(name string) bool {
	_, ok := bi.values[name]
	return ok
}

// Len returns the number of parameters.
func (bi Bindings) Len() int {
	return len(bi.values)
}

// Map returns a fresh copy of the table. Unset parameters map
// to nil.
func (bi Bindings) Map() map[string]*string {
	out := make(map[string]*string, len(bi.values))

	for name, ptr := range bi.values {
		if ptr == nil {
			out[name] = nil
			continue
		}

		val := *ptr
		out[name] = &val
	}

	return out
}
