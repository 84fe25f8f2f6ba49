package paramstring

import "strings"

// SegmentKind tells literal text apart from a parameter
// reference.
type SegmentKind uint8

const (
	// Literal segments are emitted verbatim.
	Literal SegmentKind = iota
	// ParamRef segments are replaced by a parameter value.
	ParamRef
)

// Segment is one unit of a scanned template. Text holds the
// literal text or, for ParamRef, the parameter name.
type Segment struct {
	Kind SegmentKind
	Text string
}

// String returns the literal text, or "@name" for a parameter
// reference.
func (sg Segment) String() string {
	if sg.Kind == ParamRef {
		return "@" + sg.Text
	}

	return sg.Text
}

// Scan splits source into literal and parameter segments and
// returns the distinct parameter names in first-occurrence
// order. It accepts any input.
//
// The leftmost open token starts a candidate span that ends at
// the earliest close token not immediately preceded by an open
// token. Within the span the rightmost open token leaving a
// non-empty name starts the placeholder. k whole escape tokens
// directly before it emit k/2 escape tokens; if k is odd the
// placeholder itself is emitted as literal text.
func Scan(
	source string,
	de Delimiters,
) ([]Segment, []string) {
	var (
		segments []Segment
		names    []string
		literal  strings.Builder
	)

	seen := make(map[string]struct{})
	rest := source

	for {
		spanEnd, nameStart, nameEnd := nextSpan(rest, de)
		if spanEnd < 0 {
			break
		}

		openAt := nameStart - len(de.Open)
		pre, escapes := trimEscapes(rest[:openAt], de.Escape)

		literal.WriteString(pre)
		literal.WriteString(strings.Repeat(de.Escape, escapes/2))

		if escapes%2 == 1 {
			literal.WriteString(rest[openAt:spanEnd])
		} else {
			if literal.Len() > 0 {
				segments = append(segments, Segment{
					Kind: Literal,
					Text: literal.String(),
				})
				literal.Reset()
			}

			name := rest[nameStart:nameEnd]
			segments = append(segments, Segment{Kind: ParamRef, Text: name})

			if _, ok := seen[name]; !ok {
				seen[name] = struct{}{}
				names = append(names, name)
			}
		}

		rest = rest[spanEnd:]
	}

	literal.WriteString(rest)

	if literal.Len() > 0 {
		segments = append(segments, Segment{
			Kind: Literal,
			Text: literal.String(),
		})
	}

	return segments, names
}

// nextSpan locates the next candidate span in rest. It returns
// the span end and the bounds of the placeholder name, or -1
// values when rest holds no placeholder.
func nextSpan(
	rest string,
	de Delimiters,
) (spanEnd, nameStart, nameEnd int) {
	first := strings.Index(rest, de.Open)
	if first < 0 {
		return -1, -1, -1
	}

	closeAt := -1

	for from := first + len(de.Open); from <= len(rest); {
		idx := strings.Index(rest[from:], de.Close)
		if idx < 0 {
			break
		}

		pos := from + idx
		if pos < len(de.Open) ||
			rest[pos-len(de.Open):pos] != de.Open {
			closeAt = pos
			break
		}

		from = pos + 1
	}

	if closeAt < 0 {
		return -1, -1, -1
	}

	// The name needs at least one byte, so the opener must end
	// before closeAt-1. The leftmost opener always qualifies:
	// a close right after it is rejected above.
	openAt := strings.LastIndex(rest[:closeAt-1], de.Open)

	return closeAt + len(de.Close), openAt + len(de.Open), closeAt
}

// trimEscapes strips the trailing run of whole escape tokens
// from pre and reports how many were removed.
func trimEscapes(pre, escape string) (string, int) {
	count := 0

	for strings.HasSuffix(pre, escape) {
		pre = pre[:len(pre)-len(escape)]
		count++
	}

	return pre, count
}
