// Package resolver walks multi-document YAML rendering
// placeholders in string values.
package resolver

import (
	"bytes"
	"fmt"
	"io"

	"github.com/goccy/go-yaml"

	"github.com/byte4ever/paramstring/paramstring"
	"github.com/byte4ever/paramstring/stamper"
)

type scalarRenderer struct {
	values map[string]string
	opts   []paramstring.Option
}

// RenderDocuments reads multi-document YAML from in, renders
// placeholders in every string value using vals, and writes
// the result to out. Placeholders without a value render
// empty.
func RenderDocuments(
	in io.Reader,
	out io.Writer,
	vals map[string]string,
	opts ...paramstring.Option,
) error {
	const errCtx = "rendering documents"

	if _, err := paramstring.Parse("", opts...); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	sr := scalarRenderer{values: vals, opts: opts}
	decoder := yaml.NewDecoder(in)

	firstObj := true

	for {
		var obj map[string]interface{}

		err := decoder.Decode(&obj)
		if err == io.EOF {
			break
		}

		if err != nil {
			return fmt.Errorf(
				"%s: decoding yaml: %w",
				errCtx, err,
			)
		}

		if obj == nil {
			continue
		}

		rendered, err := sr.render(obj)
		if err != nil {
			return fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		buf, err := yaml.Marshal(rendered)
		if err != nil {
			return fmt.Errorf(
				"%s: marshaling object: %w",
				errCtx, err,
			)
		}

		if firstObj {
			firstObj = false
		} else {
			if _, err := out.Write(
				[]byte("---\n"),
			); err != nil {
				return fmt.Errorf(
					"%s: writing separator: %w",
					errCtx, err,
				)
			}
		}

		if _, err := out.Write(buf); err != nil {
			return fmt.Errorf(
				"%s: writing output: %w",
				errCtx, err,
			)
		}
	}

	return nil
}

// decodeAllDocs decodes all YAML documents from raw bytes
// into a slice of maps.
func decodeAllDocs(
	raw []byte,
) ([]map[string]interface{}, error) {
	const errCtx = "decoding all docs"

	decoder := yaml.NewDecoder(bytes.NewReader(raw))

	var docs []map[string]interface{}

	for {
		var doc map[string]interface{}

		err := decoder.Decode(&doc)
		if err == io.EOF {
			break
		}

		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		if doc == nil {
			continue
		}

		docs = append(docs, doc)
	}

	return docs, nil
}

// render returns node with every string scalar rendered.
// Map keys are left alone.
func (sr *scalarRenderer) render(
	node interface{},
) (interface{}, error) {
	switch typedVal := node.(type) {
	case map[string]interface{}:
		for key, val := range typedVal {
			rendered, err := sr.render(val)
			if err != nil {
				return nil, err
			}

			typedVal[key] = rendered
		}

		return typedVal, nil
	case []interface{}:
		for idx, val := range typedVal {
			rendered, err := sr.render(val)
			if err != nil {
				return nil, err
			}

			typedVal[idx] = rendered
		}

		return typedVal, nil
	case string:
		return sr.renderString(typedVal)
	default:
		return node, nil
	}
}

func (sr *scalarRenderer) renderString(
	text string,
) (string, error) {
	ps, err := paramstring.New(text, sr.opts...)
	if err != nil {
		return "", fmt.Errorf(
			"rendering %q: %w", text, err,
		)
	}

	ps, _ = stamper.Bind(ps, sr.values)

	return ps.Render(), nil
}
