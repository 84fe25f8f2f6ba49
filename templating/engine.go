package templating

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/goccy/go-json"
	"github.com/spf13/afero"
	"github.com/valyala/fasttemplate"

	"github.com/byte4ever/paramstring/paramstring"
	"github.com/byte4ever/paramstring/stamper"
	"github.com/byte4ever/paramstring/values"
)

// Engine expands placeholder templates using stamp info
// files, value files and explicit variables. Zero values
// select the defaults: the default delimiters, the OS
// filesystem, stdin/stdout and slog.Default().
type Engine struct {
	Open           string
	Close          string
	Escape         string
	StampInfoFiles []string
	ValueFiles     []string
	// Strict turns unknown variable names into an error.
	Strict bool

	Fs     afero.Fs
	Stdin  io.Reader
	Stdout io.Writer
	Logger *slog.Logger
}

// Expand reads a template, binds parameters, and writes the
// result. If tplPath is empty it reads stdin; if outPath is
// empty it writes to stdout. If executable is true the output
// file receives mode 0777 instead of 0666.
//
// Processing order:
//  1. Load stamp files and value files.
//  2. For each variable NAME=VALUE, expand VALUE against
//     stamps using single-brace tags.
//  3. Bind stamps, then value files, for the parameters the
//     template references.
//  4. Bind the variables. A variable naming no parameter is
//     a diagnostic; in strict mode it fails the expansion.
//  5. Render the template to the output.
func (en *Engine) Expand(
	tplPath string,
	outPath string,
	vars []string,
	executable bool,
) error {
	const errCtx = "expanding template"

	fs := en.fs()

	stamps, err := stamper.LoadStamps(fs, en.StampInfoFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	vals, err := values.LoadAll(fs, en.ValueFiles)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	explicit, err := en.resolveVars(vars, stamps)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	ps, err := en.parse(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	// Stamps and value files are ambient context: names the
	// template does not use are not diagnostics.
	ps, _ = stamper.Bind(ps, stamps)
	ps, _ = stamper.Bind(ps, vals)

	ps, diags := ps.WithParams(explicit)
	if en.Strict {
		if err := diags.Err(); err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}
	}

	out, closer, err := en.openOutput(outPath, executable)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if closer != nil {
		defer closer()
	}

	if _, err := ps.WriteTo(out); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

// piecesDoc is the JSON form written by DumpPieces.
type piecesDoc struct {
	Template   string                 `json:"template"`
	Delimiters paramstring.Delimiters `json:"delimiters"`
	Pieces     []string               `json:"pieces"`
	Params     []string               `json:"params"`
}

// DumpPieces parses the template and writes its segments and
// parameter names to w as indented JSON.
func (en *Engine) DumpPieces(tplPath string, w io.Writer) error {
	const errCtx = "dumping pieces"

	ps, err := en.parse(tplPath)
	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	params := ps.Parsed().Names()
	if params == nil {
		params = []string{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(piecesDoc{
		Template:   ps.Template(),
		Delimiters: ps.Delimiters(),
		Pieces:     ps.Pieces(),
		Params:     params,
	}); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func (en *Engine) fs() afero.Fs {
	if en.Fs == nil {
		return afero.NewOsFs()
	}

	return en.Fs
}

func (en *Engine) options() []paramstring.Option {
	opts := paramstring.DelimiterOptions(en.Open, en.Close, en.Escape)

	if en.Logger != nil {
		opts = append(opts, paramstring.WithLogger(en.Logger))
	}

	return opts
}

// parse reads the template and parses it with the engine
// delimiters.
func (en *Engine) parse(tplPath string) (*paramstring.String, error) {
	tplContent, err := en.readTemplate(tplPath)
	if err != nil {
		return nil, err
	}

	return paramstring.New(string(tplContent), en.options()...)
}

// resolveVars processes --variable flags. Each variable
// value is expanded against stamps using single-brace tags.
func (en *Engine) resolveVars(
	vars []string,
	stamps map[string]string,
) (map[string]any, error) {
	const errCtx = "resolving variables"

	pairs, err := values.ParseAssignments(vars)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", errCtx, err)
	}

	stampCtx := make(map[string]interface{}, len(stamps))
	for key, val := range stamps {
		stampCtx[key] = val
	}

	out := make(map[string]any, len(pairs))

	for name, val := range pairs {
		out[name] = fasttemplate.ExecuteStringStd(
			val, "{", "}", stampCtx,
		)
	}

	return out, nil
}

// readTemplate reads the template from a file path. If
// tplPath is empty it reads from Stdin.
func (en *Engine) readTemplate(
	tplPath string,
) ([]byte, error) {
	const errCtx = "reading template"

	if tplPath != "" {
		content, err := afero.ReadFile(en.fs(), tplPath)
		if err != nil {
			return nil, fmt.Errorf(
				"%s: %w", errCtx, err,
			)
		}

		return content, nil
	}

	in := en.Stdin
	if in == nil {
		in = os.Stdin
	}

	content, err := io.ReadAll(in)
	if err != nil {
		return nil, fmt.Errorf(
			"%s: reading stdin: %w", errCtx, err,
		)
	}

	return content, nil
}

// openOutput returns a writer for the result. When
// outPath is empty it returns Stdout. The returned
// closer function must be called to finalize the file
// (may be nil for stdout).
func (en *Engine) openOutput(
	outPath string,
	executable bool,
) (io.Writer, func(), error) {
	const errCtx = "opening output"

	if outPath == "" {
		if en.Stdout != nil {
			return en.Stdout, nil, nil
		}

		return os.Stdout, nil, nil
	}

	var perm os.FileMode = 0o666
	if executable {
		perm = 0o777
	}

	fi, err := en.fs().OpenFile(
		outPath,
		os.O_RDWR|os.O_CREATE|os.O_TRUNC,
		perm,
	)
	if err != nil {
		return nil, nil, fmt.Errorf(
			"%s: %w", errCtx, err,
		)
	}

	return fi, func() {
		_ = fi.Close() //nolint:errcheck // best-effort close
	}, nil
}
