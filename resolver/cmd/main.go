// Package main provides the resolver CLI that reads
// multi-document YAML, renders placeholders in string
// values using a value map, and writes the result.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/afero"

	"github.com/byte4ever/paramstring/paramstring"
	"github.com/byte4ever/paramstring/resolver"
)

type valuesFlags map[string]string

func (vf *valuesFlags) String() string {
	return fmt.Sprintf("%v", *vf)
}

func (vf *valuesFlags) Set(value string) error {
	name, val, ok := strings.Cut(value, "=")
	if !ok {
		return errors.New(
			"value flag must be name=value",
		)
	}

	(*vf)[strings.TrimSpace(name)] = val

	return nil
}

func run() error {
	const errCtx = "resolver"

	var (
		inFile   string
		outFile  string
		open     string
		closeTok string
		escape   string
	)

	vals := make(valuesFlags)

	flag.StringVar(
		&inFile, "infile", "",
		"input YAML file path",
	)

	flag.StringVar(
		&outFile, "outfile", "",
		"output YAML file path",
	)

	flag.Var(
		&vals, "value",
		"name=value (repeatable)",
	)

	flag.StringVar(
		&open, "open", "",
		"placeholder open token (default \"{\")",
	)

	flag.StringVar(
		&closeTok, "close", "",
		"placeholder close token (default \"}\")",
	)

	flag.StringVar(
		&escape, "escape", "",
		"placeholder escape token (default \"!\")",
	)

	flag.Parse()

	fs := afero.NewOsFs()

	var inReader io.Reader = os.Stdin

	if inFile != "" {
		fi, err := fs.Open(inFile)
		if err != nil {
			return fmt.Errorf(
				"%s: opening input: %w",
				errCtx, err,
			)
		}

		defer fi.Close() //nolint:errcheck // best-effort close

		inReader = fi
	}

	var outWriter io.Writer = os.Stdout

	if outFile != "" {
		fo, err := fs.Create(outFile)
		if err != nil {
			return fmt.Errorf(
				"%s: creating output: %w",
				errCtx, err,
			)
		}

		defer fo.Close() //nolint:errcheck // best-effort close

		outWriter = fo
	}

	if err := resolver.RenderDocuments(
		inReader,
		outWriter,
		vals,
		paramstring.DelimiterOptions(open, closeTok, escape)...,
	); err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func main() {
	if err := run(); err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
