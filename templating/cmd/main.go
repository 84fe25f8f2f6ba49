// Binary param_template_engine expands placeholder templates
// using stamp info files, value files and explicit variables.
package main

import (
	"flag"
	"log/slog"
	"os"

	"github.com/byte4ever/paramstring/templating"
)

type arrayFlags []string

func (af *arrayFlags) String() string {
	return ""
}

func (af *arrayFlags) Set(value string) error {
	*af = append(*af, value)
	return nil
}

func main() {
	var (
		stampInfoFile arrayFlags
		valueFile     arrayFlags
		variable      arrayFlags
		output        string
		tpl           string
		executable    bool
		strict        bool
		pieces        bool
		open          string
		closeTok      string
		escape        string
	)

	flag.Var(
		&stampInfoFile,
		"stamp_info_file",
		"Stamp info file path (repeatable)",
	)

	flag.Var(
		&valueFile,
		"values",
		"YAML, JSON or .env value file (repeatable)",
	)

	flag.Var(
		&variable,
		"variable",
		"Variable in NAME=VALUE format (repeatable)",
	)

	flag.StringVar(
		&output, "output", "",
		"Output file path (stdout if empty)",
	)

	flag.StringVar(
		&tpl, "template", "",
		"Input template file path (stdin if empty)",
	)

	flag.BoolVar(
		&executable, "executable", false,
		"Set executable bit on output file",
	)

	flag.BoolVar(
		&strict, "strict", false,
		"Fail on variables the template does not reference",
	)

	flag.BoolVar(
		&pieces, "pieces", false,
		"Print the scanned template pieces as JSON and exit",
	)

	flag.StringVar(
		&open, "open", "",
		"Placeholder open token (default \"{\")",
	)

	flag.StringVar(
		&closeTok, "close", "",
		"Placeholder close token (default \"}\")",
	)

	flag.StringVar(
		&escape, "escape", "",
		"Placeholder escape token (default \"!\")",
	)

	flag.Parse()

	en := templating.Engine{
		Open:           open,
		Close:          closeTok,
		Escape:         escape,
		StampInfoFiles: stampInfoFile,
		ValueFiles:     valueFile,
		Strict:         strict,
	}

	var err error
	if pieces {
		err = en.DumpPieces(tpl, os.Stdout)
	} else {
		err = en.Expand(tpl, output, variable, executable)
	}

	if err != nil {
		slog.Error(err.Error())
		os.Exit(1)
	}
}
