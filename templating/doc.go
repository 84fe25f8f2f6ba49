// Package templating expands placeholder templates with values taken from
// stamp info files, YAML/JSON/dotenv value files and explicit NAME=VALUE
// variables. Templates are parsed by the paramstring package with
// configurable open, close and escape tokens.
//
// The Engine type holds configuration (delimiters, stamp and value files,
// strict mode) and expands templates via the Expand method, which reads a
// template file, binds its parameters, and writes the rendered result.
// DumpPieces shows how a template was scanned.
package templating
