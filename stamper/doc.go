// Package stamper reads Bazel workspace status files and binds their
// variables into a placeholder template. LoadStamps parses one or more status
// files into a variable map; Stamp combines loading, parsing and rendering in
// a single call.
package stamper
