// Package paramstring parses template strings containing named placeholders
// and renders them against bound parameter values. The open, close and escape
// tokens are configurable (default "{", "}" and "!"). A run of escape tokens
// in front of a placeholder collapses pairwise; an odd run turns the
// placeholder into literal text.
//
// Parse scans a template once into a Template. Bind (or New) attaches an
// all-unset parameter table, and WithParam/WithParams derive new bound values
// without touching the receiver. Render joins the segments and memoizes the
// result per bound value.
package paramstring
