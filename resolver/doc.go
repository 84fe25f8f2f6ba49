// Package resolver walks multi-document YAML and renders every string scalar
// as a placeholder template bound with a value map. It handles both
// single-document and multi-document YAML streams separated by "---" markers.
package resolver
