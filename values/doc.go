// Package values loads template parameter values from YAML, JSON and dotenv
// files and from NAME=VALUE assignments. Nested mappings flatten to dotted
// keys so that a template can reference "db.host".
package values
