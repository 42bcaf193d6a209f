// Package format names the output formats the curly tool can emit.
//
// The native format is the curly config text itself; YAML and JSON
// are snapshot formats for the active settings of a document.
package format
