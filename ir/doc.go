// Package ir provides the intermediate representation for config
// documents: an ordered tree of nodes that survives a parse, any number
// of in-place mutations, and a serialization without losing or
// reordering anything it did not explicitly touch.
//
// # Node Structure
//
// A Node is a tagged union over the document's closed set of variants:
//
//   - Config: the root, an ordered list of top-level nodes
//   - Block: a named container of child nodes, delimited by braces
//   - Property: an active `key = value` line
//   - CommentedProperty: a `# key = value` line, a disabled setting
//     whose value is retained so it can be reactivated without loss
//   - Comment: free comment text that is not structurally a setting
//
// Child order within Config and Block nodes is significant and is
// preserved verbatim across parse, mutation, and serialization; the
// only operation that changes order is an explicit append of a node
// that did not exist before.
//
// # Lines
//
// Each node remembers its source line, or LineSynthesized for nodes
// created by mutation that have not been rendered yet. Line numbers
// are bookkeeping, not identity: structural equality ignores them.
package ir
