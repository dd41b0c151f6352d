// Package ir defines the in-memory representation of locale documents.
//
// A document is a tree of Node values. Objects hold named children in
// document order; null, bool, number, string and array values are
// leaves. The representation is format neutral: JSON, YAML and TOML
// documents all parse into the same trees, and a tree can be encoded
// back into any of those formats.
//
// Two properties matter to everything built on top of this package:
//
//   - Field order is preserved. A document that is loaded and written
//     back without edits keeps its key order, and edits only reorder
//     the fields they touch.
//
//   - Arrays are atomic. Synchronization compares and copies arrays as
//     whole values, so array elements never appear as separate keys.
package ir
