// Package output renders field mappings as terminal text or
// newline-delimited JSON.
//
// Three document shapes reach the formatter:
//
//   - Record: a single mapping, shown as a padded key/value table.
//   - Table: an ordered list of mappings, shown as a tab-separated table
//     with a header row.
//   - List: plain strings, one per line.
//
// In JSON every mapping (or list item) becomes one compact line with
// sorted keys; absent values encode as null. Write renders the whole
// document before touching the writer, so a document is either written in
// full or not at all.
package output
