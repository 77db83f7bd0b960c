// Package render writes collections of records in the CLI output formats.
//
// A [Document] carries the records together with how they were collected:
// grouped per cluster, a plain list, or a single record. The same document
// renders as:
//
//   - text: a [cluster] header per group with keys relative to the group
//   - dot: one fully qualified "path: value" line per leaf
//   - json and yaml: the unflattened structure, map order preserved
//   - table: one row per record, columns from the flattened keys
//
// A jq expression, when given, replaces the mode and runs against the json
// structure.
package render
