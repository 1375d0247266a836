// Package nested reads and writes nested numeric documents.
//
// A document is a JSON or YAML sequence of sequences bottoming out in numbers,
// for example [[1, 4, 10], [5, 3, -1]]. Decoded documents are trees of []any
// whose numeric leaves are normalized to float64 so that transforms see a
// single leaf type regardless of the source encoding.
//
// Check walks a document against a declared depth and reports every problem it
// finds as a diagnostic, unlike the dimension mappers which stop at the first.
package nested
