// Package diagnostic provides structured errors, warnings and notes
// produced while checking nested documents against a declared depth.
//
// Key capabilities:
//   - Depth mismatch errors located by index path
//   - Ragged depth errors when a branch nests deeper than declared
//   - Non-numeric leaf reports
//   - Uneven length warnings for sibling sequences
package diagnostic
