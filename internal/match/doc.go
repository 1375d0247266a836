// Package match ranks known names by edit distance to suggest corrections
// for misspelled ones, e.g. "dubble" -> "double".
package match
