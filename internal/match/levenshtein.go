package match

import (
	"slices"
	"strings"
)

// Levenshtein computes the Levenshtein distance (edit distance) between two strings.
// The distance is the minimum number of single-byte edits (insertions, deletions,
// or substitutions) required to transform one string into the other.
//
// Time complexity: O(len(a) * len(b))
// Space complexity: O(min(len(a), len(b))).
func Levenshtein(a, b string) int {
	if a == b {
		return 0
	}

	if len(a) == 0 {
		return len(b)
	}

	if len(b) == 0 {
		return len(a)
	}

	// Keep a the shorter string so the rows stay small
	if len(a) > len(b) {
		a, b = b, a
	}

	prev := make([]int, len(a)+1)
	curr := make([]int, len(a)+1)

	for i := range prev {
		prev[i] = i
	}

	for j := 1; j <= len(b); j++ {
		curr[0] = j

		for i := 1; i <= len(a); i++ {
			cost := 0
			if a[i-1] != b[j-1] {
				cost = 1
			}

			curr[i] = min(
				prev[i]+1,      // deletion
				curr[i-1]+1,    // insertion
				prev[i-1]+cost, // substitution
			)
		}

		prev, curr = curr, prev
	}

	return prev[len(a)]
}

// Candidate is a known name and its distance to the queried one.
type Candidate struct {
	Name     string
	Distance int
}

// Rank returns the candidates within maxDistance of name, compared
// case-insensitively, closest first and ties broken by name.
func Rank(name string, candidates []string, maxDistance int) []Candidate {
	query := strings.ToLower(name)

	var ranked []Candidate

	for _, c := range candidates {
		d := Levenshtein(query, strings.ToLower(c))
		if d <= maxDistance {
			ranked = append(ranked, Candidate{Name: c, Distance: d})
		}
	}

	slices.SortFunc(ranked, func(x, y Candidate) int {
		if x.Distance != y.Distance {
			return x.Distance - y.Distance
		}

		return strings.Compare(x.Name, y.Name)
	})

	return ranked
}

// Suggest returns up to limit names close enough to name to be likely typos.
// The allowed distance is a third of the name's length, at least 1.
func Suggest(name string, candidates []string, limit int) []string {
	maxDistance := max(len(name)/3, 1)

	ranked := Rank(name, candidates, maxDistance)
	if len(ranked) > limit {
		ranked = ranked[:limit]
	}

	names := make([]string, 0, len(ranked))
	for _, c := range ranked {
		names = append(names, c.Name)
	}

	return names
}
