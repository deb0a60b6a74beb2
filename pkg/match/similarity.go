// Package match provides fuzzy entity resolution over the reference
// datasets. Free-text location names from the agent are matched against
// dataset labels with an edit-distance similarity score so that typos
// and minor variants still resolve.
package match

import "strings"

// DefaultThreshold is the minimum similarity (0-100) a field must reach
// for a candidate to qualify.
const DefaultThreshold = 70.0

// Normalize lowercases and trims a free-text label for comparison.
// Diacritics and punctuation are deliberately left alone.
func Normalize(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// Ratio returns a symmetric similarity score between 0 and 100 based on
// insert/delete edit distance: 100*(1 - dist/(len(a)+len(b))).
// Two empty strings score 100.
func Ratio(a, b string) float64 {
	ra := []rune(a)
	rb := []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 100.0
	}

	dist := total - 2*lcsLength(ra, rb)
	return (1.0 - float64(dist)/float64(total)) * 100.0
}

// lcsLength computes the length of the longest common subsequence with
// a two-row dynamic program.
func lcsLength(a, b []rune) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for i := 1; i <= len(a); i++ {
		for j := 1; j <= len(b); j++ {
			if a[i-1] == b[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}
