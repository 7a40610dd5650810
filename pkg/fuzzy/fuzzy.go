// Package fuzzy scores string similarity for name searches. It handles
// partial queries (first names, fragments) and typos without any NLP
// dependency; thresholding is up to the caller.
package fuzzy

import "strings"

// Score returns a similarity score in [0, 1] between a query and a
// candidate, 1 meaning a perfect match after normalization. The result is
// the best of four rules: exact match, substring coverage, per-token match
// and a character-level similarity ratio.
func Score(query, candidate string) float64 {
	q := strings.ToLower(strings.TrimSpace(query))
	c := strings.ToLower(strings.TrimSpace(candidate))

	if q == c {
		return 1.0
	}

	best := 0.0

	// Query covering part of the candidate: reward longer coverage.
	if q != "" && strings.Contains(c, q) {
		best = 0.9 * float64(runeLen(q)) / float64(runeLen(c))
	}

	// Single-word query against a multi-word candidate: compare per token.
	qWords := strings.Fields(q)
	cWords := strings.Fields(c)
	if len(qWords) == 1 && len(cWords) > 1 {
		for _, word := range cWords {
			var score float64
			switch {
			case q == word:
				score = 0.85
			case strings.Contains(word, q) || strings.Contains(q, word):
				lq, lw := runeLen(q), runeLen(word)
				score = 0.75 * float64(min(lq, lw)) / float64(max(lq, lw))
			}
			if score > best {
				best = score
			}
		}
	}

	if r := Ratio(q, c); r > best {
		best = r
	}
	return best
}

// Ratio is a symmetric character-level similarity in [0, 1] based on the
// longest common subsequence of the two strings. Identical strings score 1.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	if len(ra) == 0 && len(rb) == 0 {
		return 1.0
	}
	if len(ra) == 0 || len(rb) == 0 {
		return 0.0
	}

	// Single-row LCS table.
	prev := make([]int, len(rb)+1)
	curr := make([]int, len(rb)+1)
	for i := 1; i <= len(ra); i++ {
		for j := 1; j <= len(rb); j++ {
			if ra[i-1] == rb[j-1] {
				curr[j] = prev[j-1] + 1
			} else if prev[j] >= curr[j-1] {
				curr[j] = prev[j]
			} else {
				curr[j] = curr[j-1]
			}
		}
		prev, curr = curr, prev
	}
	lcs := prev[len(rb)]
	return 2.0 * float64(lcs) / float64(len(ra)+len(rb))
}

func runeLen(s string) int {
	return len([]rune(s))
}
