package mark

// LexicalSimilarity computes the normalized edit similarity between two
// strings: 1.0 for identical strings after normalization, 0.0 for maximal
// edit distance relative to the longer string.  The score is
//
//	1 - distance/max(len(a), len(b))
//
// over runes, clamped to [0, 1].  Two empty strings are defined as identical
// to avoid division by zero; one empty string against a non-empty one scores
// 0.0.  The function is symmetric and total; it never fails.
func LexicalSimilarity(a, b string) float64 {
	ra := []rune(Normalize(a))
	rb := []rune(Normalize(b))

	maxLen := len(ra)
	if len(rb) > maxLen {
		maxLen = len(rb)
	}
	if maxLen == 0 {
		return 1.0
	}

	score := 1.0 - float64(editDistance(ra, rb))/float64(maxLen)
	if score < 0 {
		return 0.0
	}
	if score > 1 {
		return 1.0
	}
	return score
}

// editDistance computes the classic edit distance between two rune slices
// with unit cost for insertions, deletions, and substitutions, using a
// two-row dynamic program.
func editDistance(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	// Keep the inner loop over the shorter slice.
	if len(b) > len(a) {
		a, b = b, a
	}

	prev := make([]int, len(b)+1)
	curr := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min3(
				prev[j]+1,      // deletion
				curr[j-1]+1,    // insertion
				prev[j-1]+cost, // substitution
			)
		}
		prev, curr = curr, prev
	}
	return prev[len(b)]
}

func min3(a, b, c int) int {
	if b < a {
		a = b
	}
	if c < a {
		a = c
	}
	return a
}
