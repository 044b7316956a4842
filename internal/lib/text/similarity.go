package text

// Similarity returns a normalized edit-distance similarity in [0..1]:
// 1 - levenshtein(a,b)/max(len(a),len(b)). Inputs are expected to be
// normalized already.
func Similarity(a, b string) float64 {
	if a == "" && b == "" {
		return 1
	}
	if a == "" || b == "" {
		return 0
	}

	ra := []rune(a)
	rb := []rune(b)

	m := len(ra)
	if len(rb) > m {
		m = len(rb)
	}

	return 1 - float64(levenshtein(ra, rb))/float64(m)
}

// levenshtein computes edit distance with a single-row DP table.
func levenshtein(a, b []rune) int {
	if len(a) == 0 {
		return len(b)
	}
	if len(b) == 0 {
		return len(a)
	}

	prev := make([]int, len(b)+1)
	for j := range prev {
		prev[j] = j
	}

	for i := 1; i <= len(a); i++ {
		curr := make([]int, len(b)+1)
		curr[0] = i
		for j := 1; j <= len(b); j++ {
			cost := 1
			if a[i-1] == b[j-1] {
				cost = 0
			}
			curr[j] = min(curr[j-1]+1, prev[j]+1, prev[j-1]+cost)
		}
		prev = curr
	}

	return prev[len(b)]
}
