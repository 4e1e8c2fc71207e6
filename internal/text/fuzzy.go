package text

// Ratio measures similarity of two strings in [0,1] as 2*M/T, where M is
// the total length of matched blocks found by repeatedly taking the longest
// common contiguous run (ties broken toward the earliest run), and T is the
// combined length. Comparison is rune-wise; callers lowercase beforehand
// when they want case-insensitive matching.
func Ratio(a, b string) float64 {
	ra, rb := []rune(a), []rune(b)
	total := len(ra) + len(rb)
	if total == 0 {
		return 1
	}

	// Index positions of every rune in b for the inner match loop.
	b2j := make(map[rune][]int, len(rb))
	for j, c := range rb {
		b2j[c] = append(b2j[c], j)
	}

	matches := 0
	type span struct{ alo, ahi, blo, bhi int }
	queue := []span{{0, len(ra), 0, len(rb)}}
	for len(queue) > 0 {
		s := queue[len(queue)-1]
		queue = queue[:len(queue)-1]

		i, j, k := longestMatch(ra, b2j, s.alo, s.ahi, s.blo, s.bhi)
		if k == 0 {
			continue
		}
		matches += k
		queue = append(queue,
			span{s.alo, i, s.blo, j},
			span{i + k, s.ahi, j + k, s.bhi},
		)
	}

	return 2 * float64(matches) / float64(total)
}

// longestMatch finds the longest run ra[i:i+k] == rb[j:j+k] with
// alo <= i < i+k <= ahi and blo <= j < j+k <= bhi, preferring the
// earliest i then earliest j among equals.
func longestMatch(ra []rune, b2j map[rune][]int, alo, ahi, blo, bhi int) (besti, bestj, bestsize int) {
	besti, bestj = alo, blo
	j2len := make(map[int]int)
	for i := alo; i < ahi; i++ {
		newj2len := make(map[int]int)
		for _, j := range b2j[ra[i]] {
			if j < blo {
				continue
			}
			if j >= bhi {
				break
			}
			k := j2len[j-1] + 1
			newj2len[j] = k
			if k > bestsize {
				besti, bestj, bestsize = i-k+1, j-k+1, k
			}
		}
		j2len = newj2len
	}
	return besti, bestj, bestsize
}

// ClosestMatch returns the candidate most similar to query with
// Ratio >= cutoff, or false when nothing clears it. The first of equally
// good candidates wins, keeping resolution deterministic.
func ClosestMatch(query string, candidates []string, cutoff float64) (string, bool) {
	best := ""
	bestScore := 0.0
	found := false
	for _, c := range candidates {
		score := Ratio(query, c)
		if score < cutoff {
			continue
		}
		if !found || score > bestScore {
			best, bestScore, found = c, score, true
		}
	}
	return best, found
}
