package fuzzy

// ExactMatcher matches its term as a contiguous substring. A KMP
// failure function over the term's codepoints is precomputed once per
// term, so matched prefixes are never rescanned and overlapping
// occurrences can restart cheaply.
type ExactMatcher struct {
	term    []rune
	failure []int
}

func NewExactMatcher(term string, opts MatchOptions) *ExactMatcher {
	chars := foldTerm(term, opts)
	return &ExactMatcher{
		term:    chars,
		failure: buildFailureFunction(chars),
	}
}

// Match scans the candidate byte by byte, keeping the best-scoring
// occurrence. An occurrence's score is seeded entirely from its first
// character; the interior earns nothing since exactness already implies
// adjacency. Replacement requires a strictly greater score, so among
// equal-scoring occurrences the earliest wins.
func (m *ExactMatcher) Match(input []byte, opts MatchOptions) (MatchResult, bool) {
	if len(m.term) == 0 || len(input) == 0 {
		return MatchResult{}, false
	}

	state := stateBeginning
	i := 0
	j := 0

	matchStart := 0
	matchScore := 0
	bestStart := 0
	bestScore := 0

	for i < len(input) {
		c, _, ok := nextCodePoint(input[i:])
		if !ok {
			break
		}
		if foldRune(c, opts) == m.term[j] {
			if j == 0 {
				matchStart = i
				matchScore = bonusAt(state, c, 0)
			}
			i++
			j++
			if j == len(m.term) {
				if matchScore > bestScore {
					bestStart = matchStart
					bestScore = matchScore
				}
				j = m.failure[len(m.term)]
			}
		} else {
			if m.failure[j] < 0 {
				i++
				j = 0
			} else {
				j = m.failure[j]
			}
			if j == 0 {
				matchScore = 0
			}
		}
		state = stateFromChar(c)
	}

	if bestScore == 0 {
		return MatchResult{}, false
	}

	var positions []int
	if opts.MatchPosition {
		// char-count range, not the true byte span; only accurate for
		// single-byte matched codepoints
		positions = make([]int, len(m.term))
		for k := range positions {
			positions[k] = bestStart + k
		}
	}
	return MatchResult{Score: bestScore, Positions: positions}, true
}

// buildFailureFunction computes the KMP partial-match table over the
// term's codepoints. table[0] is -1 as sentinel; the final entry is the
// restart state after a complete occurrence, which permits overlaps.
func buildFailureFunction(term []rune) []int {
	table := make([]int, len(term)+1)
	table[0] = -1
	if len(term) == 0 {
		// nothing to scan; Match rejects empty terms before consulting
		// the table
		return table
	}

	pos := 1
	cnd := 0
	for pos < len(term) {
		if term[pos] == term[cnd] {
			table[pos] = table[cnd]
		} else {
			table[pos] = cnd
			cnd = table[cnd]
			for cnd >= 0 && table[pos] != table[cnd] {
				cnd = table[cnd]
			}
		}
		pos++
		cnd++
	}
	table[pos] = cnd

	return table
}
