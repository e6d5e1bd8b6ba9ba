package fuzzy

import "unicode"

// MatchOptions configures how matchers compare query and candidate.
// Matchers fold case with unicode.ToLower unless CaseSensitive is set.
// Byte offsets are only collected when MatchPosition is set.
type MatchOptions struct {
	CaseSensitive bool
	MatchPosition bool
}

// MatchResult is the outcome of one term against one candidate.
// Positions holds one byte offset per query character and is nil unless
// MatchOptions.MatchPosition was set.
type MatchResult struct {
	Score     int
	Positions []int
}

// Matcher scores a single query term against a candidate byte string.
// Implementations are immutable after construction and safe to share
// across goroutines. opts must be the options the matcher was built
// with; Pattern guarantees this.
type Matcher interface {
	Match(input []byte, opts MatchOptions) (MatchResult, bool)
}

func foldRune(c rune, opts MatchOptions) rune {
	if opts.CaseSensitive {
		return c
	}
	return unicode.ToLower(c)
}

func foldTerm(term string, opts MatchOptions) []rune {
	chars := []rune(term)
	if opts.CaseSensitive {
		return chars
	}
	for i, c := range chars {
		chars[i] = unicode.ToLower(c)
	}
	return chars
}

// FuzzyMatcher matches its term as a subsequence of the candidate.
type FuzzyMatcher struct {
	term []rune
}

func NewFuzzyMatcher(term string, opts MatchOptions) *FuzzyMatcher {
	return &FuzzyMatcher{term: foldTerm(term, opts)}
}

// Match runs a single greedy left-to-right pass: every candidate
// codepoint equal to the pending query character is taken immediately,
// so the first completing subsequence wins, not necessarily the
// highest-scoring one. That greediness is part of the scoring contract.
func (m *FuzzyMatcher) Match(input []byte, opts MatchOptions) (MatchResult, bool) {
	if len(m.term) == 0 || len(input) == 0 {
		return MatchResult{}, false
	}

	state := stateBeginning
	totalScore := 0

	var positions []int
	if opts.MatchPosition {
		positions = make([]int, len(m.term))
	}

	termIndex := 0
	current := m.term[0]

	lastMatch := 0
	charIndex := 0
	byteIndex := 0
	for byteIndex < len(input) {
		c, width, ok := nextCodePoint(input[byteIndex:])
		if !ok {
			break
		}
		if foldRune(c, opts) == current {
			distance := 0
			if termIndex != 0 {
				distance = charIndex - lastMatch
			}
			totalScore += bonusAt(state, c, distance)
			lastMatch = charIndex
			if opts.MatchPosition {
				positions[termIndex] = byteIndex
			}
			termIndex++
			if termIndex == len(m.term) {
				return MatchResult{Score: totalScore, Positions: positions}, true
			}
			current = m.term[termIndex]
		}
		state = stateFromChar(c)
		charIndex++
		byteIndex += width
	}

	return MatchResult{}, false
}
