package fuzzy

import "strings"

// exactMarker prefixes a term that must match as a contiguous
// substring rather than a subsequence.
const exactMarker = '\''

// Pattern is a parsed query: one matcher per whitespace-delimited term,
// all evaluated against the same candidate with AND semantics.
// Immutable once built and safe to share across concurrent workers.
type Pattern struct {
	terms []Matcher
	opts  MatchOptions
}

func NewPattern(input string, opts MatchOptions) *Pattern {
	return &Pattern{
		terms: parseTerms(input, opts),
		opts:  opts,
	}
}

// TermCount reports how many terms the query parsed into.
func (p *Pattern) TermCount() int {
	return len(p.terms)
}

// Options returns the options every term is evaluated with.
func (p *Pattern) Options() MatchOptions {
	return p.opts
}

// Matches evaluates every term in order against input. All terms must
// succeed; evaluation short-circuits on the first failure. On success
// the per-term results come back in term order.
func (p *Pattern) Matches(input []byte) ([]MatchResult, bool) {
	results := make([]MatchResult, 0, len(p.terms))
	for _, m := range p.terms {
		result, ok := m.Match(input, p.opts)
		if !ok {
			return nil, false
		}
		results = append(results, result)
	}
	return results, true
}

func parseTerm(term string, opts MatchOptions) Matcher {
	if term[0] == exactMarker {
		return NewExactMatcher(term[1:], opts)
	}
	return NewFuzzyMatcher(term, opts)
}

func parseTerms(input string, opts MatchOptions) []Matcher {
	var terms []Matcher
	for _, t := range strings.Fields(input) {
		terms = append(terms, parseTerm(t, opts))
	}
	return terms
}
