package scan

import (
	"runtime"
	"sync"

	"fuzzyfind/internal/fuzzy"
)

const defaultChunkSize = 32

// Match is one candidate accepted by the pattern, with the per-term
// results so consumers can render scores or matched positions.
type Match struct {
	Path    string
	Results []fuzzy.MatchResult
}

// Options tunes the worker pool.
type Options struct {
	Workers   int
	ChunkSize int
}

func (o Options) withDefaults() Options {
	if o.Workers <= 0 {
		o.Workers = runtime.NumCPU()
	}
	if o.ChunkSize <= 0 {
		o.ChunkSize = defaultChunkSize
	}
	return o
}

// Search evaluates pattern against every candidate on a pool of
// workers, each claiming fixed-size chunks. The returned channel is
// buffered to hold every candidate, so producers never block on the
// consumer; it is closed once all workers finish. Matches arrive in
// nondeterministic order.
func Search(pattern *fuzzy.Pattern, candidates []string, opts Options) <-chan Match {
	opts = opts.withDefaults()

	matches := make(chan Match, len(candidates))
	chunks := make(chan []string)

	var wg sync.WaitGroup
	for w := 0; w < opts.Workers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for chunk := range chunks {
				for _, path := range chunk {
					if results, ok := pattern.Matches([]byte(path)); ok {
						matches <- Match{Path: path, Results: results}
					}
				}
			}
		}()
	}

	go func() {
		for start := 0; start < len(candidates); start += opts.ChunkSize {
			end := start + opts.ChunkSize
			if end > len(candidates) {
				end = len(candidates)
			}
			chunks <- candidates[start:end]
		}
		close(chunks)
		wg.Wait()
		close(matches)
	}()

	return matches
}
