// Package lookup implements the single-term symmetric-delete BFS: given a
// query token, it walks the delete neighborhood of the input, intersects
// it with the dictionary index, and ranks the resulting candidates.
package lookup

import (
	"sort"
	"unicode/utf8"

	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/editdist"
	"github.com/gosymspell/compoundspell/internal/index"
)

// Suggestion is one ranked correction candidate.
type Suggestion struct {
	Term     string
	Distance int
	Count    int64
}

// Suggestions is a ranked list of Suggestion, sorted ascending by distance
// then descending by count.
type Suggestions []Suggestion

func (s Suggestions) Len() int      { return len(s) }
func (s Suggestions) Swap(i, j int) { s[i], s[j] = s[j], s[i] }
func (s Suggestions) Less(i, j int) bool {
	if s[i].Distance != s[j].Distance {
		return s[i].Distance < s[j].Distance
	}
	return s[i].Count > s[j].Count
}

// passesNoiseFilter reports whether a candidate's own count is plausible
// enough to surface as a vocabulary term: either the count clears the
// configured high-confidence threshold outright, or the candidate is not
// a short/noisy string and has been observed at all.
func passesNoiseFilter(cfg *config.Config, length int, count int64) bool {
	if count > cfg.NoiseMinCount {
		return true
	}
	return length > cfg.NoiseMinLength && count > 0
}

// Lookup returns ranked suggestions for input within edit distance k by
// walking the delete neighborhood of input breadth-first and intersecting
// each candidate against the dictionary index.
func Lookup(lang *index.Language, cfg *config.Config, input string, k int) Suggestions {
	inputLen := utf8.RuneCountInString(input)
	if inputLen == 0 {
		return nil
	}
	if inputLen-k > lang.MaxLength() {
		return nil
	}

	type queued struct {
		s string
		n int // rune length, cached
	}

	candidates := []queued{{input, inputLen}}
	candidateSeen := map[string]struct{}{input: {}}
	suggestionsSeen := map[string]struct{}{}
	var best Suggestions

	emit := func(term string, distance int, count int64) {
		if len(best) > 0 && cfg.Verbose < config.VerboseAll && best[0].Distance > distance {
			best = best[:0]
		}
		best = append(best, Suggestion{Term: term, Distance: distance, Count: count})
		suggestionsSeen[term] = struct{}{}
	}

	for qi := 0; qi < len(candidates); qi++ {
		c := candidates[qi]

		if cfg.Verbose < config.VerboseAll && len(best) > 0 && inputLen-c.n > best[0].Distance {
			break
		}

		if entry, ok := lang.Lookup(c.s); ok {
			if _, already := suggestionsSeen[c.s]; !already &&
				passesNoiseFilter(cfg, c.n, entry.Count) {
				distance := inputLen - c.n
				emit(c.s, distance, entry.Count)
				if cfg.Verbose < config.VerboseAll && distance == 0 {
					break
				}
			}

			for _, s := range entry.Suggestions {
				w := lang.Term(s)
				if _, already := suggestionsSeen[w]; already {
					continue
				}
				wLen := utf8.RuneCountInString(w)

				var distance int
				switch {
				case wLen == c.n:
					distance = inputLen - c.n
				case inputLen == c.n:
					distance = wLen - c.n
				default:
					distance = editdist.Distance(w, input)
				}

				if cfg.Verbose < config.VerboseAll && len(best) > 0 && distance > best[0].Distance {
					continue
				}
				if distance > k {
					continue
				}

				wEntry, _ := lang.Lookup(w)
				if passesNoiseFilter(cfg, wLen, wEntry.Count) {
					emit(w, distance, wEntry.Count)
				}
			}
		}

		if inputLen-c.n < k {
			expand := cfg.Verbose >= config.VerboseAll || len(best) == 0 || inputLen-c.n < best[0].Distance
			if expand {
				for d := range editdist.Deletes(c.s, 1) {
					if _, seen := candidateSeen[d]; seen {
						continue
					}
					candidateSeen[d] = struct{}{}
					candidates = append(candidates, queued{d, utf8.RuneCountInString(d)})
				}
			}
		}
	}

	sort.Stable(best)

	if cfg.Verbose == config.VerboseTop && len(best) > 1 {
		best = best[:1]
	}
	return best
}
