// Package compound implements the compound-aware correction pass: a
// left-to-right walk over a token sequence that, at each position, chooses
// among keeping the token's own best correction, merging it into the
// previous output part, or splitting it into two queries.
package compound

import (
	"strings"

	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/editdist"
	"github.com/gosymspell/compoundspell/internal/index"
	"github.com/gosymspell/compoundspell/internal/lookup"
	"github.com/gosymspell/compoundspell/internal/tokenize"
)

// Result is the single suggestion LookupCompound produces for an entire
// input string.
type Result struct {
	Term     string
	Distance int
	Count    int64
}

// LookupCompound tokenizes input and builds a corrected string left to
// right, combining or splitting tokens per the heuristics below, then
// scores the joined result against the raw input.
func LookupCompound(lang *index.Language, cfg *config.Config, input string, k int) Result {
	tokens := tokenize.Words(input)
	if len(tokens) == 0 {
		return Result{Term: "", Distance: 0, Count: 0}
	}

	parts := make([]lookup.Suggestion, 0, len(tokens))
	lastCombined := false

	for i, t := range tokens {
		s := lookup.Lookup(lang, cfg, t, k)

		if i >= 1 && !lastCombined && tryCombine(lang, cfg, k, tokens[i-1], t, &parts, s) {
			lastCombined = true
			continue
		}
		lastCombined = false

		if len(s) > 0 && (s[0].Distance == 0 || len([]rune(t)) == 1) {
			parts = append(parts, s[0])
			continue
		}

		parts = append(parts, bestSplit(lang, cfg, k, t, s))
	}

	joined := joinTerms(parts)
	return Result{
		Term:     joined,
		Distance: editdist.Distance(joined, input),
		Count:    minCount(parts),
	}
}

// tryCombine looks up the previous token's raw text concatenated with the
// current token's raw text and, if that beats keeping them apart, replaces
// the previous output part in place. Returns true if the merge fired.
func tryCombine(lang *index.Language, cfg *config.Config, k int, prevRaw, curRaw string, parts *[]lookup.Suggestion, curBest lookup.Suggestions) bool {
	if len(*parts) == 0 {
		return false
	}
	combined := prevRaw + curRaw
	c := lookup.Lookup(lang, cfg, combined, k)
	if len(c) == 0 {
		return false
	}

	p := (*parts)[len(*parts)-1]
	b2 := syntheticOrBest(curBest, curRaw, k)

	unmerged := editdist.Distance(prevRaw+" "+curRaw, p.Term+" "+b2.Term)
	if c[0].Distance+1 >= unmerged {
		return false
	}

	(*parts)[len(*parts)-1] = lookup.Suggestion{
		Term:     c[0].Term,
		Distance: c[0].Distance + 1,
		Count:    c[0].Count,
	}
	return true
}

// bestSplit evaluates every split of t into two queries and returns the
// minimum-(distance, -count) proposal, falling back to the whole-token
// best (or a placeholder holding t itself with distance k+1 and count 0)
// if no split survives.
func bestSplit(lang *index.Language, cfg *config.Config, k int, t string, whole lookup.Suggestions) lookup.Suggestion {
	runes := []rune(t)
	proposals := make([]lookup.Suggestion, 0, len(runes))
	if len(whole) > 0 {
		proposals = append(proposals, whole[0])
	}

	var wholeTerm string
	if len(whole) > 0 {
		wholeTerm = whole[0].Term
	}

	for j := 1; j < len(runes); j++ {
		a := string(runes[:j])
		b := string(runes[j:])

		A := lookup.Lookup(lang, cfg, a, k)
		if len(A) == 0 {
			continue
		}
		B := lookup.Lookup(lang, cfg, b, k)

		if wholeTerm != "" && (A[0].Term == wholeTerm || (len(B) > 0 && B[0].Term == wholeTerm)) {
			// The split just reproduces the whole-token correction already
			// seeded at proposals[0]; stop searching further positions.
			proposals = proposals[:1]
			break
		}

		if len(B) == 0 {
			continue
		}

		joined := A[0].Term + " " + B[0].Term
		proposal := lookup.Suggestion{
			Term:     joined,
			Distance: editdist.Distance(t, joined),
			Count:    minInt64(A[0].Count, B[0].Count),
		}
		proposals = append(proposals, proposal)
		if proposal.Distance == 1 {
			break
		}
	}

	if len(proposals) == 0 {
		return lookup.Suggestion{Term: t, Distance: k + 1, Count: 0}
	}

	best := proposals[0]
	for _, p := range proposals[1:] {
		if p.Distance < best.Distance || (p.Distance == best.Distance && p.Count > best.Count) {
			best = p
		}
	}
	return best
}

// syntheticOrBest returns curBest's top suggestion, or a synthetic
// never-win placeholder when curBest is empty, per the combine rule's b2.
func syntheticOrBest(curBest lookup.Suggestions, curRaw string, k int) lookup.Suggestion {
	if len(curBest) > 0 {
		return curBest[0]
	}
	return lookup.Suggestion{Term: curRaw, Distance: k + 1, Count: 0}
}

func joinTerms(parts []lookup.Suggestion) string {
	terms := make([]string, len(parts))
	for i, p := range parts {
		terms[i] = p.Term
	}
	return strings.Join(terms, " ")
}

func minCount(parts []lookup.Suggestion) int64 {
	if len(parts) == 0 {
		return 0
	}
	m := parts[0].Count
	for _, p := range parts[1:] {
		if p.Count < m {
			m = p.Count
		}
	}
	return m
}

func minInt64(a, b int64) int64 {
	if a < b {
		return a
	}
	return b
}
