// Package index implements the per-language symmetric-delete dictionary:
// an append-only term arena plus a map from every (key) reachable by up to
// k deletes to either a single original-term pointer or a record carrying
// the term's own count and its suggestion list.
package index

import (
	"math"
	"unicode/utf8"

	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/editdist"
)

// TermID is the dense, stable handle minted for a vocabulary term the
// first time its count reaches the configured threshold. IDs are never
// reused and never refer to a different term once minted.
type TermID int32

type entryKind uint8

const (
	kindSingle entryKind = iota
	kindMulti
)

// indexEntry is the tagged variant named in the design notes: a pure
// delete pointer to exactly one term (Single), or a record carrying an
// own count and an insertion-ordered, deduplicated suggestion list
// (Multi). A Single is promoted to Multi in place the moment a second
// piece of information needs to attach to the same key.
type indexEntry struct {
	kind   entryKind
	single TermID
	multi  *multiRecord
}

type multiRecord struct {
	count       int64
	suggestions []TermID
}

// Entry is the read-only view Lookup operates on: a Single delete pointer
// is presented as a one-element suggestion list with no own count (count
// 0).
type Entry struct {
	Count       int64
	Suggestions []TermID
}

// Dictionary holds one Language per language key, created on first use.
type Dictionary struct {
	cfg       *config.Config
	languages map[string]*Language
}

// NewDictionary creates an empty multi-language dictionary.
func NewDictionary(cfg *config.Config) *Dictionary {
	return &Dictionary{cfg: cfg, languages: make(map[string]*Language)}
}

// Language returns the Language for the given key, creating it empty if
// this is the first time it is seen.
func (d *Dictionary) Language(language string) *Language {
	l, ok := d.languages[language]
	if !ok {
		l = newLanguage(d.cfg)
		d.languages[language] = l
	}
	return l
}

// Language is a single (language, vocabulary) index: the dictionary map,
// the term arena, and the running maximum term length. It is mutated only
// by CreateDictionaryEntry; Lookup and LookupCompound only read it.
type Language struct {
	cfg *config.Config

	dictionary map[string]*indexEntry
	wordlist   []string
	minted     map[string]TermID
	maxlength  int

	// Bigrams is declared but never populated or consulted by this
	// package: a hook reserved for future context-aware language modeling.
	Bigrams map[string]int64
}

func newLanguage(cfg *config.Config) *Language {
	return &Language{
		cfg:        cfg,
		dictionary: make(map[string]*indexEntry),
		minted:     make(map[string]TermID),
		Bigrams:    make(map[string]int64),
	}
}

// MaxLength returns the running upper bound on the rune-length of any
// term currently in the word arena.
func (l *Language) MaxLength() int { return l.maxlength }

// Term returns the original string minted for id.
func (l *Language) Term(id TermID) string { return l.wordlist[id] }

// Lookup retrieves the view of key used by the single-term lookup BFS. The
// second return value is false if key is absent from the index.
func (l *Language) Lookup(key string) (Entry, bool) {
	e, ok := l.dictionary[key]
	if !ok {
		return Entry{}, false
	}
	if e.kind == kindSingle {
		return Entry{Count: 0, Suggestions: []TermID{e.single}}, true
	}
	return Entry{Count: e.multi.count, Suggestions: e.multi.suggestions}, true
}

// CreateDictionaryEntry records one more observation of key: count == 0
// means "observed one more occurrence", count > 0 means "add this count
// to key's stored total". Reports whether this call minted a new term id
// (the count just crossed the configured threshold for the first time).
func (l *Language) CreateDictionaryEntry(key string, count int64) bool {
	if count < 0 {
		return false
	}
	delta := count
	if count == 0 {
		delta = 1
	}

	own := l.ensureOwnEntry(key)
	_, alreadyMinted := l.minted[key]
	own.count = clampAdd(own.count, delta)

	if alreadyMinted || own.count < l.cfg.CountThreshold {
		return false
	}

	t := TermID(len(l.wordlist))
	l.wordlist = append(l.wordlist, key)
	l.minted[key] = t
	own.suggestions = appendUnique(own.suggestions, t)

	for d := range editdist.Deletes(key, l.cfg.EditDistanceMax) {
		l.insertDeletePointer(d, t, key)
	}
	return true
}

// ensureOwnEntry returns the Multi record backing key's own slot in the
// dictionary, creating it (and bumping maxlength) if this is the first
// time key has appeared in any role, or promoting it from a Single delete
// pointer in place if key was first seen only as a delete of another term.
func (l *Language) ensureOwnEntry(key string) *multiRecord {
	e, ok := l.dictionary[key]
	if !ok {
		e = &indexEntry{kind: kindMulti, multi: &multiRecord{}}
		l.dictionary[key] = e
		if n := utf8.RuneCountInString(key); n > l.maxlength {
			l.maxlength = n
		}
		return e.multi
	}
	if e.kind == kindSingle {
		prev := e.single
		e.kind = kindMulti
		e.multi = &multiRecord{suggestions: []TermID{prev}}
	}
	return e.multi
}

// insertDeletePointer records that d is reachable by deleting characters
// from key (whose freshly minted id is t), following the Single -> Multi
// promotion and best-surplus suggestion policy.
func (l *Language) insertDeletePointer(d string, t TermID, key string) {
	e, ok := l.dictionary[d]
	if !ok {
		l.dictionary[d] = &indexEntry{kind: kindSingle, single: t}
		return
	}
	switch e.kind {
	case kindSingle:
		if e.single == t {
			return
		}
		prev := e.single
		e.kind = kindMulti
		e.multi = &multiRecord{suggestions: []TermID{prev}}
		l.addLowestDistance(e.multi, key, t, d)
	case kindMulti:
		if containsID(e.multi.suggestions, t) {
			return
		}
		l.addLowestDistance(e.multi, key, t, d)
	}
}

// addLowestDistance implements the verbosity-dependent best-only policy
// for delete-derived suggestion lists: below VerboseAll, only the
// suggestions of lowest surplus length |suggestion| - |d| are kept, ties
// append, worse candidates are dropped; at VerboseAll every candidate is
// appended.
func (l *Language) addLowestDistance(e *multiRecord, suggestion string, t TermID, d string) {
	if l.cfg.Verbose >= config.VerboseAll {
		e.suggestions = appendUnique(e.suggestions, t)
		return
	}

	surplus := utf8.RuneCountInString(suggestion) - utf8.RuneCountInString(d)
	if len(e.suggestions) == 0 {
		e.suggestions = append(e.suggestions, t)
		return
	}

	minSurplus := l.surplusOf(e.suggestions[0], d)
	for _, s := range e.suggestions[1:] {
		if su := l.surplusOf(s, d); su < minSurplus {
			minSurplus = su
		}
	}

	switch {
	case surplus < minSurplus:
		e.suggestions = append(e.suggestions[:0], t)
	case surplus == minSurplus:
		e.suggestions = appendUnique(e.suggestions, t)
	}
}

func (l *Language) surplusOf(t TermID, d string) int {
	return utf8.RuneCountInString(l.wordlist[t]) - utf8.RuneCountInString(d)
}

func appendUnique(ids []TermID, t TermID) []TermID {
	if containsID(ids, t) {
		return ids
	}
	return append(ids, t)
}

func containsID(ids []TermID, t TermID) bool {
	for _, id := range ids {
		if id == t {
			return true
		}
	}
	return false
}

// clampAdd adds b to a, saturating at math.MaxInt64 instead of overflowing.
func clampAdd(a, b int64) int64 {
	if math.MaxInt64-a < b {
		return math.MaxInt64
	}
	return a + b
}
