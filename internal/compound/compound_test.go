package compound

import (
	"strings"
	"testing"

	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/editdist"
	"github.com/gosymspell/compoundspell/internal/index"
)

func newLang(t *testing.T, opts ...config.Option) (*index.Language, *config.Config) {
	t.Helper()
	cfg, err := config.New(opts...)
	if err != nil {
		t.Fatalf("config.New: %v", err)
	}
	dict := index.NewDictionary(cfg)
	return dict.Language("en"), cfg
}

func TestLookupCompoundEmptyInput(t *testing.T) {
	lang, cfg := newLang(t)
	got := LookupCompound(lang, cfg, "", 2)
	if got.Term != "" || got.Distance != 0 || got.Count != 0 {
		t.Errorf("got %+v, want zero-valued result on empty input", got)
	}
}

func TestLookupCompoundExactMatch(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	lang.CreateDictionaryEntry("hello", 1000)

	got := LookupCompound(lang, cfg, "hello", 2)
	if got.Term != "hello" || got.Distance != 0 {
		t.Errorf("got %+v, want hello/0", got)
	}
}

func TestLookupCompoundIdempotentOnCorrectInput(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	for _, w := range []string{"the", "cat", "sat"} {
		lang.CreateDictionaryEntry(w, 1000)
	}

	input := "the cat sat"
	got := LookupCompound(lang, cfg, input, 2)
	if got.Term != strings.ToLower(input) {
		t.Errorf("got term %q, want %q", got.Term, strings.ToLower(input))
	}
	if got.Distance != 0 {
		t.Errorf("got distance %d, want 0", got.Distance)
	}
}

func TestLookupCompoundMergesSplitWord(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	lang.CreateDictionaryEntry("where", 1000)

	got := LookupCompound(lang, cfg, "wh ere", 2)
	if got.Term != "where" {
		t.Errorf("got term %q, want %q", got.Term, "where")
	}
}

func TestLookupCompoundSplitsConcatenatedWord(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	lang.CreateDictionaryEntry("cat", 1000)
	lang.CreateDictionaryEntry("hat", 1000)

	got := LookupCompound(lang, cfg, "cathat", 2)
	if got.Term != "cat hat" {
		t.Errorf("got term %q, want %q", got.Term, "cat hat")
	}
	if got.Distance != 1 {
		t.Errorf("got distance %d, want 1", got.Distance)
	}
}

func TestLookupCompoundMonotonicityBound(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	for _, w := range []string{"the", "cat", "sat", "where", "cat", "hat"} {
		lang.CreateDictionaryEntry(w, 1000)
	}

	for _, input := range []string{"the cat sat", "wh ere", "cathat"} {
		got := LookupCompound(lang, cfg, input, 2)
		n := len(strings.Fields(input))
		bound := editdist.Distance(input, strings.ToLower(input)) + n
		if got.Distance > bound {
			t.Errorf("input %q: distance %d exceeds bound %d", input, got.Distance, bound)
		}
	}
}

func TestLookupCompoundSingleCharacterTokenNeverSplit(t *testing.T) {
	lang, cfg := newLang(t, config.WithEditDistanceMax(2))
	lang.CreateDictionaryEntry("a", 1000)

	got := LookupCompound(lang, cfg, "a", 2)
	if got.Term != "a" {
		t.Errorf("got term %q, want %q", got.Term, "a")
	}
}
