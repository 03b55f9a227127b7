// Package dictio loads vocabulary into an index.Language from two external
// formats: a column-oriented frequency dictionary file, and a free-text
// corpus.
package dictio

import (
	"bufio"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/gosymspell/compoundspell/internal/index"
	"github.com/gosymspell/compoundspell/internal/tokenize"
)

// singleCharAllow is the set of single-character tokens a free-text corpus
// is allowed to contribute; every other single-character token is dropped.
var singleCharAllow = map[string]struct{}{"a": {}, "i": {}}

// LoadFrequencyFile opens path and loads it as a frequency dictionary via
// LoadFrequencyReader. Returns the number of entries accumulated and any
// file-open error (a missing file is the caller's responsibility to log
// and treat as a no-op).
func LoadFrequencyFile(lang *index.Language, path string, termIndex, countIndex int) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return LoadFrequencyReader(lang, f, termIndex, countIndex), nil
}

// LoadFrequencyReader reads one record per line, fields separated by any
// run of whitespace. Lines with fewer than two fields, or whose count
// column does not parse as a 64-bit signed integer, are skipped silently.
// Returns the number of lines that were accumulated into lang.
func LoadFrequencyReader(lang *index.Language, r io.Reader, termIndex, countIndex int) int {
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		fields := strings.Fields(scanner.Text())
		if len(fields) < 2 || termIndex >= len(fields) || countIndex >= len(fields) {
			continue
		}
		count, err := strconv.ParseInt(fields[countIndex], 10, 64)
		if err != nil {
			continue
		}
		lang.CreateDictionaryEntry(fields[termIndex], count)
		n++
	}
	return n
}

// LoadCorpusFile opens path and loads it as a free-text corpus via
// LoadCorpusReader.
func LoadCorpusFile(lang *index.Language, path string) (int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, err
	}
	defer f.Close()
	return LoadCorpusReader(lang, f), nil
}

// LoadCorpusReader tokenizes r per internal/tokenize and records one
// occurrence (count 0, meaning "observed one more occurrence") of each
// token, dropping single-character tokens outside {a, i}. Returns the
// number of tokens accumulated.
func LoadCorpusReader(lang *index.Language, r io.Reader) int {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0
	}
	n := 0
	for _, w := range tokenize.Words(string(data)) {
		if len([]rune(w)) == 1 {
			if _, ok := singleCharAllow[w]; !ok {
				continue
			}
		}
		lang.CreateDictionaryEntry(w, 0)
		n++
	}
	return n
}
