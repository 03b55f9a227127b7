// Package english ships the default English frequency dictionary named in
// the project's end-to-end scenarios, embedded at build time so the
// corrector works out of the box with no external data file.
package english

import (
	_ "embed"
	"bytes"

	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/dictio"
	"github.com/gosymspell/compoundspell/internal/index"
)

//go:embed freq.txt
var freqData []byte

// Language is the language key the embedded dictionary is loaded under.
const Language = "en"

// New builds a fresh index.Dictionary with the given options and loads the
// embedded English frequency dictionary into its "en" Language. It returns
// the dictionary, its config, and the number of entries loaded.
func New(opts ...config.Option) (*index.Dictionary, *config.Config, int, error) {
	cfg, err := config.New(opts...)
	if err != nil {
		return nil, nil, 0, err
	}
	dict := index.NewDictionary(cfg)
	n := dictio.LoadFrequencyReader(dict.Language(Language), bytes.NewReader(freqData), 0, 1)
	return dict, cfg, n, nil
}
