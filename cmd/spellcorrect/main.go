// Command spellcorrect is a thin line-oriented driver over the corrector
// core: it reads queries from stdin and prints ranked suggestions.
package main

import (
	"bufio"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gosymspell/compoundspell/english"
	"github.com/gosymspell/compoundspell/internal/compound"
	"github.com/gosymspell/compoundspell/internal/config"
	"github.com/gosymspell/compoundspell/internal/dictio"
	"github.com/gosymspell/compoundspell/internal/index"
	"github.com/gosymspell/compoundspell/internal/logging"
	"github.com/gosymspell/compoundspell/internal/lookup"
)

func main() {
	var (
		editDistanceMax int
		verbose         int
		useCompound     bool
		dictPath        string
	)

	rootCmd := &cobra.Command{
		Use:   "spellcorrect",
		Short: "Compound-aware spelling corrector",
		Long:  `Reads queries from stdin and writes ranked correction suggestions to stdout.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := logging.New(verbose > 0)

			if useCompound && verbose != 0 {
				return fmt.Errorf("--verbose must be 0 when --compound is set")
			}

			cfg, err := config.New(
				config.WithEditDistanceMax(editDistanceMax),
				config.WithVerbosity(config.Verbosity(verbose)),
				config.WithCompoundCheck(useCompound),
			)
			if err != nil {
				return err
			}

			dict, _, n, err := english.New(
				config.WithEditDistanceMax(cfg.EditDistanceMax),
				config.WithVerbosity(cfg.Verbose),
				config.WithCompoundCheck(cfg.EnableCompoundCheck),
				config.WithCountThreshold(cfg.CountThreshold),
			)
			if err != nil {
				logger.Error("failed to build embedded dictionary", "error", err)
				return err
			}
			logger.Info("loaded embedded dictionary", "entries", n)
			lang := dict.Language(english.Language)

			if dictPath != "" {
				loaded, err := dictio.LoadFrequencyFile(lang, dictPath, 0, 1)
				if err != nil {
					logger.Error("missing or unreadable corpus, continuing with built-in dictionary", "path", dictPath, "error", err)
				} else {
					logger.Info("loaded custom dictionary", "path", dictPath, "entries", loaded)
				}
			}

			return runLoop(cmd, lang, cfg)
		},
	}

	rootCmd.Flags().IntVar(&editDistanceMax, "max-edit-distance", 2, "Maximum accepted edit distance")
	rootCmd.Flags().IntVar(&verbose, "verbose", 0, "0=top suggestion, 1=all at min distance, 2=all within max distance")
	rootCmd.Flags().BoolVar(&useCompound, "compound", true, "Run queries through the compound corrector")
	rootCmd.Flags().StringVar(&dictPath, "dict", "", "Optional frequency dictionary file (term count, 0-based columns 0 and 1) to load in addition to the built-in English dictionary")

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runLoop reads stdin line by line until EOF or an empty line, writing one
// output line per returned suggestion (the compound path always returns
// exactly one).
func runLoop(cmd *cobra.Command, lang *index.Language, cfg *config.Config) error {
	scanner := bufio.NewScanner(cmd.InOrStdin())
	out := cmd.OutOrStdout()
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		if cfg.EnableCompoundCheck {
			r := compound.LookupCompound(lang, cfg, line, cfg.EditDistanceMax)
			fmt.Fprintf(out, "%s %d %d\n", r.Term, r.Distance, r.Count)
			continue
		}
		for _, s := range lookup.Lookup(lang, cfg, line, cfg.EditDistanceMax) {
			fmt.Fprintf(out, "%s %d %d\n", s.Term, s.Distance, s.Count)
		}
	}
	return scanner.Err()
}
