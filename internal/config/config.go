// Package config holds the tunable parameters of the corrector as an
// explicit value rather than process-wide globals.
package config

import "errors"

// Verbosity controls how many suggestions Lookup returns.
type Verbosity int

const (
	// VerboseTop returns only the single best suggestion.
	VerboseTop Verbosity = iota
	// VerboseClosest returns every suggestion at the minimum distance found.
	VerboseClosest
	// VerboseAll returns every suggestion within EditDistanceMax.
	VerboseAll
)

const (
	defaultEditDistanceMax = 2
	defaultCountThreshold  = 1
	defaultNoiseMinCount   = 100
	defaultNoiseMinLength  = 2
	defaultEnableCompound  = true
	defaultVerbosity       = VerboseTop
)

// Config collects the knobs named in the corrector's external interface.
// Build one with New and zero or more Options.
type Config struct {
	// EditDistanceMax bounds both delete-generation depth during indexing
	// and accepted suggestion distance at lookup time.
	EditDistanceMax int
	// Verbose selects how many suggestions Lookup returns. Must be
	// VerboseTop when EnableCompoundCheck is set.
	Verbose Verbosity
	// EnableCompoundCheck routes queries through the compound corrector
	// instead of plain single-term lookup.
	EnableCompoundCheck bool
	// CountThreshold is the minimum observed count before a term is
	// indexed and given its own deletes.
	CountThreshold int64
	// NoiseMinCount and NoiseMinLength parameterize the noise filter: a
	// direct-hit candidate is plausible as a vocabulary term when its
	// count exceeds NoiseMinCount, or its length exceeds NoiseMinLength
	// and its count is nonzero.
	NoiseMinCount  int64
	NoiseMinLength int
}

// Option configures a Config under construction.
type Option func(*Config)

// WithEditDistanceMax sets the maximum accepted edit distance.
func WithEditDistanceMax(k int) Option {
	return func(c *Config) { c.EditDistanceMax = k }
}

// WithVerbosity sets the lookup verbosity.
func WithVerbosity(v Verbosity) Option {
	return func(c *Config) { c.Verbose = v }
}

// WithCompoundCheck enables or disables the compound corrector.
func WithCompoundCheck(enabled bool) Option {
	return func(c *Config) { c.EnableCompoundCheck = enabled }
}

// WithCountThreshold sets the minimum count before a term is indexed.
func WithCountThreshold(threshold int64) Option {
	return func(c *Config) { c.CountThreshold = threshold }
}

// WithNoiseFilter overrides the noise-filter thresholds.
func WithNoiseFilter(minCount int64, minLength int) Option {
	return func(c *Config) {
		c.NoiseMinCount = minCount
		c.NoiseMinLength = minLength
	}
}

// New builds a Config from the documented defaults, applying opts in order.
func New(opts ...Option) (*Config, error) {
	c := &Config{
		EditDistanceMax:     defaultEditDistanceMax,
		Verbose:             defaultVerbosity,
		EnableCompoundCheck: defaultEnableCompound,
		CountThreshold:      defaultCountThreshold,
		NoiseMinCount:       defaultNoiseMinCount,
		NoiseMinLength:      defaultNoiseMinLength,
	}
	for _, opt := range opts {
		opt(c)
	}
	if err := c.validate(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) validate() error {
	if c.EditDistanceMax < 0 {
		return errors.New("config: EditDistanceMax must be >= 0")
	}
	if c.CountThreshold < 0 {
		return errors.New("config: CountThreshold must be >= 0")
	}
	if c.EnableCompoundCheck && c.Verbose != VerboseTop {
		return errors.New("config: Verbose must be VerboseTop when EnableCompoundCheck is set")
	}
	return nil
}
