package config

import "testing"

func TestNewDefaults(t *testing.T) {
	c, err := New()
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.EditDistanceMax != 2 {
		t.Errorf("EditDistanceMax = %d, want 2", c.EditDistanceMax)
	}
	if !c.EnableCompoundCheck {
		t.Errorf("EnableCompoundCheck = false, want true")
	}
	if c.Verbose != VerboseTop {
		t.Errorf("Verbose = %v, want VerboseTop", c.Verbose)
	}
}

func TestNewRejectsCompoundWithHigherVerbosity(t *testing.T) {
	_, err := New(WithCompoundCheck(true), WithVerbosity(VerboseAll))
	if err == nil {
		t.Fatal("expected error combining compound check with verbosity > top")
	}
}

func TestNewRejectsNegativeEditDistance(t *testing.T) {
	if _, err := New(WithEditDistanceMax(-1)); err == nil {
		t.Fatal("expected error for negative EditDistanceMax")
	}
}

func TestWithNoiseFilter(t *testing.T) {
	c, err := New(WithNoiseFilter(50, 3))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if c.NoiseMinCount != 50 || c.NoiseMinLength != 3 {
		t.Errorf("got (%d, %d), want (50, 3)", c.NoiseMinCount, c.NoiseMinLength)
	}
}
