package logging

import "testing"

func TestNewReturnsUsableLogger(t *testing.T) {
	logger := New(false)
	if logger == nil {
		t.Fatal("New returned nil")
	}
	if logger.Enabled(nil, -4) {
		t.Error("debug-level logging should be disabled by default")
	}
}

func TestNewVerboseEnablesDebug(t *testing.T) {
	logger := New(true)
	if !logger.Enabled(nil, -4) {
		t.Error("debug-level logging should be enabled in verbose mode")
	}
}
