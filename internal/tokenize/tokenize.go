// Package tokenize extracts word-like tokens from free text, the single
// tokenization rule shared by corpus ingestion and query parsing.
package tokenize

import (
	"regexp"
	"strings"
)

// wordPattern matches maximal runs of letters, digits, or apostrophes
// (ASCII and the two common typographic variants), excluding underscore.
var wordPattern = regexp.MustCompile(`[\p{L}\p{N}'\x{2019}\x{02BC}]+`)

// Words lowercases text and returns its word-like runs in input order. The
// returned slice is never nil but may be empty.
func Words(text string) []string {
	found := wordPattern.FindAllString(strings.ToLower(text), -1)
	if found == nil {
		return []string{}
	}
	return found
}
