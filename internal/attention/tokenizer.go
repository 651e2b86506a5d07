// Package attention analyzes how attention mass is distributed across the
// tokens of a text span: it reconciles an arbitrary attention matrix to the
// token count, builds heatmap bundles, scores per-token importance and
// summarizes self-attention, influence and entropy patterns. All functions
// are pure; the package never logs and keeps no state between calls.
package attention

import "strings"

// Tokenize splits text into whitespace-delimited tokens. Empty or
// whitespace-only text yields an empty sequence. No punctuation handling.
func Tokenize(text string) []string {
	return strings.Fields(text)
}
