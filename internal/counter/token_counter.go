package counter

import (
	"strings"
)

// TokenCounter counts whitespace-delimited tokens.
type TokenCounter struct{}

// NewTokenCounter creates a new TokenCounter instance.
func NewTokenCounter() Counter {
	return &TokenCounter{}
}

// Count returns the number of tokens in text, splitting on any Unicode
// whitespace; runs of whitespace never produce empty tokens.
func (tc *TokenCounter) Count(text string) int {
	if text == "" {
		return 0
	}
	return len(strings.Fields(text))
}

// Name returns the name of this counting method for logging and debugging.
func (tc *TokenCounter) Name() string {
	return "tokens"
}
