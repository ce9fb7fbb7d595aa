package lexicon

import (
	_ "embed"
	"strings"
)

//go:embed stopwords_english.txt
var englishStopwordData string

// Set is an immutable set of words. Membership is case-sensitive.
type Set struct {
	words map[string]struct{}
}

// NewSet builds a Set from the given words.
func NewSet(words ...string) Set {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		m[w] = struct{}{}
	}
	return Set{words: m}
}

// EnglishStopwords returns the standard English stopword list (179 lowercase words).
func EnglishStopwords() Set {
	return NewSet(strings.Fields(englishStopwordData)...)
}

// Contains reports whether word is in the set.
func (s Set) Contains(word string) bool {
	_, ok := s.words[word]
	return ok
}

// Len returns the number of words in the set.
func (s Set) Len() int {
	return len(s.words)
}
