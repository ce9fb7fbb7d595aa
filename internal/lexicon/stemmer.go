package lexicon

import (
	"github.com/kljensen/snowball"
)

// SnowballStemmer reduces words with the Snowball English stemmer.
// The category is ignored.
type SnowballStemmer struct{}

// NewSnowballStemmer creates a new SnowballStemmer.
func NewSnowballStemmer() *SnowballStemmer {
	return &SnowballStemmer{}
}

// Lemmatize returns the stem of word, or word itself if stemming fails.
func (s *SnowballStemmer) Lemmatize(word string, _ Category) string {
	if word == "" {
		return word
	}

	stemmed, err := snowball.Stem(word, "english", true)
	if err != nil || stemmed == "" {
		// if stemming fails, use the original token
		return word
	}
	return stemmed
}
