// Package lexicon provides the linguistic resources used to normalize text:
// an English stopword set, a part-of-speech tagger, and a lemmatizer keyed by
// coarse part-of-speech category.
//
// Resources are loaded once with New and passed explicitly to the stages that
// need them. A Resources value is never modified after construction, so it can
// be shared freely.
//
// Usage Example:
//
//	res, err := lexicon.New(lexicon.Lemma)
//	if err != nil {
//		return err
//	}
//	tags := res.Tagger.Tag([]string{"cheap", "phones"})
package lexicon

import (
	"fmt"
	"log/slog"
)

// Tagger assigns one Penn Treebank tag to each token of a pre-tokenized sequence.
type Tagger interface {
	// Tag returns a slice with exactly len(tokens) tags.
	Tag(tokens []string) []string
}

// Lemmatizer reduces a word to its base form for the given category.
// Words it does not know are returned unchanged.
type Lemmatizer interface {
	Lemmatize(word string, category Category) string
}

// Morphology selects how tokens are reduced to a base form.
type Morphology int

const (
	// Lemma uses dictionary lemmatization keyed by part of speech (default)
	Lemma Morphology = iota
	// Stem uses the Snowball English stemmer and ignores part of speech
	Stem
)

// String returns the string representation of the morphology.
func (m Morphology) String() string {
	switch m {
	case Lemma:
		return "lemma"
	case Stem:
		return "stem"
	default:
		return "unknown"
	}
}

// ParseMorphology converts a configuration value into a Morphology.
func ParseMorphology(s string) (Morphology, error) {
	switch s {
	case "", "lemma":
		return Lemma, nil
	case "stem":
		return Stem, nil
	default:
		return Lemma, fmt.Errorf("unknown morphology %q (want \"lemma\" or \"stem\")", s)
	}
}

// Resources bundles everything the normalizer needs.
type Resources struct {
	Stopwords  Set
	Tagger     Tagger
	Lemmatizer Lemmatizer
}

// New loads the stopword list, the tagger model, and the requested morphology.
// Any resource that cannot be loaded is reported as a *ResourceUnavailableError.
func New(morphology Morphology) (*Resources, error) {
	slog.Debug("Loading lexical resources", "morphology", morphology)

	stopwords := EnglishStopwords()

	tagger, err := NewProseTagger()
	if err != nil {
		return nil, err
	}

	var lemmatizer Lemmatizer
	switch morphology {
	case Stem:
		lemmatizer = NewSnowballStemmer()
	default:
		lemmatizer, err = NewDictionaryLemmatizer()
		if err != nil {
			return nil, err
		}
	}

	slog.Debug("Lexical resources ready", "stopwords", stopwords.Len())

	return &Resources{
		Stopwords:  stopwords,
		Tagger:     tagger,
		Lemmatizer: lemmatizer,
	}, nil
}
