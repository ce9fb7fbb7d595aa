// Package normalize turns raw product descriptions into the cleaned, lemmatized
// text written to the training files.
//
// Normalization runs four steps in a fixed order:
//  1. lowercase the text
//  2. delete ASCII punctuation without replacement ("can't" becomes "cant")
//  3. split on whitespace and drop stopwords
//  4. tag the remaining tokens and lemmatize each one by its coarse part of speech
//
// Usage Example:
//
//	n := normalize.New(resources)
//	n.Normalize("The phones are running!") // "phone run"
package normalize

import (
	"log/slog"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/runes"
	"golang.org/x/text/transform"

	"github.com/chriscorrea/labelprep/internal/dataset"
	"github.com/chriscorrea/labelprep/internal/lexicon"
)

// Punctuation is the set of characters removed in step 2.
const Punctuation = "!\"#$%&'()*+,-./:;<=>?@[\\]^_`{|}~"

// Normalizer applies the normalization steps using a fixed set of lexical resources.
type Normalizer struct {
	res *lexicon.Resources
}

// New creates a Normalizer. res must not be modified afterwards.
func New(res *lexicon.Resources) *Normalizer {
	return &Normalizer{res: res}
}

// Normalize returns the normalized form of text. Empty input yields "".
// Lemmas are folded like the input, and lemmas that land in the stopword set
// are dropped, so the result never contains a stopword.
func (n *Normalizer) Normalize(text string) string {
	folded := Fold(text)

	var tokens []string
	for _, tok := range strings.Fields(folded) {
		if !n.res.Stopwords.Contains(tok) {
			tokens = append(tokens, tok)
		}
	}
	if len(tokens) == 0 {
		return ""
	}

	tags := n.res.Tagger.Tag(tokens)

	lemmas := make([]string, 0, len(tokens))
	for i, tok := range tokens {
		tag := ""
		if i < len(tags) {
			tag = tags[i]
		}
		// dictionary lemmas may carry case or punctuation the input no longer has
		lemma := Fold(n.res.Lemmatizer.Lemmatize(tok, lexicon.CategoryForTag(tag)))
		if lemma == "" || n.res.Stopwords.Contains(lemma) {
			continue
		}
		lemmas = append(lemmas, lemma)
	}

	return strings.Join(lemmas, " ")
}

// Apply normalizes the text of every document and returns a new corpus.
// tick, if non-nil, is called after each document.
func (n *Normalizer) Apply(corpus dataset.Corpus, tick func()) dataset.Corpus {
	out := make(dataset.Corpus, len(corpus))
	for i, doc := range corpus {
		out[i] = doc.WithText(n.Normalize(doc.Text))
		if tick != nil {
			tick()
		}
	}

	slog.Debug("Corpus normalized", "documents", len(out))
	return out
}

// Fold lowercases text and deletes every character in Punctuation.
func Fold(text string) string {
	if text == "" {
		return ""
	}

	t := transform.Chain(
		cases.Lower(language.Und),
		runes.Remove(runes.Predicate(isPunctuation)),
	)
	folded, _, _ := transform.String(t, text) // neither transformer reports errors
	return folded
}

func isPunctuation(r rune) bool {
	return r < 0x80 && strings.ContainsRune(Punctuation, r)
}
