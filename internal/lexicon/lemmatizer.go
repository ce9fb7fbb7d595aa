package lexicon

import (
	"strings"

	"github.com/aaaton/golem/v4"
	"github.com/aaaton/golem/v4/dicts/en"
)

// dictionary is the subset of the golem lemmatizer used here.
type dictionary interface {
	InDict(word string) bool
	Lemmas(word string) []string
	Lemma(word string) string
}

// detachRule replaces a word suffix to produce a candidate base form.
type detachRule struct {
	suffix string
	ending string
}

var (
	nounRules = []detachRule{
		{"s", ""}, {"ses", "s"}, {"xes", "x"}, {"zes", "z"},
		{"ches", "ch"}, {"shes", "sh"}, {"men", "man"}, {"ies", "y"},
	}
	verbRules = []detachRule{
		{"s", ""}, {"ies", "y"}, {"es", "e"}, {"es", ""},
		{"ed", "e"}, {"ed", ""}, {"ing", "e"}, {"ing", ""},
	}
	adjectiveRules = []detachRule{
		{"er", ""}, {"est", ""}, {"er", "e"}, {"est", "e"},
	}
)

// rulesFor returns the suffix rules of a category. Adverbs have none.
func rulesFor(category Category) []detachRule {
	switch category {
	case Noun:
		return nounRules
	case Verb:
		return verbRules
	case Adjective:
		return adjectiveRules
	default:
		return nil
	}
}

// DictionaryLemmatizer lemmatizes with suffix rules per category, accepting a
// candidate only when the golem English dictionary confirms it.
type DictionaryLemmatizer struct {
	dict dictionary
}

// NewDictionaryLemmatizer loads the golem English dictionary.
func NewDictionaryLemmatizer() (*DictionaryLemmatizer, error) {
	dict, err := golem.New(en.New())
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: "lemma-dictionary", Err: err}
	}
	return &DictionaryLemmatizer{dict: dict}, nil
}

// Lemmatize returns the shortest confirmed base form of word for the category.
// Irregular forms no rule reaches fall back to the dictionary lemma, except for
// adverbs, which are kept as they are.
func (l *DictionaryLemmatizer) Lemmatize(word string, category Category) string {
	if word == "" || !l.dict.InDict(word) {
		return word
	}

	known := make(map[string]struct{})
	for _, lemma := range l.dict.Lemmas(word) {
		known[lemma] = struct{}{}
	}

	best := ""
	if _, ok := known[word]; ok {
		best = word
	}
	for _, candidate := range candidates(word, category) {
		if _, ok := known[candidate]; !ok {
			continue
		}
		if best == "" || len(candidate) < len(best) {
			best = candidate
		}
	}
	if best != "" {
		return best
	}

	if category == Adverb {
		return word
	}
	return l.dict.Lemma(word)
}

// candidates applies the category's rules to word. For "-ing", "-ed", "-er"
// and "-est" a doubled final consonant is also undone ("running" -> "run").
func candidates(word string, category Category) []string {
	var out []string
	for _, rule := range rulesFor(category) {
		if !strings.HasSuffix(word, rule.suffix) || len(word) <= len(rule.suffix) {
			continue
		}
		base := strings.TrimSuffix(word, rule.suffix)
		out = append(out, base+rule.ending)

		if rule.ending == "" && undoublesSuffix(rule.suffix) && hasDoubledConsonant(base) {
			out = append(out, base[:len(base)-1])
		}
	}
	return out
}

func undoublesSuffix(suffix string) bool {
	switch suffix {
	case "ing", "ed", "er", "est":
		return true
	default:
		return false
	}
}

func hasDoubledConsonant(s string) bool {
	n := len(s)
	if n < 2 || s[n-1] != s[n-2] {
		return false
	}
	return !strings.ContainsRune("aeiou", rune(s[n-1]))
}
