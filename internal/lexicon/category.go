package lexicon

// Category is the coarse part of speech a lemmatizer is keyed by.
type Category int

const (
	Noun Category = iota
	Verb
	Adjective
	Adverb
)

// String returns the string representation of the category.
func (c Category) String() string {
	switch c {
	case Noun:
		return "noun"
	case Verb:
		return "verb"
	case Adjective:
		return "adjective"
	case Adverb:
		return "adverb"
	default:
		return "unknown"
	}
}

// CategoryForTag maps a Penn Treebank tag to a Category by its first letter.
// Tags that are not nouns, verbs, adjectives, or adverbs map to Noun.
func CategoryForTag(tag string) Category {
	if tag == "" {
		return Noun
	}

	switch tag[0] {
	case 'N':
		return Noun
	case 'V':
		return Verb
	case 'J':
		return Adjective
	case 'R':
		return Adverb
	default:
		return Noun
	}
}
