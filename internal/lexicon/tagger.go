package lexicon

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/jdkato/prose/v2"
)

// defaultTag is used when prose yields no tag for a token
const defaultTag = "NN"

// ProseTagger tags token sequences with the prose averaged perceptron model.
type ProseTagger struct {
	model *prose.Model
}

// NewProseTagger loads the prose tagging model once so later calls can reuse it.
func NewProseTagger() (tagger *ProseTagger, err error) {
	// prose loads its model from embedded data and panics if that data is corrupt
	defer func() {
		if r := recover(); r != nil {
			tagger = nil
			err = &ResourceUnavailableError{Resource: "pos-tagger", Err: fmt.Errorf("%v", r)}
		}
	}()

	doc, err := prose.NewDocument("warm up",
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		return nil, &ResourceUnavailableError{Resource: "pos-tagger", Err: err}
	}
	if doc.Model == nil {
		return nil, &ResourceUnavailableError{Resource: "pos-tagger", Err: errors.New("no model loaded")}
	}

	return &ProseTagger{model: doc.Model}, nil
}

// Tag returns one tag per input token. prose runs its own tokenizer over the
// joined text, so its tokens are re-aligned to the input: when prose splits an
// input token, the tag of the first piece is used.
func (t *ProseTagger) Tag(tokens []string) []string {
	tags := make([]string, len(tokens))
	if len(tokens) == 0 {
		return tags
	}

	doc, err := prose.NewDocument(strings.Join(tokens, " "),
		prose.UsingModel(t.model),
		prose.WithSegmentation(false),
		prose.WithExtraction(false),
	)
	if err != nil {
		slog.Debug("Tagging failed, using default tag", "error", err, "tokens", len(tokens))
		for i := range tags {
			tags[i] = defaultTag
		}
		return tags
	}

	return alignTags(tokens, doc.Tokens())
}

// alignTags walks prose tokens in order, consuming pieces until each input
// token's text is covered.
func alignTags(tokens []string, pieces []prose.Token) []string {
	tags := make([]string, len(tokens))
	j := 0
	for i, tok := range tokens {
		tag := ""
		covered := 0
		for j < len(pieces) && covered < len(tok) {
			if tag == "" {
				tag = pieces[j].Tag
			}
			covered += len(pieces[j].Text)
			j++
		}
		if tag == "" {
			tag = defaultTag
		}
		tags[i] = tag
	}
	return tags
}
