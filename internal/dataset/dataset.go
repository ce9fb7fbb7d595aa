// Package dataset defines the labeled document model and loads it from a
// headerless CSV table.
package dataset

import (
	"sort"

	"github.com/chriscorrea/labelprep/internal/counter"
)

// Columns is the number of columns a Corpus exposes (text and class).
const Columns = 2

var (
	charCounter  = counter.NewCounter(counter.Characters)
	tokenCounter = counter.NewCounter(counter.Tokens)
)

// Document is one labeled product description.
type Document struct {
	Text  string
	Class string

	// Length and TokenCount describe the text the document was created with.
	// They are not updated when Text is rewritten by normalization.
	Length     int
	TokenCount int
}

// NewDocument creates a Document and measures its text.
func NewDocument(class, text string) Document {
	return Document{
		Text:       text,
		Class:      class,
		Length:     charCounter.Count(text),
		TokenCount: tokenCounter.Count(text),
	}
}

// WithText returns a copy of d carrying text; the original measurements are kept.
func (d Document) WithText(text string) Document {
	d.Text = text
	return d
}

// Corpus is an ordered collection of documents. Stages return new corpora
// rather than modifying the one they were given.
type Corpus []Document

// Shape returns rows and columns in the (rows, cols) form used for diagnostics.
func (c Corpus) Shape() (int, int) {
	return len(c), Columns
}

// TokenCounts returns the TokenCount of every document, in order.
func (c Corpus) TokenCounts() []float64 {
	counts := make([]float64, len(c))
	for i, doc := range c {
		counts[i] = float64(doc.TokenCount)
	}
	return counts
}

// Labels returns the distinct class labels in sorted order.
func (c Corpus) Labels() []string {
	seen := make(map[string]struct{})
	var labels []string
	for _, doc := range c {
		if _, ok := seen[doc.Class]; ok {
			continue
		}
		seen[doc.Class] = struct{}{}
		labels = append(labels, doc.Class)
	}
	sort.Strings(labels)
	return labels
}

// CountByLabel returns the number of documents per class label.
func (c Corpus) CountByLabel() map[string]int {
	counts := make(map[string]int)
	for _, doc := range c {
		counts[doc.Class]++
	}
	return counts
}
