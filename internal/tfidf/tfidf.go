// Package tfidf summarizes what distinguishes each class label in a corpus
// using TF-IDF (Term Frequency-Inverse Document Frequency) weights.
//
// Every label becomes one document made of all of its texts, so a term's IDF
// reflects how many labels use it. Terms shared by every label weigh zero;
// the highest weighted terms of a label are the ones most specific to it.
//
// Usage Example:
//
//	corpus := tfidf.ByLabel(processed)
//	terms := corpus.TopTerms(0, 10)
package tfidf

import (
	"log/slog"
	"math"
	"regexp"
	"sort"
	"strings"

	"github.com/chriscorrea/labelprep/internal/dataset"
)

// tokenRegex is compiled once at package initialization for efficient tokenization
var tokenRegex = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// minTermLength drops very short tokens (units, sizes, stray letters).
const minTermLength = 3

// Corpus holds the label documents and pre-calculated TF-IDF data.
type Corpus struct {
	Labels          []string             // label of each document
	TermFrequencies []map[string]float64 // TF for each document
	DocFrequencies  map[string]int       // number of documents containing each term
	TotalDocuments  int
}

// TermScore is a term with its TF-IDF weight in one document.
type TermScore struct {
	Term  string
	Score float64
}

// ByLabel builds a Corpus with one document per label, labels in sorted order.
func ByLabel(c dataset.Corpus) *Corpus {
	labels := c.Labels()
	index := make(map[string]int, len(labels))
	for i, label := range labels {
		index[label] = i
	}

	texts := make([][]string, len(labels))
	for _, doc := range c {
		i := index[doc.Class]
		texts[i] = append(texts[i], doc.Text)
	}

	documents := make([]string, len(labels))
	for i := range texts {
		documents[i] = strings.Join(texts[i], " ")
	}

	corpus := NewCorpus(documents)
	corpus.Labels = labels
	return corpus
}

// NewCorpus analyzes documents once, calculating term and document frequencies.
func NewCorpus(documents []string) *Corpus {
	corpus := &Corpus{
		Labels:          make([]string, len(documents)),
		TermFrequencies: make([]map[string]float64, len(documents)),
		DocFrequencies:  make(map[string]int),
		TotalDocuments:  len(documents),
	}

	for docIdx, doc := range documents {
		tokens := tokenize(doc)
		corpus.TermFrequencies[docIdx] = calculateTermFrequency(tokens)

		for term := range corpus.TermFrequencies[docIdx] {
			corpus.DocFrequencies[term]++
		}
	}

	slog.Debug("TF-IDF corpus created", "documents", corpus.TotalDocuments, "terms", len(corpus.DocFrequencies))
	return corpus
}

// TopTerms returns up to n terms of a document with the highest positive
// TF-IDF weight, highest first; equal weights are ordered alphabetically.
func (c *Corpus) TopTerms(docIndex, n int) []TermScore {
	if docIndex < 0 || docIndex >= len(c.TermFrequencies) || n <= 0 {
		return nil
	}

	var scores []TermScore
	for term, tf := range c.TermFrequencies[docIndex] {
		df := c.DocFrequencies[term]
		if df == 0 {
			continue
		}
		// calculate IDF: log(total_docs / docs_containing_term)
		idf := math.Log(float64(c.TotalDocuments) / float64(df))
		if score := tf * idf; score > 0 {
			scores = append(scores, TermScore{Term: term, Score: score})
		}
	}

	sort.Slice(scores, func(i, j int) bool {
		if scores[i].Score != scores[j].Score {
			return scores[i].Score > scores[j].Score
		}
		return scores[i].Term < scores[j].Term
	})

	if len(scores) > n {
		scores = scores[:n]
	}
	return scores
}

// tokenize lowercases text, splits on anything that is not a letter or digit,
// and drops tokens shorter than minTermLength runes.
func tokenize(text string) []string {
	if text == "" {
		return nil
	}

	var filtered []string
	for _, token := range tokenRegex.Split(strings.ToLower(text), -1) {
		if len([]rune(token)) >= minTermLength {
			filtered = append(filtered, token)
		}
	}
	return filtered
}

// calculateTermFrequency computes count(term) / len(tokens) for every term.
func calculateTermFrequency(tokens []string) map[string]float64 {
	if len(tokens) == 0 {
		return map[string]float64{}
	}

	termCounts := make(map[string]int)
	for _, token := range tokens {
		termCounts[token]++
	}

	totalTerms := float64(len(tokens))
	termFreqs := make(map[string]float64, len(termCounts))
	for term, count := range termCounts {
		termFreqs[term] = float64(count) / totalTerms
	}
	return termFreqs
}
