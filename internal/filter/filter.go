// Package filter removes documents from a corpus: length outliers by
// token-count percentile, and exact duplicates after normalization.
//
// Both filters are stable: surviving documents keep their relative order.
package filter

import (
	"log/slog"
	"math"
	"sort"

	"github.com/chriscorrea/labelprep/internal/dataset"
)

// Default percentile bounds for ByTokenCount.
const (
	DefaultLowerPercentile = 2.0
	DefaultUpperPercentile = 97.0
)

// Thresholds records the percentile bounds used by ByTokenCount and the
// token counts they resolved to.
type Thresholds struct {
	LowerPercentile float64
	UpperPercentile float64
	Lower           float64
	Upper           float64
}

// Percentile returns the p-th percentile (0-100) of values using linear
// interpolation between the two closest ranks, rank = p/100 * (n-1).
// It returns NaN for empty input. values is not modified.
func Percentile(values []float64, p float64) float64 {
	if len(values) == 0 {
		return math.NaN()
	}

	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	rank := p / 100 * float64(len(sorted)-1)
	lo := int(math.Floor(rank))
	if lo < 0 {
		return sorted[0]
	}
	if lo >= len(sorted)-1 {
		return sorted[len(sorted)-1]
	}

	frac := rank - float64(lo)
	return sorted[lo] + frac*(sorted[lo+1]-sorted[lo])
}

// ByTokenCount keeps documents whose TokenCount lies strictly between the
// lower and upper percentiles of the whole corpus's token counts. Both
// thresholds are computed once, on the unfiltered corpus.
func ByTokenCount(corpus dataset.Corpus, lowerPercentile, upperPercentile float64) (dataset.Corpus, Thresholds) {
	counts := corpus.TokenCounts()
	th := Thresholds{
		LowerPercentile: lowerPercentile,
		UpperPercentile: upperPercentile,
		Lower:           Percentile(counts, lowerPercentile),
		Upper:           Percentile(counts, upperPercentile),
	}

	kept := make(dataset.Corpus, 0, len(corpus))
	for _, doc := range corpus {
		n := float64(doc.TokenCount)
		if n > th.Lower && n < th.Upper {
			kept = append(kept, doc)
		}
	}

	slog.Debug("Token count filter applied",
		"lower", th.Lower, "upper", th.Upper,
		"before", len(corpus), "after", len(kept))
	return kept, th
}

// dedupKey identifies a document by its (text, class) pair.
type dedupKey struct {
	text  string
	class string
}

// Deduplicate drops every document whose (Text, Class) pair already appeared
// earlier in the corpus. The first occurrence is kept and the result is a
// fresh, densely indexed corpus.
func Deduplicate(corpus dataset.Corpus) dataset.Corpus {
	seen := make(map[dedupKey]struct{}, len(corpus))
	kept := make(dataset.Corpus, 0, len(corpus))

	for _, doc := range corpus {
		key := dedupKey{text: doc.Text, class: doc.Class}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		kept = append(kept, doc)
	}

	slog.Debug("Duplicates removed", "before", len(corpus), "after", len(kept))
	return kept
}
