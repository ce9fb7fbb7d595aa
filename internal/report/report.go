// Package report prints the diagnostics of a preprocessing run: table shapes,
// percentile thresholds, split balance, and the files written.
//
// Each method writes as soon as it is called, so diagnostics of completed
// stages are visible even when a later stage fails.
package report

import (
	"fmt"
	"io"
	"maps"
	"slices"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"

	"github.com/chriscorrea/labelprep/internal/dataset"
	"github.com/chriscorrea/labelprep/internal/fasttext"
	"github.com/chriscorrea/labelprep/internal/filter"
	"github.com/chriscorrea/labelprep/internal/tfidf"
)

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

// Reporter writes diagnostics to w. A quiet Reporter writes nothing.
type Reporter struct {
	w     io.Writer
	quiet bool
}

// New creates a Reporter.
func New(w io.Writer, quiet bool) *Reporter {
	return &Reporter{w: w, quiet: quiet}
}

// Shape prints the (rows, columns) shape of corpus after a named stage.
func (r *Reporter) Shape(stage string, corpus dataset.Corpus) {
	rows, cols := corpus.Shape()
	r.printf("\n%s shape: (%s, %d)\n", stage, humanize.Comma(int64(rows)), cols)
}

// Thresholds prints the token-count percentiles used by the length filter.
func (r *Reporter) Thresholds(th filter.Thresholds) {
	r.printf("\npercentiles %g%%: %g, %g%%: %g\n", th.LowerPercentile, th.Lower, th.UpperPercentile, th.Upper)
}

// Split prints per-label document counts of the train and test subsets.
func (r *Reporter) Split(train, test dataset.Corpus) {
	trainCounts := train.CountByLabel()
	testCounts := test.CountByLabel()
	labels := make(map[string]struct{}, len(trainCounts))
	for label := range trainCounts {
		labels[label] = struct{}{}
	}
	for label := range testCounts {
		labels[label] = struct{}{}
	}

	var rows [][]string
	for _, label := range slices.Sorted(maps.Keys(labels)) {
		rows = append(rows, []string{
			label,
			humanize.Comma(int64(trainCounts[label])),
			humanize.Comma(int64(testCounts[label])),
			share(testCounts[label], trainCounts[label]+testCounts[label]),
		})
	}
	rows = append(rows, []string{
		"total",
		humanize.Comma(int64(len(train))),
		humanize.Comma(int64(len(test))),
		share(len(test), len(train)+len(test)),
	})

	r.printf("\n%s\n", renderTable(
		[]string{"Label", "Train", "Test", "Test share"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignRight},
	))
}

// TopTerms prints up to n distinguishing terms for every label.
func (r *Reporter) TopTerms(corpus *tfidf.Corpus, n int) {
	if n <= 0 || corpus.TotalDocuments == 0 {
		return
	}

	rows := make([][]string, 0, len(corpus.Labels))
	for i, label := range corpus.Labels {
		var terms []string
		for _, ts := range corpus.TopTerms(i, n) {
			terms = append(terms, ts.Term)
		}
		rows = append(rows, []string{label, strings.Join(terms, ", ")})
	}

	r.printf("\n%s\n", renderTable([]string{"Label", "Top terms"}, rows, nil))
}

// Outputs prints the files written with their line counts and checksums.
func (r *Reporter) Outputs(stats ...fasttext.Stats) {
	rows := make([][]string, 0, len(stats))
	for _, s := range stats {
		rows = append(rows, []string{
			s.Path,
			humanize.Comma(int64(s.Lines)),
			humanize.Bytes(uint64(s.Bytes)),
			s.SHA256,
		})
	}

	r.printf("\nwrote files for fasttext training:\n%s\n", renderTable(
		[]string{"File", "Lines", "Size", "SHA-256"},
		rows,
		[]columnAlignment{alignLeft, alignRight, alignRight, alignLeft},
	))
}

func (r *Reporter) printf(format string, args ...any) {
	if r.quiet {
		return
	}
	fmt.Fprintf(r.w, format, args...)
}

func share(part, whole int) string {
	if whole == 0 {
		return "-"
	}
	return fmt.Sprintf("%.1f%%", 100*float64(part)/float64(whole))
}

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			} else {
				r[i] = ""
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}
