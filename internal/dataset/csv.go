package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"log/slog"
)

// Option configures ReadCSV.
type Option func(*readOptions)

type readOptions struct {
	textFilter func(string) (string, error)
}

// WithTextFilter rewrites every raw text before it is measured,
// e.g. to strip markup from scraped descriptions.
func WithTextFilter(f func(string) (string, error)) Option {
	return func(o *readOptions) {
		o.textFilter = f
	}
}

// ReadCSV reads a headerless table of (class, text) rows into a Corpus.
//
// Every record must have the same number of fields as the first one: either
// two (class, text) or three, in which case the leading field is an index
// column and is ignored. Any read error, an empty table, or a record of the
// wrong width is reported as a *MalformedInputError.
func ReadCSV(r io.Reader, opts ...Option) (Corpus, error) {
	var o readOptions
	for _, opt := range opts {
		opt(&o)
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // checked below for a clearer error
	reader.LazyQuotes = true    // inch marks in unquoted descriptions: 32" TV

	var corpus Corpus
	width := 0

	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			var parseErr *csv.ParseError
			if errors.As(err, &parseErr) {
				return nil, &MalformedInputError{Line: parseErr.StartLine, Reason: "unreadable record", Err: parseErr.Err}
			}
			return nil, &MalformedInputError{Reason: "read failed", Err: err}
		}

		line, _ := reader.FieldPos(0)

		if width == 0 {
			if len(record) != 2 && len(record) != 3 {
				return nil, &MalformedInputError{
					Line:   line,
					Reason: fmt.Sprintf("expected 2 or 3 columns, found %d", len(record)),
				}
			}
			width = len(record)
		}
		if len(record) != width {
			return nil, &MalformedInputError{
				Line:   line,
				Reason: fmt.Sprintf("expected %d columns, found %d", width, len(record)),
			}
		}

		class, text := record[width-2], record[width-1]
		if o.textFilter != nil {
			text, err = o.textFilter(text)
			if err != nil {
				return nil, &MalformedInputError{Line: line, Reason: "text filter failed", Err: err}
			}
		}

		corpus = append(corpus, NewDocument(class, text))
	}

	if len(corpus) == 0 {
		return nil, &MalformedInputError{Reason: "no records found"}
	}

	slog.Debug("CSV loaded", "rows", len(corpus), "columns", width)
	return corpus, nil
}
