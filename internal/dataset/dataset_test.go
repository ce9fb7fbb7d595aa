package dataset_test

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/chriscorrea/labelprep/internal/dataset"
)

func TestNewDocument(t *testing.T) {
	doc := dataset.NewDocument("Books", "A  great read, for café lovers")

	if doc.Length != 30 {
		t.Errorf("Length = %d, want 30", doc.Length)
	}
	if doc.TokenCount != 6 {
		t.Errorf("TokenCount = %d, want 6", doc.TokenCount)
	}

	rewritten := doc.WithText("great read")
	if rewritten.TokenCount != 6 || rewritten.Length != 30 {
		t.Errorf("WithText changed measurements: %+v", rewritten)
	}
	if doc.Text != "A  great read, for café lovers" {
		t.Errorf("WithText modified the original document: %q", doc.Text)
	}
}

func TestCorpusHelpers(t *testing.T) {
	corpus := dataset.Corpus{
		dataset.NewDocument("Household", "a b"),
		dataset.NewDocument("Books", "a"),
		dataset.NewDocument("Household", "a b c"),
	}

	rows, cols := corpus.Shape()
	if rows != 3 || cols != 2 {
		t.Errorf("Shape() = (%d, %d), want (3, 2)", rows, cols)
	}

	if got := corpus.Labels(); !reflect.DeepEqual(got, []string{"Books", "Household"}) {
		t.Errorf("Labels() = %v", got)
	}

	if got := corpus.CountByLabel(); got["Household"] != 2 || got["Books"] != 1 {
		t.Errorf("CountByLabel() = %v", got)
	}

	if got := corpus.TokenCounts(); !reflect.DeepEqual(got, []float64{2, 1, 3}) {
		t.Errorf("TokenCounts() = %v", got)
	}
}

func TestReadCSV(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		expectError bool
		errorLine   int
		expected    []dataset.Document
	}{
		{
			name:  "two columns",
			input: "Electronics,Buy a cheap phone\nBooks,\"Novel, hardcover\"\n",
			expected: []dataset.Document{
				dataset.NewDocument("Electronics", "Buy a cheap phone"),
				dataset.NewDocument("Books", "Novel, hardcover"),
			},
		},
		{
			name:  "three columns with leading index",
			input: "0,Household,Steel pan\n1,Books,Paperback\n",
			expected: []dataset.Document{
				dataset.NewDocument("Household", "Steel pan"),
				dataset.NewDocument("Books", "Paperback"),
			},
		},
		{
			name:  "bare quote in unquoted field",
			input: "Electronics,Samsung 32\" LED TV with HDMI\nBooks,Paperback\n",
			expected: []dataset.Document{
				dataset.NewDocument("Electronics", "Samsung 32\" LED TV with HDMI"),
				dataset.NewDocument("Books", "Paperback"),
			},
		},
		{
			name:  "multi-line quoted text",
			input: "Books,\"first line\nsecond line\"\n",
			expected: []dataset.Document{
				dataset.NewDocument("Books", "first line\nsecond line"),
			},
		},
		{
			name:        "empty input",
			input:       "",
			expectError: true,
		},
		{
			name:        "single column",
			input:       "Books\n",
			expectError: true,
			errorLine:   1,
		},
		{
			name:        "inconsistent width",
			input:       "Books,Paperback\nBooks,Paperback,extra\n",
			expectError: true,
			errorLine:   2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			corpus, err := dataset.ReadCSV(strings.NewReader(tt.input))

			if tt.expectError {
				var malformed *dataset.MalformedInputError
				if !errors.As(err, &malformed) {
					t.Fatalf("ReadCSV() error = %v, want *MalformedInputError", err)
				}
				if tt.errorLine > 0 && malformed.Line != tt.errorLine {
					t.Errorf("error line = %d, want %d", malformed.Line, tt.errorLine)
				}
				return
			}

			if err != nil {
				t.Fatalf("ReadCSV() unexpected error: %v", err)
			}
			if !reflect.DeepEqual([]dataset.Document(corpus), tt.expected) {
				t.Errorf("ReadCSV() = %+v, want %+v", corpus, tt.expected)
			}
		})
	}
}

func TestReadCSV_UnterminatedQuote(t *testing.T) {
	// quotes are read leniently: an unclosed quote runs to the end of input
	corpus, err := dataset.ReadCSV(strings.NewReader("Books,\"unterminated\n"))
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}
	if len(corpus) != 1 || corpus[0].Class != "Books" || !strings.HasPrefix(corpus[0].Text, "unterminated") {
		t.Errorf("ReadCSV() = %+v", corpus)
	}
}

func TestReadCSV_TextFilter(t *testing.T) {
	upper := func(s string) (string, error) { return strings.ToUpper(s), nil }

	corpus, err := dataset.ReadCSV(strings.NewReader("Books,short read\n"), dataset.WithTextFilter(upper))
	if err != nil {
		t.Fatalf("ReadCSV() unexpected error: %v", err)
	}
	if corpus[0].Text != "SHORT READ" {
		t.Errorf("Text = %q, want filtered text", corpus[0].Text)
	}

	failing := func(string) (string, error) { return "", errors.New("boom") }
	_, err = dataset.ReadCSV(strings.NewReader("Books,short read\n"), dataset.WithTextFilter(failing))
	var malformed *dataset.MalformedInputError
	if !errors.As(err, &malformed) {
		t.Errorf("expected *MalformedInputError from failing filter, got %v", err)
	}
}
