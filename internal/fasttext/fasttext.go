// Package fasttext writes a corpus in the line-oriented supervised format read
// by fastText:
//
//	__label__<label> <text>
//
// Whitespace inside a label is replaced with underscores so the label stays a
// single whitespace-delimited token.
package fasttext

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/chriscorrea/labelprep/internal/dataset"
)

// LabelPrefix marks the label token at the start of every line.
const LabelPrefix = "__label__"

// Stats describes what was written, so a caller can verify the artifact.
type Stats struct {
	Path   string // empty when writing to an io.Writer
	Lines  int
	Bytes  int64
	SHA256 string // hex digest of the bytes written
}

// Label returns the label token for class. Every whitespace run inside the
// class becomes a single underscore and surrounding whitespace is trimmed.
func Label(class string) string {
	return LabelPrefix + strings.Join(strings.Fields(class), "_")
}

// FormatLine returns the line for doc, including the trailing newline.
func FormatLine(doc dataset.Document) string {
	return Label(doc.Class) + " " + doc.Text + "\n"
}

// Write writes one line per document in corpus order.
func Write(w io.Writer, corpus dataset.Corpus) (Stats, error) {
	hash := sha256.New()
	counted := &countingWriter{w: io.MultiWriter(w, hash)}
	buf := bufio.NewWriter(counted)

	var stats Stats
	for _, doc := range corpus {
		if _, err := buf.WriteString(FormatLine(doc)); err != nil {
			return stats, fmt.Errorf("failed to write line %d: %w", stats.Lines+1, err)
		}
		stats.Lines++
	}
	if err := buf.Flush(); err != nil {
		return stats, fmt.Errorf("failed to flush output: %w", err)
	}

	stats.Bytes = counted.n
	stats.SHA256 = hex.EncodeToString(hash.Sum(nil))
	return stats, nil
}

// WriteFile creates or truncates path and writes corpus to it. A failure
// part-way leaves a truncated file behind; compare Stats.Lines with the
// corpus length, or the checksum, to detect it.
func WriteFile(path string, corpus dataset.Corpus) (Stats, error) {
	f, err := os.Create(path)
	if err != nil {
		return Stats{Path: path}, fmt.Errorf("failed to create %q: %w", path, err)
	}

	stats, err := Write(f, corpus)
	stats.Path = path
	if err != nil {
		f.Close()
		return stats, fmt.Errorf("failed to write %q: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return stats, fmt.Errorf("failed to close %q: %w", path, err)
	}

	slog.Debug("Wrote labeled file", "path", path, "lines", stats.Lines, "bytes", stats.Bytes)
	return stats, nil
}

// countingWriter tracks the number of bytes passed through to w.
type countingWriter struct {
	w io.Writer
	n int64
}

func (c *countingWriter) Write(p []byte) (int, error) {
	n, err := c.w.Write(p)
	c.n += int64(n)
	return n, err
}
