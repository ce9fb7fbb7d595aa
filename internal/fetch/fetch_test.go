package fetch_test

import (
	"bytes"
	"compress/gzip"
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/chriscorrea/labelprep/internal/fetch"
)

const sampleCSV = "Electronics,Buy a cheap phone\nBooks,Hardcover novel\n"

func gzipBytes(t *testing.T, s string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write([]byte(s)); err != nil {
		t.Fatalf("gzip write failed: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("gzip close failed: %v", err)
	}
	return buf.Bytes()
}

func writeTemp(t *testing.T, name string, data []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("failed to write temp file: %v", err)
	}
	return path
}

func TestOpen(t *testing.T) {
	tests := []struct {
		name        string
		setupFunc   func(t *testing.T) (source string, cleanup func())
		expectError bool
		expectData  string
	}{
		{
			name: "http URL success",
			setupFunc: func(t *testing.T) (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusOK)
					_, _ = w.Write([]byte(sampleCSV))
				}))
				return server.URL, server.Close
			},
			expectData: sampleCSV,
		},
		{
			name: "gzip over http",
			setupFunc: func(t *testing.T) (string, func()) {
				payload := gzipBytes(t, sampleCSV)
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					_, _ = w.Write(payload)
				}))
				return server.URL + "/data.csv.gz", server.Close
			},
			expectData: sampleCSV,
		},
		{
			name: "http URL with error status",
			setupFunc: func(t *testing.T) (string, func()) {
				server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
					w.WriteHeader(http.StatusNotFound)
				}))
				return server.URL, server.Close
			},
			expectError: true,
		},
		{
			name: "local file success",
			setupFunc: func(t *testing.T) (string, func()) {
				return writeTemp(t, "data.csv", []byte(sampleCSV)), func() {}
			},
			expectData: sampleCSV,
		},
		{
			name: "gzip local file",
			setupFunc: func(t *testing.T) (string, func()) {
				return writeTemp(t, "data.csv.gz", gzipBytes(t, sampleCSV)), func() {}
			},
			expectData: sampleCSV,
		},
		{
			name: "empty local file",
			setupFunc: func(t *testing.T) (string, func()) {
				return writeTemp(t, "empty.csv", nil), func() {}
			},
			expectData: "",
		},
		{
			name: "directory",
			setupFunc: func(t *testing.T) (string, func()) {
				return t.TempDir(), func() {}
			},
			expectError: true,
		},
		{
			name: "non-existent file",
			setupFunc: func(t *testing.T) (string, func()) {
				return "/path/that/does/not/exist.csv", func() {}
			},
			expectError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			source, cleanup := tt.setupFunc(t)
			defer cleanup()

			reader, err := fetch.Open(context.Background(), source)
			if tt.expectError {
				if err == nil {
					reader.Close()
					t.Errorf("Open() expected error but got none")
				}
				return
			}
			if err != nil {
				t.Fatalf("Open() error = %v, expected no error", err)
			}
			defer reader.Close()

			data, err := io.ReadAll(reader)
			if err != nil {
				t.Fatalf("failed to read from reader: %v", err)
			}
			if string(data) != tt.expectData {
				t.Errorf("Open() data = %q, expected %q", string(data), tt.expectData)
			}
		})
	}
}

func TestOpenSourceRouting(t *testing.T) {
	tests := []struct {
		name      string
		source    string
		errSubstr string
	}{
		{"http URL", "http://invalid-domain-that-definitely-does-not-exist.local", "failed to fetch URL"},
		{"absolute file path", "/path/to/data.csv", "does not exist"},
		{"relative file path", "data-that-is-missing.csv", "does not exist"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := fetch.Open(context.Background(), tt.source)
			if err == nil {
				t.Fatal("Open() expected error")
			}
			if !strings.Contains(err.Error(), tt.errSubstr) {
				t.Errorf("Open() error = %v, want it to mention %q", err, tt.errSubstr)
			}
		})
	}
}

func TestOpenCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(sampleCSV))
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := fetch.Open(ctx, server.URL); err == nil {
		t.Error("Open() with cancelled context should fail")
	}
}
