// Package fetch opens the raw dataset for reading. A dataset may be a local
// file, standard input, or an http(s) URL, and may be gzip-compressed.
package fetch

import (
	"bufio"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net"
	"net/http"
	"os"
	"strconv"
	"strings"
	"time"
)

// Size limits keep a wrong path or URL from exhausting memory, since the
// whole table is materialized.
const (
	MaxFileSizeBytes = 512 * 1024 * 1024 // local files and stdin
	MaxHTTPSizeBytes = 512 * 1024 * 1024 // HTTP content (may not have Content-Length)
	MaxGzipSizeBytes = 512 * 1024 * 1024 // content after gzip decompression
)

// HTTPRequestTimeout bounds a whole dataset download.
const HTTPRequestTimeout = 5 * time.Minute

var (
	HTTPDialTimeout           = 10 * time.Second
	HTTPTLSTimeout            = 10 * time.Second
	HTTPResponseHeaderTimeout = 30 * time.Second
)

// gzipMagic is the two-byte header of a gzip stream.
var gzipMagic = []byte{0x1f, 0x8b}

// limitedReadCloser wraps an io.ReadCloser to enforce size limits
type limitedReadCloser struct {
	io.ReadCloser
	N      int64  // max bytes remaining
	source string // for error messages
}

func (l *limitedReadCloser) Read(p []byte) (n int, err error) {
	if l.N <= 0 {
		return 0, fmt.Errorf("content from %q exceeds size limit", l.source)
	}
	if int64(len(p)) > l.N {
		p = p[0:l.N]
	}
	n, err = l.ReadCloser.Read(p)
	l.N -= int64(n)
	return
}

// decompressReadCloser reads through a gzip stream and closes both layers.
type decompressReadCloser struct {
	*gzip.Reader
	underlying io.Closer
}

func (d *decompressReadCloser) Close() error {
	gzErr := d.Reader.Close()
	if err := d.underlying.Close(); err != nil {
		return err
	}
	return gzErr
}

// bufferedReadCloser keeps the peeked bytes of a source readable.
type bufferedReadCloser struct {
	*bufio.Reader
	io.Closer
}

var httpClient = &http.Client{
	Timeout: HTTPRequestTimeout,
	Transport: &http.Transport{
		Dial: (&net.Dialer{
			Timeout: HTTPDialTimeout,
		}).Dial,
		TLSHandshakeTimeout:   HTTPTLSTimeout,
		ResponseHeaderTimeout: HTTPResponseHeaderTimeout,
		DisableKeepAlives:     true,
	},
}

// Open returns a reader over the dataset named by source:
//   - "-" reads from standard input
//   - URLs starting with "http://" or "https://" are downloaded
//   - everything else is treated as a local file path
//
// gzip-compressed content is detected by its magic bytes and decompressed
// transparently. The caller must close the returned reader.
func Open(ctx context.Context, source string) (io.ReadCloser, error) {
	var (
		rc  io.ReadCloser
		err error
	)

	switch {
	case source == "-":
		rc = &limitedReadCloser{
			ReadCloser: io.NopCloser(os.Stdin),
			N:          MaxFileSizeBytes,
			source:     "stdin",
		}
	case strings.HasPrefix(source, "http://") || strings.HasPrefix(source, "https://"):
		rc, err = fetchURL(ctx, source)
	default:
		rc, err = fetchFile(source)
	}
	if err != nil {
		return nil, err
	}

	return maybeDecompress(rc, source, MaxGzipSizeBytes)
}

// maybeDecompress wraps rc in a gzip reader when it starts with the gzip header.
// At most limit decompressed bytes can be read.
func maybeDecompress(rc io.ReadCloser, source string, limit int64) (io.ReadCloser, error) {
	br := bufio.NewReader(rc)
	head, err := br.Peek(len(gzipMagic))
	if err != nil || string(head) != string(gzipMagic) {
		// short or unreadable content is left to the CSV reader to report
		return &bufferedReadCloser{Reader: br, Closer: rc}, nil
	}

	zr, err := gzip.NewReader(br)
	if err != nil {
		rc.Close()
		return nil, fmt.Errorf("failed to decompress %q: %w", source, err)
	}
	return &limitedReadCloser{
		ReadCloser: &decompressReadCloser{Reader: zr, underlying: rc},
		N:          limit,
		source:     source,
	}, nil
}

// fetchURL downloads source with the shared client.
func fetchURL(ctx context.Context, url string) (io.ReadCloser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request for URL %q: %w", url, err)
	}
	req.Header.Set("User-Agent", "labelprep/0.1")

	resp, err := httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch URL %q: %w", url, err)
	}

	if resp.StatusCode != http.StatusOK {
		resp.Body.Close()
		return nil, fmt.Errorf("HTTP request failed for URL %q: status %s", url, resp.Status)
	}

	if contentLength := resp.Header.Get("Content-Length"); contentLength != "" {
		if size, err := strconv.ParseInt(contentLength, 10, 64); err == nil && size > MaxHTTPSizeBytes {
			resp.Body.Close()
			return nil, fmt.Errorf("HTTP content too large (%d bytes > %d bytes limit)", size, MaxHTTPSizeBytes)
		}
	}

	return &limitedReadCloser{
		ReadCloser: resp.Body,
		N:          MaxHTTPSizeBytes,
		source:     url,
	}, nil
}

// fetchFile opens a local file after checking it exists and fits the size limit.
func fetchFile(path string) (io.ReadCloser, error) {
	fileInfo, err := os.Stat(path)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file %q does not exist", path)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to access file %q: %w", path, err)
	}
	if fileInfo.IsDir() {
		return nil, fmt.Errorf("%q is a directory", path)
	}
	if fileInfo.Size() > MaxFileSizeBytes {
		return nil, fmt.Errorf("file %q is too large (%d bytes > %d bytes limit)",
			path, fileInfo.Size(), MaxFileSizeBytes)
	}

	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file %q: %w", path, err)
	}
	return file, nil
}
