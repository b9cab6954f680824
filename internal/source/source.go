// Package source opens catalogue documents from local paths or feed URLs.
package source

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"
	"github.com/klauspost/compress/gzip"

	"course-graph/internal/httpx"
)

// Opener resolves an input location to a readable document.
type Opener struct {
	Client *http.Client
	Retry  httpx.RetryConfig
}

// IsRemote reports whether location is an HTTP(S) feed URL.
func IsRemote(location string) bool {
	l := strings.ToLower(location)
	return strings.HasPrefix(l, "http://") || strings.HasPrefix(l, "https://")
}

// Open returns the decoded document at location. Feed bodies are decoded
// according to Content-Encoding; local files by their .br or .gz suffix.
func (o Opener) Open(ctx context.Context, location string) (io.ReadCloser, error) {
	if IsRemote(location) {
		return o.fetch(ctx, location)
	}

	f, err := os.Open(location)
	if err != nil {
		return nil, fmt.Errorf("source: open %s: %w", location, err)
	}
	rc, err := decode(f, encodingFromName(location))
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("source: decode %s: %w", location, err)
	}
	return rc, nil
}

func (o Opener) fetch(ctx context.Context, location string) (io.ReadCloser, error) {
	client := o.Client
	if client == nil {
		client = http.DefaultClient
	}
	header := http.Header{}
	header.Set("Accept", "application/xml, text/xml;q=0.9, */*;q=0.1")
	header.Set("Accept-Encoding", "br, gzip")

	resp, err := httpx.Get(ctx, client, location, header, o.Retry)
	if err != nil {
		return nil, fmt.Errorf("source: fetch %s: %w", location, err)
	}

	enc := strings.ToLower(strings.TrimSpace(resp.Header.Get("Content-Encoding")))
	rc, err := decode(io.NopCloser(bytes.NewReader(resp.Body)), enc)
	if err != nil {
		return nil, fmt.Errorf("source: decode %s: %w", location, err)
	}
	return rc, nil
}

func encodingFromName(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".br":
		return "br"
	case ".gz":
		return "gzip"
	}
	return ""
}

type decoded struct {
	io.Reader
	closers []io.Closer
}

func (d *decoded) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	return first
}

func decode(rc io.ReadCloser, encoding string) (io.ReadCloser, error) {
	switch encoding {
	case "", "identity":
		return rc, nil
	case "br":
		return &decoded{Reader: brotli.NewReader(rc), closers: []io.Closer{rc}}, nil
	case "gzip", "x-gzip":
		zr, err := gzip.NewReader(rc)
		if err != nil {
			return nil, err
		}
		return &decoded{Reader: zr, closers: []io.Closer{zr, rc}}, nil
	default:
		return nil, fmt.Errorf("unsupported content encoding %q", encoding)
	}
}

// Stem derives an output file stem from location: the last path element with
// compression and .xml extensions removed.
func Stem(location string) string {
	base := ""
	if IsRemote(location) {
		if u, err := url.Parse(location); err == nil {
			base = path.Base(u.Path)
		}
	} else {
		base = filepath.Base(location)
	}

	for _, ext := range []string{".br", ".gz", ".xml"} {
		if strings.HasSuffix(strings.ToLower(base), ext) {
			base = base[:len(base)-len(ext)]
		}
	}
	if base == "" || base == "." || base == "/" {
		return "catalog"
	}
	return base
}
