package export

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/andybalholm/brotli"

	"course-graph/internal/graph"
)

// Format names an output serialization.
type Format string

const (
	FormatJSONLD   Format = "jsonld"
	FormatNTriples Format = "nt"
	FormatCSV      Format = "csv"
)

// ParseFormat accepts the flag spellings of a format.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "jsonld", "json-ld", "json":
		return FormatJSONLD, nil
	case "nt", "ntriples", "n-triples":
		return FormatNTriples, nil
	case "csv":
		return FormatCSV, nil
	}
	return "", fmt.Errorf("export: unknown format %q", s)
}

// Ext is the file extension for f, dot included.
func (f Format) Ext() string {
	switch f {
	case FormatNTriples:
		return ".nt"
	case FormatCSV:
		return ".csv"
	default:
		return ".jsonld"
	}
}

// Write serializes g in format f.
func Write(w io.Writer, f Format, g *graph.Graph, lang string) error {
	switch f {
	case FormatJSONLD:
		return WriteJSONLD(w, g, lang)
	case FormatNTriples:
		return WriteNTriples(w, g)
	case FormatCSV:
		return WriteCourseIndex(w, g)
	}
	return fmt.Errorf("export: unknown format %q", f)
}

// FileOptions controls WriteFile.
type FileOptions struct {
	Dir      string
	Format   Format
	Language string
	// Brotli compresses the file and appends .br to its name.
	Brotli bool
}

// WriteFile writes g to <Dir>/<stem><ext>[.br] and returns the path.
func WriteFile(g *graph.Graph, stem string, opts FileOptions) (string, error) {
	if err := os.MkdirAll(opts.Dir, 0o755); err != nil {
		return "", fmt.Errorf("export: mkdir %s: %w", opts.Dir, err)
	}

	name := stem + opts.Format.Ext()
	if opts.Brotli {
		name += ".br"
	}
	path := filepath.Join(opts.Dir, name)

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("export: create %s: %w", path, err)
	}
	defer f.Close()

	var w io.Writer = f
	var bw *brotli.Writer
	if opts.Brotli {
		bw = brotli.NewWriterLevel(f, brotli.DefaultCompression)
		w = bw
	}

	if err := Write(w, opts.Format, g, opts.Language); err != nil {
		return "", fmt.Errorf("export: write %s: %w", path, err)
	}
	if bw != nil {
		if err := bw.Close(); err != nil {
			return "", fmt.Errorf("export: compress %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("export: close %s: %w", path, err)
	}
	return path, nil
}
