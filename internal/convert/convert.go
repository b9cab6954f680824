// Package convert runs catalogue documents through the whole pipeline:
// open, parse, map to a graph, write and optionally publish.
package convert

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path/filepath"

	"course-graph/internal/diagnostic"
	"course-graph/internal/export"
	"course-graph/internal/mappers"
	"course-graph/internal/source"
	"course-graph/internal/vocab"
	"course-graph/internal/xmltree"
)

// ErrUnreadable marks a document that could not be opened, fetched or parsed
// as a catalogue. Every other anomaly is reported as a diagnostic.
var ErrUnreadable = errors.New("input unreadable")

// Opener yields the raw bytes of an input location.
type Opener interface {
	Open(ctx context.Context, location string) (io.ReadCloser, error)
}

var _ Opener = source.Opener{}

// Publisher copies a written output file somewhere else.
type Publisher interface {
	Publish(ctx context.Context, localPath, name string) error
}

type Options struct {
	Mapper mappers.Options
	Output export.FileOptions
	// Publisher is optional.
	Publisher Publisher
	Workers   int
}

type Converter struct {
	opener Opener
	opts   Options
	log    *slog.Logger
}

func New(opener Opener, opts Options, log *slog.Logger) *Converter {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	if opts.Output.Language == "" {
		opts.Output.Language = opts.Mapper.Language
	}
	if opts.Output.Language == "" {
		opts.Output.Language = vocab.DefaultLanguage
	}
	if opts.Output.Format == "" {
		opts.Output.Format = export.FormatJSONLD
	}
	return &Converter{opener: opener, opts: opts, log: log}
}

// Read opens location and parses it into a catalogue tree.
func (c *Converter) Read(ctx context.Context, location string) (*xmltree.Node, error) {
	rc, err := c.opener.Open(ctx, location)
	if err != nil {
		return nil, fmt.Errorf("convert: %w: %w", ErrUnreadable, err)
	}
	defer rc.Close()

	root, err := xmltree.Parse(rc)
	if err != nil {
		return nil, fmt.Errorf("convert: %w: %s: %w", ErrUnreadable, location, err)
	}
	if !xmltree.Matches(root.Name(), vocab.Catalog) {
		return nil, fmt.Errorf("convert: %w: %s: root element is {%s}%s, want a catalog",
			ErrUnreadable, location, root.Name().Space, root.Name().Local)
	}
	return root, nil
}

// Output describes one converted document.
type Output struct {
	Source string
	// Path is the written file.
	Path   string
	Result *mappers.Result
}

// Document converts a single location into a file named after it and
// publishes the file when a publisher is configured.
func (c *Converter) Document(ctx context.Context, location string) (*Output, error) {
	out, err := c.document(ctx, location, source.Stem(location))
	if err != nil {
		return nil, err
	}
	if err := c.publish(ctx, out); err != nil {
		return nil, err
	}
	return out, nil
}

func (c *Converter) document(ctx context.Context, location, stem string) (*Output, error) {
	c.log.Info("converting", "source", location)

	root, err := c.Read(ctx, location)
	if err != nil {
		return nil, err
	}

	res := mappers.Convert(root, c.opts.Mapper)
	res.Summary.Source = location
	c.logDiagnostics(location, res.Diagnostics)

	path, err := export.WriteFile(res.Graph, stem, c.opts.Output)
	if err != nil {
		return nil, fmt.Errorf("convert: %s: %w", location, err)
	}

	s := res.Summary
	c.log.Info("wrote graph",
		"source", location,
		"path", path,
		"providers", s.Providers,
		"courses", s.Courses,
		"instances", s.Instances,
		"offers", s.Offers,
		"triples", s.Triples,
		"warnings", s.Warnings,
	)

	return &Output{Source: location, Path: path, Result: res}, nil
}

// publish hands a written file to the configured publisher, if any.
func (c *Converter) publish(ctx context.Context, out *Output) error {
	if c.opts.Publisher == nil {
		return nil
	}
	name := filepath.Base(out.Path)
	if err := c.opts.Publisher.Publish(ctx, out.Path, name); err != nil {
		return fmt.Errorf("convert: publish %s: %w", out.Path, err)
	}
	c.log.Info("published", "path", out.Path, "to", publisherName(c.opts.Publisher), "name", name)
	return nil
}

func (c *Converter) logDiagnostics(location string, d diagnostic.Diagnostics) {
	for _, w := range d.Warnings {
		c.log.Warn(w.Message, "source", location, "code", w.Code, "subject", w.Subject, "field", w.Field)
	}
	for _, i := range d.Infos {
		c.log.Debug(i.Message, "source", location, "code", i.Code, "subject", i.Subject, "field", i.Field)
	}
}

func publisherName(p Publisher) string {
	if s, ok := p.(fmt.Stringer); ok {
		return s.String()
	}
	return fmt.Sprintf("%T", p)
}
