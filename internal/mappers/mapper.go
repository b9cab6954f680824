package mappers

import (
	"encoding/xml"
	"strings"

	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

// Scheme maps a subject classification (the subject's xsi:type) to the
// educational framework named on the resulting alignment.
type Scheme struct {
	Type          string `yaml:"type"`
	Framework     string `yaml:"framework"`
	AlignmentType string `yaml:"alignment_type"`
}

// DefaultSchemes knows JACS v3 subject codes.
func DefaultSchemes() []Scheme {
	return []Scheme{{
		Type:          vocab.JACS3Type,
		Framework:     "JACS",
		AlignmentType: "EducationalSubject",
	}}
}

// Options tune a conversion.
type Options struct {
	// Language tags every literal. Defaults to vocab.DefaultLanguage.
	Language string
	// Schemes replaces DefaultSchemes when non-nil.
	Schemes []Scheme
}

// Mapper writes entities for catalogue records into a graph.Store.
type Mapper struct {
	g       graph.Store
	lang    string
	schemes map[string]Scheme

	diags   diagnostic.Diagnostics
	summary domain.Summary
}

func New(g graph.Store, opts Options) *Mapper {
	lang := strings.TrimSpace(opts.Language)
	if lang == "" {
		lang = vocab.DefaultLanguage
	}
	schemes := opts.Schemes
	if schemes == nil {
		schemes = DefaultSchemes()
	}

	m := &Mapper{
		g:       g,
		lang:    lang,
		schemes: make(map[string]Scheme, len(schemes)),
	}
	for _, s := range schemes {
		m.schemes[s.Type] = s
	}
	return m
}

// Diagnostics returns what has been reported so far.
func (m *Mapper) Diagnostics() diagnostic.Diagnostics { return m.diags }

// Summary returns the entity counts so far.
func (m *Mapper) Summary() domain.Summary {
	s := m.summary
	s.Warnings = len(m.diags.Warnings)
	return s
}

func (m *Mapper) warn(code, message string, subject graph.Term, field xml.Name) {
	m.diags.AddWarning(code, message, ref(subject), qname(field))
}

func (m *Mapper) info(code, message string, subject graph.Term, field xml.Name) {
	m.diags.AddInfo(code, message, ref(subject), qname(field))
}

func (m *Mapper) typed(s graph.Term, kind domain.Kind) {
	m.g.Add(s, vocab.RDFType, kind.IRI())
}

func ref(t graph.Term) string {
	if t.IsBlank() {
		return "_:" + t.Value
	}
	return t.Value
}

var prefixes = map[string]string{
	vocab.NSXCRI:  "xcri",
	vocab.NSDC:    "dc",
	vocab.NSMLO:   "mlo",
	vocab.NSXSI:   "xsi",
	vocab.NSXHTML: "xhtml",
}

// qname renders a source tag with its conventional prefix.
func qname(n xml.Name) string {
	if p, ok := prefixes[n.Space]; ok {
		return p + ":" + n.Local
	}
	return n.Local
}
