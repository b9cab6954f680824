package export

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"course-graph/internal/graph"
)

// WriteNTriples writes every triple of g, one per line, in insertion order.
func WriteNTriples(w io.Writer, g *graph.Graph) error {
	bw := bufio.NewWriter(w)
	for _, t := range g.Triples() {
		if _, err := fmt.Fprintf(bw, "%s %s %s .\n", ntTerm(t.S), ntTerm(t.P), ntTerm(t.O)); err != nil {
			return err
		}
	}
	return bw.Flush()
}

func ntTerm(t graph.Term) string {
	switch {
	case t.IsIRI():
		return "<" + escapeIRI(t.Value) + ">"
	case t.IsBlank():
		return "_:" + t.Value
	default:
		s := `"` + escapeLiteral(t.Value) + `"`
		if t.Lang != "" {
			s += "@" + t.Lang
		}
		return s
	}
}

func escapeLiteral(s string) string {
	var b strings.Builder
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		default:
			if r < 0x20 || r == 0x7f {
				fmt.Fprintf(&b, `\u%04X`, r)
				continue
			}
			b.WriteRune(r)
		}
	}
	return b.String()
}

// escapeIRI escapes the characters N-Triples forbids inside an IRI ref.
func escapeIRI(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r <= 0x20 || strings.ContainsRune(`<>"{}|^`+"`\\", r) {
			fmt.Fprintf(&b, `\u%04X`, r)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
