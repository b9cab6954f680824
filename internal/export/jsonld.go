package export

import (
	"io"
	"strings"

	"github.com/goccy/go-json"

	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

type jsonLDDocument struct {
	Context map[string]string `json:"@context"`
	Graph   []map[string]any  `json:"@graph"`
}

// WriteJSONLD writes g as a JSON-LD document compacted against
// vocab.Context(lang). Nodes appear in the order their first triple was added.
func WriteJSONLD(w io.Writer, g *graph.Graph, lang string) error {
	doc := jsonLDDocument{
		Context: vocab.Context(lang),
		Graph:   compact(g, lang),
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	enc.SetEscapeHTML(false)
	return enc.Encode(doc)
}

func compact(g *graph.Graph, lang string) []map[string]any {
	var order []graph.Term
	nodes := map[graph.Term]map[string]any{}

	for _, t := range g.Triples() {
		node, ok := nodes[t.S]
		if !ok {
			node = map[string]any{"@id": nodeID(t.S)}
			nodes[t.S] = node
			order = append(order, t.S)
		}

		if t.P == vocab.RDFType {
			appendValue(node, "@type", compactIRI(t.O.Value))
			continue
		}
		appendValue(node, compactIRI(t.P.Value), object(t.O, lang))
	}

	out := make([]map[string]any, 0, len(order))
	for _, s := range order {
		out = append(out, nodes[s])
	}
	return out
}

// appendValue keeps single values scalar and turns repeats into arrays.
func appendValue(node map[string]any, key string, v any) {
	switch cur := node[key].(type) {
	case nil:
		node[key] = v
	case []any:
		node[key] = append(cur, v)
	default:
		node[key] = []any{cur, v}
	}
}

func compactIRI(iri string) string {
	if local, ok := strings.CutPrefix(iri, vocab.Schema); ok && local != "" {
		return local
	}
	return iri
}

func object(t graph.Term, lang string) any {
	if t.IsNode() {
		return map[string]any{"@id": nodeID(t)}
	}
	if t.Lang == lang {
		return t.Value
	}
	if t.Lang == "" {
		return map[string]any{"@value": t.Value, "@language": nil}
	}
	return map[string]any{"@value": t.Value, "@language": t.Lang}
}
