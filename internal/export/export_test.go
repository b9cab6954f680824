package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/andybalholm/brotli"
	"github.com/goccy/go-json"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

const courseIRI = "http://example.org/courses/maths#Course"

func lit(v string) graph.Term { return graph.Literal(v, "en") }

func sampleGraph() *graph.Graph {
	g := graph.New()
	list := g.NewBlank()
	course := graph.IRI(courseIRI)
	provider := graph.IRI("http://example.org/#Organization")

	g.Add(list, vocab.RDFType, domain.KindItemList.IRI())
	g.Add(list, vocab.ItemListElement, course)
	g.Add(course, vocab.RDFType, domain.KindCourse.IRI())
	g.Add(course, vocab.RDFType, domain.KindListItem.IRI())
	g.Add(course, vocab.Name, lit("Maths"))
	g.Add(course, vocab.Name, graph.Literal("Mathe", "de"))
	g.Add(course, vocab.About, lit("Algebra"))
	g.Add(course, vocab.About, lit("Geometry"))
	g.Add(course, vocab.Position, lit("1"))
	g.Add(course, vocab.URLProp, lit("http://example.org/courses/maths"))
	g.Add(course, vocab.ProviderProp, provider)
	g.Add(provider, vocab.Name, lit("Example College"))
	g.Add(course, vocab.HasCourseInstance, g.NewBlank())
	g.Add(course, vocab.HasCourseInstance, g.NewBlank())
	return g
}

func TestWriteJSONLD(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteJSONLD(&buf, sampleGraph(), "en"))

	var got map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	want := map[string]any{
		"@context": map[string]any{"@vocab": "http://schema.org/", "@language": "en"},
		"@graph": []any{
			map[string]any{
				"@id":             "_:b0",
				"@type":           "ItemList",
				"itemListElement": map[string]any{"@id": courseIRI},
			},
			map[string]any{
				"@id":      courseIRI,
				"@type":    []any{"Course", "ListItem"},
				"name":     []any{"Maths", map[string]any{"@value": "Mathe", "@language": "de"}},
				"about":    []any{"Algebra", "Geometry"},
				"position": "1",
				"url":      "http://example.org/courses/maths",
				"provider": map[string]any{"@id": "http://example.org/#Organization"},
				"hasCourseInstance": []any{
					map[string]any{"@id": "_:b1"},
					map[string]any{"@id": "_:b2"},
				},
			},
			map[string]any{
				"@id":  "http://example.org/#Organization",
				"name": "Example College",
			},
		},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("JSON-LD mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteJSONLDKeepsForeignIRIs(t *testing.T) {
	g := graph.New()
	g.Add(graph.IRI("http://example.org/a"), graph.IRI("http://purl.org/dc/terms/title"), graph.Literal("x", ""))

	var buf bytes.Buffer
	require.NoError(t, WriteJSONLD(&buf, g, "en"))
	assert.Contains(t, buf.String(), `"http://purl.org/dc/terms/title"`)
	assert.Contains(t, buf.String(), `"@language": null`)
}

func TestWriteNTriples(t *testing.T) {
	g := graph.New()
	s := graph.IRI("http://example.org/c#Course")
	g.Add(s, vocab.RDFType, domain.KindCourse.IRI())
	g.Add(s, vocab.DescriptionProp, lit("say \"hi\"\nthen\tgo\\"))
	g.Add(g.NewBlank(), vocab.ItemListElement, s)

	var buf bytes.Buffer
	require.NoError(t, WriteNTriples(&buf, g))

	want := strings.Join([]string{
		`<http://example.org/c#Course> <http://www.w3.org/1999/02/22-rdf-syntax-ns#type> <http://schema.org/Course> .`,
		`<http://example.org/c#Course> <http://schema.org/description> "say \"hi\"\nthen\tgo\\"@en .`,
		`_:b0 <http://schema.org/itemListElement> <http://example.org/c#Course> .`,
	}, "\n") + "\n"
	assert.Equal(t, want, buf.String())
}

func TestEscapeIRI(t *testing.T) {
	assert.Equal(t, "http://example.org/a%20b", escapeIRI("http://example.org/a%20b"))
	assert.Equal(t, `http://example.org/\u0020\u003C`, escapeIRI("http://example.org/ <"))
}

func TestWriteCourseIndex(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteCourseIndex(&buf, sampleGraph()))

	want := "COURSE_ID,POSITION,COURSE_TITLE,COURSE_URL,COURSE_CODES,SUBJECTS,PROVIDER,INSTANCES\r\n" +
		courseIRI + ",1,Maths | Mathe,http://example.org/courses/maths,,Algebra | Geometry,Example College,2\r\n"
	assert.Equal(t, want, buf.String())
}

func TestCleanStrings(t *testing.T) {
	got := cleanStrings([]string{" a ", "", "b\nc", "\r"})
	assert.Equal(t, []string{"a", "b c"}, got)
}

func TestParseFormat(t *testing.T) {
	tests := []struct {
		in   string
		want Format
	}{
		{"", FormatJSONLD},
		{"JSON-LD", FormatJSONLD},
		{"nt", FormatNTriples},
		{"n-triples", FormatNTriples},
		{" csv ", FormatCSV},
	}
	for _, tt := range tests {
		got, err := ParseFormat(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseFormat("turtle")
	assert.Error(t, err)
}

func TestWriteFile(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "out")

	path, err := WriteFile(sampleGraph(), "catalog", FileOptions{Dir: dir, Format: FormatNTriples, Language: "en"})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "catalog.nt"), path)

	plain, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, 14, bytes.Count(plain, []byte("\n")))
}

func TestWriteFileBrotli(t *testing.T) {
	dir := t.TempDir()

	path, err := WriteFile(sampleGraph(), "catalog", FileOptions{Dir: dir, Format: FormatJSONLD, Language: "en", Brotli: true})
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "catalog.jsonld.br"), path)

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var doc jsonLDDocument
	require.NoError(t, json.NewDecoder(brotli.NewReader(f)).Decode(&doc))
	assert.Equal(t, "en", doc.Context["@language"])
	assert.Len(t, doc.Graph, 3)
}
