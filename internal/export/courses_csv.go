package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

// Course index header. Keep order EXACT; downstream imports key on position.
var courseIndexHeader = []string{
	"COURSE_ID",
	"POSITION",
	"COURSE_TITLE",
	"COURSE_URL",
	"COURSE_CODES",
	"SUBJECTS",
	"PROVIDER",
	"INSTANCES",
}

// WriteCourseIndex writes one row per course in the order courses were added
// to g. Multi-valued columns are joined with " | ".
func WriteCourseIndex(w io.Writer, g *graph.Graph) error {
	cw := csv.NewWriter(w)
	cw.UseCRLF = true

	if err := cw.Write(courseIndexHeader); err != nil {
		return err
	}
	for _, course := range g.Subjects(vocab.RDFType, domain.KindCourse.IRI()) {
		if err := cw.Write(courseRow(g, course)); err != nil {
			return err
		}
	}
	cw.Flush()
	return cw.Error()
}

func courseRow(g *graph.Graph, course graph.Term) []string {
	providers := []string{}
	for _, p := range g.Objects(course, vocab.ProviderProp) {
		providers = append(providers, values(g.Objects(p, vocab.Name))...)
	}

	return []string{
		nodeID(course), // COURSE_ID
		join(values(g.Objects(course, vocab.Position))),   // POSITION
		join(values(g.Objects(course, vocab.Name))),       // COURSE_TITLE
		join(values(g.Objects(course, vocab.URLProp))),    // COURSE_URL
		join(values(g.Objects(course, vocab.CourseCode))), // COURSE_CODES
		join(values(g.Objects(course, vocab.About))),      // SUBJECTS
		join(providers), // PROVIDER
		strconv.Itoa(len(g.Objects(course, vocab.HasCourseInstance))), // INSTANCES
	}
}

func nodeID(t graph.Term) string {
	if t.IsBlank() {
		return "_:" + t.Value
	}
	return t.Value
}

func values(terms []graph.Term) []string {
	out := make([]string, 0, len(terms))
	for _, t := range terms {
		out = append(out, t.Value)
	}
	return out
}

func join(in []string) string {
	return strings.Join(cleanStrings(in), " | ")
}

func cleanStrings(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		// keep each cell on one line
		s = strings.ReplaceAll(s, "\n", " ")
		s = strings.ReplaceAll(s, "\r", " ")
		out = append(out, s)
	}
	return out
}
