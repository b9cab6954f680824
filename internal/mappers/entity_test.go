package mappers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"course-graph/internal/diagnostic"
	"course-graph/internal/domain"
	"course-graph/internal/graph"
	"course-graph/internal/vocab"
)

func TestEntityWithURLIdentifier(t *testing.T) {
	r := record(t, "course", "", `
		<dc:identifier>http://example.org/cs101</dc:identifier>
		<dc:title>Computing</dc:title>
		<dc:title>Informatique</dc:title>
		<dc:description>About computing</dc:description>
		<mlo:url>http://example.org/info</mlo:url>`)
	m, g := newMapper()

	e := m.Entity(r, domain.KindCourse)

	assert.Equal(t, graph.IRI("http://example.org/cs101#Course"), e)
	assert.True(t, g.Has(e, vocab.RDFType, domain.KindCourse.IRI()))
	assert.Equal(t, []string{"http://example.org/info", "http://example.org/cs101"}, values(g, e, vocab.URLProp))
	assert.Equal(t, []string{"Computing", "Informatique"}, values(g, e, vocab.Name))
	assert.Equal(t, []string{"About computing"}, values(g, e, vocab.DescriptionProp))
}

func TestEntityReportsOverriddenURLIdentifier(t *testing.T) {
	r := record(t, "course", "", `
		<dc:identifier>http://example.org/old</dc:identifier>
		<dc:identifier>http://example.org/new</dc:identifier>`)
	m, _ := newMapper()

	e := m.Entity(r, domain.KindCourse)

	assert.Equal(t, graph.IRI("http://example.org/new#Course"), e)
	diags := m.Diagnostics()
	assert.Empty(t, diags.Warnings)
	require.Len(t, diags.Infos, 1)
	assert.Equal(t, diagnostic.CodeIdentifierOverridden, diags.Infos[0].Code)
	assert.Equal(t, "dc:identifier", diags.Infos[0].Field)
}

func TestEntityWithCodeIdentifierHasNoIdentifierURL(t *testing.T) {
	r := record(t, "course", "", `<dc:identifier>CS101</dc:identifier><dc:title>Computing</dc:title>`)
	m, g := newMapper()

	e := m.Entity(r, domain.KindCourse)

	assert.Equal(t, graph.IRI("CS101"), e)
	assert.Empty(t, values(g, e, vocab.URLProp))
}

func TestEntityWithoutIdentifierIsBlank(t *testing.T) {
	r := record(t, "provider", "", `<dc:title>Nameless</dc:title>`)
	m, g := newMapper()

	a := m.Entity(r, domain.KindOrganization)
	b := m.Entity(r, domain.KindOrganization)

	assert.True(t, a.IsBlank())
	assert.NotEqual(t, a, b)
	assert.Equal(t, []string{"Nameless"}, values(g, a, vocab.Name))
}

func TestEntityLiteralsAreLanguageTagged(t *testing.T) {
	r := record(t, "course", "", `<dc:title>Computing</dc:title>`)
	g := graph.New()
	m := New(g, Options{Language: "cy"})

	e := m.Entity(r, domain.KindCourse)

	assert.True(t, g.Has(e, vocab.Name, graph.Literal("Computing", "cy")))
}

func TestItemList(t *testing.T) {
	r := record(t, "catalog", "", `<dc:description>All courses</dc:description>`)
	m, g := newMapper()

	list := m.ItemList(r)

	assert.True(t, list.IsBlank())
	assert.True(t, g.Has(list, vocab.RDFType, domain.KindItemList.IRI()))
	assert.Equal(t, []string{"All courses"}, values(g, list, vocab.DescriptionProp))
	assert.True(t, g.Has(list, vocab.ItemListOrder, lit("ordered")))
}
