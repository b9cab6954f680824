package xmltree

import (
	"encoding/xml"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const doc = `<?xml version="1.0" encoding="UTF-8"?>
<catalog xmlns="http://xcri.org/profiles/1.2/catalog"
         xmlns:dc="http://purl.org/dc/elements/1.1/"
         xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance">
  <dc:identifier xsi:type="courseDataProgramme:internalID">CS101</dc:identifier>
  <dc:description>first <b>bold</b> tail</dc:description>
  <provider/>
  <provider/>
</catalog>`

const (
	nsXCRI = "http://xcri.org/profiles/1.2/catalog"
	nsDC   = "http://purl.org/dc/elements/1.1/"
	nsXSI  = "http://www.w3.org/2001/XMLSchema-instance"
)

func TestParseResolvesNamespaces(t *testing.T) {
	root, err := ParseString(doc)
	require.NoError(t, err)

	assert.Equal(t, xml.Name{Space: nsXCRI, Local: "catalog"}, root.Name())
	assert.Len(t, root.Children(xml.Name{Space: nsXCRI, Local: "provider"}), 2)

	ids := root.Children(xml.Name{Space: nsDC, Local: "identifier"})
	require.Len(t, ids, 1)
	assert.Equal(t, "CS101", ids[0].Text())

	v, ok := ids[0].Attr(xml.Name{Space: nsXSI, Local: "type"})
	assert.True(t, ok)
	assert.Equal(t, "courseDataProgramme:internalID", v)

	_, ok = ids[0].Attr(xml.Name{Local: "type"})
	assert.False(t, ok)
}

func TestTextExcludesChildContent(t *testing.T) {
	root, err := ParseString(doc)
	require.NoError(t, err)

	desc := root.Children(xml.Name{Space: nsDC, Local: "description"})[0]
	assert.Equal(t, "first  tail", desc.Text())
	assert.Equal(t, "bold", desc.Children(Any)[0].Text())
}

func TestChildrenAnyKeepsDocumentOrder(t *testing.T) {
	root, err := ParseString(doc)
	require.NoError(t, err)

	var locals []string
	for _, c := range root.Children(Any) {
		locals = append(locals, c.Name().Local)
	}
	assert.Equal(t, []string{"identifier", "description", "provider", "provider"}, locals)
}

func TestWalk(t *testing.T) {
	root, err := ParseString(`<a><b><c/></b><d/></a>`)
	require.NoError(t, err)

	var seen []string
	Walk(root, func(r Record) { seen = append(seen, r.Name().Local) })
	assert.Equal(t, []string{"a", "b", "c", "d"}, seen)
}

func TestParseErrors(t *testing.T) {
	testCases := []struct {
		name  string
		input string
	}{
		{"empty", ""},
		{"unclosed", "<a><b></a>"},
		{"garbage", "not xml at all <"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}

func TestParseLatin1(t *testing.T) {
	input := "<?xml version=\"1.0\" encoding=\"ISO-8859-1\"?><a>caf\xe9</a>"
	root, err := ParseString(input)
	require.NoError(t, err)
	assert.Equal(t, "café", root.Text())
}
