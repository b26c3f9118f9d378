package nquads

import (
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rdfline/rdfline/pkg/rdf"
)

const sampleDoc = `# a small document
<http://ex/s1> <http://ex/p> <http://ex/o1> .

<http://ex/s2> <http://ex/p> "two" .
  # indented comment
<http://ex/s3> <http://ex/p> "three"@en <http://ex/g> .
`

func TestDecoderStreams(t *testing.T) {
	d := NewDecoder(strings.NewReader(sampleDoc))

	q, err := d.Next()
	require.NoError(t, err)
	assert.Equal(t, rdf.NewNamedNode("http://ex/s1"), q.Subject)

	q, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, rdf.NewLiteral("two"), q.Object)

	q, err = d.Next()
	require.NoError(t, err)
	assert.Equal(t, rdf.NewNamedNode("http://ex/g"), q.Graph)

	_, err = d.Next()
	assert.Equal(t, io.EOF, err)
	assert.NoError(t, d.Err())
}

func TestDecoderLineEndings(t *testing.T) {
	// \n, \r, and \r\n all end a line
	doc := "<http://ex/s> <http://ex/p> \"a\" .\r\n" +
		"<http://ex/s> <http://ex/p> \"b\" .\r" +
		"<http://ex/s> <http://ex/p> \"c\" ."
	quads, err := ParseDocument(strings.NewReader(doc))
	require.NoError(t, err)
	require.Len(t, quads, 3)
	assert.Equal(t, rdf.NewLiteral("a"), quads[0].Object)
	assert.Equal(t, rdf.NewLiteral("b"), quads[1].Object)
	assert.Equal(t, rdf.NewLiteral("c"), quads[2].Object)
}

func TestDecoderErrorLineNumber(t *testing.T) {
	doc := "<http://ex/s> <http://ex/p> <http://ex/o> .\n" +
		"# fine so far\n" +
		"<http://ex/s> <http://ex/p> bad .\n"
	d := NewDecoder(strings.NewReader(doc))

	_, err := d.Next()
	require.NoError(t, err)

	_, err = d.Next()
	require.Error(t, err)
	var perr *ParseError
	require.True(t, errors.As(err, &perr))
	assert.Equal(t, 3, perr.Line)
	assert.Equal(t, 28, perr.Offset)

	// the decoder is stuck on the first error
	_, again := d.Next()
	assert.Equal(t, err, again)
	assert.Equal(t, err, d.Err())
}

func TestDecoderStopsAtFirstError(t *testing.T) {
	doc := "bad\n<http://ex/s> <http://ex/p> <http://ex/o> .\n"
	quads, err := ParseDocument(strings.NewReader(doc))
	require.Error(t, err)
	assert.Nil(t, quads)
}

func TestDocumentMatchesPerLineParsing(t *testing.T) {
	lines := []string{
		`<http://ex/s1> <http://ex/p> <http://ex/o> .`,
		`_:b <http://ex/p> "lit"^^<http://www.w3.org/2001/XMLSchema#string> .`,
		`<http://ex/s2> <http://ex/p> "x" <http://ex/g> .`,
	}
	quads, err := ParseDocument(strings.NewReader(strings.Join(lines, "\n")))
	require.NoError(t, err)
	require.Len(t, quads, len(lines))

	for i, line := range lines {
		single, err := ParseStatement(line)
		require.NoError(t, err)
		assert.Equal(t, single, quads[i])
	}
}

func TestDecoderEmptyDocument(t *testing.T) {
	for _, doc := range []string{"", "\n\n", "# only comments\n  \n"} {
		quads, err := ParseDocument(strings.NewReader(doc))
		require.NoError(t, err, "%q", doc)
		assert.Empty(t, quads)
	}
}

func TestDecoderInterning(t *testing.T) {
	doc := "<http://ex/s> <http://ex/p> <http://ex/o> .\n" +
		"<http://ex/s> <http://ex/p> \"x\" .\n"
	quads, err := ParseDocument(strings.NewReader(doc), WithInterning())
	require.NoError(t, err)
	require.Len(t, quads, 2)

	// repeated terms share one allocation
	assert.Same(t, quads[0].Subject, quads[1].Subject)
	assert.Same(t, quads[0].Predicate, quads[1].Predicate)
}
