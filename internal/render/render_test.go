package render

import (
	"bytes"
	"testing"

	"github.com/go-leo/patterns/visitor"
	"github.com/kinbiko/jsonassert"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func collect(t *testing.T) []visitor.Result {
	t.Helper()
	components, err := visitor.Parse("a", "b")
	require.NoError(t, err)
	var c visitor.Collector
	visitor.Walk(components, visitor.ConcreteVisitor1{Sink: &c})
	return c.Results()
}

const expectedJSON = `[
	{"element": "ConcreteComponentA", "visitor": "ConcreteVisitor1", "value": "A", "line": "A + ConcreteVisitor1"},
	{"element": "ConcreteComponentB", "visitor": "ConcreteVisitor1", "value": "B", "line": "B + ConcreteVisitor1"}
]`

func TestParseFormat(t *testing.T) {
	for _, format := range Formats {
		got, err := ParseFormat(string(format))
		assert.NoError(t, err)
		assert.Equal(t, format, got)
	}
	_, err := ParseFormat("yaml")
	assert.ErrorIs(t, err, ErrUnknownFormat)
}

func TestRender_Text(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, Text, collect(t)))
	assert.Equal(t, "A + ConcreteVisitor1\nB + ConcreteVisitor1\n", buf.String())
}

func TestRender_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, JSON, collect(t)))
	jsonassert.New(t).Assertf(buf.String(), expectedJSON)
}

func TestRender_ProtoJSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, ProtoJSON, collect(t)))
	jsonassert.New(t).Assertf(buf.String(), expectedJSON)
}

func TestRender_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Render(&buf, JSON, nil))
	assert.Equal(t, "[]\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, Text, nil))
	assert.Empty(t, buf.String())
}

func TestRender_UnknownFormat(t *testing.T) {
	assert.ErrorIs(t, Render(&bytes.Buffer{}, Format("xml"), nil), ErrUnknownFormat)
}
