package render_test

import (
	"bytes"
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/fpgroup/group"
	"github.com/katalvlaran/fpgroup/internal/render"
)

func klein(t *testing.T) *group.Group {
	t.Helper()
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^2", "b^2", "(a b)^2"})
	require.NoError(t, err)

	return g
}

func TestGroup_Table(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Group(&buf, klein(t), "table"))
	out := buf.String()
	assert.Contains(t, out, "order 4, abelian")
	assert.Contains(t, out, "a*b")
	assert.Contains(t, out, "│")
}

func TestGroup_Markdown(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Group(&buf, klein(t), "markdown"))
	out := buf.String()
	assert.Contains(t, out, "order 4, abelian")
	assert.Contains(t, out, "| e ")
	assert.NotContains(t, out, "│")
}

func TestGroup_JSON(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Group(&buf, klein(t), "json"))

	var s group.Summary
	require.NoError(t, json.Unmarshal(buf.Bytes(), &s))
	assert.Equal(t, 4, s.Order)
	assert.Equal(t, []string{"e", "a", "b", "a*b"}, s.Elements)
	assert.Equal(t, "e", s.Table["a*b"]["a*b"])
}

func TestGroup_YAML(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, render.Group(&buf, klein(t), "yaml"))

	var s group.Summary
	require.NoError(t, yaml.Unmarshal(buf.Bytes(), &s))
	assert.Equal(t, 4, s.Order)
	assert.Equal(t, "b", s.Table["a"]["a*b"])
	assert.Equal(t, 2, s.ElementOrders["a"])
}

func TestGroup_LargeOrderListsElements(t *testing.T) {
	g, err := group.Enumerate(context.Background(), []string{"a", "b"}, []string{"a^2", "b^3", "(a b)^5"})
	require.NoError(t, err)
	require.Greater(t, g.Order(), render.MaxGridOrder)

	var buf bytes.Buffer
	require.NoError(t, render.Group(&buf, g, "table"))
	assert.Contains(t, buf.String(), "order 60, non-abelian")
	assert.Contains(t, buf.String(), "multiplication table omitted")
}

func TestGroup_UnknownFormat(t *testing.T) {
	assert.Error(t, render.Group(&bytes.Buffer{}, klein(t), "xml"))
}
