package render

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderer_Result_TwoFieldObject(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	text, err := r.Result(map[string]any{"a": 1, "b": "x"})
	require.NoError(t, err)

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	assert.Equal(t, []string{"a: 1", "b: x"}, lines)
	assert.Equal(t, buf.String(), text)
}

func TestFields_KeepsStructOrder(t *testing.T) {
	type result struct {
		Zeta  string         `json:"zeta"`
		Alpha int            `json:"alpha"`
		List  []string       `json:"list"`
		Obj   map[string]int `json:"obj"`
		Null  *string        `json:"null"`
		Flag  bool           `json:"flag"`
	}

	fields, err := Fields(result{
		Zeta:  "last letter",
		Alpha: 42,
		List:  []string{"x", "y"},
		Obj:   map[string]int{"k": 1},
		Flag:  true,
	})
	require.NoError(t, err)

	assert.Equal(t, []Field{
		{Name: "zeta", Value: "last letter"},
		{Name: "alpha", Value: "42"},
		{Name: "list", Value: `["x","y"]`},
		{Name: "obj", Value: `{"k":1}`},
		{Name: "null", Value: "null"},
		{Name: "flag", Value: "true"},
	}, fields)
}

func TestFields_StringsAreUnquotedAndUnescaped(t *testing.T) {
	fields, err := Fields(map[string]string{"content": "<p>\"quoted\"</p>"})
	require.NoError(t, err)
	require.Len(t, fields, 1)
	assert.Equal(t, `<p>"quoted"</p>`, fields[0].Value)
}

func TestFields_NonObject(t *testing.T) {
	fields, err := Fields([]int{1, 2})
	require.NoError(t, err)
	assert.Equal(t, []Field{{Name: "value", Value: "[1,2]"}}, fields)
}

func TestFields_EmptyObject(t *testing.T) {
	fields, err := Fields(struct{}{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestFields_Unserializable(t *testing.T) {
	_, err := Fields(make(chan int))
	assert.Error(t, err)
}

func TestRenderer_TitleAndError(t *testing.T) {
	var buf bytes.Buffer
	r := NewRenderer(&buf)

	require.NoError(t, r.Title("Signing in..."))
	require.NoError(t, r.Error(errors.New("boom")))
	require.NoError(t, r.Note("run %s", "r-1"))

	assert.Equal(t, "Signing in...\nError: boom\nrun r-1\n", buf.String())
}

func TestFields_KeepsMarkupUnescaped(t *testing.T) {
	type activity struct {
		Content string `json:"content"`
	}
	type result struct {
		Title      string     `json:"title"`
		Activities []activity `json:"activities"`
	}

	fields, err := Fields(result{
		Title:      "<b>Visit</b>",
		Activities: []activity{{Content: "<h1>Visit & labs</h1>"}},
	})
	require.NoError(t, err)

	require.Len(t, fields, 2)
	assert.Equal(t, "title: <b>Visit</b>", fields[0].String())
	assert.Equal(t, `activities: [{"content":"<h1>Visit & labs</h1>"}]`, fields[1].String())
}
