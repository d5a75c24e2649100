package output

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func withoutColor(t *testing.T) {
	t.Helper()
	orig := color.NoColor
	color.NoColor = true
	t.Cleanup(func() { color.NoColor = orig })
}

func TestMarkdownFormatter(t *testing.T) {
	withoutColor(t)
	report := Report{Results: []Result{
		{Query: "first", Result: "one\n\n## Sources\n- [A](https://a)"},
		{Query: "second", Result: "two"},
	}}

	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(report, &buf))
	assert.Equal(t, "# first\n\none\n\n## Sources\n- [A](https://a)\n\n# second\n\ntwo\n", buf.String())
}

func TestMarkdownFormatter_Empty(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, NewMarkdownFormatter().Format(Report{}, &buf))
	assert.Empty(t, buf.String())
}

func TestRawFormatter(t *testing.T) {
	report := Report{Results: []Result{{Query: "q1", Result: "a"}, {Query: "q2", Result: ""}}}

	var buf bytes.Buffer
	require.NoError(t, NewRawFormatter().Format(report, &buf))
	assert.Equal(t, "a\n\n", buf.String())
}
