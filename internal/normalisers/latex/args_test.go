package latex

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestArgs(t *testing.T) {
	tests := []struct {
		name     string
		text     string
		n        int
		expected []string
		ok       bool
	}{
		{
			name:     "simple arguments",
			text:     "{a}{b}{c}",
			n:        3,
			expected: []string{"a", "b", "c"},
			ok:       true,
		},
		{
			name:     "arguments are trimmed",
			text:     "{  Engineer \n}{ Acme }",
			n:        2,
			expected: []string{"Engineer", "Acme"},
			ok:       true,
		},
		{
			name:     "nested braces kept verbatim",
			text:     `{\textbf{Bold} text}{x}`,
			n:        2,
			expected: []string{`\textbf{Bold} text`, "x"},
			ok:       true,
		},
		{
			name:     "deep nesting",
			text:     "{a{b{c}}d}",
			n:        1,
			expected: []string{"a{b{c}}d"},
			ok:       true,
		},
		{
			name:     "text outside braces ignored",
			text:     "\n  % comment\n{one} and {two}",
			n:        2,
			expected: []string{"one", "two"},
			ok:       true,
		},
		{
			name:     "stray closing brace before first argument ignored",
			text:     "}{one}",
			n:        1,
			expected: []string{"one"},
			ok:       true,
		},
		{
			name:     "stops after n arguments",
			text:     "{a}{b}{ignored}",
			n:        2,
			expected: []string{"a", "b"},
			ok:       true,
		},
		{
			name:     "empty argument",
			text:     "{name}{}",
			n:        2,
			expected: []string{"name", ""},
			ok:       true,
		},
		{
			name:     "too few arguments",
			text:     "{a}{b}",
			n:        3,
			expected: []string{"a", "b"},
			ok:       false,
		},
		{
			name:     "unbalanced brace",
			text:     "{a}{b{c}",
			n:        2,
			expected: []string{"a"},
			ok:       false,
		},
		{
			name:     "empty text",
			text:     "",
			n:        1,
			expected: []string{},
			ok:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			args, ok := Args(tc.text, tc.n)
			assert.Equal(t, tc.ok, ok)
			assert.Equal(t, tc.expected, args)
		})
	}
}

func TestArgs_ZeroCount(t *testing.T) {
	args, ok := Args("{a}", 0)
	assert.True(t, ok)
	assert.Empty(t, args)
}

func TestArgs_Unicode(t *testing.T) {
	args, ok := Args("{Zürich}{München · Köln}", 2)
	require.True(t, ok)
	assert.Equal(t, []string{"Zürich", "München · Köln"}, args)
}

func TestSplitRecords(t *testing.T) {
	t.Run("drops preamble", func(t *testing.T) {
		parts := splitRecords(`preamble \cvskill{a}{b} \cvskill{c}{d}`, SkillMarker)
		require.Len(t, parts, 2)
		assert.Equal(t, "{a}{b} ", parts[0])
		assert.Equal(t, "{c}{d}", parts[1])
	})

	t.Run("no marker", func(t *testing.T) {
		assert.Nil(t, splitRecords("nothing here", SkillMarker))
	})
}
