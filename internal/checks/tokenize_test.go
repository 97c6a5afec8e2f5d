package checks

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		line     string
		expected []string
	}{
		{
			name:     "keywords and identifiers",
			line:     "if ready then",
			expected: []string{"if", "ready", "then"},
		},
		{
			name:     "digits split words",
			line:     "x1y",
			expected: []string{"x", "y"},
		},
		{
			name:     "underscores are word characters",
			line:     "local _private_name = 1",
			expected: []string{"local", "_private_name"},
		},
		{
			name:     "punctuation separates",
			line:     "foo.bar(baz)",
			expected: []string{"foo", "bar", "baz"},
		},
		{
			name:     "word at end of line",
			line:     "return end",
			expected: []string{"return", "end"},
		},
		{
			name:     "no words",
			line:     "1 + 2 * 3",
			expected: nil,
		},
		{
			name:     "empty line",
			line:     "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.expected, slices.Collect(Words(tt.line)))
		})
	}
}

func TestWordsIsRestartable(t *testing.T) {
	t.Parallel()
	seq := Words("repeat until done")
	first := slices.Collect(seq)
	second := slices.Collect(seq)
	assert.Equal(t, first, second)
}

func TestWordsStopsEarly(t *testing.T) {
	t.Parallel()
	var got []string
	for word := range Words("one two three") {
		got = append(got, word)
		if len(got) == 2 {
			break
		}
	}
	assert.Equal(t, []string{"one", "two"}, got)
}
