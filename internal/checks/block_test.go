package checks

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	tt "github.com/senseilua/lualint/internal/types"
)

func TestDetectUnbalancedBlocksClean(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []string
	}{
		{
			name: "nested function and if",
			lines: []string{
				"function greet(name)",
				"    if name then",
				"        print('Hello '..name)",
				"    end",
				"end",
			},
		},
		{
			name: "repeat until",
			lines: []string{
				"repeat",
				"    if ready then",
				"        done = true",
				"    end",
				"until done",
			},
		},
		{
			name:  "open and close on one line",
			lines: []string{"do x = 1 end"},
		},
		{
			name: "deep nesting",
			lines: []string{
				"do do do do",
				"end end end end",
			},
		},
		{
			name:  "no keywords at all",
			lines: []string{"x = 1", "y = x + 1"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, DetectUnbalancedBlocks(tc.lines))
		})
	}
}

func TestDetectUnbalancedBlocksUnclosed(t *testing.T) {
	t.Parallel()
	issues := DetectUnbalancedBlocks([]string{
		"if true then",
		"  print('oops')",
	})
	require.Len(t, issues, 1)
	assert.Equal(t, tt.Issue{
		Check:   CheckBlockBalance,
		Code:    tt.CodeSyntax,
		Line:    1,
		Column:  1,
		Message: "Unclosed block expecting 'end'",
	}, issues[0])
}

func TestDetectUnbalancedBlocksUnclosedOrderedOldestFirst(t *testing.T) {
	t.Parallel()
	issues := DetectUnbalancedBlocks([]string{
		"function outer()",
		"    repeat",
	})
	require.Len(t, issues, 2)
	assert.Equal(t, "Unclosed block expecting 'end'", issues[0].Message)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, "Unclosed block expecting 'until'", issues[1].Message)
	assert.Equal(t, 2, issues[1].Line)
}

func TestDetectUnbalancedBlocksUnexpectedCloser(t *testing.T) {
	t.Parallel()
	issues := DetectUnbalancedBlocks([]string{"end"})
	require.Len(t, issues, 1)
	assert.Equal(t, "Unexpected 'end'", issues[0].Message)
	assert.Equal(t, 1, issues[0].Line)
	assert.Equal(t, 1, issues[0].Column)
}

func TestDetectUnbalancedBlocksMismatchedCloser(t *testing.T) {
	t.Parallel()
	issues := DetectUnbalancedBlocks([]string{
		"if true then",
		"    print('hi')",
		"until false",
		"end",
	})
	require.Len(t, issues, 1)
	assert.Equal(t, "Expected 'end' opened at line 1", issues[0].Message)
	assert.Equal(t, 3, issues[0].Line)
	assert.Equal(t, 1, issues[0].Column)
}

func TestDetectUnbalancedBlocksMismatchKeepsFrame(t *testing.T) {
	t.Parallel()
	// A stray closer reports once but leaves the open frame in place, so a
	// later correct closer still matches it.
	issues := DetectUnbalancedBlocks([]string{
		"repeat",
		"end",
		"until done",
	})
	require.Len(t, issues, 1)
	assert.Equal(t, "Expected 'until' opened at line 1", issues[0].Message)
}

func TestDetectUnbalancedBlocksIgnoresStringsAndComments(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		lines []string
	}{
		{name: "keyword in comment", lines: []string{"-- then"}},
		{name: "keyword in string", lines: []string{`x = "end"`}},
		{name: "closer after comment marker", lines: []string{"x = 1 -- end"}},
		{name: "opener in single quotes", lines: []string{"msg = 'repeat after me'"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			assert.Empty(t, DetectUnbalancedBlocks(tc.lines))
		})
	}
}

func TestDetectUnbalancedBlocksColumnUsesRawLine(t *testing.T) {
	t.Parallel()
	issues := DetectUnbalancedBlocks([]string{"    end"})
	require.Len(t, issues, 1)
	assert.Equal(t, 5, issues[0].Column)
}

func TestFindColumn(t *testing.T) {
	t.Parallel()
	assert.Equal(t, 5, findColumn("    end", "end"))
	assert.Equal(t, 1, findColumn("end", "end"))
	assert.Equal(t, 1, findColumn("nothing here", "until"))
	// Known limitation: the first textual occurrence wins, even when it is
	// inside a string on the same line.
	assert.Equal(t, 6, findColumn(`x = "end" end`, "end"))
}
