package checks

import (
	"fmt"
	"strings"
	"unicode/utf8"

	tt "github.com/senseilua/lualint/internal/types"
)

// blockFrame records an unmatched opening keyword: the closer it expects and
// the line it was opened on. Frames are pushed in line-scan order and popped
// LIFO only, so opening lines on the stack are always increasing.
type blockFrame struct {
	closer string
	line   int
}

// DetectUnbalancedBlocks runs the stack-based matching algorithm over the
// keyword stream of every code-only line. It reports closers with no open
// block, closers that do not match the innermost open block, and blocks
// still open at end of source (oldest first). A mismatched closer leaves the
// frame on the stack: later closers are still checked against it.
func DetectUnbalancedBlocks(lines []string) []tt.Issue {
	var issues []tt.Issue
	var stack []blockFrame

	for idx, raw := range lines {
		for word := range Words(StripLine(raw)) {
			if closer, ok := blockPairs[word]; ok {
				stack = append(stack, blockFrame{closer: closer, line: idx + 1})
				continue
			}
			if !blockClosers[word] {
				continue
			}
			if len(stack) == 0 {
				issues = append(issues, tt.Issue{
					Check:   CheckBlockBalance,
					Code:    tt.CodeSyntax,
					Line:    idx + 1,
					Column:  findColumn(raw, word),
					Message: fmt.Sprintf("Unexpected '%s'", word),
				})
				continue
			}
			top := stack[len(stack)-1]
			if top.closer != word {
				issues = append(issues, tt.Issue{
					Check:   CheckBlockBalance,
					Code:    tt.CodeSyntax,
					Line:    idx + 1,
					Column:  findColumn(raw, word),
					Message: fmt.Sprintf("Expected '%s' opened at line %d", top.closer, top.line),
				})
				continue
			}
			stack = stack[:len(stack)-1]
		}
	}

	for _, frame := range stack {
		issues = append(issues, tt.Issue{
			Check:   CheckBlockBalance,
			Code:    tt.CodeSyntax,
			Line:    frame.line,
			Column:  1,
			Message: fmt.Sprintf("Unclosed block expecting '%s'", frame.closer),
		})
	}
	return issues
}

// findColumn returns the 1-based column of the first literal occurrence of
// token in the raw line. Known limitation: if the same text appears earlier
// inside a string, a comment or a longer identifier, the column is
// misattributed to that occurrence. Kept for output compatibility.
func findColumn(line, token string) int {
	idx := strings.Index(line, token)
	if idx < 0 {
		return 1
	}
	return utf8.RuneCountInString(line[:idx]) + 1
}
