package checks

import (
	"fmt"
	"strings"

	tt "github.com/senseilua/lualint/internal/types"
)

// DetectIndentationIssues classifies the leading whitespace of every line
// with non-whitespace content. Blank and whitespace-only lines are skipped.
// At most one issue is reported per line: mixed tabs and spaces win, then the
// tab check (when tabs are disallowed), then the width check for space-only
// indents.
func DetectIndentationIssues(lines []string, opts tt.Options) []tt.Issue {
	var issues []tt.Issue
	for idx, line := range lines {
		trimmed := strings.TrimLeft(line, " \t")
		if trimmed == "" {
			continue
		}
		indent := line[:len(line)-len(trimmed)]
		hasSpace := strings.Contains(indent, " ")
		hasTab := strings.Contains(indent, "\t")

		switch {
		case hasSpace && hasTab:
			issues = append(issues, tt.Issue{
				Check:   CheckIndentation,
				Code:    tt.CodeIndent,
				Line:    idx + 1,
				Column:  1,
				Message: "Mixed tabs and spaces in indentation",
			})
		case opts.PreferSpaces && hasTab:
			issues = append(issues, tt.Issue{
				Check:   CheckIndentation,
				Code:    tt.CodeIndent,
				Line:    idx + 1,
				Column:  strings.IndexByte(indent, '\t') + 1,
				Message: "Tab indentation found (expected spaces)",
			})
		case hasSpace && len(indent)%opts.IndentSize != 0:
			issues = append(issues, tt.Issue{
				Check:   CheckIndentation,
				Code:    tt.CodeIndent,
				Line:    idx + 1,
				Column:  len(indent),
				Message: fmt.Sprintf("Indentation width should be a multiple of %d", opts.IndentSize),
			})
		}
	}
	return issues
}
