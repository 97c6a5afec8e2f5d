package checks

import (
	"strings"
	"unicode/utf8"

	tt "github.com/senseilua/lualint/internal/types"
)

// DetectMissingFinalNewline reports a FORMAT issue when a non-empty source
// does not end with a newline. The issue points one column past the end of
// the last line.
func DetectMissingFinalNewline(source string, lines []string) []tt.Issue {
	if source == "" || strings.HasSuffix(source, "\n") {
		return nil
	}
	line, column := 1, 1
	if len(lines) > 0 {
		line = len(lines)
		column = utf8.RuneCountInString(lines[len(lines)-1]) + 1
	}
	return []tt.Issue{{
		Check:   CheckFinalNewline,
		Code:    tt.CodeFormat,
		Line:    line,
		Column:  column,
		Message: "Missing final newline",
	}}
}

// DetectTrailingWhitespace reports a FORMAT issue for every line that ends
// with spaces or tabs, at the column of the line's last character.
func DetectTrailingWhitespace(lines []string) []tt.Issue {
	var issues []tt.Issue
	for idx, line := range lines {
		if strings.TrimRight(line, " \t") == line {
			continue
		}
		issues = append(issues, tt.Issue{
			Check:   CheckTrailingWhitespace,
			Code:    tt.CodeFormat,
			Line:    idx + 1,
			Column:  utf8.RuneCountInString(line),
			Message: "Trailing whitespace",
		})
	}
	return issues
}
