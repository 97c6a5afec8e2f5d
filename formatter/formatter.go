// Package formatter renders analysis issues for humans. Output is colorized
// through fatih/color; setting color.NoColor produces the plain variant.
package formatter

import (
	"fmt"
	"strings"

	"github.com/fatih/color"

	"github.com/senseilua/lualint/internal"
	tt "github.com/senseilua/lualint/internal/types"
)

const tabWidth = 8

// NoIssuesFound is rendered when an analysis produced no issues.
const NoIssuesFound = "No issues found."

var (
	errorStyle   = color.New(color.FgRed, color.Bold)
	warningStyle = color.New(color.FgHiYellow, color.Bold)
	codeStyle    = color.New(color.FgYellow, color.Bold)
	fileStyle    = color.New(color.FgCyan, color.Bold)
	lineStyle    = color.New(color.FgHiBlue, color.Bold)
	messageStyle = color.New(color.FgRed, color.Bold)
)

// Format renders the issues with their offending line and a caret marker.
// An empty issue list renders as the NoIssuesFound sentinel.
func Format(issues []tt.Issue, sourceCode *internal.SourceCode) string {
	if len(issues) == 0 {
		return NoIssuesFound
	}
	var builder strings.Builder
	for _, issue := range issues {
		builder.WriteString(formatIssueHeader(issue))
		builder.WriteString(formatIssueBody(issue, sourceCode))
	}
	return builder.String()
}

// FormatSimple renders one canonical `L<line>:C<column> <code> <message>`
// line per issue, with the position and code colorized.
func FormatSimple(issues []tt.Issue) string {
	if len(issues) == 0 {
		return NoIssuesFound
	}
	parts := make([]string, 0, len(issues))
	for _, issue := range issues {
		prefix := lineStyle.Sprintf("L%d:C%d", issue.Line, issue.Column)
		parts = append(parts, fmt.Sprintf("%s %s %s", prefix, codeStyle.Sprint(issue.Code), issue.Message))
	}
	return strings.Join(parts, "\n")
}

func formatIssueHeader(issue tt.Issue) string {
	severity := errorStyle.Sprint("error: ")
	if issue.Severity == tt.SeverityWarning {
		severity = warningStyle.Sprint("warning: ")
	}
	location := fmt.Sprintf("%s:%d:%d", issue.Filename, issue.Line, issue.Column)
	return severity + codeStyle.Sprint(issue.Code) + "\n" +
		lineStyle.Sprint(" --> ") + fileStyle.Sprint(location) + "\n"
}

func formatIssueBody(issue tt.Issue, sourceCode *internal.SourceCode) string {
	var result strings.Builder

	lineNumberStr := fmt.Sprintf("%d", issue.Line)
	padding := strings.Repeat(" ", len(lineNumberStr)-1)
	result.WriteString(lineStyle.Sprintf("  %s|\n", padding))

	line := ""
	if sourceCode != nil && issue.Line-1 < len(sourceCode.Lines) {
		line = expandTabs(sourceCode.Lines[issue.Line-1])
	}
	result.WriteString(lineStyle.Sprintf("%d | ", issue.Line))
	result.WriteString(line + "\n")

	visualColumn := calculateVisualColumn(line, issue.Column)
	result.WriteString(lineStyle.Sprintf("  %s| ", padding))
	result.WriteString(strings.Repeat(" ", visualColumn))
	result.WriteString(messageStyle.Sprintf("^ %s\n\n", issue.Message))

	return result.String()
}

func expandTabs(line string) string {
	var expanded strings.Builder
	for i, ch := range line {
		if ch == '\t' {
			spaceCount := tabWidth - (i % tabWidth)
			expanded.WriteString(strings.Repeat(" ", spaceCount))
		} else {
			expanded.WriteRune(ch)
		}
	}
	return expanded.String()
}

func calculateVisualColumn(line string, column int) int {
	visualColumn := 0
	for i, ch := range line {
		if i+1 == column {
			break
		}
		if ch == '\t' {
			visualColumn += tabWidth - (visualColumn % tabWidth)
		} else {
			visualColumn++
		}
	}
	return visualColumn
}
