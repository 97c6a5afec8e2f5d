package types

import "fmt"

// Issue codes. Every issue carries exactly one of these.
const (
	CodeFormat = "FORMAT" // whitespace and newline hygiene
	CodeIndent = "INDENT" // indentation rule violations
	CodeSyntax = "SYNTAX" // block nesting violations
)

// Issue represents a problem found in a Lua source file.
type Issue struct {
	Check    string
	Code     string
	Severity Severity
	Filename string
	Line     int
	Column   int
	Message  string
}

// String renders the canonical single-line form of an issue.
func (i Issue) String() string {
	return fmt.Sprintf("L%d:C%d %s %s", i.Line, i.Column, i.Code, i.Message)
}

// Options holds the indentation rules for a single analysis run.
// It is passed per call; the engine keeps no mutable state between runs.
type Options struct {
	PreferSpaces bool
	IndentSize   int
}

// DefaultOptions returns the standard rules: space indentation, width 4.
func DefaultOptions() Options {
	return Options{PreferSpaces: true, IndentSize: 4}
}
