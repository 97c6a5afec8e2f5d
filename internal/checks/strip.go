package checks

import "strings"

type stripState int

const (
	stateCode stripState = iota
	stateString
)

// StripLine converts a raw line into its code-only view: string literal
// contents (quotes included) become one space per character so column
// positions still line up, and everything from a `--` comment marker to the
// end of the line is dropped. A `--` inside an open string does not start a
// comment. Unterminated strings blank the rest of the line; the state does
// not carry over to the next line.
func StripLine(line string) string {
	var out strings.Builder
	out.Grow(len(line))

	state := stateCode
	var quote rune

	runes := []rune(line)
	for i := 0; i < len(runes); i++ {
		ch := runes[i]
		switch state {
		case stateCode:
			if ch == '-' && i+1 < len(runes) && runes[i+1] == '-' {
				return out.String()
			}
			if ch == '\'' || ch == '"' {
				state = stateString
				quote = ch
				out.WriteByte(' ')
				continue
			}
			out.WriteRune(ch)
		case stateString:
			if ch == '\\' && i+1 < len(runes) {
				// The escaped character is blanked too and never
				// considered for string termination.
				out.WriteString("  ")
				i++
				continue
			}
			if ch == quote {
				state = stateCode
			}
			out.WriteByte(' ')
		}
	}
	return out.String()
}

// SplitLines splits a source string on newline boundaries, discarding the
// empty terminal segment produced when the source ends in a newline.
func SplitLines(source string) []string {
	if source == "" {
		return nil
	}
	lines := strings.Split(source, "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	return lines
}
