package checks

import (
	"iter"
	"unicode"
)

// Words yields the maximal runs of letters and underscores in line, left to
// right. Digits and every other character act as separators. The sequence is
// deliberately permissive: it emits ordinary identifiers as well as keywords,
// and callers filter for the words they care about.
func Words(line string) iter.Seq[string] {
	return func(yield func(string) bool) {
		start := -1
		for i, r := range line {
			if isWordRune(r) {
				if start < 0 {
					start = i
				}
				continue
			}
			if start >= 0 {
				if !yield(line[start:i]) {
					return
				}
				start = -1
			}
		}
		if start >= 0 {
			yield(line[start:])
		}
	}
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r)
}
