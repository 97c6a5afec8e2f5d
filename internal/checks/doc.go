// Package checks implements the individual analysis passes: comment/string
// stripping, word tokenization, indentation classification, whitespace
// hygiene and block balance. Every Detect function is a pure function of its
// input lines and returns issues in discovery order.
package checks

// Check names, used for configuration and the --ignore flag.
const (
	CheckFinalNewline       = "final-newline"
	CheckIndentation        = "indentation"
	CheckTrailingWhitespace = "trailing-whitespace"
	CheckBlockBalance       = "block-balance"
)
