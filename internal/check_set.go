package internal

import (
	"github.com/senseilua/lualint/internal/checks"
	tt "github.com/senseilua/lualint/internal/types"
)

/*
* Implement each analysis check as a separate struct
 */

// Check defines the interface for all analysis checks.
type Check interface {
	// Run inspects the source and returns the issues it found, in
	// discovery order.
	Run(source string, lines []string, opts tt.Options) []tt.Issue

	// Name returns the name of the check.
	Name() string
}

type FinalNewlineCheck struct{}

func (c *FinalNewlineCheck) Run(source string, lines []string, _ tt.Options) []tt.Issue {
	return checks.DetectMissingFinalNewline(source, lines)
}

func (c *FinalNewlineCheck) Name() string {
	return checks.CheckFinalNewline
}

type IndentationCheck struct{}

func (c *IndentationCheck) Run(_ string, lines []string, opts tt.Options) []tt.Issue {
	return checks.DetectIndentationIssues(lines, opts)
}

func (c *IndentationCheck) Name() string {
	return checks.CheckIndentation
}

type TrailingWhitespaceCheck struct{}

func (c *TrailingWhitespaceCheck) Run(_ string, lines []string, _ tt.Options) []tt.Issue {
	return checks.DetectTrailingWhitespace(lines)
}

func (c *TrailingWhitespaceCheck) Name() string {
	return checks.CheckTrailingWhitespace
}

type BlockBalanceCheck struct{}

func (c *BlockBalanceCheck) Run(_ string, lines []string, _ tt.Options) []tt.Issue {
	return checks.DetectUnbalancedBlocks(lines)
}

func (c *BlockBalanceCheck) Name() string {
	return checks.CheckBlockBalance
}

// CheckNames returns the names of all checks in their run order.
func CheckNames() []string {
	return []string{
		checks.CheckFinalNewline,
		checks.CheckIndentation,
		checks.CheckTrailingWhitespace,
		checks.CheckBlockBalance,
	}
}
