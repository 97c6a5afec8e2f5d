package internal

import (
	"fmt"
	"os"
	"strings"

	"github.com/fsnotify/fsnotify"
	"github.com/senseilua/lualint/internal/checks"
	tt "github.com/senseilua/lualint/internal/types"
)

// Engine manages the analysis process.
type Engine struct {
	opts          tt.Options
	checks        []Check
	ignoredChecks map[string]bool
	severities    map[string]tt.Severity

	watcher    *fsnotify.Watcher
	watchDirs  []string
	isWatching bool
}

// NewEngine creates a new analysis engine with the given options and
// per-check configuration.
func NewEngine(opts tt.Options, rules map[string]tt.ConfigRule) *Engine {
	engine := &Engine{
		opts:          opts,
		ignoredChecks: make(map[string]bool),
		severities:    make(map[string]tt.Severity),
	}
	engine.registerDefaultChecks()
	engine.applyConfig(rules)
	return engine
}

// registerDefaultChecks installs the checks in their fixed run order:
// final newline, indentation, trailing whitespace, block balance. Result
// ordering follows this order, not source position.
func (e *Engine) registerDefaultChecks() {
	e.checks = []Check{
		&FinalNewlineCheck{},
		&IndentationCheck{},
		&TrailingWhitespaceCheck{},
		&BlockBalanceCheck{},
	}
}

func (e *Engine) applyConfig(rules map[string]tt.ConfigRule) {
	for name, rule := range rules {
		if rule.Severity == tt.SeverityOff {
			e.IgnoreCheck(name)
			continue
		}
		e.severities[name] = rule.Severity
	}
}

// IgnoreCheck disables the named check for this engine.
func (e *Engine) IgnoreCheck(name string) {
	e.ignoredChecks[name] = true
}

// RunSource applies all enabled checks to the given source and returns the
// concatenated issues. It never fails: malformed input degrades inside the
// individual checks instead of aborting the run.
func (e *Engine) RunSource(source []byte) []tt.Issue {
	src := string(source)
	lines := checks.SplitLines(src)

	var allIssues []tt.Issue
	for _, check := range e.checks {
		if e.ignoredChecks[check.Name()] {
			continue
		}
		issues := check.Run(src, lines, e.opts)
		for i := range issues {
			issues[i].Severity = e.severityFor(check.Name())
		}
		allIssues = append(allIssues, issues...)
	}
	return allIssues
}

// Run reads the given file and applies all enabled checks to it. The only
// error it can return is a file access error.
func (e *Engine) Run(filename string) ([]tt.Issue, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, fmt.Errorf("error reading %s: %w", filename, err)
	}
	issues := e.RunSource(content)
	for i := range issues {
		issues[i].Filename = filename
	}
	return issues, nil
}

func (e *Engine) severityFor(name string) tt.Severity {
	if severity, ok := e.severities[name]; ok {
		return severity
	}
	return tt.SeverityError
}

// SourceCode stores the content of a source code file.
type SourceCode struct {
	Lines []string
}

// ReadSourceCode reads the content of a file and returns it as a `SourceCode` struct.
func ReadSourceCode(filename string) (*SourceCode, error) {
	content, err := os.ReadFile(filename)
	if err != nil {
		return nil, err
	}
	lines := strings.Split(string(content), "\n")
	return &SourceCode{Lines: lines}, nil
}
