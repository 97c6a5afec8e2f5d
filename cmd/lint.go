package cmd

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/senseilua/lualint/formatter"
	"github.com/senseilua/lualint/internal"
	tt "github.com/senseilua/lualint/internal/types"
	"github.com/senseilua/lualint/lint"
)

// exit statuses: issues found and unreadable paths are distinct failures
const (
	exitIssues   = 1
	exitHardFail = 2
)

var (
	ignoreChecks   string
	lintJSONOutput bool
	outPath        string
)

var lintCmd = &cobra.Command{
	Use:   "lint [paths...]",
	Short: "Run the style checks",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) == 0 {
			fmt.Println("error: Please provide file or directory paths")
			os.Exit(exitIssues)
		}

		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		engine, err := lint.New(cfgFile, lintOptions())
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if ignoreChecks != "" {
			checks := strings.Split(ignoreChecks, ",")
			for _, check := range checks {
				engine.IgnoreCheck(strings.TrimSpace(check))
			}
		}

		runLintProcess(ctx, logger, engine, args, lintJSONOutput, outPath)
	},
}

func init() {
	lintCmd.Flags().StringVar(&ignoreChecks, "ignore", "", "Comma-separated list of checks to ignore")
	lintCmd.Flags().BoolVar(&lintJSONOutput, "json", false, "Output issues in JSON format")
	lintCmd.Flags().StringVarP(&outPath, "output", "o", "", "Output path (when using JSON)")
}

// runLintProcess analyzes every path independently. An unreadable path is
// reported and skipped; the remaining paths are still processed.
func runLintProcess(ctx context.Context, logger *zap.Logger, engine lint.LintEngine, paths []string, isJSON bool, jsonOutput string) {
	var allIssues []tt.Issue
	hardFailed := false
	for _, path := range paths {
		issues, err := lint.ProcessPath(ctx, logger, engine, path, lint.ProcessFile)
		if err != nil {
			logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			hardFailed = true
			continue
		}
		allIssues = append(allIssues, issues...)
	}

	printIssues(logger, allIssues, isJSON, jsonOutput)

	switch {
	case hardFailed:
		os.Exit(exitHardFail)
	case len(allIssues) > 0:
		os.Exit(exitIssues)
	}
}

func printIssues(logger *zap.Logger, issues []tt.Issue, isJSON bool, jsonOutput string) {
	if isJSON {
		printIssuesJSON(logger, issues, jsonOutput)
		return
	}

	if len(issues) == 0 {
		fmt.Println(formatter.NoIssuesFound)
		return
	}

	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	sortedFiles := make([]string, 0, len(issuesByFile))
	for filename := range issuesByFile {
		sortedFiles = append(sortedFiles, filename)
	}
	sort.Strings(sortedFiles)

	for _, filename := range sortedFiles {
		fileIssues := issuesByFile[filename]
		sourceCode, err := internal.ReadSourceCode(filename)
		if err != nil {
			logger.Error("Error reading source file", zap.String("file", filename), zap.Error(err))
			continue
		}
		fmt.Println(formatter.Format(fileIssues, sourceCode))
	}
}

func printIssuesJSON(logger *zap.Logger, issues []tt.Issue, jsonOutput string) {
	issuesByFile := make(map[string][]tt.Issue)
	for _, issue := range issues {
		issuesByFile[issue.Filename] = append(issuesByFile[issue.Filename], issue)
	}

	d, err := json.Marshal(issuesByFile)
	if err != nil {
		logger.Error("Error marshalling issues to JSON", zap.Error(err))
		return
	}
	if jsonOutput == "" {
		fmt.Println(string(d))
		return
	}
	if err := os.WriteFile(jsonOutput, d, 0o644); err != nil {
		logger.Error("Error writing JSON output file", zap.Error(err))
	}
}
