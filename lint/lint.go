package lint

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/schollz/progressbar/v3"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/senseilua/lualint/internal"
	tt "github.com/senseilua/lualint/internal/types"
	"github.com/senseilua/lualint/scanner"
)

// LintEngine is the interface the processing layer needs from an engine.
type LintEngine interface {
	Run(filePath string) ([]tt.Issue, error)
	RunSource(source []byte) []tt.Issue
	IgnoreCheck(name string)
}

// Analyze runs all checks on a single source string and returns the issues
// in their fixed discovery order: final newline, indentation, trailing
// whitespace, block balance.
func Analyze(source string, opts tt.Options) []tt.Issue {
	return internal.NewEngine(opts, nil).RunSource([]byte(source))
}

// AnalyzeFile reads the given file and analyzes it with Analyze semantics.
func AnalyzeFile(path string, opts tt.Options) ([]tt.Issue, error) {
	return internal.NewEngine(opts, nil).Run(path)
}

// New builds an engine from the configuration file at configurationPath.
// An empty path means no configuration file: the given options are used as
// is and every check runs at error severity.
func New(configurationPath string, opts tt.Options) (*internal.Engine, error) {
	if configurationPath == "" {
		return internal.NewEngine(opts, nil), nil
	}
	config, err := parseConfigurationFile(configurationPath)
	if err != nil {
		return nil, err
	}
	if config.IndentSize > 0 {
		opts.IndentSize = config.IndentSize
	}
	if config.AllowTabs {
		opts.PreferSpaces = false
	}
	return internal.NewEngine(opts, config.Checks), nil
}

// ProcessSources analyzes the given in-memory sources in order.
func ProcessSources(engine LintEngine, sources [][]byte) []tt.Issue {
	var allIssues []tt.Issue
	for _, source := range sources {
		allIssues = append(allIssues, engine.RunSource(source)...)
	}
	return allIssues
}

// ProcessFiles analyzes every given path, visiting them in argument order.
func ProcessFiles(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	paths []string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	var allIssues []tt.Issue
	for _, path := range paths {
		issues, err := ProcessPath(ctx, logger, engine, path, processor)
		if err != nil {
			if logger != nil {
				logger.Error("Error processing path", zap.String("path", path), zap.Error(err))
			}
			return nil, err
		}
		allIssues = append(allIssues, issues...)
	}

	return allIssues, nil
}

// ProcessPath analyzes a single file, or every .lua file under a directory.
// Directory entries are processed by a bounded worker pool; each analysis is
// a pure function of its own input, so no coordination beyond result
// collection is needed.
func ProcessPath(
	ctx context.Context,
	logger *zap.Logger,
	engine LintEngine,
	path string,
	processor func(LintEngine, string) ([]tt.Issue, error),
) ([]tt.Issue, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("error accessing %s: %w", path, err)
	}

	var issues []tt.Issue
	if info.IsDir() {
		found, err := scanner.New(path, ".lua").Scan()
		if err != nil {
			return nil, fmt.Errorf("error scanning %s: %w", path, err)
		}
		files := make([]string, 0, len(found))
		for _, f := range found {
			files = append(files, f.Path)
		}

		resultChan := make(chan []tt.Issue, len(files))
		errorChan := make(chan error, len(files))

		// limit the number of workers
		maxWorkers := runtime.NumCPU()
		sem := make(chan struct{}, maxWorkers)

		bar := progressbar.NewOptions(len(files),
			progressbar.OptionSetDescription(path),
			progressbar.OptionEnableColorCodes(true),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionSetTheme(progressbar.Theme{
				Saucer:        "[green]=[reset]",
				SaucerHead:    "[green]>[reset]",
				SaucerPadding: " ",
				BarStart:      "[",
				BarEnd:        "]",
			}))

		scheduled := 0
		for _, filePath := range files {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			default:
				sem <- struct{}{}
				scheduled++
				go func(fp string) {
					defer func() { <-sem }()

					fileIssues, err := processor(engine, fp)
					if err != nil {
						if logger != nil {
							logger.Error("Error processing file", zap.String("file", fp), zap.Error(err))
						}
						errorChan <- err
						resultChan <- nil
					} else {
						resultChan <- fileIssues
						errorChan <- nil
					}
					bar.Add(1)
				}(filePath)
			}
		}

		// collect all results; per-file errors were already logged
		for range scheduled {
			<-errorChan
		}
		for range scheduled {
			if result := <-resultChan; result != nil {
				issues = append(issues, result...)
			}
		}

		fmt.Println()
		return issues, nil
	} else if hasDesiredExtension(path) {
		fileIssues, err := processor(engine, path)
		if err != nil {
			return nil, err
		}
		issues = append(issues, fileIssues...)
	}

	return issues, nil
}

// ProcessFile analyzes a single file through the engine.
func ProcessFile(engine LintEngine, filePath string) ([]tt.Issue, error) {
	return engine.Run(filePath)
}

func hasDesiredExtension(path string) bool {
	return filepath.Ext(path) == ".lua"
}

// Config represents the analyzer configuration.
type Config struct {
	Name       string                   `yaml:"name"`
	IndentSize int                      `yaml:"indent-size"`
	AllowTabs  bool                     `yaml:"allow-tabs"`
	Checks     map[string]tt.ConfigRule `yaml:"checks"`
}

func parseConfigurationFile(configurationPath string) (Config, error) {
	var config Config

	// Read the configuration file
	f, err := os.Open(configurationPath)
	if err != nil {
		return config, err
	}
	defer f.Close()

	// Parse the configuration file
	decoder := yaml.NewDecoder(f)
	err = decoder.Decode(&config)
	if err != nil {
		return config, err
	}

	return config, nil
}
