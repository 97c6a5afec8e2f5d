package cmd

import (
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	tt "github.com/senseilua/lualint/internal/types"
)

var (
	cfgFile    string
	timeout    time.Duration
	indentSize int
	allowTabs  bool
	noColor    bool

	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:              "lualint [paths...]",
	Short:            "lualint - a heuristic style checker for Lua source files",
	TraverseChildren: true, // Prioritize subcommands
	Run: func(cmd *cobra.Command, args []string) {
		// no subcommand
		if len(args) == 0 {
			// display help when only 'lualint' is entered
			_ = cmd.Help()
			return
		}
		// Format: lualint [path1 path2 ...] => behaves like the lint subcommand
		lintCmd.Run(lintCmd, args)
	},
}

func Execute() error {
	defer func() { _ = logger.Sync() }()
	return rootCmd.Execute()
}

func init() {
	logger = zap.Must(zap.NewProduction())

	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "", "Path to the configuration file")
	rootCmd.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "Set a timeout for the linter")
	rootCmd.PersistentFlags().IntVar(&indentSize, "indent-size", 4, "Expected indentation width (spaces)")
	rootCmd.PersistentFlags().BoolVar(&allowTabs, "allow-tabs", false, "Allow tabs in indentation (default disallows them)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "Disable colorized output")

	cobra.OnInitialize(func() {
		if noColor {
			color.NoColor = true
		}
	})

	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(lintCmd)
	rootCmd.AddCommand(watchCmd)
}

func lintOptions() tt.Options {
	return tt.Options{
		PreferSpaces: !allowTabs,
		IndentSize:   indentSize,
	}
}
