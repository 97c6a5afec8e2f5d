package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/senseilua/lualint/lint"
)

// watchCmd: lualint watch [dirs...]
var watchCmd = &cobra.Command{
	Use:   "watch [dirs...]",
	Short: "Watch directories and re-run the checks when .lua files change",
	Run: func(cmd *cobra.Command, args []string) {
		dirs := args
		if len(dirs) == 0 {
			dirs = []string{"."}
		}

		engine, err := lint.New(cfgFile, lintOptions())
		if err != nil {
			logger.Fatal("Failed to initialize lint engine", zap.Error(err))
		}

		if err := engine.StartWatching(dirs); err != nil {
			logger.Fatal("Failed to start watching", zap.Error(err))
		}
		fmt.Printf("Watching %v for changes. Press Ctrl+C to stop.\n", dirs)

		sig := make(chan os.Signal, 1)
		signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
		<-sig

		if err := engine.StopWatching(); err != nil {
			logger.Error("Error stopping watcher", zap.Error(err))
		}
	},
}
