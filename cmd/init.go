package cmd

import (
	"fmt"

	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/senseilua/lualint/internal"
	tt "github.com/senseilua/lualint/internal/types"
	"github.com/senseilua/lualint/lint"
)

// initCmd: lualint init
var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new linter configuration file",
	Run: func(cmd *cobra.Command, args []string) {
		if err := initConfigurationFile(cfgFile); err != nil {
			logger.Error("Error initializing config file", zap.Error(err))
			return
		}
		path := cfgFile
		if path == "" {
			path = defaultConfigPath
		}
		fmt.Printf("Configuration file created/updated: %s\n", path)
	},
}

const defaultConfigPath = ".lualint.yaml"

func initConfigurationFile(configurationPath string) error {
	if configurationPath == "" {
		configurationPath = defaultConfigPath
	}

	// Create a yaml file listing every check at its default severity
	checks := make(map[string]tt.ConfigRule)
	for _, name := range internal.CheckNames() {
		checks[name] = tt.ConfigRule{Severity: tt.SeverityError}
	}
	config := lint.Config{
		Name:       "lualint",
		IndentSize: 4,
		AllowTabs:  false,
		Checks:     checks,
	}
	d, err := yaml.Marshal(config)
	if err != nil {
		return err
	}

	return os.WriteFile(configurationPath, d, 0o644)
}
