package main

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-memory/internal/config"
)

var flagDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Print the configuration after the config file, MEMORY_* environment
variables and --fps have been applied. Save the output to
~/.memory/config.yaml or ./configs/memory.yaml to customize it.

Examples:
  memory config
  memory config --defaults > ~/.memory/config.yaml
  MEMORY_MAX_CELLS=8 memory config`,
	Args: cobra.NoArgs,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagDefaults, "defaults", false, "Print the built-in defaults with comments")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagDefaults {
		_, err := os.Stdout.Write(config.DefaultYAML())
		return err
	}

	s, err := loadSettings()
	if err != nil {
		return err
	}
	data, err := config.Marshal(s.file)
	if err != nil {
		return err
	}
	_, err = os.Stdout.Write(data)
	return err
}
