package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/reblhell/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective configuration",
	Long: `Prints the configuration after applying the config file, the
difficulty preset and REBLHELL_* environment overrides.

Save the output to ~/.reblhell/configs/reblhell.yaml to customize it.`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func runConfig(cmd *cobra.Command, args []string) {
	s, err := loadSettings(cmd)
	if err != nil {
		fail(err)
	}

	data, err := config.Marshal(s.cfg)
	if err != nil {
		fail(err)
	}
	fmt.Print(string(data))
}
