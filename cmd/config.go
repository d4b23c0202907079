package cmd

import (
	"fmt"

	"github.com/gubsgame/gubs/internal/config"
	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Manage the gubs config file",
}

// configInitCmd writes the default config, replacing any existing file
var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write a default config file",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.Save(config.Default()); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), "Config file initialized at:", config.GetConfigFilePath())
		return nil
	},
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print the effective configuration",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		out := cmd.OutOrStdout()
		catalogPath := cfg.Catalog
		if catalogPath == "" {
			catalogPath = "(built-in)"
		}
		fmt.Fprintf(out, "path:       %s\n", config.GetConfigFilePath())
		fmt.Fprintf(out, "catalog:    %s\n", catalogPath)
		fmt.Fprintf(out, "background: %s\n", cfg.Background)
		fmt.Fprintf(out, "color:      %t\n", cfg.Color)
	},
}

func init() {
	RootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configInitCmd)
	configCmd.AddCommand(configShowCmd)
}
