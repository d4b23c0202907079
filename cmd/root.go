package cmd

import (
	"fmt"
	"io"
	"log"

	"github.com/fatih/color"
	"github.com/gubsgame/gubs/internal/catalog"
	"github.com/gubsgame/gubs/internal/config"
	"github.com/spf13/cobra"
)

var (
	cfg         *config.Config
	catalogFlag string
	verbose     bool
)

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "gubs",
	Short: "Build and shuffle decks for the Gubs card game",
	Long: `Gubs builds a deck from a card table, shuffles it and prints what came out.
Run without a command it behaves like "gubs deal". The built-in table is the 24 card prototype deck; use --catalog to load
another table from a TOML file.`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		log.SetFlags(0)
		log.SetPrefix("gubs: ")
		if verbose {
			log.SetOutput(cmd.ErrOrStderr())
		} else {
			log.SetOutput(io.Discard)
		}

		config.LoadEnvFile()
		c, err := config.LoadConfig()
		if err != nil {
			return err
		}
		cfg = c
		log.Printf("config loaded from %s", config.GetConfigFilePath())

		if !cfg.Color {
			color.NoColor = true
		}
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDeal(cmd)
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&catalogFlag, "catalog", "c", "", "Card table to use (TOML file); defaults to the built-in table")
	RootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log diagnostics to stderr")
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return RootCmd.Execute()
}

// loadCatalog picks the card table: --catalog, then the configured path,
// then the built-in table
func loadCatalog() (*catalog.Catalog, error) {
	path := catalogFlag
	if path == "" && cfg != nil {
		path = cfg.Catalog
	}
	if path == "" {
		log.Printf("using built-in catalog")
		return catalog.Default(), nil
	}

	c, err := catalog.Load(path)
	if err != nil {
		return nil, fmt.Errorf("error loading catalog: %w", err)
	}
	log.Printf("loaded catalog %q from %s", c.Name, path)
	return c, nil
}
