package cmd

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/fatih/color"
	"github.com/gubsgame/gubs/internal/catalog"
	"github.com/gubsgame/gubs/internal/validator"
	"github.com/spf13/cobra"
)

// catalogCmd represents the catalog command group
var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Inspect and check card tables",
	Long:  `Commands for listing, validating and exporting the card tables decks are built from.`,
}

// catalogListCmd represents the catalog ls command
var catalogListCmd = &cobra.Command{
	Use:   "ls",
	Short: "List the cards in the current card table",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		name := c.Name
		if name == "" {
			name = "(unnamed)"
		}
		fmt.Fprintf(out, "%s %s\n\n", color.CyanString("Catalog:"), color.HiWhiteString(name))

		nameWidth := utf8.RuneCountInString("name")
		for _, s := range c.Specs {
			nameWidth = max(nameWidth, utf8.RuneCountInString(s.Name))
		}

		// Descriptions wrap into whatever is left of the terminal
		descCol := nameWidth + 2 + 5 + 2 + 8 + 2
		descWidth := terminalWidth() - descCol

		fmt.Fprintf(out, "%s  %5s  %-8s  %s\n", padRight("name", nameWidth), "count", "category", "description")
		for _, s := range c.Specs {
			lines := wrapText(s.Description, descWidth)
			fmt.Fprintf(out, "%s  %5d  %s  %s\n", padRight(s.Name, nameWidth), s.Count,
				categoryColor(s.Category).Sprintf("%-8s", s.Category), lines[0])
			for _, l := range lines[1:] {
				fmt.Fprintf(out, "%s%s\n", strings.Repeat(" ", descCol), l)
			}
		}

		fmt.Fprintf(out, "\n%s %d cards\n", color.CyanString("Total:"), c.Total())
		return nil
	},
}

// catalogValidateCmd represents the catalog validate command
var catalogValidateCmd = &cobra.Command{
	Use:   "validate [path]",
	Short: "Validate a card table file",
	Long: `Validate checks that a card table file can be loaded: every card has a unique
name, a known category (playable or event) and a count that is not negative.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		path := args[0]

		v := validator.NewValidator(path)
		results, err := v.Validate()
		if err != nil {
			return fmt.Errorf("validation error: %w", err)
		}

		out := cmd.OutOrStdout()
		fmt.Fprintln(out, "Validation Results:")
		fmt.Fprintln(out, "-------------------")

		if results.Valid() {
			fmt.Fprintf(out, "%s Catalog '%s' is valid.\n", color.GreenString("✅"), path)
		} else {
			fmt.Fprintf(out, "%s Catalog '%s' has %d validation errors:\n", color.RedString("❌"), path, len(results.Errors))
			for i, e := range results.Errors {
				fmt.Fprintf(out, "%d. %s\n", i+1, e)
			}
		}

		if len(results.Warnings) > 0 {
			fmt.Fprintln(out, "\nWarnings:")
			for i, w := range results.Warnings {
				fmt.Fprintf(out, "%d. %s\n", i+1, color.YellowString(w))
			}
		}

		if !results.Valid() {
			return fmt.Errorf("validation failed")
		}
		return nil
	},
}

// catalogExportCmd represents the catalog export command
var catalogExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Write the current card table as TOML",
	Long: `Export writes the current card table to stdout in the catalog file format,
ready to be edited and passed back with --catalog.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		c, err := loadCatalog()
		if err != nil {
			return err
		}
		return catalog.Write(cmd.OutOrStdout(), c)
	},
}

// padRight pads s with spaces to width runes
func padRight(s string, width int) string {
	return s + strings.Repeat(" ", max(0, width-utf8.RuneCountInString(s)))
}

func init() {
	RootCmd.AddCommand(catalogCmd)
	catalogCmd.AddCommand(catalogListCmd)
	catalogCmd.AddCommand(catalogValidateCmd)
	catalogCmd.AddCommand(catalogExportCmd)
}
