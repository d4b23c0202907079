package cmd

import (
	"fmt"
	"log"
	"strings"

	"github.com/fatih/color"
	"github.com/gubsgame/gubs/internal/config"
	"github.com/gubsgame/gubs/internal/render"
	"github.com/lucasb-eyer/go-colorful"
	"github.com/spf13/cobra"
)

var (
	showWidth      int
	showHeight     int
	showTitle      string
	showBackground string
)

var showCmd = &cobra.Command{
	Use:   "show [image]",
	Short: "Display a card image in the terminal",
	Long: `Show draws a card image (png, jpeg or gif) as ANSI art under a title bar,
on the card viewer's background colour. Transparent areas show the background.

Examples:
  gubs show gub_card.png
  gubs show --width 30 --height 24 --background "#000000" spear.png`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		bgHex := showBackground
		if bgHex == "" && cfg != nil {
			bgHex = cfg.Background
		}
		if bgHex == "" {
			bgHex = config.DefaultBackground
		}

		bg, err := render.ParseHex(bgHex)
		if err != nil {
			return err
		}

		img, err := render.DecodeFile(args[0])
		if err != nil {
			return fmt.Errorf("error loading image: %w", err)
		}

		// Keep a 2 column margin on each side
		width := showWidth
		if limit := terminalWidth() - 4; width > limit && limit > 0 {
			log.Printf("narrowing image from %d to %d columns", width, limit)
			width = limit
		}
		if width <= 0 || showHeight <= 0 {
			return fmt.Errorf("width and height must be positive")
		}

		art := render.ImageToANSI(img, width, showHeight, bg)
		displayWindow(cmd, showTitle, art, bg)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(showCmd)

	showCmd.Flags().IntVarP(&showWidth, "width", "W", 40, "Width of the image in terminal columns")
	showCmd.Flags().IntVarP(&showHeight, "height", "H", 32, "Height of the image in terminal rows")
	showCmd.Flags().StringVarP(&showTitle, "title", "t", "Gubs", "Title bar text")
	showCmd.Flags().StringVarP(&showBackground, "background", "b", "", "Background colour (#rrggbb); defaults to the configured colour")
}

// displayWindow prints a title bar and the art framed by a background margin.
// The window is as wide as the widest art line; shorter lines are padded.
func displayWindow(cmd *cobra.Command, title, art string, bg colorful.Color) {
	r, g, b := bg.RGB255()
	pad := color.BgRGB(int(r), int(g), int(b))
	bar := color.New(color.Bold, color.FgHiWhite).AddBgRGB(int(r), int(g), int(b))

	out := cmd.OutOrStdout()
	width := render.ArtWidth(art)
	inner := width + 2

	// Centre the title, truncating if the window is narrower
	if render.VisibleWidth(title) > inner {
		title = string([]rune(title)[:inner])
	}
	left := (inner - render.VisibleWidth(title)) / 2
	right := inner - render.VisibleWidth(title) - left
	fmt.Fprintln(out, bar.Sprint(strings.Repeat(" ", left)+title+strings.Repeat(" ", right)))

	blank := pad.Sprint(strings.Repeat(" ", inner))
	fmt.Fprintln(out, blank)
	for _, line := range strings.Split(strings.TrimSuffix(art, "\n"), "\n") {
		fill := strings.Repeat(" ", 1+width-render.VisibleWidth(line))
		fmt.Fprintln(out, pad.Sprint(" ")+line+pad.Sprint(fill))
	}
	fmt.Fprintln(out, blank)
}
