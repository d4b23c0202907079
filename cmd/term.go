package cmd

import (
	"os"
	"strings"
	"unicode/utf8"

	"golang.org/x/term"
)

// terminalWidth returns the width of stdout, or 80 when it is not a terminal
func terminalWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		return 80
	}
	return width
}

// minDescWidth is the narrowest description column catalog ls will wrap to;
// on narrower terminals the column overflows instead
const minDescWidth = 20

// wrapText splits text into lines of at most width runes, breaking on
// spaces. Words longer than width are split. It always returns at least one
// line.
func wrapText(text string, width int) []string {
	width = max(width, minDescWidth)

	lines := []string{""}
	for _, word := range strings.Fields(text) {
		for utf8.RuneCountInString(word) > width {
			r := []rune(word)
			lines = appendWord(lines, string(r[:width]), width)
			word = string(r[width:])
		}
		lines = appendWord(lines, word, width)
	}
	return lines
}

// appendWord adds word to the last line, or starts a new line when it
// doesn't fit
func appendWord(lines []string, word string, width int) []string {
	last := lines[len(lines)-1]
	switch {
	case last == "":
		lines[len(lines)-1] = word
	case utf8.RuneCountInString(last)+1+utf8.RuneCountInString(word) <= width:
		lines[len(lines)-1] = last + " " + word
	default:
		lines = append(lines, word)
	}
	return lines
}
