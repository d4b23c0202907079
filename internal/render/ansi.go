package render

import (
	"fmt"
	"image"
	"image/color"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/lucasb-eyer/go-colorful"
	"github.com/nfnt/resize"
)

// ParseHex parses a #rrggbb colour
func ParseHex(s string) (colorful.Color, error) {
	c, err := colorful.Hex(s)
	if err != nil {
		return colorful.Color{}, fmt.Errorf("invalid colour %q: %w", s, err)
	}
	return c, nil
}

// DecodeFile opens and decodes a png, jpeg or gif image
func DecodeFile(path string) (image.Image, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer file.Close()

	img, _, err := image.Decode(file)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	return img, nil
}

// ImageToANSI converts an image to width x height cells of half-block ANSI
// art. Transparent pixels show bg.
func ImageToANSI(img image.Image, width, height int, bg colorful.Color) string {
	if width <= 0 || height <= 0 {
		return ""
	}

	// Two pixels per cell in each direction
	resized := resize.Resize(uint(width*2), uint(height*2), img, resize.Lanczos3)

	var buffer strings.Builder
	for y := 0; y < height*2; y += 2 {
		for x := 0; x < width*2; x += 2 {
			// Top pixels as foreground, bottom pixels as background
			fg := average(
				over(getColorAt(resized, x, y), bg),
				over(getColorAt(resized, x+1, y), bg),
			)
			back := average(
				over(getColorAt(resized, x, y+1), bg),
				over(getColorAt(resized, x+1, y+1), bg),
			)
			buffer.WriteString(cell('▀', fg, back))
		}
		buffer.WriteString("\n")
	}

	return buffer.String()
}

// getColorAt returns the pixel at x, y or transparent when out of bounds
func getColorAt(img image.Image, x, y int) color.Color {
	bounds := img.Bounds()
	x += bounds.Min.X
	y += bounds.Min.Y
	if x < bounds.Max.X && y < bounds.Max.Y {
		return img.At(x, y)
	}
	return color.Transparent
}

// over composites c onto an opaque background
func over(c color.Color, bg colorful.Color) colorful.Color {
	r, g, b, a := c.RGBA()
	if a == 0 {
		return bg
	}
	// RGBA() is alpha-premultiplied
	px := colorful.Color{
		R: float64(r) / float64(a),
		G: float64(g) / float64(a),
		B: float64(b) / float64(a),
	}
	return bg.BlendRgb(px, float64(a)/0xffff)
}

func average(colors ...colorful.Color) colorful.Color {
	var r, g, b float64
	for _, c := range colors {
		r += c.R
		g += c.G
		b += c.B
	}
	n := float64(len(colors))
	return colorful.Color{R: r / n, G: g / n, B: b / n}.Clamped()
}

// cell formats a character with 24-bit foreground and background colours
func cell(char rune, fg, bg colorful.Color) string {
	r1, g1, b1 := fg.RGB255()
	r2, g2, b2 := bg.RGB255()
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm\x1b[48;2;%d;%d;%dm%c\x1b[0m",
		r1, g1, b1, r2, g2, b2, char)
}

// StripANSI removes CSI escape sequences (ESC [ ... final byte) such as the
// colour codes written by ImageToANSI
func StripANSI(s string) string {
	var result strings.Builder
	for i := 0; i < len(s); i++ {
		if s[i] != 0x1b {
			result.WriteByte(s[i])
			continue
		}
		// a lone ESC, or one not starting a CSI, is dropped on its own
		if i+1 >= len(s) || s[i+1] != '[' {
			continue
		}
		j := i + 2
		for j < len(s) && (s[j] < 0x40 || s[j] > 0x7e) {
			j++
		}
		i = j
	}
	return result.String()
}

// VisibleWidth is the number of printed runes in s
func VisibleWidth(s string) int {
	return utf8.RuneCountInString(StripANSI(s))
}

// ArtWidth is the visible width of the widest line of art
func ArtWidth(art string) int {
	width := 0
	for _, line := range strings.Split(art, "\n") {
		width = max(width, VisibleWidth(line))
	}
	return width
}
