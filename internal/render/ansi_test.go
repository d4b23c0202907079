package render

import (
	"image"
	"image/color"
	"image/draw"
	"math"
	"strings"
	"testing"
)

func solid(w, h int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestParseHex(t *testing.T) {
	c, err := ParseHex("#5c4d42")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	r, g, b := c.RGB255()
	if r != 0x5c || g != 0x4d || b != 0x42 {
		t.Fatalf("unexpected colour %d,%d,%d", r, g, b)
	}
	if _, err := ParseHex("brown"); err == nil {
		t.Fatal("expected error for non-hex colour")
	}
}

func TestImageToANSIDimensions(t *testing.T) {
	bg, _ := ParseHex("#5c4d42")
	art := ImageToANSI(solid(16, 16, color.RGBA{R: 255, A: 255}), 6, 3, bg)

	lines := strings.Split(strings.TrimSuffix(art, "\n"), "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 lines, got %d", len(lines))
	}
	for i, line := range lines {
		if w := VisibleWidth(line); w != 6 {
			t.Errorf("line %d: expected width 6, got %d", i, w)
		}
	}
}

func TestImageToANSITransparentShowsBackground(t *testing.T) {
	bg, _ := ParseHex("#5c4d42")
	art := ImageToANSI(image.NewRGBA(image.Rect(0, 0, 4, 4)), 2, 2, bg)
	if !strings.Contains(art, "\x1b[38;2;92;77;66m\x1b[48;2;92;77;66m") {
		t.Fatalf("expected background colour in output, got %q", art)
	}
	if ImageToANSI(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, 2, bg) != "" {
		t.Fatal("expected empty output for zero width")
	}
}

func TestOver(t *testing.T) {
	bg, _ := ParseHex("#000000")
	got := over(color.NRGBA{R: 255, G: 255, B: 255, A: 128}, bg)
	if math.Abs(got.R-128.0/255) > 0.01 {
		t.Fatalf("expected half blend, got %v", got)
	}
	if over(color.Transparent, bg) != bg {
		t.Fatal("transparent pixel should show background")
	}
}

func TestStripANSI(t *testing.T) {
	s := "\x1b[38;2;1;2;3m▀\x1b[0m ok"
	if StripANSI(s) != "▀ ok" {
		t.Fatalf("unexpected %q", StripANSI(s))
	}
	if VisibleWidth(s) != 4 {
		t.Fatalf("expected width 4, got %d", VisibleWidth(s))
	}
	if got := StripANSI("a\x1b[1;97;48;2;92;77;66mb\x1b[0m\x1b"); got != "ab" {
		t.Fatalf("unexpected %q", got)
	}
}

func TestArtWidth(t *testing.T) {
	bg, _ := ParseHex("#5c4d42")
	art := ImageToANSI(solid(8, 8, color.White), 7, 2, bg)
	if got := ArtWidth(art); got != 7 {
		t.Fatalf("expected width 7, got %d", got)
	}
	if got := ArtWidth("ab\nabcd\n"); got != 4 {
		t.Fatalf("expected widest line 4, got %d", got)
	}
}
