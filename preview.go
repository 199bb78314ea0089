package main

import (
	"image"
	"image/color"
	"strings"

	"github.com/charmbracelet/lipgloss"
	xdraw "golang.org/x/image/draw"
)

// previewSize returns the pixel grid a canvas of w×h is sampled into for a
// preview cols cells wide. Each terminal cell shows two vertically stacked
// pixels, so the pixel height is always even.
func previewSize(w, h, cols int) (int, int) {
	if cols < 1 {
		cols = 1
	}
	rows := cols * h / w
	if rows < 2 {
		rows = 2
	}
	if rows%2 == 1 {
		rows++
	}
	return cols, rows
}

// renderPreview downsamples img and draws it with upper-half-block cells,
// foreground for the top pixel and background for the bottom one.
func renderPreview(img image.Image, cols int) []string {
	b := img.Bounds()
	pw, ph := previewSize(b.Dx(), b.Dy(), cols)

	small := image.NewRGBA(image.Rect(0, 0, pw, ph))
	xdraw.ApproxBiLinear.Scale(small, small.Bounds(), img, b, xdraw.Src, nil)

	lines := make([]string, 0, ph/2)
	for y := 0; y < ph; y += 2 {
		var line strings.Builder
		for x := 0; x < pw; x++ {
			style := lipgloss.NewStyle().
				Foreground(lipgloss.Color(hexString(opaque(small.RGBAAt(x, y))))).
				Background(lipgloss.Color(hexString(opaque(small.RGBAAt(x, y+1)))))
			line.WriteString(style.Render("▀"))
		}
		lines = append(lines, line.String())
	}
	return lines
}

func opaque(c color.RGBA) color.RGBA {
	c.A = 0xff
	return c
}
