package main

import (
	"fmt"
	"image/color"
	"os/exec"
	"runtime"
	"strconv"
	"strings"

	"github.com/atotto/clipboard"
)

var readClipboard = readClipboardText

func readClipboardText() (string, error) {
	if runtime.GOOS == "darwin" {
		if output, err := exec.Command("pbpaste", "-Prefer", "txt").Output(); err == nil {
			return string(output), nil
		}
	}
	return clipboard.ReadAll()
}

// cleanClipboardText reduces pasted text to a single prompt line: control
// characters are dropped and line breaks become spaces.
func cleanClipboardText(text string) string {
	var result strings.Builder
	result.Grow(len(text))
	for _, r := range text {
		switch {
		case r == '\n' || r == '\r' || r == '\t':
			result.WriteRune(' ')
		case r >= 32 && r != 127:
			result.WriteRune(r)
		}
	}
	return strings.TrimSpace(result.String())
}

// parseHexColor accepts "#rrggbb" or "rrggbb".
func parseHexColor(hexColor string) (color.RGBA, bool) {
	hexColor = strings.TrimPrefix(strings.TrimSpace(hexColor), "#")
	if len(hexColor) != 6 {
		return color.RGBA{}, false
	}
	v, err := strconv.ParseUint(hexColor, 16, 32)
	if err != nil {
		return color.RGBA{}, false
	}
	return color.RGBA{uint8(v >> 16), uint8(v >> 8), uint8(v), 0xff}, true
}

func hexString(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}

// colorName is the palette name of c, its hex form, or "None" for nil.
func colorName(c color.Color) string {
	if c == nil {
		return "None"
	}
	for _, p := range palette {
		if p.Color != nil && hexString(p.Color) == hexString(c) {
			return p.Name
		}
	}
	return hexString(c)
}
