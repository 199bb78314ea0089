package main

import (
	"image/color"
	"strings"
)

type model struct {
	width          int
	height         int
	mode           Mode
	help           bool
	toolbar        *Toolbar
	canvas         *Canvas
	shapeCursor    int
	colorCursor    int
	colorText      string
	promptText     string
	promptCursor   int
	alertHeader    string
	alertContent   string
	successMessage string
	config         *Config
}

type Point struct {
	X, Y float64
}

// DrawRequest is the complete input of one render. Fill is nil when no color
// has been picked.
type DrawRequest struct {
	Kind     ShapeKind
	Fill     color.Color
	Vertices []float64
}

func (k ShapeKind) String() string {
	switch k {
	case ShapeLine:
		return "Line"
	case ShapeRectangle:
		return "Rectangle"
	case ShapeCircle:
		return "Circle"
	case ShapeTriangle:
		return "Triangle"
	}
	return "Unknown"
}

// ParseShapeKind maps a selector label (case-insensitive) to its kind.
func ParseShapeKind(label string) (ShapeKind, bool) {
	for _, k := range shapeKinds {
		if strings.EqualFold(k.String(), strings.TrimSpace(label)) {
			return k, true
		}
	}
	return ShapeLine, false
}

// vertexCount is the number of values each kind reads from the vertex data.
func (k ShapeKind) vertexCount() int {
	switch k {
	case ShapeLine, ShapeRectangle:
		return 4
	case ShapeCircle:
		return 3
	case ShapeTriangle:
		return 6
	}
	return 0
}
