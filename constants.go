package main

import "image/color"

type Mode int

const (
	ModeNormal Mode = iota
	ModeShapeSelect
	ModeColorSelect
	ModeColorInput
	ModePrompt
	ModeAlert
	ModeConfirm
)

type ShapeKind int

const (
	ShapeLine ShapeKind = iota
	ShapeRectangle
	ShapeCircle
	ShapeTriangle
)

// shapeKinds is the selector list, in display order.
var shapeKinds = []ShapeKind{ShapeLine, ShapeRectangle, ShapeCircle, ShapeTriangle}

const (
	canvasWidth  = 800
	canvasHeight = 600

	defaultPreviewWidth = 80
)

const (
	promptHeader = "Enter vertex data separated by commas:"

	alertTitle        = "Error"
	alertParseHeader  = "Invalid input"
	alertParseContent = "Please enter valid numeric values separated by commas."
	alertRangeHeader  = "Not enough vertex data"
	alertColorHeader  = "Invalid color"
)

type paletteEntry struct {
	Name  string
	Color color.Color // nil means no fill
}

// palette backs the color picker. Index 0 is the initial "no color" state.
var palette = []paletteEntry{
	{"None", nil},
	{"Black", color.RGBA{0x00, 0x00, 0x00, 0xff}},
	{"Red", color.RGBA{0xe0, 0x1b, 0x24, 0xff}},
	{"Green", color.RGBA{0x2e, 0xc2, 0x7e, 0xff}},
	{"Yellow", color.RGBA{0xf6, 0xd3, 0x2d, 0xff}},
	{"Blue", color.RGBA{0x1c, 0x71, 0xd8, 0xff}},
	{"Magenta", color.RGBA{0xc0, 0x61, 0xcb, 0xff}},
	{"Cyan", color.RGBA{0x33, 0xc7, 0xde, 0xff}},
	{"White", color.RGBA{0xff, 0xff, 0xff, 0xff}},
	{"Orange", color.RGBA{0xff, 0x78, 0x00, 0xff}},
}
