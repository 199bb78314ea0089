package main

import "image/color"

// Surface is the drawing target the renderer paints on. Coordinates have a
// top-left origin with Y increasing downward.
type Surface interface {
	// Size returns the fixed logical size of the surface.
	Size() (width, height float64)

	// Clear wipes the whole surface back to its background.
	Clear()

	SetFill(c color.Color)
	SetStroke(c color.Color)

	StrokeLine(x1, y1, x2, y2 float64)
	FillRect(x, y, w, h float64)
	StrokeRect(x, y, w, h float64)
	FillOval(x, y, w, h float64)
	StrokeOval(x, y, w, h float64)
	FillPolygon(pts []Point)
	StrokePolygon(pts []Point)
}
