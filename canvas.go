package main

import (
	"image"
	"image/color"
	"math"

	"github.com/fogleman/gg"
)

// Canvas is the raster Surface behind the window, backed by a gg context of
// fixed size.
type Canvas struct {
	dc         *gg.Context
	background color.Color
	fill       color.Color
	stroke     color.Color
	lineWidth  float64
}

func NewCanvas(width, height int, background color.Color) *Canvas {
	c := &Canvas{
		dc:         gg.NewContext(width, height),
		background: background,
		fill:       color.Transparent,
		stroke:     color.Black,
		lineWidth:  1.0,
	}
	c.Clear()
	return c
}

func (c *Canvas) Size() (float64, float64) {
	return float64(c.dc.Width()), float64(c.dc.Height())
}

// Image exposes the current raster for previews.
func (c *Canvas) Image() image.Image {
	return c.dc.Image()
}

func (c *Canvas) Clear() {
	c.dc.SetColor(c.background)
	c.dc.Clear()
}

func (c *Canvas) SetFill(col color.Color)   { c.fill = col }
func (c *Canvas) SetStroke(col color.Color) { c.stroke = col }

func (c *Canvas) StrokeLine(x1, y1, x2, y2 float64) {
	x1, y1, x2, y2, ok := c.visible().clipSegment(x1, y1, x2, y2)
	if !ok {
		return
	}
	c.dc.DrawLine(x1, y1, x2, y2)
	c.strokePath()
}

func (c *Canvas) FillRect(x, y, w, h float64) {
	if c.rectPath(x, y, w, h) {
		c.fillPath()
	}
}

func (c *Canvas) StrokeRect(x, y, w, h float64) {
	if c.rectPath(x, y, w, h) {
		c.strokePath()
	}
}

func (c *Canvas) FillOval(x, y, w, h float64) {
	if c.ovalPath(x, y, w, h) {
		c.fillPath()
	}
}

func (c *Canvas) StrokeOval(x, y, w, h float64) {
	if c.ovalPath(x, y, w, h) {
		c.strokePath()
	}
}

func (c *Canvas) FillPolygon(pts []Point) {
	if c.polygonPath(c.visible().clipPolygon(pts)) {
		c.fillPath()
	}
}

func (c *Canvas) StrokePolygon(pts []Point) {
	if c.polygonPath(c.visible().clipPolygon(pts)) {
		c.strokePath()
	}
}

// Rectangles and ovals with a negative width or height draw nothing.
func (c *Canvas) rectPath(x, y, w, h float64) bool {
	if !finite(x, y, w, h) || w < 0 || h < 0 {
		return false
	}
	b := c.visible()
	x0, y0 := math.Max(x, b.minX), math.Max(y, b.minY)
	x1, y1 := math.Min(x+w, b.maxX), math.Min(y+h, b.maxY)
	if x0 > x1 || y0 > y1 {
		return false
	}
	c.dc.DrawRectangle(x0, y0, x1-x0, y1-y0)
	return true
}

func (c *Canvas) ovalPath(x, y, w, h float64) bool {
	if !finite(x, y, w, h) || w < 0 || h < 0 {
		return false
	}
	b := c.visible()
	if b.contains(x, y) && b.contains(x+w, y+h) {
		c.dc.DrawEllipse(x+w/2, y+h/2, w/2, h/2)
		return true
	}
	return c.polygonPath(b.clipEllipse(x+w/2, y+h/2, w/2, h/2))
}

func (c *Canvas) polygonPath(pts []Point) bool {
	if len(pts) < 2 {
		return false
	}
	c.dc.MoveTo(pts[0].X, pts[0].Y)
	for _, p := range pts[1:] {
		c.dc.LineTo(p.X, p.Y)
	}
	c.dc.ClosePath()
	return true
}

// visible is the surface grown by a small margin. gg is only ever handed
// geometry clipped to it; edges created by clipping lie in the margin.
func (c *Canvas) visible() bounds {
	w, h := c.Size()
	m := clipMargin + c.lineWidth
	return bounds{minX: -m, minY: -m, maxX: w + m, maxY: h + m}
}

func (c *Canvas) fillPath() {
	c.dc.SetColor(c.fill)
	c.dc.Fill()
}

func (c *Canvas) strokePath() {
	c.dc.SetColor(c.stroke)
	c.dc.SetLineWidth(c.lineWidth)
	c.dc.Stroke()
}
