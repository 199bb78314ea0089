package main

import "image/color"

type drawCall struct {
	Op     string
	Args   []float64
	Points []Point
	Fill   color.Color
	Stroke color.Color
}

// recordingSurface records every draw command with the colors in effect.
type recordingSurface struct {
	width, height float64
	fill, stroke  color.Color
	clears        int
	calls         []drawCall
}

func newRecordingSurface() *recordingSurface {
	return &recordingSurface{width: canvasWidth, height: canvasHeight}
}

func (r *recordingSurface) Size() (float64, float64) { return r.width, r.height }
func (r *recordingSurface) Clear()                    { r.clears++; r.calls = nil }
func (r *recordingSurface) SetFill(c color.Color)     { r.fill = c }
func (r *recordingSurface) SetStroke(c color.Color)   { r.stroke = c }

func (r *recordingSurface) record(op string, pts []Point, args ...float64) {
	r.calls = append(r.calls, drawCall{Op: op, Args: args, Points: pts, Fill: r.fill, Stroke: r.stroke})
}

func (r *recordingSurface) StrokeLine(x1, y1, x2, y2 float64) { r.record("strokeLine", nil, x1, y1, x2, y2) }
func (r *recordingSurface) FillRect(x, y, w, h float64)       { r.record("fillRect", nil, x, y, w, h) }
func (r *recordingSurface) StrokeRect(x, y, w, h float64)     { r.record("strokeRect", nil, x, y, w, h) }
func (r *recordingSurface) FillOval(x, y, w, h float64)       { r.record("fillOval", nil, x, y, w, h) }
func (r *recordingSurface) StrokeOval(x, y, w, h float64)     { r.record("strokeOval", nil, x, y, w, h) }
func (r *recordingSurface) FillPolygon(pts []Point)           { r.record("fillPolygon", pts) }
func (r *recordingSurface) StrokePolygon(pts []Point)         { r.record("strokePolygon", pts) }

func (r *recordingSurface) ops() []string {
	ops := make([]string, len(r.calls))
	for i, c := range r.calls {
		ops[i] = c.Op
	}
	return ops
}

func sameColor(a, b color.Color) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ar, ag, ab, aa := a.RGBA()
	br, bg, bb, ba := b.RGBA()
	return ar == br && ag == bg && ab == bb && aa == ba
}
