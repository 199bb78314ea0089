package main

import "math"

const clipMargin = 4.0

type bounds struct {
	minX, minY, maxX, maxY float64
}

func finite(vs ...float64) bool {
	for _, v := range vs {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return false
		}
	}
	return true
}

func (b bounds) contains(x, y float64) bool {
	return x >= b.minX && x <= b.maxX && y >= b.minY && y <= b.maxY
}

// clipSegment trims a segment to b (Liang-Barsky). ok is false when nothing
// of it is inside.
func (b bounds) clipSegment(x1, y1, x2, y2 float64) (float64, float64, float64, float64, bool) {
	if !finite(x1, y1, x2, y2) {
		return 0, 0, 0, 0, false
	}
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0
	edges := [4][2]float64{
		{-dx, x1 - b.minX},
		{dx, b.maxX - x1},
		{-dy, y1 - b.minY},
		{dy, b.maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		t := q / p
		if p < 0 {
			if t > t1 {
				return 0, 0, 0, 0, false
			}
			t0 = math.Max(t0, t)
		} else {
			if t < t0 {
				return 0, 0, 0, 0, false
			}
			t1 = math.Min(t1, t)
		}
	}
	cx1, cy1, cx2, cy2 := x1+t0*dx, y1+t0*dy, x1+t1*dx, y1+t1*dy
	if !finite(cx1, cy1, cx2, cy2) {
		return 0, 0, 0, 0, false
	}
	return cx1, cy1, cx2, cy2, true
}

// clipPolygon intersects a polygon with b (Sutherland-Hodgman).
func (b bounds) clipPolygon(pts []Point) []Point {
	for _, p := range pts {
		if !finite(p.X, p.Y) {
			return nil
		}
	}
	inside := []func(Point) bool{
		func(p Point) bool { return p.X >= b.minX },
		func(p Point) bool { return p.X <= b.maxX },
		func(p Point) bool { return p.Y >= b.minY },
		func(p Point) bool { return p.Y <= b.maxY },
	}
	cross := []func(a, c Point) Point{
		func(a, c Point) Point { return atX(a, c, b.minX) },
		func(a, c Point) Point { return atX(a, c, b.maxX) },
		func(a, c Point) Point { return atY(a, c, b.minY) },
		func(a, c Point) Point { return atY(a, c, b.maxY) },
	}

	out := pts
	for i := range inside {
		in := out
		out = nil
		for j, cur := range in {
			prev := in[(j+len(in)-1)%len(in)]
			switch {
			case inside[i](cur) && inside[i](prev):
				out = append(out, cur)
			case inside[i](cur):
				out = append(out, cross[i](prev, cur), cur)
			case inside[i](prev):
				out = append(out, cross[i](prev, cur))
			}
		}
		if len(out) == 0 {
			return nil
		}
	}
	for _, p := range out {
		if !finite(p.X, p.Y) {
			return nil
		}
	}
	return out
}

func atX(a, c Point, x float64) Point {
	t := (x - a.X) / (c.X - a.X)
	return Point{X: x, Y: a.Y + t*(c.Y-a.Y)}
}

func atY(a, c Point, y float64) Point {
	t := (y - a.Y) / (c.Y - a.Y)
	return Point{X: a.X + t*(c.X-a.X), Y: y}
}

// clipEllipse outlines the part of an ellipse inside b, sampled once per
// pixel column: the top edge left to right, then the bottom edge back.
func (b bounds) clipEllipse(cx, cy, rx, ry float64) []Point {
	if !finite(cx, cy, rx, ry) || rx <= 0 || ry <= 0 {
		return nil
	}
	x0 := math.Max(cx-rx, b.minX)
	x1 := math.Min(cx+rx, b.maxX)
	if x0 > x1 {
		return nil
	}

	xs := []float64{x0}
	for x := math.Floor(x0) + 1; x < x1; x++ {
		xs = append(xs, x)
	}
	xs = append(xs, x1)

	half := func(x float64) float64 {
		u := (x - cx) / rx
		return ry * math.Sqrt(math.Max(0, 1-u*u))
	}
	clampY := func(y float64) float64 {
		return math.Min(math.Max(y, b.minY), b.maxY)
	}

	pts := make([]Point, 0, 2*len(xs))
	for _, x := range xs {
		pts = append(pts, Point{x, clampY(cy - half(x))})
	}
	for i := len(xs) - 1; i >= 0; i-- {
		pts = append(pts, Point{xs[i], clampY(cy + half(xs[i]))})
	}
	return pts
}
