package main

// Shape is one drawable primitive with its geometry already decoded from the
// flat vertex data.
type Shape interface {
	Kind() ShapeKind
	Draw(s Surface)
}

// Line is drawn in raw surface coordinates.
type Line struct {
	From, To Point
}

// Rectangle is drawn in raw surface coordinates with (X, Y) as its top-left.
type Rectangle struct {
	X, Y, Width, Height float64
}

// Circle is centered at a bottom-left-origin point.
type Circle struct {
	Center Point
	Radius float64
}

// Triangle vertices use a bottom-left origin.
type Triangle struct {
	Vertices [3]Point
}

// NewShape decodes vertex data for kind. Values past the ones kind reads are
// ignored, except that a Triangle always splits the data in half.
func NewShape(kind ShapeKind, data []float64) (Shape, error) {
	need := kind.vertexCount()
	if need == 0 {
		return nil, &OutOfRangeError{Kind: kind, Need: 0, Got: len(data)}
	}
	if len(data) < need {
		return nil, &OutOfRangeError{Kind: kind, Need: need, Got: len(data)}
	}

	switch kind {
	case ShapeLine:
		return Line{From: Point{data[0], data[1]}, To: Point{data[2], data[3]}}, nil
	case ShapeRectangle:
		return Rectangle{X: data[0], Y: data[1], Width: data[2], Height: data[3]}, nil
	case ShapeCircle:
		return Circle{Center: Point{data[0], data[1]}, Radius: data[2]}, nil
	default:
		// the first half holds the X coordinates, the second half the Y
		// coordinates; the first three of each are used
		half := len(data) / 2
		return Triangle{Vertices: [3]Point{
			{data[0], data[half]},
			{data[1], data[half+1]},
			{data[2], data[half+2]},
		}}, nil
	}
}

func (Line) Kind() ShapeKind      { return ShapeLine }
func (Rectangle) Kind() ShapeKind { return ShapeRectangle }
func (Circle) Kind() ShapeKind    { return ShapeCircle }
func (Triangle) Kind() ShapeKind  { return ShapeTriangle }

func (l Line) Draw(s Surface) {
	s.StrokeLine(l.From.X, l.From.Y, l.To.X, l.To.Y)
}

func (r Rectangle) Draw(s Surface) {
	s.FillRect(r.X, r.Y, r.Width, r.Height)
	s.StrokeRect(r.X, r.Y, r.Width, r.Height)
}

// Bounds returns the bounding box of the circle in surface coordinates.
func (c Circle) Bounds(surfaceHeight float64) (x, y, w, h float64) {
	d := 2 * c.Radius
	return c.Center.X - c.Radius, surfaceHeight - (c.Center.Y + c.Radius), d, d
}

func (c Circle) Draw(s Surface) {
	_, height := s.Size()
	x, y, w, h := c.Bounds(height)
	s.FillOval(x, y, w, h)
	s.StrokeOval(x, y, w, h)
}

// Flipped returns the vertices in surface coordinates.
func (t Triangle) Flipped(surfaceHeight float64) []Point {
	pts := make([]Point, len(t.Vertices))
	for i, v := range t.Vertices {
		pts[i] = Point{X: v.X, Y: surfaceHeight - v.Y}
	}
	return pts
}

func (t Triangle) Draw(s Surface) {
	_, height := s.Size()
	pts := t.Flipped(height)
	s.FillPolygon(pts)
	s.StrokePolygon(pts)
}
