package main

import (
	"errors"
	"image/color"
	"reflect"
	"testing"
)

var red = color.RGBA{0xff, 0x00, 0x00, 0xff}

func TestRenderLine(t *testing.T) {
	for _, fill := range []color.Color{nil, red} {
		s := newRecordingSurface()
		if err := Render(s, DrawRequest{Kind: ShapeLine, Fill: fill, Vertices: []float64{10, 20, 300, 400}}); err != nil {
			t.Fatalf("Render: %v", err)
		}
		if !reflect.DeepEqual(s.ops(), []string{"strokeLine"}) {
			t.Fatalf("ops = %v, want a single strokeLine", s.ops())
		}
		if got := s.calls[0].Args; !reflect.DeepEqual(got, []float64{10, 20, 300, 400}) {
			t.Errorf("line args = %v, want raw coordinates", got)
		}
		want := color.Color(color.Black)
		if fill != nil {
			want = fill
		}
		if !sameColor(s.calls[0].Stroke, want) {
			t.Errorf("fill %v: stroke = %v, want %v", fill, s.calls[0].Stroke, want)
		}
	}
}

func TestRenderRectangle(t *testing.T) {
	s := newRecordingSurface()
	if err := Render(s, DrawRequest{Kind: ShapeRectangle, Fill: red, Vertices: []float64{5, 6, 70, 80}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(s.ops(), []string{"fillRect", "strokeRect"}) {
		t.Fatalf("ops = %v", s.ops())
	}
	for _, c := range s.calls {
		if !reflect.DeepEqual(c.Args, []float64{5, 6, 70, 80}) {
			t.Errorf("%s args = %v, want unflipped (5,6,70,80)", c.Op, c.Args)
		}
	}
	if !sameColor(s.calls[0].Fill, red) {
		t.Errorf("fill = %v, want red", s.calls[0].Fill)
	}
	if !sameColor(s.calls[1].Stroke, color.Black) {
		t.Errorf("outline = %v, want black", s.calls[1].Stroke)
	}
}

func TestRenderRectangleWithoutColorIsTransparent(t *testing.T) {
	s := newRecordingSurface()
	if err := Render(s, DrawRequest{Kind: ShapeRectangle, Vertices: []float64{0, 0, 1, 1}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !sameColor(s.calls[0].Fill, color.Transparent) {
		t.Errorf("fill = %v, want transparent", s.calls[0].Fill)
	}
}

func TestRenderCircleFlipsY(t *testing.T) {
	s := newRecordingSurface()
	if err := Render(s, DrawRequest{Kind: ShapeCircle, Vertices: []float64{100, 50, 20}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(s.ops(), []string{"fillOval", "strokeOval"}) {
		t.Fatalf("ops = %v", s.ops())
	}
	want := []float64{80, 530, 40, 40}
	for _, c := range s.calls {
		if !reflect.DeepEqual(c.Args, want) {
			t.Errorf("%s args = %v, want %v", c.Op, c.Args, want)
		}
	}
}

func TestRenderTriangleFlipsY(t *testing.T) {
	s := newRecordingSurface()
	if err := Render(s, DrawRequest{Kind: ShapeTriangle, Vertices: []float64{0, 10, 20, 5, 15, 25}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if !reflect.DeepEqual(s.ops(), []string{"fillPolygon", "strokePolygon"}) {
		t.Fatalf("ops = %v", s.ops())
	}
	want := []Point{{0, 595}, {10, 585}, {20, 575}}
	for _, c := range s.calls {
		if !reflect.DeepEqual(c.Points, want) {
			t.Errorf("%s points = %v, want %v", c.Op, c.Points, want)
		}
	}
}

func TestRenderClearsFirst(t *testing.T) {
	s := newRecordingSurface()
	req := DrawRequest{Kind: ShapeCircle, Vertices: []float64{1, 2, 3}}
	for i := 0; i < 3; i++ {
		if err := Render(s, req); err != nil {
			t.Fatalf("Render: %v", err)
		}
	}
	if s.clears != 3 {
		t.Errorf("clears = %d, want 3", s.clears)
	}
	if len(s.calls) != 2 {
		t.Errorf("calls = %v, want only the last circle", s.ops())
	}
}

func TestRenderShortVertexData(t *testing.T) {
	tests := []struct {
		kind ShapeKind
		data []float64
		need int
	}{
		{ShapeLine, []float64{1, 2, 3}, 4},
		{ShapeRectangle, []float64{1, 2}, 4},
		{ShapeCircle, nil, 3},
		{ShapeTriangle, []float64{1, 2, 3, 4, 5}, 6},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s := newRecordingSurface()
			err := Render(s, DrawRequest{Kind: tt.kind, Vertices: tt.data})
			var rangeErr *OutOfRangeError
			if !errors.As(err, &rangeErr) {
				t.Fatalf("err = %v, want *OutOfRangeError", err)
			}
			if rangeErr.Need != tt.need || rangeErr.Got != len(tt.data) {
				t.Errorf("need/got = %d/%d, want %d/%d", rangeErr.Need, rangeErr.Got, tt.need, len(tt.data))
			}
			if s.clears != 0 || len(s.calls) != 0 {
				t.Errorf("surface touched: clears=%d ops=%v", s.clears, s.ops())
			}
		})
	}
}

func TestNewShapeIgnoresExtraValues(t *testing.T) {
	shape, err := NewShape(ShapeCircle, []float64{1, 2, 3, 4, 5})
	if err != nil {
		t.Fatalf("NewShape: %v", err)
	}
	if want := (Circle{Center: Point{1, 2}, Radius: 3}); shape != want {
		t.Errorf("shape = %#v, want %#v", shape, want)
	}
}

func TestNewShapeTriangleSplitsInHalf(t *testing.T) {
	tests := []struct {
		data []float64
		want [3]Point
	}{
		{[]float64{0, 10, 20, 5, 15, 25}, [3]Point{{0, 5}, {10, 15}, {20, 25}}},
		{[]float64{0, 10, 20, 5, 15, 25, 35}, [3]Point{{0, 5}, {10, 15}, {20, 25}}},
		{[]float64{0, 10, 20, 30, 5, 15, 25, 35}, [3]Point{{0, 5}, {10, 15}, {20, 25}}},
	}
	for _, tt := range tests {
		shape, err := NewShape(ShapeTriangle, tt.data)
		if err != nil {
			t.Fatalf("NewShape(%v): %v", tt.data, err)
		}
		if got := shape.(Triangle).Vertices; got != tt.want {
			t.Errorf("NewShape(%v) = %v, want %v", tt.data, got, tt.want)
		}
	}

	s := newRecordingSurface()
	if err := Render(s, DrawRequest{Kind: ShapeTriangle, Vertices: []float64{0, 10, 20, 30, 5, 15, 25, 35}}); err != nil {
		t.Fatalf("Render: %v", err)
	}
	if want := []Point{{0, 595}, {10, 585}, {20, 575}}; !reflect.DeepEqual(s.calls[0].Points, want) {
		t.Errorf("points = %v, want %v", s.calls[0].Points, want)
	}
}
