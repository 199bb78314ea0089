package main

import (
	"fmt"
	"image/color"
)

// Render clears s and draws the single shape described by req. The shape is
// decoded before anything is drawn, so an *OutOfRangeError leaves s as it was.
func Render(s Surface, req DrawRequest) error {
	shape, err := NewShape(req.Kind, req.Vertices)
	if err != nil {
		return fmt.Errorf("render %s: %w", req.Kind, err)
	}

	s.Clear()
	s.SetStroke(color.Black)
	if req.Fill != nil {
		s.SetFill(req.Fill)
	} else {
		s.SetFill(color.Transparent)
	}

	// a line has nothing to fill, so it strokes in the picked color
	if shape.Kind() == ShapeLine && req.Fill != nil {
		s.SetStroke(req.Fill)
	}

	shape.Draw(s)
	logDebugModule("render", "drew %s %v", req.Kind, req.Vertices)
	return nil
}
