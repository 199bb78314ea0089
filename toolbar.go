package main

import (
	"errors"
	"image/color"
)

// Toolbar holds the selected shape, the picked color and the last submitted
// vertex data, and repaints the surface whenever they change.
type Toolbar struct {
	surface  Surface
	shape    ShapeKind
	fill     color.Color
	vertices []float64
}

func NewToolbar(s Surface) *Toolbar {
	return &Toolbar{surface: s, shape: ShapeLine}
}

func (t *Toolbar) Shape() ShapeKind { return t.shape }

// Fill returns the picked color, or nil when none is picked.
func (t *Toolbar) Fill() color.Color { return t.fill }

// Vertices returns a copy of the stored vertex data, nil when absent.
func (t *Toolbar) Vertices() []float64 {
	if t.vertices == nil {
		return nil
	}
	return append([]float64(nil), t.vertices...)
}

// Request snapshots the current state.
func (t *Toolbar) Request() DrawRequest {
	return DrawRequest{Kind: t.shape, Fill: t.fill, Vertices: t.Vertices()}
}

// SelectShape switches the shape and forgets the color and vertex data that
// belonged to the previous one. The surface keeps its current drawing until
// new data is submitted.
func (t *Toolbar) SelectShape(kind ShapeKind) {
	t.shape = kind
	t.fill = nil
	t.vertices = nil
	logInfoModule("toolbar", "shape selected: %s", kind)
}

// PickColor stores c (nil clears it) and repaints with the stored vertex data.
// Without vertex data there is nothing to repaint.
func (t *Toolbar) PickColor(c color.Color) error {
	t.fill = c
	logInfoModule("toolbar", "color picked: %s", colorName(c))
	if t.vertices == nil {
		return nil
	}
	return t.redraw()
}

// Submit parses text as vertex data. A *ParseError leaves every piece of state
// and the surface untouched. On success the data replaces the stored data and
// the surface is repainted, which fails with an *OutOfRangeError when the data
// is too short for the shape.
func (t *Toolbar) Submit(text string) error {
	values, err := ParseVertexData(text)
	if err != nil {
		logWarnModule("toolbar", "rejected vertex data %q: %v", text, err)
		return err
	}
	t.vertices = values
	return t.redraw()
}

func (t *Toolbar) redraw() error {
	if err := Render(t.surface, t.Request()); err != nil {
		logErrorModule("toolbar", "%v", err)
		return err
	}
	return nil
}

// ChooseShape runs the whole modal sequence for a shape selection: reset,
// prompt, parse and render. A cancelled prompt does nothing further. Parse
// errors are shown through a and are not returned; render errors are shown
// and returned.
func (t *Toolbar) ChooseShape(kind ShapeKind, p Prompter, a Alerter) error {
	t.SelectShape(kind)

	text, ok := p.Prompt(promptHeader)
	if !ok {
		logDebugModule("toolbar", "prompt cancelled")
		return nil
	}

	err := t.Submit(text)
	var parseErr *ParseError
	var rangeErr *OutOfRangeError
	switch {
	case err == nil:
		return nil
	case errors.As(err, &parseErr):
		a.Alert(alertTitle, alertParseHeader, alertParseContent)
		return nil
	case errors.As(err, &rangeErr):
		a.Alert(alertTitle, alertRangeHeader, rangeErr.Error())
	}
	return err
}
