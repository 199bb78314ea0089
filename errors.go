package main

import "fmt"

// ParseError reports a vertex data segment that is not a number.
type ParseError struct {
	Index   int
	Segment string
	Err     error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("segment %d (%q) is not a number: %v", e.Index, e.Segment, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// OutOfRangeError reports vertex data that is too short for the selected shape.
type OutOfRangeError struct {
	Kind ShapeKind
	Need int
	Got  int
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("%s needs %d values, got %d", e.Kind, e.Need, e.Got)
}
