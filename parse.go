package main

import (
	"errors"
	"math"
	"strconv"
	"strings"
)

var errNotFinite = errors.New("value is not finite")

// ParseVertexData splits text on commas and parses every segment as a float64.
// Whitespace around a segment is ignored. Trailing empty segments are dropped,
// so "1,2," is the same as "1,2" and ",," yields no values; any other empty
// segment, including empty input, is an error. NaN and infinities are
// rejected.
func ParseVertexData(text string) ([]float64, error) {
	segments := strings.Split(text, ",")
	for len(segments) > 0 && len(text) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	values := make([]float64, 0, len(segments))
	for i, segment := range segments {
		v, err := strconv.ParseFloat(strings.TrimSpace(segment), 64)
		if err == nil && (math.IsNaN(v) || math.IsInf(v, 0)) {
			err = errNotFinite
		}
		if err != nil {
			return nil, &ParseError{Index: i, Segment: segment, Err: err}
		}
		values = append(values, v)
	}
	return values, nil
}
