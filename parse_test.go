package main

import (
	"errors"
	"reflect"
	"testing"
)

func TestParseVertexData(t *testing.T) {
	tests := []struct {
		in   string
		want []float64
	}{
		{"1,2,3,4", []float64{1, 2, 3, 4}},
		{" 10 , 20.5,-3 ", []float64{10, 20.5, -3}},
		{"1e2,0x10p0", []float64{100, 16}},
		{"1,2,", []float64{1, 2}},
		{"1,2,,,", []float64{1, 2}},
		{",,", []float64{}},
		{"7", []float64{7}},
	}
	for _, tt := range tests {
		got, err := ParseVertexData(tt.in)
		if err != nil {
			t.Errorf("ParseVertexData(%q): %v", tt.in, err)
			continue
		}
		if !reflect.DeepEqual(got, tt.want) {
			t.Errorf("ParseVertexData(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestParseVertexDataErrors(t *testing.T) {
	tests := []struct {
		in    string
		index int
	}{
		{"10,20,abc", 2},
		{"", 0},
		{"   ", 0},
		{",1", 0},
		{"1,,2", 1},
		{"1;2", 0},
		{"1,NaN", 1},
		{"Inf,0,10", 0},
		{"0,-infinity", 1},
		{"1e400", 0},
	}
	for _, tt := range tests {
		_, err := ParseVertexData(tt.in)
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Errorf("ParseVertexData(%q) err = %v, want *ParseError", tt.in, err)
			continue
		}
		if parseErr.Index != tt.index {
			t.Errorf("ParseVertexData(%q) index = %d, want %d", tt.in, parseErr.Index, tt.index)
		}
	}
}

func TestParseVertexDataRejectsNonFinite(t *testing.T) {
	_, err := ParseVertexData("1, nan ,3")
	if !errors.Is(err, errNotFinite) {
		t.Errorf("err = %v, want errNotFinite", err)
	}
}
