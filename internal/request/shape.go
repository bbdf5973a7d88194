package request

import (
	"strings"

	"github.com/aleister1102/httpget/internal/common"
)

// Shape selects the input and output convention for one process.
type Shape int

const (
	// ShapeEnvelope is {state, params:{url, headers}} in, ::starthub:state:: out
	ShapeEnvelope Shape = iota
	// ShapeArray is [url, headers] in, [{status, body}] out
	ShapeArray
	// ShapeObject is {url, headers} in, {status, body} out
	ShapeObject
	// ShapePairs is [{url}, headers] in, [{status}, {body}] out
	ShapePairs
)

var shapeNames = map[string]Shape{
	"envelope":         ShapeEnvelope,
	"array":            ShapeArray,
	"positional":       ShapeArray,
	"object":           ShapeObject,
	"flat":             ShapeObject,
	"pairs":            ShapePairs,
	"array-of-objects": ShapePairs,
}

// String returns string representation of Shape
func (s Shape) String() string {
	switch s {
	case ShapeEnvelope:
		return "envelope"
	case ShapeArray:
		return "array"
	case ShapeObject:
		return "object"
	case ShapePairs:
		return "pairs"
	default:
		return "unknown"
	}
}

// ParseShape parses a shape name, case-insensitively, including aliases.
func ParseShape(name string) (Shape, error) {
	shape, ok := shapeNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, common.NewValidationError("shape", name, "unknown shape, expected one of envelope, array, object, pairs")
	}
	return shape, nil
}

// ShapeNames returns the canonical shape names.
func ShapeNames() []string {
	return []string{"envelope", "array", "object", "pairs"}
}

// expectsArray reports whether the shape's top-level input is a JSON array.
func (s Shape) expectsArray() bool {
	return s == ShapeArray || s == ShapePairs
}
