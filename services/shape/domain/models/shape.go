// Package models defines the closed set of shapes and the accessors over them.
//
// Shape is a sealed interface: only Circle, Square and Rectangle implement it,
// so a type switch over those three is exhaustive.
package models

import (
	"errors"
	"fmt"
)

// ErrNotACircle is the cause carried by the Radius panic and returned by
// callers that reject a non-circle shape.
var ErrNotACircle = errors.New("not a circle")

// Shape is one of Circle, Square or Rectangle.
type Shape interface {
	shape()
}

// Circle is a shape with a radius.
type Circle struct {
	Radius float64
}

// Square is a shape with a border length.
type Square struct {
	Border float64
}

// Rectangle is a shape with a width and a height.
type Rectangle struct {
	Width  float64
	Height float64
}

func (Circle) shape()    {}
func (Square) shape()    {}
func (Rectangle) shape() {}

// Kind returns the variant name of s: "circle", "square" or "rectangle".
// A nil Shape yields "none".
func Kind(s Shape) string {
	switch s.(type) {
	case Circle:
		return "circle"
	case Square:
		return "square"
	case Rectangle:
		return "rectangle"
	default:
		return "none"
	}
}

// Radius returns the radius of a Circle exactly as stored.
//
// Radius panics if s is not a Circle. Call it only after establishing the
// variant, or use CircleRadius.
func Radius(s Shape) float64 {
	switch v := s.(type) {
	case Circle:
		return v.Radius
	default:
		panic(fmt.Errorf("%w: got %s", ErrNotACircle, Kind(s)))
	}
}

// CircleRadius returns the radius and true if s is a Circle, or 0 and false otherwise.
func CircleRadius(s Shape) (float64, bool) {
	c, ok := s.(Circle)
	if !ok {
		return 0, false
	}
	return c.Radius, true
}

// New builds a Shape from its variant name. Dimensions that do not belong to
// the requested variant are ignored. Values are not validated.
func New(kind string, radius, border, width, height float64) (Shape, error) {
	switch kind {
	case "circle":
		return Circle{Radius: radius}, nil
	case "square":
		return Square{Border: border}, nil
	case "rectangle":
		return Rectangle{Width: width, Height: height}, nil
	default:
		return nil, fmt.Errorf("unknown shape kind %q", kind)
	}
}
