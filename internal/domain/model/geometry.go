// Package model defines the core domain entities for the slotting service.
package model

import (
	"fmt"
	"math"
)

// Dimensions is an ordered (width, depth, height) triple in a consistent length unit.
//
// @Description Box dimensions (width, depth, height), unit agnostic
type Dimensions struct {
	Width  float64 `json:"width" bson:"width" yaml:"width" example:"10"`
	Depth  float64 `json:"depth" bson:"depth" yaml:"depth" example:"10"`
	Height float64 `json:"height" bson:"height" yaml:"height" example:"10"`
}

// Volume returns width * depth * height.
func (d Dimensions) Volume() float64 {
	return d.Width * d.Depth * d.Height
}

// Validate returns an error if any edge is not a positive finite number.
func (d Dimensions) Validate() error {
	for _, edge := range []struct {
		name  string
		value float64
	}{
		{"width", d.Width},
		{"depth", d.Depth},
		{"height", d.Height},
	} {
		if math.IsNaN(edge.value) || math.IsInf(edge.value, 0) || edge.value <= 0 {
			return fmt.Errorf("%s must be a positive number, got %v", edge.name, edge.value)
		}
	}
	return nil
}

// String formats the triple the way layer reports show it.
func (d Dimensions) String() string {
	return fmt.Sprintf("%.1f×%.1f×%.1f", d.Width, d.Depth, d.Height)
}

// Equal reports whether both triples match within a small tolerance.
func (d Dimensions) Equal(other Dimensions) bool {
	return nearlyEqual(d.Width, other.Width) &&
		nearlyEqual(d.Depth, other.Depth) &&
		nearlyEqual(d.Height, other.Height)
}

// FitsWithin reports whether d fits inside limit on every axis without rotation.
func (d Dimensions) FitsWithin(limit Dimensions) bool {
	return d.Width <= limit.Width+Epsilon &&
		d.Depth <= limit.Depth+Epsilon &&
		d.Height <= limit.Height+Epsilon
}

// Epsilon absorbs floating point noise in geometric comparisons.
const Epsilon = 1e-9

func nearlyEqual(a, b float64) bool {
	return math.Abs(a-b) <= Epsilon
}

// Box is a rectangular solid with a weight. Products, pallets and storage cells share this shape.
type Box struct {
	Dimensions `bson:",inline" yaml:",inline"`
	Weight     float64 `json:"weight" bson:"weight" yaml:"weight" example:"5"`
}
