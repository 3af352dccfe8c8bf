package model

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"
)

// DefaultSKUWeight replaces a missing or non-positive SKU weight.
const DefaultSKUWeight = 1.0

// Location is a physical storage cell (shelf, rack, bin) with a weight capacity.
//
// @Description Storage location with footprint, height and maximum load
type Location struct {
	Name       string `json:"name" bson:"name" yaml:"name" example:"Pallet Rack 1"`
	Dimensions `bson:",inline" yaml:",inline"`
	MaxWeight  float64   `json:"max_weight" bson:"max_weight" yaml:"max_weight" example:"1000"`
	UpdatedAt  time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" yaml:"-"`
}

// Validate checks the location geometry.
func (l Location) Validate() error {
	if strings.TrimSpace(l.Name) == "" {
		return errors.New("location name is required")
	}
	if err := l.Dimensions.Validate(); err != nil {
		return fmt.Errorf("location %q: %w", l.Name, err)
	}
	if math.IsNaN(l.MaxWeight) || l.MaxWeight <= 0 {
		return fmt.Errorf("location %q: max_weight must be positive, got %v", l.Name, l.MaxWeight)
	}
	return nil
}

// Pallet is the rigid base placed inside a location. It consumes height and weight budget.
//
// @Description Pallet with footprint, deck height and self weight
type Pallet struct {
	Name       string `json:"name" bson:"name" yaml:"name" example:"Standard"`
	Dimensions `bson:",inline" yaml:",inline"`
	Weight     float64   `json:"weight" bson:"weight" yaml:"weight" example:"30"`
	UpdatedAt  time.Time `json:"updated_at,omitempty" bson:"updated_at,omitempty" yaml:"-"`
}

// Validate checks the pallet geometry.
func (p Pallet) Validate() error {
	if strings.TrimSpace(p.Name) == "" {
		return errors.New("pallet name is required")
	}
	if err := p.Dimensions.Validate(); err != nil {
		return fmt.Errorf("pallet %q: %w", p.Name, err)
	}
	if math.IsNaN(p.Weight) || p.Weight < 0 {
		return fmt.Errorf("pallet %q: weight must not be negative, got %v", p.Name, p.Weight)
	}
	return nil
}

// SKU is one product type being slotted.
//
// @Description Product unit dimensions and weight
type SKU struct {
	Name       string `json:"name" example:"Widget A"`
	Dimensions `bson:",inline" yaml:",inline"`
	Weight     float64 `json:"weight" example:"5"`
}

// Normalize trims the name and defaults a non-positive weight.
// index is used to name unnamed SKUs ("SKU 1", "SKU 2", ...).
func (s SKU) Normalize(index int) SKU {
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" {
		s.Name = fmt.Sprintf("SKU %d", index+1)
	}
	if math.IsNaN(s.Weight) || s.Weight <= 0 {
		s.Weight = DefaultSKUWeight
	}
	return s
}

// Validate checks the SKU dimensions. Weight is expected to be normalized first.
func (s SKU) Validate() error {
	if err := s.Dimensions.Validate(); err != nil {
		return fmt.Errorf("sku %q: %w", s.Name, err)
	}
	if s.Weight <= 0 {
		return fmt.Errorf("sku %q: weight must be positive, got %v", s.Name, s.Weight)
	}
	return nil
}
