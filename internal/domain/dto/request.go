// Package dto defines the request and response bodies of the HTTP API.
package dto

import (
	"fmt"
	"strings"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// ValidationError represents a field validation error.
type ValidationError struct {
	Field   string
	Message string
}

// Error returns "field: message".
func (e *ValidationError) Error() string {
	return e.Field + ": " + e.Message
}

// OptimizeRequest asks for the best storage of each SKU in one location on one pallet.
//
// @Description Optimize a batch of SKUs for a catalog location and pallet
type OptimizeRequest struct {
	// Location is a catalog location name.
	Location string `json:"location" binding:"required" example:"Pallet Rack 1"`
	// Pallet is a catalog pallet name.
	Pallet string `json:"pallet" binding:"required" example:"Standard"`
	// SKUs are evaluated independently. Missing or non-positive weights default to 1.
	SKUs []model.SKU `json:"skus" binding:"required,min=1"`
	// IncludeTrials adds per-orientation diagnostics to each SKU.
	IncludeTrials bool `json:"include_trials,omitempty"`
	// IncludePlacements adds unit coordinates to each SKU.
	IncludePlacements bool `json:"include_placements,omitempty"`
} // @name OptimizeRequest

// Normalize trims names and defaults SKU weights in place.
func (r *OptimizeRequest) Normalize() {
	r.Location = strings.TrimSpace(r.Location)
	r.Pallet = strings.TrimSpace(r.Pallet)
	for i := range r.SKUs {
		r.SKUs[i] = r.SKUs[i].Normalize(i)
	}
}

// Validate checks the request after Normalize. maxSKUs caps the batch size.
func (r *OptimizeRequest) Validate(maxSKUs int) error {
	if r.Location == "" {
		return &ValidationError{Field: "location", Message: "is required"}
	}
	if r.Pallet == "" {
		return &ValidationError{Field: "pallet", Message: "is required"}
	}
	if len(r.SKUs) == 0 {
		return &ValidationError{Field: "skus", Message: "at least one sku is required"}
	}
	if maxSKUs > 0 && len(r.SKUs) > maxSKUs {
		return &ValidationError{Field: "skus", Message: fmt.Sprintf("at most %d skus per request", maxSKUs)}
	}
	for i, sku := range r.SKUs {
		if err := sku.Validate(); err != nil {
			return &ValidationError{Field: fmt.Sprintf("skus[%d]", i), Message: err.Error()}
		}
	}
	return nil
}

// LocationRequest is the body of PUT /locations/:name.
//
// @Description Location geometry and capacity
type LocationRequest struct {
	Width     float64 `json:"width" binding:"required,gt=0" example:"48"`
	Depth     float64 `json:"depth" binding:"required,gt=0" example:"40"`
	Height    float64 `json:"height" binding:"required,gt=0" example:"60"`
	MaxWeight float64 `json:"max_weight" binding:"required,gt=0" example:"1000"`
} // @name LocationRequest

// ToModel builds the named location.
func (r LocationRequest) ToModel(name string) model.Location {
	return model.Location{
		Name:       strings.TrimSpace(name),
		Dimensions: model.Dimensions{Width: r.Width, Depth: r.Depth, Height: r.Height},
		MaxWeight:  r.MaxWeight,
	}
}

// PalletRequest is the body of PUT /pallets/:name.
//
// @Description Pallet geometry and self weight
type PalletRequest struct {
	Width  float64 `json:"width" binding:"required,gt=0" example:"48"`
	Depth  float64 `json:"depth" binding:"required,gt=0" example:"40"`
	Height float64 `json:"height" binding:"required,gt=0" example:"6"`
	Weight float64 `json:"weight" binding:"gte=0" example:"30"`
} // @name PalletRequest

// ToModel builds the named pallet.
func (r PalletRequest) ToModel(name string) model.Pallet {
	return model.Pallet{
		Name:       strings.TrimSpace(name),
		Dimensions: model.Dimensions{Width: r.Width, Depth: r.Depth, Height: r.Height},
		Weight:     r.Weight,
	}
}
