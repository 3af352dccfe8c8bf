package packing

import (
	"fmt"
	"math"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// PalletFootprintScale caps the placed pallet footprint relative to the location on each axis.
const PalletFootprintScale = 0.95

// PlaceOnPallet derives the loadable container for a pallet standing in a location.
//
// The pallet footprint is capped at 95% of the location on each axis independently and
// centred. Usable height and weight are what the pallet leaves of the location budget;
// if either is not positive a *ConfigurationError is returned.
func PlaceOnPallet(loc model.Location, pallet model.Pallet) (model.Container, error) {
	if err := loc.Dimensions.Validate(); err != nil {
		return model.Container{}, configError(loc, pallet, fmt.Sprintf("location %v", err))
	}
	if err := pallet.Dimensions.Validate(); err != nil {
		return model.Container{}, configError(loc, pallet, fmt.Sprintf("pallet %v", err))
	}
	if math.IsNaN(pallet.Weight) || pallet.Weight < 0 {
		return model.Container{}, configError(loc, pallet, "pallet weight must not be negative")
	}

	usableHeight := loc.Height - pallet.Height
	if usableHeight <= 0 {
		return model.Container{}, configError(loc, pallet,
			fmt.Sprintf("pallet height %.2f leaves no usable height in a %.2f high location", pallet.Height, loc.Height))
	}
	usableWeight := loc.MaxWeight - pallet.Weight
	if math.IsNaN(usableWeight) || usableWeight <= 0 {
		return model.Container{}, configError(loc, pallet,
			fmt.Sprintf("pallet weight %.2f leaves no usable capacity of %.2f", pallet.Weight, loc.MaxWeight))
	}

	width := math.Min(pallet.Width, loc.Width*PalletFootprintScale)
	depth := math.Min(pallet.Depth, loc.Depth*PalletFootprintScale)

	return model.Container{
		Width:      width,
		Depth:      depth,
		Height:     usableHeight,
		MaxWeight:  usableWeight,
		OffsetX:    (loc.Width - width) / 2,
		OffsetY:    (loc.Depth - depth) / 2,
		BaseHeight: pallet.Height,
	}, nil
}

func configError(loc model.Location, pallet model.Pallet, reason string) *ConfigurationError {
	return &ConfigurationError{Location: loc.Name, Pallet: pallet.Name, Reason: reason}
}
