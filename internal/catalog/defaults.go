package catalog

import "github.com/guttosm/slotting-service/internal/domain/model"

func defaultLocations() []model.Location {
	loc := func(name string, w, d, h, maxWeight float64) model.Location {
		return model.Location{
			Name:       name,
			Dimensions: model.Dimensions{Width: w, Depth: d, Height: h},
			MaxWeight:  maxWeight,
		}
	}
	return []model.Location{
		loc("Shelf Small", 36, 18, 60, 300),
		loc("Shelf Wide", 48, 24, 72, 350),
		loc("Bin Deep", 30, 30, 48, 200),
		loc("Pallet Rack 1", 48, 40, 60, 1000),
		loc("Pallet Rack 2", 96, 48, 72, 2500),
		loc("Floor Bulk 1", 72, 48, 60, 1200),
		loc("Floor Bulk 2", 84, 60, 72, 1500),
		loc("Mezzanine", 60, 36, 84, 700),
		loc("Cold Storage", 48, 48, 60, 1100),
		loc("Bin Tall", 24, 24, 96, 200),
	}
}

func defaultPallets() []model.Pallet {
	pallet := func(name string, w, d, h, weight float64) model.Pallet {
		return model.Pallet{
			Name:       name,
			Dimensions: model.Dimensions{Width: w, Depth: d, Height: h},
			Weight:     weight,
		}
	}
	return []model.Pallet{
		pallet("Standard", 48, 40, 6, 30),
		pallet("Euro", 32, 48, 6, 25),
		pallet("Half", 24, 40, 6, 20),
	}
}
