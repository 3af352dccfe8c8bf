package model

// Container is the loadable volume left on a pallet inside a location.
//
// @Description Usable footprint, height and weight after the pallet is placed
type Container struct {
	// Width and Depth are the loadable footprint (the placed pallet footprint).
	Width float64 `json:"width" bson:"width" example:"45.6"`
	Depth float64 `json:"depth" bson:"depth" example:"38"`
	// Height is the location height minus the pallet height.
	Height float64 `json:"height" bson:"height" example:"54"`
	// MaxWeight is the location capacity minus the pallet weight.
	MaxWeight float64 `json:"max_weight" bson:"max_weight" example:"970"`
	// OffsetX and OffsetY centre the pallet inside the location.
	OffsetX float64 `json:"offset_x" bson:"offset_x" example:"1.2"`
	OffsetY float64 `json:"offset_y" bson:"offset_y" example:"1"`
	// BaseHeight is the pallet top, measured from the location floor.
	BaseHeight float64 `json:"base_height" bson:"base_height" example:"6"`
}

// Bounds returns the loadable volume as a triple.
func (c Container) Bounds() Dimensions {
	return Dimensions{Width: c.Width, Depth: c.Depth, Height: c.Height}
}

// Volume returns the loadable volume.
func (c Container) Volume() float64 {
	return c.Bounds().Volume()
}

// Placement is one unit positioned inside a container. Coordinates are relative to the pallet top corner.
type Placement struct {
	X    float64    `json:"x"`
	Y    float64    `json:"y"`
	Z    float64    `json:"z"`
	Dims Dimensions `json:"dimensions"`
}

// Overlaps reports whether two placements share interior volume.
func (p Placement) Overlaps(other Placement) bool {
	return p.X < other.X+other.Dims.Width-Epsilon && other.X < p.X+p.Dims.Width-Epsilon &&
		p.Y < other.Y+other.Dims.Depth-Epsilon && other.Y < p.Y+p.Dims.Depth-Epsilon &&
		p.Z < other.Z+other.Dims.Height-Epsilon && other.Z < p.Z+p.Dims.Height-Epsilon
}

// PlacementResult is the answer of a placement oracle for a fixed quantity.
type PlacementResult struct {
	Success    bool        `json:"success"`
	Placements []Placement `json:"placements,omitempty"`
}

// Count returns the number of placed units.
func (r PlacementResult) Count() int {
	return len(r.Placements)
}

// Layer groups units that share a vertical level.
//
// @Description One stacking level of a packing solution
type Layer struct {
	// Level is 1-based, bottom to top.
	Level int `json:"level" example:"1"`
	// Z is the level height above the pallet top.
	Z float64 `json:"z" example:"0"`
	// Elevation is the level height above the location floor.
	Elevation   float64    `json:"elevation" example:"6"`
	Count       int        `json:"count" example:"12"`
	Dims        Dimensions `json:"dimensions"`
	Label       string     `json:"orientation" example:"Standard (W×D×H)"`
	Arrangement string     `json:"arrangement" example:"12 items in standard (w×d×h) position"`
}

// PackingSolution is the best orientation and quantity found for one SKU.
type PackingSolution struct {
	Orientation Orientation     `json:"orientation"`
	Quantity    int             `json:"quantity"`
	Result      PlacementResult `json:"-"`
	Layers      []Layer         `json:"layers"`
}

// OrientationTrial records how one orientation performed during optimization.
//
// @Description Per-orientation diagnostics
type OrientationTrial struct {
	Index      OrientationIndex `json:"index" example:"0"`
	Label      string           `json:"orientation" example:"Standard (W×D×H)"`
	Dims       Dimensions       `json:"dimensions"`
	UpperBound int              `json:"upper_bound" example:"60"`
	Quantity   int              `json:"quantity" example:"60"`
	Probes     int              `json:"probes" example:"6"`
	// Skipped is true when the rotated box cannot fit at all and no probe was made.
	Skipped bool `json:"skipped"`
	// ReusedFrom points at an earlier trial with identical rotated dimensions.
	ReusedFrom *OrientationIndex `json:"reused_from,omitempty"`
}

// Evaluation is the full optimizer output for one SKU. Solution is nil when no orientation fits.
type Evaluation struct {
	SKU      SKU                `json:"sku"`
	Solution *PackingSolution   `json:"solution,omitempty"`
	Trials   []OrientationTrial `json:"trials"`
}

// Feasible reports whether at least one unit fits.
func (e Evaluation) Feasible() bool {
	return e.Solution != nil && e.Solution.Quantity > 0
}
