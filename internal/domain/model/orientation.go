package model

// OrientationIndex identifies one of the six axis-aligned rotations of a box.
// The numeric order is the enumeration order used for tie-breaking.
type OrientationIndex int

const (
	OrientationStandard OrientationIndex = iota
	OrientationRotated90
	OrientationOnSideWH
	OrientationOnSideDH
	OrientationStandingHW
	OrientationStandingHD
)

// OrientationCount is the number of axis-aligned rotations of a box.
const OrientationCount = 6

// CustomOrientationLabel is reported when a triple is not a permutation of the original.
const CustomOrientationLabel = "Custom Orientation"

var orientationLabels = [OrientationCount]string{
	OrientationStandard:   "Standard (W×D×H)",
	OrientationRotated90:  "Rotated 90° (D×W×H)",
	OrientationOnSideWH:   "On Side (W×H×D)",
	OrientationOnSideDH:   "On Side (D×H×W)",
	OrientationStandingHW: "Standing (H×W×D)",
	OrientationStandingHD: "Standing (H×D×W)",
}

// Label returns the human readable name of the rotation.
func (i OrientationIndex) Label() string {
	if i < 0 || int(i) >= OrientationCount {
		return CustomOrientationLabel
	}
	return orientationLabels[i]
}

// Permute applies the rotation to d.
func (i OrientationIndex) Permute(d Dimensions) Dimensions {
	w, dp, h := d.Width, d.Depth, d.Height
	switch i {
	case OrientationRotated90:
		return Dimensions{Width: dp, Depth: w, Height: h}
	case OrientationOnSideWH:
		return Dimensions{Width: w, Depth: h, Height: dp}
	case OrientationOnSideDH:
		return Dimensions{Width: dp, Depth: h, Height: w}
	case OrientationStandingHW:
		return Dimensions{Width: h, Depth: w, Height: dp}
	case OrientationStandingHD:
		return Dimensions{Width: h, Depth: dp, Height: w}
	default:
		return d
	}
}

// Orientation is a rotated copy of a box's dimensions.
type Orientation struct {
	Index    OrientationIndex `json:"index"`
	Dims     Dimensions       `json:"dimensions"`
	Original Dimensions       `json:"-"`
}

// Label derives the rotation name by comparing Dims against Original.
func (o Orientation) Label() string {
	return DescribeOrientation(o.Original, o.Dims)
}

// DescribeOrientation matches current against the rotations of original in enumeration
// order. The first match wins; anything else is a custom orientation.
func DescribeOrientation(original, current Dimensions) string {
	for i := OrientationIndex(0); int(i) < OrientationCount; i++ {
		if i.Permute(original).Equal(current) {
			return i.Label()
		}
	}
	return CustomOrientationLabel
}
