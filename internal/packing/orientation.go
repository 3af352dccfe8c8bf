package packing

import "github.com/guttosm/slotting-service/internal/domain/model"

// Orientations returns the six axis-aligned rotations of d in enumeration order.
// Degenerate boxes (cubes, two equal edges) yield repeated triples; each keeps its index.
func Orientations(d model.Dimensions) []model.Orientation {
	out := make([]model.Orientation, 0, model.OrientationCount)
	for i := model.OrientationIndex(0); int(i) < model.OrientationCount; i++ {
		out = append(out, model.Orientation{
			Index:    i,
			Dims:     i.Permute(d),
			Original: d,
		})
	}
	return out
}
