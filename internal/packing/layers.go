package packing

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/guttosm/slotting-service/internal/domain/model"
)

// DecomposeLayers groups the placements of a successful result by height, with z rounded
// to 0.1, and numbers the groups bottom-up starting at 1. Elevation adds baseHeight (the
// pallet top) to each level. Empty or unsuccessful results yield an empty slice.
func DecomposeLayers(result model.PlacementResult, original model.Dimensions, baseHeight float64) []model.Layer {
	if !result.Success || len(result.Placements) == 0 {
		return []model.Layer{}
	}

	groups := make(map[int64][]model.Placement)
	for _, p := range result.Placements {
		key := int64(math.Round(p.Z * 10))
		groups[key] = append(groups[key], p)
	}

	keys := make([]int64, 0, len(groups))
	for k := range groups {
		keys = append(keys, k)
	}
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	layers := make([]model.Layer, 0, len(keys))
	for i, k := range keys {
		items := groups[k]
		z := float64(k) / 10
		dims := items[0].Dims
		label := model.DescribeOrientation(original, dims)
		layers = append(layers, model.Layer{
			Level:       i + 1,
			Z:           z,
			Elevation:   baseHeight + z,
			Count:       len(items),
			Dims:        dims,
			Label:       label,
			Arrangement: fmt.Sprintf("%d items in %s position", len(items), strings.ToLower(label)),
		})
	}
	return layers
}
