package packing

// footprintPacker places identical rectangles on a 2D footprint using the maximal
// rectangles method. Each insertion picks the free rectangle whose corner is lowest
// (then leftmost), which fills the footprint row by row.
type footprintPacker struct {
	freeRects []rect
}

type rect struct {
	x, y, w, h float64
}

type point struct {
	x, y float64
}

const geomTolerance = 1e-6

func newFootprintPacker(width, depth float64) *footprintPacker {
	return &footprintPacker{
		freeRects: []rect{{0, 0, width, depth}},
	}
}

// insert places a w x h rectangle and returns its corner.
func (fp *footprintPacker) insert(w, h float64) (float64, float64, bool) {
	bestIdx := -1
	for i, r := range fp.freeRects {
		if w > r.w+geomTolerance || h > r.h+geomTolerance {
			continue
		}
		if bestIdx < 0 || lowerLeft(r, fp.freeRects[bestIdx]) {
			bestIdx = i
		}
	}
	if bestIdx < 0 {
		return 0, 0, false
	}

	chosen := fp.freeRects[bestIdx]
	fp.splitAroundPlacement(rect{x: chosen.x, y: chosen.y, w: w, h: h})
	return chosen.x, chosen.y, true
}

func lowerLeft(a, b rect) bool {
	if a.y < b.y-geomTolerance {
		return true
	}
	if a.y > b.y+geomTolerance {
		return false
	}
	return a.x < b.x-geomTolerance
}

// splitAroundPlacement replaces every free rectangle overlapping placed with the
// maximal strips left around it, then drops strips contained in others.
func (fp *footprintPacker) splitAroundPlacement(placed rect) {
	next := make([]rect, 0, len(fp.freeRects)+4)

	for _, r := range fp.freeRects {
		if !rectsOverlap(r, placed) {
			next = append(next, r)
			continue
		}
		if placed.x > r.x+geomTolerance {
			next = append(next, rect{x: r.x, y: r.y, w: placed.x - r.x, h: r.h})
		}
		if placed.x+placed.w < r.x+r.w-geomTolerance {
			next = append(next, rect{x: placed.x + placed.w, y: r.y, w: r.x + r.w - placed.x - placed.w, h: r.h})
		}
		if placed.y > r.y+geomTolerance {
			next = append(next, rect{x: r.x, y: r.y, w: r.w, h: placed.y - r.y})
		}
		if placed.y+placed.h < r.y+r.h-geomTolerance {
			next = append(next, rect{x: r.x, y: placed.y + placed.h, w: r.w, h: r.y + r.h - placed.y - placed.h})
		}
	}

	fp.freeRects = pruneContained(next)
}

func rectsOverlap(a, b rect) bool {
	return a.x < b.x+b.w-geomTolerance && a.x+a.w > b.x+geomTolerance &&
		a.y < b.y+b.h-geomTolerance && a.y+a.h > b.y+geomTolerance
}

// pruneContained removes rectangles fully inside another. Of two equal rectangles the first is kept.
func pruneContained(rects []rect) []rect {
	if len(rects) <= 1 {
		return rects
	}
	kept := make([]rect, 0, len(rects))
	for i, a := range rects {
		contained := false
		for j, b := range rects {
			if i == j || !containsRect(b, a) {
				continue
			}
			if containsRect(a, b) && j > i {
				continue
			}
			contained = true
			break
		}
		if !contained {
			kept = append(kept, a)
		}
	}
	return kept
}

func containsRect(outer, inner rect) bool {
	return outer.x <= inner.x+geomTolerance && outer.y <= inner.y+geomTolerance &&
		outer.x+outer.w >= inner.x+inner.w-geomTolerance &&
		outer.y+outer.h >= inner.y+inner.h-geomTolerance
}

// layerPattern fills a width x depth footprint with w x d rectangles and returns their corners
// in placement order. It stops after limit corners, so the work follows the requested
// quantity rather than the footprint area. Insertion is deterministic, so a capped pattern is
// a prefix of the full one.
func layerPattern(width, depth, w, d float64, limit int) []point {
	fp := newFootprintPacker(width, depth)
	corners := make([]point, 0, min(limit, 64))
	for len(corners) < limit {
		x, y, ok := fp.insert(w, d)
		if !ok {
			break
		}
		corners = append(corners, point{x: x, y: y})
	}
	return corners
}
