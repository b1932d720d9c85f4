package hotspot

import "github.com/google/uuid"

// Area is one clickable rectangle overlaid on a rendered drawing.
// Coordinates are in drawing pixel space and may be fractional.
// The slice order of areas is the authoring order and is significant:
// authoring tools place higher-priority hotspots first.
type Area struct {
	X           float64   `json:"x"`
	Y           float64   `json:"y"`
	Width       float64   `json:"width"`
	Height      float64   `json:"height"`
	ComponentId uuid.UUID `json:"component_id"`
}

// Contains reports whether the point lies inside the rectangle.
// All four edges are inclusive.
func (a Area) Contains(x, y float64) bool {
	return x >= a.X && x <= a.X+a.Width &&
		y >= a.Y && y <= a.Y+a.Height
}

// Resolve returns the component id of the first area in stored order that
// contains the point. When rectangles overlap, first-in-order wins.
// The second return is false when no area contains the point.
func Resolve(areas []Area, x, y float64) (uuid.UUID, bool) {
	for _, a := range areas {
		if a.Contains(x, y) {
			return a.ComponentId, true
		}
	}
	return uuid.Nil, false
}

// DistinctComponentIds returns the component ids referenced by the areas,
// deduplicated with order preserved. Areas without a component id are
// skipped.
func DistinctComponentIds(areas []Area) []uuid.UUID {
	seen := make(map[uuid.UUID]struct{}, len(areas))
	ids := make([]uuid.UUID, 0, len(areas))
	for _, a := range areas {
		if a.ComponentId == uuid.Nil {
			continue
		}
		if _, ok := seen[a.ComponentId]; ok {
			continue
		}
		seen[a.ComponentId] = struct{}{}
		ids = append(ids, a.ComponentId)
	}
	return ids
}
