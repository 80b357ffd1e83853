// Package groups computes bounding boxes for diagram groups (boundaries,
// zones, swimlanes, composite containers) from resolved member positions.
// Groups may nest; bounds are computed bottom-up so a parent always wraps
// its children.
package groups

import (
	"plait/diagram"
)

// Default box used for a group whose members cannot be resolved. A fixed
// box beats an empty or NaN one downstream.
var (
	DefaultSize   = diagram.Size{W: 120, H: 80}
	DefaultAnchor = diagram.Point{X: 0, Y: 0}
)

// Calculator derives a bounding rectangle for every group from member node
// bounds, expanded by the configured padding margin.
type Calculator struct {
	padding float64
}

// NewCalculator creates a calculator with the given padding margin.
func NewCalculator(padding float64) *Calculator {
	return &Calculator{padding: padding}
}

// Bounds computes bounds for every group in the graph. Leaf groups are
// resolved first from their member node bounds; parents then take the
// union of child-group bounds and directly owned node bounds. Positions
// are node centers and are never modified.
func (c *Calculator) Bounds(g *diagram.Graph, idx *diagram.Index, positions map[string]diagram.Point) map[string]diagram.Bounds {
	result := make(map[string]diagram.Bounds, len(g.Groups))
	visiting := make(map[string]bool, len(g.Groups))
	for i := range g.Groups {
		c.resolve(&g.Groups[i], idx, positions, result, visiting)
	}
	return result
}

// resolve computes one group's bounds, recursing into nested groups first.
// A membership cycle is a caller contract violation; the in-progress marker
// breaks the recursion so the pipeline still terminates.
func (c *Calculator) resolve(group *diagram.Group, idx *diagram.Index, positions map[string]diagram.Point, result map[string]diagram.Bounds, visiting map[string]bool) diagram.Bounds {
	if b, done := result[group.ID]; done {
		return b
	}
	visiting[group.ID] = true
	defer delete(visiting, group.ID)

	var union diagram.Bounds
	have := false
	add := func(b diagram.Bounds) {
		if !have {
			union = b
			have = true
			return
		}
		union = union.Union(b)
	}

	for _, member := range group.Members {
		if node, ok := idx.Nodes[member]; ok {
			if pos, placed := positions[node.ID]; placed {
				add(node.BoundsAt(pos))
			}
			continue
		}
		if child, ok := idx.Groups[member]; ok && !visiting[child.ID] {
			add(c.resolve(child, idx, positions, result, visiting))
		}
	}

	var b diagram.Bounds
	if !have {
		b = diagram.BoundsAround(DefaultAnchor, DefaultSize)
	} else {
		b = union.Expand(c.padding)
	}
	result[group.ID] = b
	return b
}
