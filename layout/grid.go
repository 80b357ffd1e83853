// Package layout assigns a position to every node in a diagram graph,
// either via the deterministic grid strategy or by delegating to an
// external graph-layout adapter with grid fallback.
package layout

import (
	"math"

	"plait/diagram"
)

// Grid is the default layout strategy. It places nodes into a near-square
// grid of uniform cells sized to the largest node plus the configured
// spacing. It is pure: identical input always yields identical output.
type Grid struct {
	spacing   float64
	direction diagram.Direction
}

// NewGrid creates the grid strategy from a configuration record.
func NewGrid(cfg diagram.Config) *Grid {
	return &Grid{spacing: cfg.Spacing, direction: cfg.Direction}
}

// Layout returns a center position for every node. Node order is the
// externally supplied stable ordering: nodes are placed in slice order.
// Nodes with a pre-assigned position keep it verbatim and do not consume
// a grid cell.
func (g *Grid) Layout(nodes []diagram.Node) map[string]diagram.Point {
	positions := make(map[string]diagram.Point, len(nodes))

	// Uniform cell size over all nodes keeps spacing consistent.
	var cellW, cellH float64
	for _, n := range nodes {
		if n.Size.W > cellW {
			cellW = n.Size.W
		}
		if n.Size.H > cellH {
			cellH = n.Size.H
		}
	}
	cellW += g.spacing
	cellH += g.spacing

	unplaced := make([]diagram.Node, 0, len(nodes))
	for _, n := range nodes {
		if n.Pos != nil {
			positions[n.ID] = *n.Pos
			continue
		}
		unplaced = append(unplaced, n)
	}
	if len(unplaced) == 0 {
		return positions
	}

	rows := int(math.Ceil(math.Sqrt(float64(len(unplaced)))))
	cols := (len(unplaced) + rows - 1) / rows

	for i, n := range unplaced {
		col := i % cols
		row := i / cols
		x := float64(col)*cellW + cellW/2
		y := float64(row)*cellH + cellH/2
		if g.direction == diagram.DirectionDown {
			x, y = y, x
		}
		positions[n.ID] = diagram.Point{X: x, Y: y}
	}
	return positions
}

// Name returns the name of this layout strategy.
func (g *Grid) Name() string {
	return "grid"
}
