// Package routing computes, for each connector, the boundary anchor point
// on each endpoint shape, the rendered path, and the label anchor. It is
// the only consumer of the geometry package's boundary math.
package routing

import (
	"math"

	"plait/diagram"
	"plait/geometry"
)

// Routed is one connector resolved to a drawable path.
type Routed struct {
	Connector  diagram.Connector
	Path       []diagram.Point
	ArrowAngle float64        // Radians, direction of travel at the path's end
	LabelAt    *diagram.Point // Set only when the connector has a label
}

// Router resolves connectors against a read-only position map.
type Router struct {
	labelOffset float64 // Perpendicular distance from path to label anchor
	loopWidth   float64 // Horizontal reach of a self-loop detour
	loopHeight  float64 // Vertical extent of a self-loop detour
}

// NewRouter creates a router with default label and self-loop geometry.
func NewRouter() *Router {
	return &Router{
		labelOffset: 12,
		loopWidth:   30,
		loopHeight:  24,
	}
}

// Route resolves every connector in the graph. Connectors whose endpoints
// are missing from the position map are skipped with a warning; unknown
// endpoint shape kinds are routed as rectangles with a warning. Neither
// condition stops the remaining connectors from being processed.
func (r *Router) Route(g *diagram.Graph, idx *diagram.Index, positions map[string]diagram.Point, routes map[string][]diagram.Point) ([]Routed, []diagram.Warning) {
	routed := make([]Routed, 0, len(g.Connectors))
	var warnings []diagram.Warning
	warnedShape := make(map[string]bool)

	for _, conn := range g.Connectors {
		from, okFrom := positions[conn.From]
		to, okTo := positions[conn.To]
		if !okFrom || !okTo {
			missing := conn.From
			if okFrom {
				missing = conn.To
			}
			warnings = append(warnings, diagram.Warningf(
				diagram.WarnMissingEndpoint, conn.ID,
				"connector %s references unresolved node %s", conn.ID, missing))
			continue
		}

		fromNode := idx.Nodes[conn.From]
		toNode := idx.Nodes[conn.To]
		for _, n := range []*diagram.Node{fromNode, toNode} {
			if n != nil && !n.Kind.Valid() && !warnedShape[n.ID] {
				warnedShape[n.ID] = true
				warnings = append(warnings, diagram.Warningf(
					diagram.WarnUnknownShape, n.ID,
					"node %s has unknown shape kind %d, treating as rectangle", n.ID, int(n.Kind)))
			}
		}

		var rc Routed
		switch {
		case conn.From == conn.To:
			rc = r.selfLoop(conn, fromNode, from)
		case len(routes[conn.ID]) >= 2:
			rc = r.polyline(conn, routes[conn.ID])
		default:
			rc = r.straight(conn, fromNode, toNode, from, to)
		}
		routed = append(routed, rc)
	}

	return routed, warnings
}

// straight routes a connector as a single segment between the two boundary
// anchors, each computed toward the other endpoint's center.
func (r *Router) straight(conn diagram.Connector, fromNode, toNode *diagram.Node, from, to diagram.Point) Routed {
	start := anchorOn(fromNode, from, to)
	end := anchorOn(toNode, to, from)

	rc := Routed{
		Connector:  conn,
		Path:       []diagram.Point{start, end},
		ArrowAngle: geometry.Angle(start, end),
	}
	if conn.Label != "" {
		at := geometry.PerpendicularOffset(geometry.Midpoint(start, end), start, end, r.labelOffset)
		rc.LabelAt = &at
	}
	return rc
}

// polyline routes a connector through adapter-supplied control points. The
// arrowhead angle follows the final segment; the label sits at the middle
// control point.
func (r *Router) polyline(conn diagram.Connector, points []diagram.Point) Routed {
	path := make([]diagram.Point, len(points))
	copy(path, points)

	last := path[len(path)-1]
	prev := path[len(path)-2]
	rc := Routed{
		Connector:  conn,
		Path:       path,
		ArrowAngle: geometry.Angle(prev, last),
	}
	if conn.Label != "" {
		mid := len(path) / 2
		before := path[mid-1]
		at := geometry.PerpendicularOffset(path[mid], before, path[mid], r.labelOffset)
		rc.LabelAt = &at
	}
	return rc
}

// selfLoop routes a connector whose endpoints coincide. Direction is
// undefined at a shared center, so instead of consulting the boundary math
// it emits a fixed rectangular detour anchored at the node's right edge.
func (r *Router) selfLoop(conn diagram.Connector, node *diagram.Node, center diagram.Point) Routed {
	halfW := 0.0
	if node != nil {
		halfW = node.Size.W / 2
	}
	edgeX := center.X + halfW
	top := center.Y - r.loopHeight/2
	bottom := center.Y + r.loopHeight/2

	path := []diagram.Point{
		{X: edgeX, Y: top},
		{X: edgeX + r.loopWidth, Y: top},
		{X: edgeX + r.loopWidth, Y: bottom},
		{X: edgeX, Y: bottom},
	}

	rc := Routed{
		Connector:  conn,
		Path:       path,
		ArrowAngle: math.Pi, // Final segment re-enters the node leftward
	}
	if conn.Label != "" {
		at := diagram.Point{X: edgeX + r.loopWidth + r.labelOffset, Y: center.Y}
		rc.LabelAt = &at
	}
	return rc
}

// anchorOn finds the boundary anchor for a node centered at from, facing
// toward the opposite endpoint. A connector endpoint that resolved to a
// position but not to a node is anchored at the bare position.
func anchorOn(node *diagram.Node, from, toward diagram.Point) diagram.Point {
	if node == nil {
		return from
	}
	return geometry.Perimeter(node.Kind, from, node.Size, toward)
}
