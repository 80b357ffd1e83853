package layout

import (
	"fmt"

	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"plait/diagram"
)

// LayeredAdapter is a bundled Adapter that arranges acyclic graphs into
// columns by longest path from a root, one column per layer. Edges that
// span more than one layer get control points through the intermediate
// columns. Cyclic graphs are reported as incomplete rather than force-fit,
// which sends the resolver to the grid strategy.
type LayeredAdapter struct {
	hSpacing float64
	vSpacing float64
}

// NewLayeredAdapter creates a layered adapter with the given spacing
// between columns and between nodes within a column.
func NewLayeredAdapter(hSpacing, vSpacing float64) *LayeredAdapter {
	return &LayeredAdapter{hSpacing: hSpacing, vSpacing: vSpacing}
}

// Layout positions every node, or returns an error when the connector
// graph contains a cycle.
func (l *LayeredAdapter) Layout(nodes []diagram.Node, connectors []diagram.Connector) (External, error) {
	ext := External{
		Positions: make(map[string]diagram.Point, len(nodes)),
		Routes:    make(map[string][]diagram.Point),
	}
	if len(nodes) == 0 {
		return ext, nil
	}

	g := simple.NewDirectedGraph()
	idOf := make(map[string]int64, len(nodes))
	nameOf := make(map[int64]string, len(nodes))
	for i, n := range nodes {
		id := int64(i)
		idOf[n.ID] = id
		nameOf[id] = n.ID
		g.AddNode(simple.Node(id))
	}
	for _, c := range connectors {
		from, okFrom := idOf[c.From]
		to, okTo := idOf[c.To]
		// Self-loops and dangling endpoints carry no layering information.
		if !okFrom || !okTo || from == to {
			continue
		}
		if g.HasEdgeFromTo(from, to) {
			continue
		}
		g.SetEdge(simple.Edge{F: simple.Node(from), T: simple.Node(to)})
	}

	order, err := topo.SortStabilized(g, nil)
	if err != nil {
		return External{}, fmt.Errorf("layered layout: %w", err)
	}

	// Longest-path layering: each node sits one layer past its deepest
	// predecessor. Roots land in layer 0.
	layerOf := make(map[int64]int, len(order))
	var layers [][]string
	for _, n := range order {
		layer := 0
		for it := g.To(n.ID()); it.Next(); {
			if pl := layerOf[it.Node().ID()]; pl+1 > layer {
				layer = pl + 1
			}
		}
		layerOf[n.ID()] = layer
		for len(layers) <= layer {
			layers = append(layers, nil)
		}
		layers[layer] = append(layers[layer], nameOf[n.ID()])
	}

	var cellW, cellH float64
	for _, n := range nodes {
		if n.Size.W > cellW {
			cellW = n.Size.W
		}
		if n.Size.H > cellH {
			cellH = n.Size.H
		}
	}
	cellW += l.hSpacing
	cellH += l.vSpacing

	for layer, ids := range layers {
		for row, id := range ids {
			ext.Positions[id] = diagram.Point{
				X: float64(layer)*cellW + cellW/2,
				Y: float64(row)*cellH + cellH/2,
			}
		}
	}

	// Bend long edges through the columns they cross so they do not cut
	// straight through intervening layers.
	for _, c := range connectors {
		from, okFrom := ext.Positions[c.From]
		to, okTo := ext.Positions[c.To]
		if !okFrom || !okTo || c.From == c.To {
			continue
		}
		span := layerOf[idOf[c.To]] - layerOf[idOf[c.From]]
		if span <= 1 && span >= -1 {
			continue
		}
		step := 1
		if span < 0 {
			step = -1
			span = -span
		}
		points := []diagram.Point{from}
		for i := 1; i < span; i++ {
			layer := layerOf[idOf[c.From]] + i*step
			frac := float64(i) / float64(span)
			points = append(points, diagram.Point{
				X: float64(layer)*cellW + cellW/2,
				Y: from.Y + (to.Y-from.Y)*frac,
			})
		}
		points = append(points, to)
		ext.Routes[c.ID] = points
	}

	return ext, nil
}

// Name returns the name of this adapter.
func (l *LayeredAdapter) Name() string {
	return "layered"
}
