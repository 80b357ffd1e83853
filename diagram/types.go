// Package diagram contains the fundamental types shared by every stage of
// the layout pipeline: the input graph (nodes, groups, connectors), the
// geometric value types, and the drawing-primitive output contract.
package diagram

// Point represents a 2D coordinate.
type Point struct {
	X, Y float64
}

// Size represents the nominal width and height of a shape.
type Size struct {
	W, H float64
}

// Bounds represents an axis-aligned rectangle anchored at its min corner.
type Bounds struct {
	Min  Point
	W, H float64
}

// BoundsAround returns the bounds of a shape of the given size centered at c.
func BoundsAround(c Point, s Size) Bounds {
	return Bounds{
		Min: Point{X: c.X - s.W/2, Y: c.Y - s.H/2},
		W:   s.W,
		H:   s.H,
	}
}

// Max returns the corner opposite Min.
func (b Bounds) Max() Point {
	return Point{X: b.Min.X + b.W, Y: b.Min.Y + b.H}
}

// Center returns the center point of the bounds.
func (b Bounds) Center() Point {
	return Point{X: b.Min.X + b.W/2, Y: b.Min.Y + b.H/2}
}

// Contains checks if a point is within the bounds.
func (b Bounds) Contains(p Point) bool {
	return p.X >= b.Min.X && p.X <= b.Min.X+b.W &&
		p.Y >= b.Min.Y && p.Y <= b.Min.Y+b.H
}

// ContainsBounds checks if o lies entirely within b.
func (b Bounds) ContainsBounds(o Bounds) bool {
	return b.Contains(o.Min) && b.Contains(o.Max())
}

// Union returns the smallest bounds containing both b and o.
func (b Bounds) Union(o Bounds) Bounds {
	minX := b.Min.X
	if o.Min.X < minX {
		minX = o.Min.X
	}
	minY := b.Min.Y
	if o.Min.Y < minY {
		minY = o.Min.Y
	}
	maxX := b.Max().X
	if o.Max().X > maxX {
		maxX = o.Max().X
	}
	maxY := b.Max().Y
	if o.Max().Y > maxY {
		maxY = o.Max().Y
	}
	return Bounds{Min: Point{X: minX, Y: minY}, W: maxX - minX, H: maxY - minY}
}

// Expand grows the bounds by margin on every side.
func (b Bounds) Expand(margin float64) Bounds {
	return Bounds{
		Min: Point{X: b.Min.X - margin, Y: b.Min.Y - margin},
		W:   b.W + 2*margin,
		H:   b.H + 2*margin,
	}
}

// ShapeKind identifies the outline used for a node's boundary math.
type ShapeKind int

const (
	Rectangle ShapeKind = iota
	RoundedRect
	Circle
	DoubleCircle
	Diamond
	Polygon
	ThinBar
	Ellipse
)

// String returns the string representation of a ShapeKind.
func (k ShapeKind) String() string {
	switch k {
	case Rectangle:
		return "rectangle"
	case RoundedRect:
		return "rounded-rectangle"
	case Circle:
		return "circle"
	case DoubleCircle:
		return "double-circle"
	case Diamond:
		return "diamond"
	case Polygon:
		return "polygon"
	case ThinBar:
		return "thin-bar"
	case Ellipse:
		return "ellipse"
	default:
		return "unknown"
	}
}

// Valid reports whether k is one of the defined shape kinds.
func (k ShapeKind) Valid() bool {
	return k >= Rectangle && k <= Ellipse
}

// Node represents a single shape in the diagram.
type Node struct {
	ID     string    `json:"id"`
	Kind   ShapeKind `json:"kind"`
	Size   Size      `json:"size"`
	Parent string    `json:"parent,omitempty"` // Owning group ID, if any
	Pos    *Point    `json:"pos,omitempty"`    // Pre-assigned center, if the model chose one
}

// BoundsAt returns the node's bounds when centered at the given point.
func (n Node) BoundsAt(center Point) Bounds {
	return BoundsAround(center, n.Size)
}

// Group represents a container (boundary, zone, swimlane, composite state).
// Members may name nodes or nested groups. Bounds are always computed from
// member positions, never authored.
type Group struct {
	ID      string   `json:"id"`
	Members []string `json:"members"`
}

// Connector represents a directed edge between two nodes.
type Connector struct {
	ID     string  `json:"id"`
	From   string  `json:"from"`
	To     string  `json:"to"`
	Points []Point `json:"points,omitempty"` // Control points supplied by an external layout engine
	Label  string  `json:"label,omitempty"`
}

// Graph is the immutable input to one pipeline run.
type Graph struct {
	Nodes      []Node      `json:"nodes"`
	Groups     []Group     `json:"groups,omitempty"`
	Connectors []Connector `json:"connectors,omitempty"`
}

// Index provides O(1) lookup of nodes and groups by ID.
// Built once per run and shared by every stage.
type Index struct {
	Nodes  map[string]*Node
	Groups map[string]*Group
}

// BuildIndex constructs the ID index for the graph. Duplicate IDs are a
// caller contract violation; later entries win.
func (g *Graph) BuildIndex() *Index {
	idx := &Index{
		Nodes:  make(map[string]*Node, len(g.Nodes)),
		Groups: make(map[string]*Group, len(g.Groups)),
	}
	for i := range g.Nodes {
		idx.Nodes[g.Nodes[i].ID] = &g.Nodes[i]
	}
	for i := range g.Groups {
		idx.Groups[g.Groups[i].ID] = &g.Groups[i]
	}
	return idx
}
