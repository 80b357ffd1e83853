package diagram

// PrimitiveKind tags the variant of a drawing primitive.
type PrimitiveKind int

const (
	PrimitiveShape PrimitiveKind = iota
	PrimitivePath
	PrimitiveText
)

// String returns the string representation of a PrimitiveKind.
func (k PrimitiveKind) String() string {
	switch k {
	case PrimitiveShape:
		return "shape"
	case PrimitivePath:
		return "path"
	case PrimitiveText:
		return "text"
	default:
		return "unknown"
	}
}

// TextAnchor describes how text is aligned relative to its position.
type TextAnchor int

const (
	AnchorStart TextAnchor = iota
	AnchorMiddle
	AnchorEnd
)

// Primitive is the smallest unit of drawing instruction consumed by an
// external renderer. It is a tagged variant: only the fields for its Kind
// are meaningful. The primitive sequence is the sole output contract of
// the pipeline.
type Primitive struct {
	Kind PrimitiveKind
	Ref  string // ID of the node, group or connector this primitive draws

	// PrimitiveShape
	Shape  ShapeKind
	Center Point
	Size   Size

	// PrimitivePath
	Points     []Point
	Arrow      bool
	ArrowAngle float64 // Radians, direction the arrowhead points

	// PrimitiveText
	Text   string
	At     Point
	Anchor TextAnchor
}

// ShapePrimitive builds a shape-at-position primitive.
func ShapePrimitive(ref string, kind ShapeKind, center Point, size Size) Primitive {
	return Primitive{Kind: PrimitiveShape, Ref: ref, Shape: kind, Center: center, Size: size}
}

// PathPrimitive builds a path-through-points primitive.
func PathPrimitive(ref string, points []Point, arrow bool, arrowAngle float64) Primitive {
	return Primitive{Kind: PrimitivePath, Ref: ref, Points: points, Arrow: arrow, ArrowAngle: arrowAngle}
}

// TextPrimitive builds a text-at-position primitive.
func TextPrimitive(ref, text string, at Point, anchor TextAnchor) Primitive {
	return Primitive{Kind: PrimitiveText, Ref: ref, Text: text, At: at, Anchor: anchor}
}
