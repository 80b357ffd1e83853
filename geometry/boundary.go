// Package geometry provides shape-aware boundary intersection math.
//
// The single entry point, Perimeter, answers the question every connector
// needs answered: given a shape and the center of the shape it connects to,
// where on the shape's outline does the connecting ray leave it.
package geometry

import (
	"math"

	"plait/diagram"
)

// Epsilon below which a direction vector is considered degenerate.
const Epsilon = 1e-9

// Perimeter returns the point where the ray from center toward the other
// point crosses the boundary of a shape of the given kind and size.
//
// When the two points coincide (or nearly so) the direction is undefined
// and the center is returned unchanged. Unrecognized shape kinds fall back
// to the rectangle case using the nominal size.
func Perimeter(kind diagram.ShapeKind, center diagram.Point, size diagram.Size, toward diagram.Point) diagram.Point {
	dx := toward.X - center.X
	dy := toward.Y - center.Y
	if math.Hypot(dx, dy) < Epsilon {
		return center
	}
	angle := math.Atan2(dy, dx)

	switch kind {
	case diagram.Circle, diagram.DoubleCircle:
		r := math.Min(size.W, size.H) / 2
		return diagram.Point{
			X: center.X + r*math.Cos(angle),
			Y: center.Y + r*math.Sin(angle),
		}
	case diagram.Ellipse:
		// Evaluates the parametric form at the ray angle. For non-circular
		// ellipses this is not the exact ray intersection; the returned
		// point is on the ellipse but slightly off the ray. Callers accept
		// this as a documented limitation.
		return diagram.Point{
			X: center.X + size.W/2*math.Cos(angle),
			Y: center.Y + size.H/2*math.Sin(angle),
		}
	case diagram.Diamond:
		return diamondPerimeter(center, size, angle)
	default:
		// Rectangle, rounded rectangle, thin bar, and polygons approximated
		// by their bounding rectangle all share the rectangle intersection.
		return rectPerimeter(center, size, angle)
	}
}

// diamondPerimeter intersects the ray with a diamond whose vertices sit at
// (±halfW, 0) and (0, ±halfH) relative to the center. Every boundary point
// satisfies |x|/halfW + |y|/halfH = 1, so the ray parameter follows directly
// from the angle.
func diamondPerimeter(center diagram.Point, size diagram.Size, angle float64) diagram.Point {
	sin, cos := math.Sincos(angle)
	halfW := size.W / 2
	halfH := size.H / 2
	if halfW < Epsilon || halfH < Epsilon {
		return center
	}
	t := 1 / (math.Abs(cos)/halfW + math.Abs(sin)/halfH)
	return diagram.Point{X: center.X + t*cos, Y: center.Y + t*sin}
}

// rectPerimeter intersects the ray with an axis-aligned rectangle. The
// crossed side is picked by comparing |cos|·halfH against |sin|·halfW.
func rectPerimeter(center diagram.Point, size diagram.Size, angle float64) diagram.Point {
	sin, cos := math.Sincos(angle)
	halfW := size.W / 2
	halfH := size.H / 2

	var t float64
	if math.Abs(cos)*halfH >= math.Abs(sin)*halfW {
		// Crosses a left or right side.
		if math.Abs(cos) < Epsilon {
			return center
		}
		t = halfW / math.Abs(cos)
	} else {
		// Crosses the top or bottom side.
		if math.Abs(sin) < Epsilon {
			return center
		}
		t = halfH / math.Abs(sin)
	}
	return diagram.Point{X: center.X + t*cos, Y: center.Y + t*sin}
}

// Angle returns the direction angle in radians of the ray from a to b.
func Angle(a, b diagram.Point) float64 {
	return math.Atan2(b.Y-a.Y, b.X-a.X)
}

// Distance returns the Euclidean distance between two points.
func Distance(a, b diagram.Point) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// Midpoint returns the point halfway between a and b.
func Midpoint(a, b diagram.Point) diagram.Point {
	return diagram.Point{X: (a.X + b.X) / 2, Y: (a.Y + b.Y) / 2}
}

// PerpendicularOffset shifts p away from the segment a→b by the given
// distance, perpendicular to the segment direction. Degenerate segments
// leave p unchanged.
func PerpendicularOffset(p, a, b diagram.Point, distance float64) diagram.Point {
	dx := b.X - a.X
	dy := b.Y - a.Y
	length := math.Hypot(dx, dy)
	if length < Epsilon {
		return p
	}
	return diagram.Point{
		X: p.X - dy/length*distance,
		Y: p.Y + dx/length*distance,
	}
}
