// Package emit converts resolved positions, group bounds and routed
// connectors into the ordered drawing-primitive sequence consumed by an
// external renderer.
package emit

import (
	"plait/diagram"
	"plait/routing"
)

// Emitter walks the resolved diagram in a fixed layering order: groups
// first (background), then connector paths, then nodes, then connector
// labels. Downstream renderers draw in sequence order, so this ordering is
// what keeps nodes visually above groups and connector lines.
type Emitter struct{}

// NewEmitter creates an emitter.
func NewEmitter() *Emitter {
	return &Emitter{}
}

// Emit appends one primitive per drawable element and returns the sequence.
// Elements without resolved geometry are simply absent; the upstream stages
// have already recorded warnings for them.
func (e *Emitter) Emit(g *diagram.Graph, positions map[string]diagram.Point, bounds map[string]diagram.Bounds, routed []routing.Routed) []diagram.Primitive {
	primitives := make([]diagram.Primitive, 0, len(g.Groups)+len(g.Nodes)+2*len(routed))

	for _, group := range g.Groups {
		b, ok := bounds[group.ID]
		if !ok {
			continue
		}
		primitives = append(primitives, diagram.ShapePrimitive(
			group.ID, diagram.Rectangle, b.Center(), diagram.Size{W: b.W, H: b.H}))
	}

	for _, rc := range routed {
		primitives = append(primitives, diagram.PathPrimitive(
			rc.Connector.ID, rc.Path, true, rc.ArrowAngle))
	}

	for _, node := range g.Nodes {
		pos, ok := positions[node.ID]
		if !ok {
			continue
		}
		kind := node.Kind
		if !kind.Valid() {
			kind = diagram.Rectangle
		}
		primitives = append(primitives, diagram.ShapePrimitive(
			node.ID, kind, pos, node.Size))
	}

	for _, rc := range routed {
		if rc.LabelAt == nil {
			continue
		}
		primitives = append(primitives, diagram.TextPrimitive(
			rc.Connector.ID, rc.Connector.Label, *rc.LabelAt, diagram.AnchorMiddle))
	}

	return primitives
}
