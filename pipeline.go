// Package plait turns a diagram graph — nodes, connectors and nested
// groups — into a finished layout: a position for every node, a bounding
// box for every group, and an anchor-to-anchor path for every connector,
// delivered as an ordered sequence of drawing primitives for an external
// renderer.
package plait

import (
	"fmt"
	"log/slog"

	"plait/diagram"
	"plait/emit"
	"plait/groups"
	"plait/layout"
	"plait/routing"
)

// Pipeline runs the four layout stages in sequence: position resolution,
// group containment, connector routing, and primitive emission. A pipeline
// is cheap to construct and safe to reuse across render requests; each run
// computes everything fresh and shares nothing with previous runs.
type Pipeline struct {
	config   diagram.Config
	resolver *layout.Resolver
	calc     *groups.Calculator
	router   *routing.Router
	emitter  *emit.Emitter
}

// New creates a pipeline for the given configuration. The adapter may be
// nil; the external strategy then degrades to the grid with a warning.
func New(cfg diagram.Config, adapter layout.Adapter) *Pipeline {
	return &Pipeline{
		config:   cfg,
		resolver: layout.NewResolver(cfg, adapter),
		calc:     groups.NewCalculator(cfg.Padding),
		router:   routing.NewRouter(),
		emitter:  emit.NewEmitter(),
	}
}

// Default creates a pipeline with the default configuration and no
// external adapter.
func Default() *Pipeline {
	return New(diagram.DefaultConfig(), nil)
}

// Result is the complete output of one pipeline run.
type Result struct {
	// Primitives is the ordered drawing sequence: groups, then connector
	// paths, then nodes, then connector labels.
	Primitives []diagram.Primitive
	// Positions maps every node ID to its resolved center.
	Positions map[string]diagram.Point
	// GroupBounds maps every group ID to its computed bounds.
	GroupBounds map[string]diagram.Bounds
	// Strategy is the layout strategy that actually produced the positions.
	Strategy diagram.Strategy
	// Warnings lists every non-fatal condition encountered. A run never
	// fails because of them.
	Warnings []diagram.Warning
}

// Run lays out the graph end to end. The graph is treated as immutable for
// the duration of the run. The only error is a nil graph; every condition
// arising from graph content is reported through Result.Warnings instead.
func (p *Pipeline) Run(g *diagram.Graph) (*Result, error) {
	if g == nil {
		return nil, fmt.Errorf("nil graph")
	}

	idx := g.BuildIndex()

	resolved := p.resolver.Resolve(g)
	bounds := p.calc.Bounds(g, idx, resolved.Positions)
	routed, routeWarnings := p.router.Route(g, idx, resolved.Positions, resolved.Routes)
	primitives := p.emitter.Emit(g, resolved.Positions, bounds, routed)

	warnings := append(resolved.Warnings, routeWarnings...)
	if len(warnings) > 0 {
		slog.Debug("pipeline finished with warnings",
			"nodes", len(g.Nodes), "warnings", len(warnings))
	}

	return &Result{
		Primitives:  primitives,
		Positions:   resolved.Positions,
		GroupBounds: bounds,
		Strategy:    resolved.Strategy,
		Warnings:    warnings,
	}, nil
}
