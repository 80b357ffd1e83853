package layout

import (
	"log/slog"

	"plait/diagram"
)

// External is the output of an external graph-layout adapter: a center
// position for every node, plus optional per-connector control points
// keyed by connector ID.
type External struct {
	Positions map[string]diagram.Point
	Routes    map[string][]diagram.Point
}

// Adapter delegates node positioning to an external graph-layout engine.
// An adapter that cannot position the whole graph returns an error; the
// resolver treats any error, and any result missing a node, as an
// incomplete layout and falls back to the grid strategy.
type Adapter interface {
	Layout(nodes []diagram.Node, connectors []diagram.Connector) (External, error)
	Name() string
}

// Result carries the resolved positions for one pipeline run. Once
// produced it is treated as read-only by all later stages.
type Result struct {
	Positions map[string]diagram.Point
	Routes    map[string][]diagram.Point
	Strategy  diagram.Strategy // Strategy that actually produced the positions
	Warnings  []diagram.Warning
}

// Resolver assigns a position to every node, honoring the configured
// strategy and falling back to the grid when the external adapter comes
// up short.
type Resolver struct {
	config  diagram.Config
	adapter Adapter
	grid    *Grid
}

// NewResolver creates a resolver. The adapter may be nil, in which case
// the external strategy degrades to the grid.
func NewResolver(cfg diagram.Config, adapter Adapter) *Resolver {
	return &Resolver{
		config:  cfg,
		adapter: adapter,
		grid:    NewGrid(cfg),
	}
}

// Resolve produces a position for every node in the graph.
//
// With the external strategy, the adapter's output is accepted only when it
// covers every node. A partial result is discarded wholesale — including its
// connector routes — and the grid positions the entire graph, so external
// and grid coordinates are never mixed.
func (r *Resolver) Resolve(g *diagram.Graph) Result {
	res := Result{Strategy: diagram.StrategyGrid}

	if r.config.Strategy == diagram.StrategyExternal {
		if ext, ok := r.tryExternal(g, &res); ok {
			res.Positions = ext.Positions
			res.Routes = ext.Routes
			res.Strategy = diagram.StrategyExternal
			return res
		}
	}

	res.Positions = r.grid.Layout(g.Nodes)
	return res
}

// tryExternal invokes the adapter and validates completeness. Failures get
// recorded on the result as an informational warning.
func (r *Resolver) tryExternal(g *diagram.Graph, res *Result) (External, bool) {
	if r.adapter == nil {
		res.Warnings = append(res.Warnings, diagram.Warningf(
			diagram.WarnIncompleteExternalLayout, "",
			"external strategy configured without an adapter, using grid"))
		return External{}, false
	}

	ext, err := r.adapter.Layout(g.Nodes, g.Connectors)
	if err != nil {
		slog.Info("external layout failed, falling back to grid",
			"adapter", r.adapter.Name(), "error", err)
		res.Warnings = append(res.Warnings, diagram.Warningf(
			diagram.WarnIncompleteExternalLayout, "",
			"adapter %s failed: %v", r.adapter.Name(), err))
		return External{}, false
	}

	for _, n := range g.Nodes {
		if _, ok := ext.Positions[n.ID]; !ok {
			slog.Info("external layout incomplete, falling back to grid",
				"adapter", r.adapter.Name(), "missing", n.ID)
			res.Warnings = append(res.Warnings, diagram.Warningf(
				diagram.WarnIncompleteExternalLayout, n.ID,
				"adapter %s returned no position for node %s", r.adapter.Name(), n.ID))
			return External{}, false
		}
	}
	return ext, true
}
