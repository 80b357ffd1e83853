package plait

import (
	"testing"

	"plait/diagram"
	"plait/layout"
)

// TestPipeline_EndToEnd runs the full documented scenario: four nodes of
// mixed shapes, one group with padding, three node-to-node connectors and
// one self-loop.
func TestPipeline_EndToEnd(t *testing.T) {
	g := &diagram.Graph{
		Nodes: []diagram.Node{
			{ID: "A", Kind: diagram.Circle, Size: diagram.Size{W: 20, H: 20}},
			{ID: "B", Kind: diagram.Rectangle, Size: diagram.Size{W: 100, H: 60}},
			{ID: "C", Kind: diagram.Diamond, Size: diagram.Size{W: 40, H: 40}},
			{ID: "D", Kind: diagram.Rectangle, Size: diagram.Size{W: 80, H: 50}},
		},
		Groups: []diagram.Group{
			{ID: "G", Members: []string{"A", "B"}},
		},
		Connectors: []diagram.Connector{
			{ID: "ab", From: "A", To: "B"},
			{ID: "bc", From: "B", To: "C"},
			{ID: "cd", From: "C", To: "D"},
			{ID: "cc", From: "C", To: "C"},
		},
	}

	cfg := diagram.DefaultConfig()
	cfg.Padding = 20
	result, err := New(cfg, nil).Run(g)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}

	if len(result.Warnings) != 0 {
		t.Errorf("expected zero warnings, got %v", result.Warnings)
	}

	var groupPrims, nodePrims, pathPrims int
	for _, prim := range result.Primitives {
		switch prim.Kind {
		case diagram.PrimitiveShape:
			if prim.Ref == "G" {
				groupPrims++
			} else {
				nodePrims++
			}
		case diagram.PrimitivePath:
			pathPrims++
		}
	}
	if groupPrims != 1 {
		t.Errorf("expected 1 group primitive, got %d", groupPrims)
	}
	if nodePrims != 4 {
		t.Errorf("expected 4 node primitives, got %d", nodePrims)
	}
	if pathPrims != 4 {
		t.Errorf("expected 4 connector path primitives, got %d", pathPrims)
	}

	// The group box contains both members' shapes plus the padding.
	gb, ok := result.GroupBounds["G"]
	if !ok {
		t.Fatal("no bounds for group G")
	}
	idx := g.BuildIndex()
	for _, id := range []string{"A", "B"} {
		nb := idx.Nodes[id].BoundsAt(result.Positions[id])
		if !gb.ContainsBounds(nb) {
			t.Errorf("group %+v does not contain member %s %+v", gb, id, nb)
		}
	}
	// Padding is really applied: the box clears A's circle by 20 on the left.
	aLeft := result.Positions["A"].X - 10
	if got := aLeft - gb.Min.X; got < 20-1e-9 {
		t.Errorf("left padding %v, want at least 20", got)
	}

	// The self-loop path is non-degenerate.
	for _, prim := range result.Primitives {
		if prim.Kind != diagram.PrimitivePath || prim.Ref != "cc" {
			continue
		}
		distinct := make(map[diagram.Point]bool)
		for _, p := range prim.Points {
			distinct[p] = true
		}
		if len(distinct) < 3 {
			t.Errorf("self-loop has %d distinct points, want at least 3", len(distinct))
		}
	}

	// Grid determinism end to end: a second run reproduces every position.
	again, err := New(cfg, nil).Run(g)
	if err != nil {
		t.Fatalf("second run failed: %v", err)
	}
	for id, p := range result.Positions {
		if again.Positions[id] != p {
			t.Errorf("node %s moved between runs", id)
		}
	}
}

func TestPipeline_NilGraph(t *testing.T) {
	if _, err := Default().Run(nil); err == nil {
		t.Fatal("expected an error for a nil graph")
	}
}

func TestPipeline_ExternalAdapterEndToEnd(t *testing.T) {
	cfg := diagram.DefaultConfig()
	cfg.Strategy = diagram.StrategyExternal

	g := &diagram.Graph{
		Nodes: []diagram.Node{
			{ID: "a", Kind: diagram.Rectangle, Size: diagram.Size{W: 60, H: 30}},
			{ID: "b", Kind: diagram.Rectangle, Size: diagram.Size{W: 60, H: 30}},
			{ID: "c", Kind: diagram.Rectangle, Size: diagram.Size{W: 60, H: 30}},
		},
		Connectors: []diagram.Connector{
			{ID: "ab", From: "a", To: "b"},
			{ID: "bc", From: "b", To: "c"},
		},
	}

	result, err := New(cfg, layout.NewLayeredAdapter(cfg.Spacing, cfg.Spacing)).Run(g)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if result.Strategy != diagram.StrategyExternal {
		t.Errorf("strategy = %s, want external", result.Strategy)
	}
	if len(result.Warnings) != 0 {
		t.Errorf("unexpected warnings: %v", result.Warnings)
	}

	// Cycles push the adapter into incompleteness and the run onto the grid.
	g.Connectors = append(g.Connectors, diagram.Connector{ID: "ca", From: "c", To: "a"})
	result, err = New(cfg, layout.NewLayeredAdapter(cfg.Spacing, cfg.Spacing)).Run(g)
	if err != nil {
		t.Fatalf("pipeline failed: %v", err)
	}
	if result.Strategy != diagram.StrategyGrid {
		t.Errorf("strategy = %s, want grid fallback", result.Strategy)
	}
	if len(result.Warnings) != 1 || result.Warnings[0].Kind != diagram.WarnIncompleteExternalLayout {
		t.Errorf("expected one informational fallback warning, got %v", result.Warnings)
	}
	if len(result.Positions) != 3 {
		t.Errorf("fallback must still position all nodes, got %d", len(result.Positions))
	}
}
