package domain

import (
	"slices"
	"testing"
)

func TestRouteGraphAddEdgeIdempotent(t *testing.T) {
	g := NewRouteGraph()
	g.AddEdge("A", "B")
	g.AddEdge("A", "B")

	if got := g.OutDegree("A"); got != 1 {
		t.Fatalf("out degree = %d, want 1", got)
	}
	if got := g.EdgeCount(); got != 1 {
		t.Fatalf("edge count = %d, want 1", got)
	}
}

func TestRouteGraphNeighborsKeepInsertionOrder(t *testing.T) {
	g := NewRouteGraph()
	g.AddEdge("A", "C")
	g.AddEdge("A", "B")
	g.AddEdge("A", "C")
	g.AddEdge("A", "D")

	want := []string{"C", "B", "D"}
	if got := g.Neighbors("A"); !slices.Equal(got, want) {
		t.Fatalf("neighbors = %v, want %v", got, want)
	}
}

func TestRouteGraphNodes(t *testing.T) {
	g := NewRouteGraph()
	g.AddEdge("Los Angeles", "Chicago")
	g.AddEdge("Chicago", "Chicago")

	if !g.HasNode("Los Angeles") || !g.HasNode("Chicago") {
		t.Fatalf("expected both endpoints to be nodes")
	}
	if g.HasNode("Doncaster") {
		t.Fatalf("unexpected node Doncaster")
	}
	if g.NodeCount() != 2 {
		t.Fatalf("node count = %d, want 2", g.NodeCount())
	}
	if len(g.Neighbors("Doncaster")) != 0 {
		t.Fatalf("unknown node should have no neighbors")
	}
}
