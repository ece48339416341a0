package services

import (
	"slices"
	"testing"

	"shipment-report-service/internal/domain"
)

func TestFindRoutePrefersFewestEdges(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "C")
	g.AddEdge("A", "C")

	r := FindRoute(g, "A", "C")
	if !r.Found {
		t.Fatalf("expected route A -> C")
	}
	if !slices.Equal(r.Path, []string{"A", "C"}) {
		t.Fatalf("path = %v, want [A C]", r.Path)
	}
	if r.Hops() != 1 {
		t.Fatalf("hops = %d, want 1", r.Hops())
	}
}

func TestFindRouteMultiHop(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("Los Angeles", "Chicago")
	g.AddEdge("Chicago", "New York")
	g.AddEdge("New York", "London")
	g.AddEdge("London", "Doncaster")
	g.AddEdge("Chicago", "Los Angeles")

	r := FindRoute(g, "Los Angeles", "Doncaster")
	want := []string{"Los Angeles", "Chicago", "New York", "London", "Doncaster"}
	if !r.Found || !slices.Equal(r.Path, want) {
		t.Fatalf("route = %+v, want %v", r, want)
	}
}

func TestFindRouteSameNode(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "B")

	for _, x := range []string{"A", "B"} {
		r := FindRoute(g, x, x)
		if !r.Found || !slices.Equal(r.Path, []string{x}) {
			t.Fatalf("FindRoute(%s, %s) = %+v, want [%s]", x, x, r, x)
		}
	}
}

func TestFindRouteSameUnknownNode(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "B")

	r := FindRoute(g, "Z", "Z")
	if !r.Found || !slices.Equal(r.Path, []string{"Z"}) {
		t.Fatalf("FindRoute(Z, Z) = %+v, want [Z]", r)
	}
	if r := FindRoute(domain.NewRouteGraph(), "Z", "Z"); !r.Found {
		t.Fatalf("FindRoute on empty graph = %+v, want [Z]", r)
	}
}

func TestFindRouteNotFound(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "B")
	g.AddEdge("C", "Z")

	cases := []struct{ start, end string }{
		{"A", "Z"},
		{"B", "A"},
		{"Q", "B"},
		{"A", "Nowhere"},
	}
	for _, c := range cases {
		r := FindRoute(g, c.start, c.end)
		if r.Found || len(r.Path) != 0 {
			t.Errorf("FindRoute(%s, %s) = %+v, want not found", c.start, c.end, r)
		}
		if r.Start != c.start || r.End != c.end {
			t.Errorf("query pair not echoed: %+v", r)
		}
	}
}

func TestFindRouteTiesFollowInsertionOrder(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "X")
	g.AddEdge("A", "Y")
	g.AddEdge("X", "Z")
	g.AddEdge("Y", "Z")

	for i := 0; i < 10; i++ {
		r := FindRoute(g, "A", "Z")
		if !slices.Equal(r.Path, []string{"A", "X", "Z"}) {
			t.Fatalf("run %d: path = %v, want [A X Z]", i, r.Path)
		}
	}
}

func TestFindRouteHandlesCycles(t *testing.T) {
	g := domain.NewRouteGraph()
	g.AddEdge("A", "B")
	g.AddEdge("B", "A")
	g.AddEdge("B", "B")

	if r := FindRoute(g, "A", "C"); r.Found {
		t.Fatalf("expected not found in a closed cycle, got %v", r.Path)
	}
}
