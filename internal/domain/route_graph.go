package domain

// Directed graph of observed location-to-location movements.
// Edges are additive only. Adjacency keeps insertion order so that graph
// traversals break ties the same way on every run.
type RouteGraph struct {
	adj   map[string][]string
	edges map[string]map[string]struct{}
	nodes map[string]struct{}
}

func NewRouteGraph() *RouteGraph {
	return &RouteGraph{
		adj:   make(map[string][]string),
		edges: make(map[string]map[string]struct{}),
		nodes: make(map[string]struct{}),
	}
}

// AddEdge inserts to into the destination set of from. Adding an existing
// edge is a no-op.
func (g *RouteGraph) AddEdge(from, to string) {
	g.nodes[from] = struct{}{}
	g.nodes[to] = struct{}{}

	dests, ok := g.edges[from]
	if !ok {
		dests = make(map[string]struct{})
		g.edges[from] = dests
	}
	if _, ok := dests[to]; ok {
		return
	}
	dests[to] = struct{}{}
	g.adj[from] = append(g.adj[from], to)
}

// Neighbors returns the locations directly reachable from loc, in the order
// their edges were first added. The returned slice must not be modified.
func (g *RouteGraph) Neighbors(loc string) []string {
	return g.adj[loc]
}

// OutDegree returns the size of the destination set of loc.
func (g *RouteGraph) OutDegree(loc string) int {
	return len(g.edges[loc])
}

// HasNode reports whether loc was seen as an origin or a destination.
func (g *RouteGraph) HasNode(loc string) bool {
	_, ok := g.nodes[loc]
	return ok
}

func (g *RouteGraph) NodeCount() int { return len(g.nodes) }

func (g *RouteGraph) EdgeCount() int {
	n := 0
	for _, dests := range g.edges {
		n += len(dests)
	}
	return n
}
