package services

import (
	"shipment-report-service/internal/domain"
)

// FindRoute returns the path from start to end with the fewest edges.
//
// Breadth-first search: each node is marked visited when first discovered,
// so the first dequeued path ending at end is a shortest one. Among paths of
// equal length the one following earlier-added edges wins.
// start == end is answered with [start] before the graph is consulted.
// Otherwise an unknown start or an unreachable end yields Found == false.
func FindRoute(graph *domain.RouteGraph, start, end string) domain.Route {
	route := domain.Route{Start: start, End: end}
	if start == end {
		route.Path = []string{start}
		route.Found = true
		return route
	}
	if !graph.HasNode(start) {
		return route
	}

	queue := [][]string{{start}}
	visited := map[string]struct{}{start: {}}

	for len(queue) > 0 {
		path := queue[0]
		queue = queue[1:]

		last := path[len(path)-1]
		if last == end {
			route.Path = path
			route.Found = true
			return route
		}

		for _, next := range graph.Neighbors(last) {
			if _, seen := visited[next]; seen {
				continue
			}
			visited[next] = struct{}{}

			// Copy so sibling paths never share a backing array.
			nextPath := make([]string, len(path), len(path)+1)
			copy(nextPath, path)
			queue = append(queue, append(nextPath, next))
		}
	}

	return route
}
