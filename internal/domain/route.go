package domain

// Represents the answer to a single route query.
// Path starts with Start and ends with End when Found is true, and is empty
// otherwise.
type Route struct {
	Start string
	End   string
	Path  []string
	Found bool
}

// Hops returns the number of edges on the path.
func (r Route) Hops() int {
	if len(r.Path) == 0 {
		return 0
	}
	return len(r.Path) - 1
}
