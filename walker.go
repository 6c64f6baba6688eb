package turngraph

// Selector decides which exit of an intersection a traversal should follow
// next, given the road it arrived on.
type Selector interface {
	Select(ig *IntersectionGenerator, from EdgeID, intersection Intersection) (ConnectedRoad, bool)
}

// Accumulator receives each road a traversal follows, in order. Done lets
// the walker stop early once the accumulator has what it needs, rather
// than always walking until the selector itself gives up.
type Accumulator interface {
	Accumulate(ig *IntersectionGenerator, via NodeID, road ConnectedRoad)
	Done() bool
}

// GraphWalker drives a selector/accumulator pair along the road network
// one intersection at a time.
type GraphWalker struct {
	IG *IntersectionGenerator
}

func NewGraphWalker(ig *IntersectionGenerator) *GraphWalker {
	return &GraphWalker{IG: ig}
}

// TraverseRoad follows the road starting at `start` (whose source is
// `origin`) through as many intersections as the selector keeps choosing a
// next road for. It halts when the selector finds nothing to follow, the
// accumulator reports it has what it needs, or the traversal loops back to
// origin — the last case is the only cycle check performed, matching a
// literal "back where we started" halt rather than a general
// revisited-node check, so a traversal can legitimately pass back through
// an intermediate node twice (e.g. a figure-eight junction) without
// stopping early.
func (gw *GraphWalker) TraverseRoad(origin NodeID, start EdgeID, selector Selector, accumulator Accumulator) {
	current := start
	via := gw.IG.Graph.Target(start)
	for {
		intersection := gw.IG.Intersection(via, current)
		next, ok := selector.Select(gw.IG, current, intersection)
		if !ok {
			return
		}
		accumulator.Accumulate(gw.IG, via, next)
		if accumulator.Done() {
			return
		}
		nextVia := next.Target
		if nextVia == origin {
			return
		}
		current = next.Edge
		via = nextVia
	}
}

// GetActualNextIntersection returns the first intersection down the road
// from (via, from) that actually presents a choice — i.e. has more than
// just the u-turn and one way forward. Purely pass-through intersections
// (a node that exists only because a restriction or a tag change forced a
// graph split, with no other roads joining) are skipped one hop at a time.
// If the chain of pass-through nodes loops back to the starting `via`, the
// walk stops at the last node before it and returns that intersection.
func (ig *IntersectionGenerator) GetActualNextIntersection(via NodeID, from EdgeID) (NodeID, Intersection) {
	start := via
	intersection := ig.Intersection(via, from)
	for len(intersection.Roads) == 2 && intersection.Roads[1].Target != start {
		next := intersection.Roads[1]
		via = next.Target
		intersection = ig.Intersection(via, next.Edge)
	}
	return via, intersection
}
