package turngraph

import "testing"

// newJoiningSplitGraph builds a via node with a single short road (r) that,
// one hop further on (mid), reaches an intersection that is itself
// u-turn-mergeable: mid's real reciprocal back to via (mid->via) sits at a
// near-zero angle alongside a same-named, near-parallel exit (mid->viaAlt)
// that a restriction keeps from being independently enterable, plus an
// unrelated perpendicular exit (mid->far) so the merge can only be found on
// one side, not both -- the scenario the joining-road adjustment is meant
// to detect and partially straighten r's own angle toward.
func newJoiningSplitGraph() (*fakeGraph, map[string]EdgeID) {
	g := newFakeGraph()
	const via NodeID = 1
	const origin NodeID = 2
	const mid NodeID = 3
	const cross NodeID = 4
	const viaAlt NodeID = 5
	const far NodeID = 6

	g.coords[via] = GeoPoint{Lon: 0, Lat: 0}
	g.coords[origin] = GeoPoint{Lon: 0, Lat: -0.001}
	g.coords[mid] = GeoPoint{Lon: 0, Lat: 0.0001} // ~11m north: well inside the lookahead
	g.coords[cross] = GeoPoint{Lon: 0.001, Lat: 0}
	g.coords[viaAlt] = GeoPoint{Lon: -0.00002, Lat: -0.0009}
	g.coords[far] = GeoPoint{Lon: 0.001, Lat: 0.0001}

	// mid's reciprocal edges back toward via carry their own long,
	// independent geometry (rather than literally retracing the 11m gap to
	// via) purely so there's enough length to sample 8+ points at a 5m
	// stride; nothing requires a reciprocal pair's two directions to share
	// one polyline.
	uturnFar := GeoPoint{Lon: 0.00002, Lat: -0.0009}
	altFar := GeoPoint{Lon: -0.00002, Lat: -0.0009}

	classification := RoadClassification{RoadClass: LinkType(1), TravelMode: AGENT_AUTO}
	edges := map[string]EdgeID{}
	add := func(id EdgeID, from, to NodeID, geom []GeoPoint, key string) {
		g.addEdge(id, from, to, geom, EdgeData{
			Classification: classification,
			Distance:       greatCircleDistance(geom[0], geom[len(geom)-1]) * 1000.0,
		})
		edges[key] = id
	}
	straight := func(from, to NodeID) []GeoPoint { return []GeoPoint{g.coords[from], g.coords[to]} }

	add(1, via, origin, straight(via, origin), "via->origin")
	add(2, origin, via, straight(origin, via), "origin->via")
	add(3, via, mid, straight(via, mid), "via->mid")
	add(4, mid, via, []GeoPoint{g.coords[mid], uturnFar}, "mid->via")
	add(5, via, cross, straight(via, cross), "via->cross")
	add(6, cross, via, straight(cross, via), "cross->via")
	add(7, mid, viaAlt, []GeoPoint{g.coords[mid], altFar}, "mid->viaAlt")
	add(8, viaAlt, mid, []GeoPoint{altFar, g.coords[mid]}, "viaAlt->mid")
	add(9, mid, far, straight(mid, far), "mid->far")
	add(10, far, mid, straight(far, mid), "far->mid")

	return g, edges
}

func TestAdjustForJoiningRoadsShiftsTowardDownstreamSplit(t *testing.T) {
	g, edges := newJoiningSplitGraph()
	ig := newTestIntersectionGenerator(g)
	// mid->viaAlt must not be independently enterable, or the downstream
	// u-turn-merge check rejects the pair as a legitimate fork instead of a
	// segregated carriageway (see canMergeRoad's double-entry check).
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["via->mid"]: {edges["mid->viaAlt"]: true},
		},
	}

	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}
	in := &intersection
	before := roads[in.findEdge(edges["via->mid"])]

	adjusted := ig.adjustForJoiningRoads(edges["origin->via"], intersection)
	after := adjusted.Roads[adjusted.findEdge(edges["via->mid"])]

	if after.Angle == before.Angle {
		t.Errorf("a road whose downstream intersection is a u-turn-mergeable split should have its angle nudged, stayed at %f", before.Angle)
	}
}

func TestAdjustForJoiningRoadsNeverTouchesUTurnSlot(t *testing.T) {
	g, edges := newJoiningSplitGraph()
	ig := newTestIntersectionGenerator(g)

	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}
	beforeUTurn := roads[0]

	adjusted := ig.adjustForJoiningRoads(edges["origin->via"], intersection)

	if adjusted.Roads[0].Edge != edges["via->origin"] {
		t.Fatalf("slot 0 should remain the u-turn edge")
	}
	if adjusted.Roads[0].Bearing != beforeUTurn.Bearing || adjusted.Roads[0].Angle != beforeUTurn.Angle {
		t.Errorf("slot 0's angle/bearing must never be adjusted by the joining-road pass")
	}
}

func TestAdjustForJoiningRoadsSkipsFarDownstreamIntersections(t *testing.T) {
	g, edges := newCrossGraph()
	ig := newTestIntersectionGenerator(g)

	roads := ig.ConnectedRoads(1, edges["south->via"])
	intersection := Intersection{Via: 1, Roads: roads}
	in := &intersection
	before := roads[in.findEdge(edges["via->north"])]

	adjusted := ig.adjustForJoiningRoads(edges["south->via"], intersection)
	after := adjusted.Roads[adjusted.findEdge(edges["via->north"])]

	if after.Angle != before.Angle || after.Bearing != before.Bearing {
		t.Errorf("a plain 4-way intersection has no downstream split to straighten toward, so no adjustment should apply")
	}
}
