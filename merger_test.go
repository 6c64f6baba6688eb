package turngraph

import "testing"

func TestMergeSegregatedRoadsMergesParallelCarriageways(t *testing.T) {
	g, edges := newDividedRoadGraph()
	ig := newTestIntersectionGenerator(g)
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->B"]: true},
		},
	}
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	merged := ig.mergeSegregatedRoads(edges["origin->via"], intersection)

	if len(merged.Roads) != 3 {
		t.Fatalf("expected the two near-parallel carriageways to collapse into one, leaving 3 roads, got %d", len(merged.Roads))
	}
	if merged.Roads[0].Edge != edges["via->origin"] {
		t.Errorf("the u-turn must stay in slot 0 after merging, got edge %d", merged.Roads[0].Edge)
	}

	var foundMerged bool
	for _, road := range merged.Roads {
		if road.Edge == edges["via->A"] && road.Instream {
			foundMerged = true
		}
	}
	if !foundMerged {
		t.Errorf("the surviving carriageway entry should be marked Instream after merging")
	}
}

func TestMergeSegregatedRoadsIsIdempotent(t *testing.T) {
	g, edges := newDividedRoadGraph()
	ig := newTestIntersectionGenerator(g)
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->B"]: true},
		},
	}
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	once := ig.mergeSegregatedRoads(edges["origin->via"], intersection)
	twice := ig.mergeSegregatedRoads(edges["origin->via"], once)

	if len(once.Roads) != len(twice.Roads) {
		t.Fatalf("merging an already-merged intersection should be a no-op, got %d roads then %d", len(once.Roads), len(twice.Roads))
	}
	for i := range once.Roads {
		if once.Roads[i].Edge != twice.Roads[i].Edge {
			t.Errorf("slot %d changed edge across a second merge pass: %d vs %d", i, once.Roads[i].Edge, twice.Roads[i].Edge)
		}
	}
}

// newNearUTurnGraph builds a via node whose real u-turn (back to origin) has
// a second, slightly-off-angle exit (sideNear) landing right next to it after
// angle-sorting -- a segregated u-turn slot, the same digitization pattern as
// newDividedRoadGraph's carriageways but anchored at slot 0 itself rather
// than at two forward-facing exits. sideLon controls which side of slot 0
// sideNear sorts to: a small positive offset lands it just after slot 0
// (the "(0,1)" case), a small negative offset wraps it around to the end of
// the angle-sorted list (the "(0,last)" case).
func newNearUTurnGraph(sideLon float64) (*fakeGraph, map[string]EdgeID) {
	g := newFakeGraph()
	const via NodeID = 1
	const origin NodeID = 2
	const sideNear NodeID = 3
	const east NodeID = 4

	g.coords[via] = GeoPoint{Lon: 0, Lat: 0}
	g.coords[origin] = GeoPoint{Lon: 0, Lat: -0.001}
	g.coords[sideNear] = GeoPoint{Lon: sideLon, Lat: -0.001}
	g.coords[east] = GeoPoint{Lon: 0.001, Lat: 0}

	classification := RoadClassification{RoadClass: LinkType(1), TravelMode: AGENT_AUTO}
	edges := map[string]EdgeID{}
	add := func(id EdgeID, from, to NodeID, key string) {
		g.addEdge(id, from, to, []GeoPoint{g.coords[from], g.coords[to]}, EdgeData{
			Classification: classification,
			Distance:       greatCircleDistance(g.coords[from], g.coords[to]) * 1000.0,
		})
		edges[key] = id
	}

	add(1, via, origin, "via->origin")
	add(2, origin, via, "origin->via")
	add(3, via, sideNear, "via->sideNear")
	add(4, sideNear, via, "sideNear->via")
	add(5, via, east, "via->east")
	add(6, east, via, "east->via")

	return g, edges
}

func TestMergeSegregatedRoadsMergesRightSideUTurn(t *testing.T) {
	g, edges := newNearUTurnGraph(0.00003)
	ig := newTestIntersectionGenerator(g)
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->sideNear"]: true},
		},
	}
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	merged := ig.mergeSegregatedRoads(edges["origin->via"], intersection)

	if len(merged.Roads) != 2 {
		t.Fatalf("expected the near-uturn slot to collapse, leaving 2 roads, got %d", len(merged.Roads))
	}
	if merged.Roads[0].Edge != edges["via->origin"] || merged.Roads[0].Angle != 0 {
		t.Errorf("the merged u-turn slot must stay at slot 0 with angle exactly 0, got edge %d angle %f", merged.Roads[0].Edge, merged.Roads[0].Angle)
	}
	if merged.Roads[1].Edge != edges["via->east"] || merged.Roads[1].Angle == 90 {
		t.Errorf("the surviving forward exit should have its angle corrected away from its raw geometric value")
	}
}

func TestMergeSegregatedRoadsMergesLeftSideUTurn(t *testing.T) {
	g, edges := newNearUTurnGraph(-0.00003)
	ig := newTestIntersectionGenerator(g)
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->sideNear"]: true},
		},
	}
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	merged := ig.mergeSegregatedRoads(edges["origin->via"], intersection)

	if len(merged.Roads) != 2 {
		t.Fatalf("expected the near-uturn slot to collapse, leaving 2 roads, got %d", len(merged.Roads))
	}
	if merged.Roads[0].Edge != edges["via->origin"] || merged.Roads[0].Angle != 0 {
		t.Errorf("the merged u-turn slot must stay at slot 0 with angle exactly 0, got edge %d angle %f", merged.Roads[0].Edge, merged.Roads[0].Angle)
	}
	if merged.Roads[1].Edge != edges["via->east"] || merged.Roads[1].Angle == 90 {
		t.Errorf("the surviving forward exit should have its angle corrected away from its raw geometric value")
	}
}

func TestMergeSegregatedRoadsRoundaboutForcesUTurnNonEnterable(t *testing.T) {
	g, edges := newNearUTurnGraph(0.00003)
	ig := newTestIntersectionGenerator(g)
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->sideNear"]: true},
		},
	}
	eastData := g.data[edges["via->east"]]
	eastData.Classification.Roundabout = true
	g.data[edges["via->east"]] = eastData

	roads := ig.ConnectedRoads(1, edges["origin->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	merged := ig.mergeSegregatedRoads(edges["origin->via"], intersection)

	if merged.Roads[0].Entry {
		t.Errorf("a roundabout among the surviving exits must force the merged u-turn slot back to non-enterable")
	}
}

func TestMergeSegregatedRoadsLeavesDistinctRoadsAlone(t *testing.T) {
	g, edges := newCrossGraph()
	ig := newTestIntersectionGenerator(g)
	roads := ig.ConnectedRoads(1, edges["south->via"])
	intersection := Intersection{Via: 1, Roads: roads}

	merged := ig.mergeSegregatedRoads(edges["south->via"], intersection)
	if len(merged.Roads) != 4 {
		t.Errorf("a plain 4-way intersection with no parallel carriageways should be unchanged, got %d roads", len(merged.Roads))
	}
}
