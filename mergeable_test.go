package turngraph

import "testing"

func TestHaveCompatibleRoadDataRejectsOnewayBackside(t *testing.T) {
	g, edges := newCrossGraph()
	backside := g.data[edges["via->east"]]
	backside.OnewayBackside = true
	g.data[edges["via->east"]] = backside

	if haveCompatibleRoadData(g, edges["via->east"], edges["via->north"]) {
		t.Errorf("a oneway-backside placeholder must never be compatible for merging")
	}
}

func TestHaveCompatibleRoadDataRejectsDifferentRoadClass(t *testing.T) {
	g, edges := newCrossGraph()
	data := g.data[edges["via->east"]]
	data.Classification.RoadClass = LinkType(99)
	g.data[edges["via->east"]] = data

	if haveCompatibleRoadData(g, edges["via->east"], edges["via->north"]) {
		t.Errorf("edges with different road classes must not be compatible")
	}
}

func TestHaveCompatibleRoadDataAcceptsMatchingEdges(t *testing.T) {
	g, edges := newCrossGraph()
	if !haveCompatibleRoadData(g, edges["via->east"], edges["via->north"]) {
		t.Errorf("edges with matching classification should be compatible")
	}
}

func TestHaveSameNameBothUnnamed(t *testing.T) {
	g, edges := newCrossGraph()
	names := newNameTable()
	if !haveSameName(names, g, edges["via->east"], edges["via->north"]) {
		t.Errorf("two unnamed roads should be treated as the same name for merging purposes")
	}
}

func TestHaveSameNameDiffers(t *testing.T) {
	g, edges := newCrossGraph()
	names := newNameTable()
	eastData := g.data[edges["via->east"]]
	eastData.NameID = names.intern("Elm Street")
	g.data[edges["via->east"]] = eastData
	northData := g.data[edges["via->north"]]
	northData.NameID = names.intern("Oak Avenue")
	g.data[edges["via->north"]] = northData

	if haveSameName(names, g, edges["via->east"], edges["via->north"]) {
		t.Errorf("differently named roads should not be treated as the same name")
	}
}

func TestCanMergeRoadRejectsWideAngle(t *testing.T) {
	g, edges := newCrossGraph()
	ig := newTestIntersectionGenerator(g)
	roads := ig.ConnectedRoads(1, edges["south->via"])
	in := &Intersection{Roads: roads}
	north := roads[in.findEdge(edges["via->north"])]
	east := roads[in.findEdge(edges["via->east"])]

	if canMergeRoad(ig, 1, north, east) {
		t.Errorf("roads 90 degrees apart must not be considered mergeable carriageways")
	}
}

func TestCanMergeRoadRejectsUTurnWithStraight(t *testing.T) {
	g, edges := newCrossGraph()
	ig := newTestIntersectionGenerator(g)
	roads := ig.ConnectedRoads(1, edges["south->via"])
	in := &Intersection{Roads: roads}
	uturn := roads[in.findEdge(edges["via->south"])]
	straight := roads[in.findEdge(edges["via->north"])]

	if canMergeRoad(ig, 1, uturn, straight) {
		t.Errorf("the u-turn back the way the traveler came must never merge with the straight-ahead exit")
	}
}

// newDividedRoadGraph builds a via node with two near-parallel exits (a
// divided carriageway digitized as two separate oneway ways) alongside one
// perpendicular cross street, to exercise the positive merge path.
func newDividedRoadGraph() (*fakeGraph, map[string]EdgeID) {
	g := newFakeGraph()
	const via NodeID = 1
	const carriagewayA NodeID = 2
	const carriagewayB NodeID = 3
	const cross NodeID = 4
	const origin NodeID = 5

	g.coords[via] = GeoPoint{Lon: 0, Lat: 0}
	g.coords[carriagewayA] = GeoPoint{Lon: 0.00002, Lat: 0.001}
	g.coords[carriagewayB] = GeoPoint{Lon: -0.00002, Lat: 0.001}
	g.coords[cross] = GeoPoint{Lon: 0.001, Lat: 0}
	g.coords[origin] = GeoPoint{Lon: 0, Lat: -0.001}

	classification := RoadClassification{RoadClass: LinkType(1), TravelMode: AGENT_AUTO}
	edges := map[string]EdgeID{}
	add := func(id EdgeID, from, to NodeID, key string) {
		g.addEdge(id, from, to, []GeoPoint{g.coords[from], g.coords[to]}, EdgeData{
			Classification: classification,
			Distance:       greatCircleDistance(g.coords[from], g.coords[to]) * 1000.0,
		})
		edges[key] = id
	}

	add(1, via, carriagewayA, "via->A")
	add(2, carriagewayA, via, "A->via")
	add(3, via, carriagewayB, "via->B")
	add(4, carriagewayB, via, "B->via")
	add(5, via, cross, "via->cross")
	add(6, cross, via, "cross->via")
	add(7, via, origin, "via->origin")
	add(8, origin, via, "origin->via")

	return g, edges
}

func TestCanMergeRoadAcceptsParallelCarriageways(t *testing.T) {
	g, edges := newDividedRoadGraph()
	ig := newTestIntersectionGenerator(g)
	// One carriageway is the legally enterable one; the other is blocked
	// (e.g. a shoulder or slip not meant to be entered directly), so this
	// is a segregated-carriageway merge rather than a legitimate fork where
	// both sides are independently drivable.
	ig.Restrictions = &fakeRestrictionMap{
		forbidden: map[EdgeID]map[EdgeID]bool{
			edges["origin->via"]: {edges["via->B"]: true},
		},
	}
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	in := &Intersection{Roads: roads}
	a := roads[in.findEdge(edges["via->A"])]
	b := roads[in.findEdge(edges["via->B"])]

	if !canMergeRoad(ig, 1, a, b) {
		t.Errorf("two near-parallel carriageways of the same road should be mergeable")
	}
}

func TestCanMergeRoadRejectsBothEnterable(t *testing.T) {
	g, edges := newDividedRoadGraph()
	ig := newTestIntersectionGenerator(g)
	roads := ig.ConnectedRoads(1, edges["origin->via"])
	in := &Intersection{Roads: roads}
	a := roads[in.findEdge(edges["via->A"])]
	b := roads[in.findEdge(edges["via->B"])]

	if canMergeRoad(ig, 1, a, b) {
		t.Errorf("two independently enterable exits are a legitimate fork and must not be merged")
	}
}
