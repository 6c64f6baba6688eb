package turngraph

import "sort"

// IntersectionGenerator builds and refines the Intersection at any node in
// the graph: raw angle-sorted connectivity first, then the segregated-road
// merge and joining-angle-adjustment passes that turn a geometrically
// literal intersection into the one a driver would perceive.
type IntersectionGenerator struct {
	Graph        Graph
	Names        NameTable
	Restrictions RestrictionMap
	Barriers     BarrierNodes
	Coordinates  *CoordinateExtractor
	Debug        *DebugSink
}

func NewIntersectionGenerator(rg *RoutingGraph) *IntersectionGenerator {
	return &IntersectionGenerator{
		Graph:        rg,
		Names:        rg.Names,
		Restrictions: rg.Restrictions,
		Barriers:     rg.Barriers,
		Coordinates:  NewCoordinateExtractor(rg),
	}
}

// ConnectedRoads returns the raw, angle-sorted list of roads leaving `via`,
// with the u-turn back onto `from` forced into slot 0 regardless of its
// angle, matching the OSRM convention that slot 0 is always the incoming
// road's reciprocal. If no reverse edge exists at all (a street leading
// into nothingness) a synthetic, non-enterable u-turn is appended so slot 0
// always exists.
func (ig *IntersectionGenerator) ConnectedRoads(via NodeID, from EdgeID) []ConnectedRoad {
	incomingAnchor := ig.Coordinates.CoordinateAlongRoad(via, from)
	viaCoord, _ := viaCoordinate(ig.Graph, via)
	bearingIn := bearing(incomingAnchor, viaCoord)

	isBarrier := ig.Barriers != nil && ig.Barriers.IsBarrier(via)

	var mandatoryTarget EdgeID
	hasMandatory := false
	if ig.Restrictions != nil {
		mandatoryTarget, hasMandatory = ig.Restrictions.MandatoryTurn(via, from)
	}

	edges := ig.Graph.EdgesFrom(via)
	fromSource := ig.Graph.Source(from)
	fromWayID := ig.Graph.Data(from).WayID

	bidirectionalOutCount := 0
	for _, edge := range edges {
		if !ig.Graph.Data(edge).OnewayBackside {
			bidirectionalOutCount++
		}
	}

	roads := make([]ConnectedRoad, 0, len(edges)+1)
	foundUturn := false
	for _, edge := range edges {
		target := ig.Graph.Target(edge)
		data := ig.Graph.Data(edge)
		isUturn := target == fromSource && data.WayID == fromWayID

		anchor := ig.Coordinates.CoordinateAlongRoad(via, edge)
		bearingOut := bearing(viaCoord, anchor)

		var angle float64
		var entry bool
		if isUturn {
			foundUturn = true
			angle = 0
			// Dead-end rule: a u-turn is only a valid turn choice when there
			// is somewhere else to have come from, i.e. more than just this
			// one bidirectional road meets at turn_node. A lone dead end is
			// fixed up afterward once every entry has been computed.
			entry = !isBarrier && bidirectionalOutCount > 1
		} else {
			angle = computeTurnAngle(bearingIn, bearingOut)
			// A barrier permits only the u-turn back the way a traveler
			// came; every other exit is invalid while standing on it.
			entry = !data.OnewayBackside && !isBarrier
		}
		if entry && ig.Restrictions != nil && ig.Restrictions.IsTurnForbidden(via, from, edge) {
			entry = false
		}
		if entry && hasMandatory && edge != mandatoryTarget {
			entry = false
		}

		roads = append(roads, ConnectedRoad{
			TurnOperation: TurnOperation{
				Edge:    edge,
				Angle:   angle,
				Bearing: bearingOut,
				Turn:    classifyTurnAngle(angle),
				Lane:    LaneDataInvalid,
				Entry:   entry,
			},
			Target: target,
		})
	}

	if !foundUturn {
		roads = append(roads, ConnectedRoad{
			TurnOperation: TurnOperation{
				Edge:    EdgeID(via),
				Angle:   0,
				Bearing: normalizeAngle(bearingIn + 180),
				Turn:    classifyTurnAngle(0),
				Lane:    LaneDataInvalid,
				Entry:   false,
			},
			Target: via,
		})
	}

	sort.SliceStable(roads, func(i, j int) bool {
		return roads[i].Angle < roads[j].Angle
	})

	uturnIdx := -1
	for i, road := range roads {
		if road.Angle == 0 {
			uturnIdx = i
			break
		}
	}
	if uturnIdx > 0 {
		uturn := roads[uturnIdx]
		roads = append(roads[:uturnIdx], roads[uturnIdx+1:]...)
		roads = append([]ConnectedRoad{uturn}, roads...)
	}

	// If nothing at this intersection is a legal turn, the u-turn is the
	// only way out regardless of what disqualified it above (dead end or
	// barrier); a traveler must still be able to leave.
	anyValid := false
	for _, road := range roads {
		if road.Entry {
			anyValid = true
			break
		}
	}
	if !anyValid && len(roads) > 0 {
		roads[0].Entry = true
	}

	return roads
}

// Intersection returns the fully merged and adjusted Intersection for a
// traveler arriving at `via` on `from`.
func (ig *IntersectionGenerator) Intersection(via NodeID, from EdgeID) Intersection {
	roads := ig.ConnectedRoads(via, from)
	intersection := Intersection{Via: via, Roads: roads}
	intersection = ig.mergeSegregatedRoads(from, intersection)
	intersection = ig.adjustForJoiningRoads(from, intersection)
	if ig.Debug != nil {
		ig.Debug.Record(ig.Graph, intersection)
	}
	return intersection
}

func viaCoordinate(graph Graph, via NodeID) (GeoPoint, bool) {
	if provider, ok := graph.(interface {
		Coordinate(NodeID) (GeoPoint, bool)
	}); ok {
		return provider.Coordinate(via)
	}
	return GeoPoint{}, false
}
